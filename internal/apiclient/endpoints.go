package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"uchoose-client/internal/models"
)

// Backend is the subset of the UChoose REST API the client logic depends on
type Backend interface {
	GetAuction(ctx context.Context, auctionID int) (models.Auction, error)
	ListServiceAuctions(ctx context.Context, serviceID int) ([]models.Auction, error)
	CreateAuction(ctx context.Context, auction models.NewAuction) (models.Auction, error)
	DeleteAuction(ctx context.Context, auctionID int) error
	ListAuctionBids(ctx context.Context, auctionID int) ([]models.Bid, error)
	CreateBid(ctx context.Context, bid models.NewBid) (models.Bid, error)
	GetServiceSlots(ctx context.Context, serviceID int, date string) (models.ServiceSlots, error)
	ListServiceReservations(ctx context.Context, serviceID int, date string) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, reservation models.NewReservation) (models.Reservation, error)
	GetClientDetails(ctx context.Context) (models.Client, error)
	UpdateClientCredits(ctx context.Context, clientID int, credits decimal.Decimal) error
}

var _ Backend = (*Client)(nil)

// GetAuction fetches auctions/{id}/
func (c *Client) GetAuction(ctx context.Context, auctionID int) (models.Auction, error) {
	var auction models.Auction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("auctions/%d/", auctionID), nil, &auction); err != nil {
		return models.Auction{}, err
	}
	if err := c.check("auction", auction); err != nil {
		return models.Auction{}, err
	}
	return auction, nil
}

// ListServiceAuctions fetches auctions/service/{id}/
func (c *Client) ListServiceAuctions(ctx context.Context, serviceID int) ([]models.Auction, error) {
	auctions := []models.Auction{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("auctions/service/%d/", serviceID), nil, &auctions); err != nil {
		return nil, err
	}
	for i := range auctions {
		if err := c.check(fmt.Sprintf("auction %d", i), auctions[i]); err != nil {
			return nil, err
		}
	}
	return auctions, nil
}

// CreateAuction posts to auctions/create/
func (c *Client) CreateAuction(ctx context.Context, auction models.NewAuction) (models.Auction, error) {
	var created models.Auction
	if err := c.do(ctx, http.MethodPost, "auctions/create/", auction, &created); err != nil {
		return models.Auction{}, err
	}
	return created, nil
}

// DeleteAuction cancels an auction through auctions/{id}/delete/
func (c *Client) DeleteAuction(ctx context.Context, auctionID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("auctions/%d/delete/", auctionID), nil, nil)
}

// ListAuctionBids fetches bids/auction/{id}/
func (c *Client) ListAuctionBids(ctx context.Context, auctionID int) ([]models.Bid, error) {
	bids := []models.Bid{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("bids/auction/%d/", auctionID), nil, &bids); err != nil {
		return nil, err
	}
	for i := range bids {
		if err := c.check(fmt.Sprintf("bid %d", i), bids[i]); err != nil {
			return nil, err
		}
	}
	return bids, nil
}

// CreateBid posts to bids/create/
func (c *Client) CreateBid(ctx context.Context, bid models.NewBid) (models.Bid, error) {
	var created models.Bid
	if err := c.do(ctx, http.MethodPost, "bids/create/", bid, &created); err != nil {
		return models.Bid{}, err
	}
	return created, nil
}

// GetServiceSlots fetches services/recomendations/ and returns its first entry; a missing
// entry is an empty slot list, not an error.
func (c *Client) GetServiceSlots(ctx context.Context, serviceID int, date string) (models.ServiceSlots, error) {
	q := url.Values{}
	q.Set("service", fmt.Sprint(serviceID))
	q.Set("date", date)

	entries := []models.ServiceSlots{}
	if err := c.do(ctx, http.MethodGet, "services/recomendations/?"+q.Encode(), nil, &entries); err != nil {
		return models.ServiceSlots{}, err
	}
	if len(entries) == 0 {
		return models.ServiceSlots{Service: serviceID, Slots: []models.SlotTemplate{}}, nil
	}

	entry := entries[0]
	for i := range entry.Slots {
		if err := c.check(fmt.Sprintf("slot %d", i), entry.Slots[i]); err != nil {
			return models.ServiceSlots{}, err
		}
	}
	if entry.Slots == nil {
		entry.Slots = []models.SlotTemplate{}
	}
	return entry, nil
}

// ListServiceReservations fetches reservations/service/{id}/?date=
func (c *Client) ListServiceReservations(ctx context.Context, serviceID int, date string) ([]models.Reservation, error) {
	q := url.Values{}
	q.Set("date", date)

	reservations := []models.Reservation{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("reservations/service/%d/?%s", serviceID, q.Encode()), nil, &reservations); err != nil {
		return nil, err
	}
	for i := range reservations {
		if err := c.check(fmt.Sprintf("reservation %d", i), reservations[i]); err != nil {
			return nil, err
		}
	}
	return reservations, nil
}

// CreateReservation posts to reservations/create/
func (c *Client) CreateReservation(ctx context.Context, reservation models.NewReservation) (models.Reservation, error) {
	var created models.Reservation
	if err := c.do(ctx, http.MethodPost, "reservations/create/", reservation, &created); err != nil {
		return models.Reservation{}, err
	}
	return created, nil
}

// GetClientDetails fetches the authenticated client from clients/detail/
func (c *Client) GetClientDetails(ctx context.Context) (models.Client, error) {
	var client models.Client
	if err := c.do(ctx, http.MethodGet, "clients/detail/", nil, &client); err != nil {
		return models.Client{}, err
	}
	if err := c.check("client", client); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// UpdateClientCredits sets the stored credit balance through client/{id}/update/
func (c *Client) UpdateClientCredits(ctx context.Context, clientID int, credits decimal.Decimal) error {
	body := map[string]decimal.Decimal{"credits": credits}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("client/%d/update/", clientID), body, nil)
}
