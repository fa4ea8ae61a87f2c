package helpers

import (
	"github.com/shopspring/decimal"
)

// Request DTOs
type PlaceBidRequest struct {
	Auction  int             `json:"auction" binding:"required,gt=0"`
	Client   int             `json:"client" binding:"required,gt=0"`
	Event    string          `json:"event"`
	Platform string          `json:"platform"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateAuctionRequest mirrors the create form; Duration and TimeFrame are minutes and are
// range-checked by the service.
type CreateAuctionRequest struct {
	Service      int             `json:"service" binding:"required,gt=0"`
	StartingDate string          `json:"starting_date" binding:"required"`
	Duration     int             `json:"duration"`
	StartingBid  decimal.Decimal `json:"starting_bid"`
	TimeFrame    int             `json:"time_frame"`
}

type CreateBookingRequest struct {
	ServiceID int `json:"service_id" binding:"required,gt=0"`
}

// SelectDateRequest is not bound with required: an empty date is a user-facing selection error.
type SelectDateRequest struct {
	Date string `json:"date"`
}

type ToggleSlotRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}
