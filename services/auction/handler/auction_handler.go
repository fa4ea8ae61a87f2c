package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	auction "uchoose-client/internal/auctionService"
	model "uchoose-client/internal/models"
	"uchoose-client/services/helpers"
	"uchoose-client/utils"
)

type AuctionServiceInterface interface {
	GetState(ctx context.Context, auctionID int, serviceInfo bool) (auction.AuctionState, error)
	OpenView(ctx context.Context, auctionID int) (model.AuctionView, error)
	GetView(viewID string) (model.AuctionView, error)
	CloseView(viewID string) error
	PlaceBid(ctx context.Context, bid model.NewBid) (model.Bid, error)
	CancelAuction(ctx context.Context, auctionID int) error
	ListServiceAuctions(ctx context.Context, serviceID int, serviceInfo, activeOnly bool) (auction.AuctionGroups, error)
	CreateAuction(ctx context.Context, draft auction.AuctionDraft) (model.Auction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// GetStateHandler handles GET /auctions/:auction_id/state
func (h *AuctionHandler) GetStateHandler(c *gin.Context) {
	auctionID, ok := helpers.PathID(c, "GetStateHandler", "auction_id")
	if !ok {
		return
	}
	serviceInfo := c.Query("service_info") == "true"

	state, err := h.service.GetState(c.Request.Context(), auctionID, serviceInfo)
	if err != nil {
		helpers.RespondError(c, "GetStateHandler", "failed to get auction state", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, state, "auction state retrieved successfully")
	helpers.LogSuccess("GetStateHandler", "auction state retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"phase":      state.TimeState.Phase,
	})
}

// ListServiceAuctionsHandler handles GET /services/:service_id/auctions?service_info=&active_only=
func (h *AuctionHandler) ListServiceAuctionsHandler(c *gin.Context) {
	serviceID, ok := helpers.PathID(c, "ListServiceAuctionsHandler", "service_id")
	if !ok {
		return
	}
	serviceInfo := c.Query("service_info") == "true"
	activeOnly := c.Query("active_only") == "true"

	groups, err := h.service.ListServiceAuctions(c.Request.Context(), serviceID, serviceInfo, activeOnly)
	if err != nil {
		helpers.RespondError(c, "ListServiceAuctionsHandler", "failed to list auctions", err, map[string]any{"service_id": serviceID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, groups, "auctions retrieved successfully")
	helpers.LogSuccess("ListServiceAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"service_id": serviceID,
		"upcoming":   len(groups.Upcoming),
		"active":     len(groups.Active),
		"finished":   len(groups.Finished),
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, err := h.service.CreateAuction(c.Request.Context(), auction.AuctionDraft{
		Service:         req.Service,
		StartingDate:    req.StartingDate,
		DurationMinutes: req.Duration,
		StartingBid:     req.StartingBid,
		TimeFrame:       req.TimeFrame,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", "failed to create auction", err, map[string]any{
			"service_id":    req.Service,
			"starting_date": req.StartingDate,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.ID,
		"service_id": created.Service,
	})
}

// CancelAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.PathID(c, "CancelAuctionHandler", "auction_id")
	if !ok {
		return
	}

	if err := h.service.CancelAuction(c.Request.Context(), auctionID); err != nil {
		helpers.RespondError(c, "CancelAuctionHandler", "failed to cancel auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{"auction_id": auctionID})
}

// OpenViewHandler handles POST /auctions/:auction_id/views
func (h *AuctionHandler) OpenViewHandler(c *gin.Context) {
	auctionID, ok := helpers.PathID(c, "OpenViewHandler", "auction_id")
	if !ok {
		return
	}

	view, err := h.service.OpenView(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "OpenViewHandler", "failed to open auction view", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, view, "auction view opened successfully")
	helpers.LogSuccess("OpenViewHandler", "auction view opened successfully", map[string]any{
		"auction_id": auctionID,
		"view_id":    view.ID,
	})
}

// GetViewHandler handles GET /views/:view_id
func (h *AuctionHandler) GetViewHandler(c *gin.Context) {
	viewID := c.Param("view_id")
	view, err := h.service.GetView(viewID)
	if err != nil {
		helpers.RespondError(c, "GetViewHandler", "failed to get auction view", err, map[string]any{"view_id": viewID})
		return
	}

	if view.Bids == nil {
		view.Bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction view retrieved successfully")
	helpers.LogSuccess("GetViewHandler", "auction view retrieved successfully", map[string]any{
		"view_id":    viewID,
		"bids_count": len(view.Bids),
	})
}

// CloseViewHandler handles DELETE /views/:view_id
func (h *AuctionHandler) CloseViewHandler(c *gin.Context) {
	viewID := c.Param("view_id")
	if err := h.service.CloseView(viewID); err != nil {
		helpers.RespondError(c, "CloseViewHandler", "failed to close auction view", err, map[string]any{"view_id": viewID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"view_id": viewID}, "auction view closed successfully")
	helpers.LogSuccess("CloseViewHandler", "auction view closed successfully", map[string]any{"view_id": viewID})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), model.NewBid{
		Event:    req.Event,
		Platform: req.Platform,
		Quantity: req.Quantity,
		Auction:  req.Auction,
		Client:   req.Client,
	})
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", "failed to place bid", err, map[string]any{
			"auction_id": req.Auction,
			"client_id":  req.Client,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.Auction,
		"client_id":  bid.Client,
		"quantity":   bid.Quantity.String(),
	})
}
