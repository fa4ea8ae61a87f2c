package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	booking "uchoose-client/internal/bookingService"
	model "uchoose-client/internal/models"
	"uchoose-client/services/helpers"
	"uchoose-client/utils"
)

type BookingServiceInterface interface {
	AvailableSlots(ctx context.Context, serviceID int, date string) (booking.SlotGrid, error)
	StartAttempt(serviceID int) (model.BookingAttempt, error)
	GetAttempt(attemptID string) (model.BookingAttempt, error)
	SelectDate(ctx context.Context, attemptID, date string) (model.BookingAttempt, error)
	ToggleSlot(attemptID, slotID string) (model.BookingAttempt, error)
	RequestConfirm(ctx context.Context, attemptID string) (model.BookingAttempt, error)
	Confirm(ctx context.Context, attemptID string) (model.BookingAttempt, error)
	Cancel(attemptID string) (model.BookingAttempt, error)
}

type BookingHandler struct {
	service BookingServiceInterface
}

func NewBookingHandler(service BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

// GetSlotsHandler handles GET /services/:service_id/slots?date=YYYY-MM-DD
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	serviceID, ok := helpers.PathID(c, "GetSlotsHandler", "service_id")
	if !ok {
		return
	}
	date := c.Query("date")

	grid, err := h.service.AvailableSlots(c.Request.Context(), serviceID, date)
	if err != nil {
		helpers.RespondError(c, "GetSlotsHandler", "failed to load slots", err, map[string]any{
			"service_id": serviceID,
			"date":       date,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, grid, "slots retrieved successfully")
	helpers.LogSuccess("GetSlotsHandler", "slots retrieved successfully", map[string]any{
		"service_id": serviceID,
		"date":       grid.Date,
		"count":      len(grid.SubSlots),
	})
}

// CreateBookingHandler handles POST /bookings
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req helpers.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBookingHandler", err)
		return
	}

	attempt, err := h.service.StartAttempt(req.ServiceID)
	if err != nil {
		helpers.RespondError(c, "CreateBookingHandler", "failed to start booking", err, map[string]any{"service_id": req.ServiceID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, attempt, "booking started successfully")
	helpers.LogSuccess("CreateBookingHandler", "booking started successfully", map[string]any{
		"booking_id": attempt.ID,
		"service_id": attempt.ServiceID,
	})
}

// GetBookingHandler handles GET /bookings/:booking_id
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	attempt, err := h.service.GetAttempt(bookingID)
	if err != nil {
		helpers.RespondError(c, "GetBookingHandler", "failed to get booking", err, map[string]any{"booking_id": bookingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attempt, "booking retrieved successfully")
}

// SelectDateHandler handles PUT /bookings/:booking_id/date
func (h *BookingHandler) SelectDateHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	var req helpers.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SelectDateHandler", err)
		return
	}

	attempt, err := h.service.SelectDate(c.Request.Context(), bookingID, req.Date)
	if err != nil {
		helpers.RespondError(c, "SelectDateHandler", "failed to select date", err, map[string]any{
			"booking_id": bookingID,
			"date":       req.Date,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attempt, "date selected successfully")
	helpers.LogSuccess("SelectDateHandler", "date selected successfully", map[string]any{
		"booking_id": bookingID,
		"date":       attempt.Date,
		"slots":      len(attempt.SubSlots),
	})
}

// ToggleSlotHandler handles POST /bookings/:booking_id/toggle
func (h *BookingHandler) ToggleSlotHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	var req helpers.ToggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ToggleSlotHandler", err)
		return
	}

	attempt, err := h.service.ToggleSlot(bookingID, req.SlotID)
	if err != nil {
		helpers.RespondError(c, "ToggleSlotHandler", "failed to toggle slot", err, map[string]any{
			"booking_id": bookingID,
			"slot_id":    req.SlotID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attempt, "selection updated successfully")
}

// RequestConfirmHandler handles POST /bookings/:booking_id/confirm-request
func (h *BookingHandler) RequestConfirmHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	attempt, err := h.service.RequestConfirm(c.Request.Context(), bookingID)
	if err != nil {
		helpers.RespondError(c, "RequestConfirmHandler", "failed to request confirmation", err, map[string]any{"booking_id": bookingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attempt, "confirmation requested successfully")
	fields := map[string]any{"booking_id": bookingID}
	if attempt.Summary != nil {
		fields["total"] = attempt.Summary.Total.String()
		fields["covered"] = attempt.Summary.CoveredByCredits
	}
	helpers.LogSuccess("RequestConfirmHandler", "confirmation requested successfully", fields)
}

// ConfirmHandler handles POST /bookings/:booking_id/confirm
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	attempt, err := h.service.Confirm(c.Request.Context(), bookingID)
	if err != nil {
		helpers.RespondError(c, "ConfirmHandler", "failed to confirm booking", err, map[string]any{"booking_id": bookingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attempt, "booking confirmed successfully")
	fields := map[string]any{"booking_id": bookingID}
	if attempt.Outcome != nil {
		fields["method"] = attempt.Outcome.Method
	}
	helpers.LogSuccess("ConfirmHandler", "booking confirmed successfully", fields)
}

// CancelBookingHandler handles POST /bookings/:booking_id/cancel
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("booking_id")
	attempt, err := h.service.Cancel(bookingID)
	if err != nil {
		helpers.RespondError(c, "CancelBookingHandler", "failed to cancel booking", err, map[string]any{"booking_id": bookingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, attempt, "booking cancelled successfully")
}
