package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"uchoose-client/internal/apiclient"
	"uchoose-client/internal/uchooseerrors"
	"uchoose-client/utils"
)

// User-facing messages rendered by the client as-is
const (
	MsgSelectDate      = "Por favor, selecciona una fecha"
	MsgSelectSlot      = "Por favor, selecciona al menos una franja horaria"
	MsgContiguousSlots = "Las franjas seleccionadas deben ser continuas."
	MsgLoadFailed      = "No se pudieron cargar los datos. Inténtalo de nuevo."
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// PathID reads a positive integer path parameter, answering 400 when it is not one
func PathID(c *gin.Context, handlerName, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid %s %q", name, raw), "invalid "+name)
		utils.Warn(handlerName+": invalid path parameter", map[string]any{"param": name, "value": raw})
		return 0, false
	}
	return id, true
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, uchooseerrors.ErrNoDateSelected):
		return http.StatusBadRequest, MsgSelectDate
	case errors.Is(err, uchooseerrors.ErrNoSlotsSelected):
		return http.StatusBadRequest, MsgSelectSlot
	case errors.Is(err, uchooseerrors.ErrNonContiguousSelection):
		return http.StatusBadRequest, MsgContiguousSlots
	case errors.Is(err, uchooseerrors.ErrInvalidDate):
		return http.StatusBadRequest, "invalid date"
	case errors.Is(err, uchooseerrors.ErrInvalidService):
		return http.StatusBadRequest, "invalid service"
	case errors.Is(err, uchooseerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction"
	case errors.Is(err, uchooseerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, uchooseerrors.ErrSlotNotFound):
		return http.StatusNotFound, "slot not found"
	case errors.Is(err, uchooseerrors.ErrViewNotFound), errors.Is(err, uchooseerrors.ErrViewClosed):
		return http.StatusNotFound, "auction view not found"
	case errors.Is(err, uchooseerrors.ErrAttemptNotFound):
		return http.StatusNotFound, "booking not found"
	case errors.Is(err, uchooseerrors.ErrInvalidTransition):
		return http.StatusConflict, "booking cannot change from its current state"
	case errors.Is(err, uchooseerrors.ErrSubmissionInFlight):
		return http.StatusConflict, "booking is already being submitted"
	case errors.Is(err, uchooseerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, uchooseerrors.ErrAuctionNotCancellable):
		return http.StatusConflict, "auction cannot be cancelled"
	case errors.Is(err, uchooseerrors.ErrInvalidCheckout):
		return http.StatusBadRequest, "nothing to buy"
	case errors.Is(err, uchooseerrors.ErrCheckoutUnavailable):
		return http.StatusServiceUnavailable, "checkout unavailable"
	case errors.Is(err, uchooseerrors.ErrBackendStatus):
		return backendStatus(err)
	case errors.Is(err, uchooseerrors.ErrBackendUnavailable), errors.Is(err, uchooseerrors.ErrInvalidPayload):
		return http.StatusBadGateway, MsgLoadFailed
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// backendStatus passes the backend's client errors through and reports the rest as a gateway failure
func backendStatus(err error) (int, string) {
	var statusErr *apiclient.StatusError
	if !errors.As(err, &statusErr) {
		return http.StatusBadGateway, MsgLoadFailed
	}
	switch statusErr.Status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusConflict:
		message := http.StatusText(statusErr.Status)
		if statusErr.Message != "" {
			message = statusErr.Message
		}
		return statusErr.Status, message
	case http.StatusBadRequest:
		return http.StatusBadRequest, "request rejected by backend"
	default:
		return http.StatusBadGateway, MsgLoadFailed
	}
}

// RespondError maps err and logs it under handlerName with ctx fields
func RespondError(c *gin.Context, handlerName, message string, err error, ctx map[string]any) {
	status, userMessage := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", userMessage, err), userMessage)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
		return
	}
	utils.Warn(handlerName+": "+message, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
