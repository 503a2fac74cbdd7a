package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/dispatch"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  http.StatusBadRequest,
		"message": "invalid request payload",
		"error":   fmt.Sprintf("invalid request payload: %v", err),
	})
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, dispatch.ErrUnsupportedOperation):
		return http.StatusBadRequest, "operation not supported"
	case errors.Is(err, auctionerrors.ErrInvalidAmount),
		errors.Is(err, auctionerrors.ErrInvalidSchedule):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrNotOwner),
		errors.Is(err, auctionerrors.ErrNotOwned),
		errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "operation not permitted"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient funds"
	case errors.Is(err, auctionerrors.ErrBelowMinimum),
		errors.Is(err, auctionerrors.ErrOutbid),
		errors.Is(err, auctionerrors.ErrAuctionClosed),
		errors.Is(err, auctionerrors.ErrItemAlreadyListed):
		return http.StatusConflict, "request conflicts with auction state"
	case errors.Is(err, auctionerrors.ErrWithdrawalTargetUnset):
		return http.StatusPreconditionFailed, "withdrawal target not configured"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
