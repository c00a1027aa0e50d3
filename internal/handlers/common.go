package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/helpers"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/services"
)

// currentUser pulls the authenticated claims set by the auth middleware and
// parses the subject id. It writes the error response itself on failure.
func currentUser(c *gin.Context) (*helpers.CustomClaims, uuid.UUID, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, uuid.Nil, false
	}

	claims, ok := userClaims.(*helpers.CustomClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, uuid.Nil, false
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
		return nil, uuid.Nil, false
	}

	return claims, userId, true
}

// statusFromError maps service errors to HTTP statuses. Authorization
// failures on foreign bookings/venues surface as not-found, hiding existence.
func statusFromError(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrVenueNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDateConflict),
		errors.Is(err, services.ErrOrderAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrVenueInactive),
		errors.Is(err, services.ErrGuestCount),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrBookingNotConfirmed),
		errors.Is(err, services.ErrOrderMismatch),
		errors.Is(err, services.ErrInvalidSignature),
		errors.Is(err, services.ErrPriceRange):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotVerified),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrInvalidRefresh):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func parsePagination(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := helpers.StringTrim(c.Param(name))
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(name+" is required"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid "+name+" format"))
		return uuid.Nil, false
	}
	return id, true
}
