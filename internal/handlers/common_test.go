package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"booking not found", models.ErrBookingNotFound, http.StatusNotFound},
		{"venue not found", models.ErrVenueNotFound, http.StatusNotFound},
		{"user not found", models.ErrUserNotFound, http.StatusNotFound},
		{"date conflict", services.ErrDateConflict, http.StatusConflict},
		{"order already exists", services.ErrOrderAlreadyExists, http.StatusConflict},
		{"venue inactive", services.ErrVenueInactive, http.StatusBadRequest},
		{"guest count", services.ErrGuestCount, http.StatusBadRequest},
		{"invalid status", services.ErrInvalidStatus, http.StatusBadRequest},
		{"booking not confirmed", services.ErrBookingNotConfirmed, http.StatusBadRequest},
		{"order mismatch", services.ErrOrderMismatch, http.StatusBadRequest},
		{"invalid signature", services.ErrInvalidSignature, http.StatusBadRequest},
		{"price range", services.ErrPriceRange, http.StatusBadRequest},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not verified", services.ErrNotVerified, http.StatusUnauthorized},
		{"invalid otp", services.ErrInvalidOTP, http.StatusUnauthorized},
		{"invalid refresh", services.ErrInvalidRefresh, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_ValidationFailure(t *testing.T) {
	err := models.Validate.Struct(&services.InquiryInput{})
	require.Error(t, err)

	// Services wrap validation failures; the mapping must still see them.
	wrapped := fmt.Errorf("invalid inquiry data: %w", err)
	assert.Equal(t, http.StatusBadRequest, statusFromError(wrapped))
}
