package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerInquiryCount_FallsBackToRepoWithoutCache(t *testing.T) {
	ownerId := uuid.New()

	bookings := &mockBookingsRepo{
		countPendingFn: func(ctx context.Context, id uuid.UUID) (int, error) {
			assert.Equal(t, ownerId, id)
			return 3, nil
		},
	}

	svc := NewNotificationService(bookings, nil, testLogger())
	count, err := svc.OwnerInquiryCount(context.Background(), ownerId)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCustomerNotificationCount_UsesSevenDayWindow(t *testing.T) {
	var gotSince time.Time

	bookings := &mockBookingsRepo{
		countRecentFn: func(ctx context.Context, customerId uuid.UUID, since time.Time) (int, error) {
			gotSince = since
			return 2, nil
		},
	}

	svc := NewNotificationService(bookings, nil, testLogger())
	count, err := svc.CustomerNotificationCount(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := time.Now().Add(-7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, gotSince, 2*time.Second)
}

func TestCustomerNotifications_UsesThirtyDayWindow(t *testing.T) {
	var gotSince time.Time

	bookings := &mockBookingsRepo{
		listRecentFn: func(ctx context.Context, customerId uuid.UUID, since time.Time) ([]*models.CustomerBookingView, error) {
			gotSince = since
			return nil, nil
		},
	}

	svc := NewNotificationService(bookings, nil, testLogger())
	_, err := svc.CustomerNotifications(context.Background(), uuid.New())

	require.NoError(t, err)
	expected := time.Now().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, expected, gotSince, 2*time.Second)
}

func TestAcknowledge_SetsAcknowledgedAt(t *testing.T) {
	customerId := uuid.New()
	booking := &models.Booking{ID: uuid.New(), CustomerId: customerId, Status: models.BookingConfirmed}

	var updatedFields map[string]interface{}

	bookings := &mockBookingsRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
		updateFn: func(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*models.Booking, error) {
			updatedFields = fields
			return booking, nil
		},
	}

	svc := NewNotificationService(bookings, nil, testLogger())
	err := svc.Acknowledge(context.Background(), customerId, booking.ID)

	require.NoError(t, err)
	_, ok := updatedFields["acknowledged_at"].(time.Time)
	assert.True(t, ok)
}

func TestAcknowledge_ForeignCustomerReportsNotFound(t *testing.T) {
	booking := &models.Booking{ID: uuid.New(), CustomerId: uuid.New()}

	bookings := &mockBookingsRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}

	svc := NewNotificationService(bookings, nil, testLogger())
	err := svc.Acknowledge(context.Background(), uuid.New(), booking.ID)

	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}
