package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Windows approximating "unread": a booking counts as a notification while
	// its status changed within the window and the viewer has not acknowledged
	// it.
	customerCountWindow = 7 * 24 * time.Hour
	customerListWindow  = 30 * 24 * time.Hour

	// Counts are polled every 15-60s by dashboards; a short cache keeps the
	// venue scan off the hot path.
	countCacheTTL = 15 * time.Second
)

type NotificationService struct {
	bookingsRepo models.BookingsRepo
	rdx          *redis.Client
	logger       *slog.Logger
}

func NewNotificationService(bookingsRepo models.BookingsRepo, rdx *redis.Client, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		bookingsRepo: bookingsRepo,
		rdx:          rdx,
		logger:       logger,
	}
}

func (ns *NotificationService) OwnerInquiryCount(ctx context.Context, ownerId uuid.UUID) (int, error) {
	if ownerId == uuid.Nil {
		return 0, fmt.Errorf("invalid owner ID")
	}

	key := "inquiry_count:" + ownerId.String()
	if ns.rdx != nil {
		if cached, err := ns.rdx.Get(ctx, key).Result(); err == nil {
			if n, err := strconv.Atoi(cached); err == nil {
				return n, nil
			}
		}
	}

	count, err := ns.bookingsRepo.CountPendingByOwner(ctx, ownerId)
	if err != nil {
		return 0, err
	}

	if ns.rdx != nil {
		if err := ns.rdx.Set(ctx, key, count, countCacheTTL).Err(); err != nil {
			ns.logger.Warn("failed to cache inquiry count", "owner_id", ownerId, "error", err)
		}
	}

	return count, nil
}

func (ns *NotificationService) OwnerInquiries(ctx context.Context, ownerId uuid.UUID) ([]*models.OwnerBookingView, error) {
	if ownerId == uuid.Nil {
		return nil, fmt.Errorf("invalid owner ID")
	}
	return ns.bookingsRepo.ListPendingByOwner(ctx, ownerId)
}

func (ns *NotificationService) CustomerNotificationCount(ctx context.Context, customerId uuid.UUID) (int, error) {
	if customerId == uuid.Nil {
		return 0, fmt.Errorf("invalid customer ID")
	}
	since := time.Now().Add(-customerCountWindow)
	return ns.bookingsRepo.CountRecentByCustomer(ctx, customerId, since)
}

func (ns *NotificationService) CustomerNotifications(ctx context.Context, customerId uuid.UUID) ([]*models.CustomerBookingView, error) {
	if customerId == uuid.Nil {
		return nil, fmt.Errorf("invalid customer ID")
	}
	since := time.Now().Add(-customerListWindow)
	return ns.bookingsRepo.ListRecentByCustomer(ctx, customerId, since)
}

// Acknowledge marks a booking notification as read for its customer, removing
// it from counts and lists regardless of the recency window.
func (ns *NotificationService) Acknowledge(ctx context.Context, customerId, bookingId uuid.UUID) error {
	booking, err := ns.bookingsRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return err
	}
	if booking.CustomerId != customerId {
		return models.ErrBookingNotFound
	}

	_, err = ns.bookingsRepo.UpdateBooking(ctx, map[string]interface{}{
		"acknowledged_at": time.Now(),
	}, bookingId)
	return err
}
