package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/mailer"
	"github.com/joshua-takyi/venuehub/internal/models"
)

var (
	ErrVenueInactive   = errors.New("venue is not accepting bookings")
	ErrGuestCount      = errors.New("guest count exceeds venue capacity")
	ErrInvalidStatus   = errors.New("status must be 'confirmed' or 'cancelled'")
	ErrDateConflict    = errors.New("venue already has a confirmed booking for this date")
	ErrBookingNotFound = models.ErrBookingNotFound
)

type InquiryInput struct {
	VenueID       string `json:"venue_id" binding:"required,uuid" validate:"required,uuid"`
	EventDate     string `json:"event_date" binding:"required,datetime=2006-01-02" validate:"required,datetime=2006-01-02"`
	EventType     string `json:"event_type" binding:"required" validate:"required"`
	GuestCount    int    `json:"guest_count" binding:"required,gt=0" validate:"required,gt=0"`
	CustomerName  string `json:"customer_name" binding:"required" validate:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required" validate:"required"`
}

type BookingService struct {
	bookingsRepo models.BookingsRepo
	venuesRepo   models.VenuesRepo
	usersRepo    models.UserRepo
	mailer       mailer.Mailer
	adminEmail   string
	logger       *slog.Logger
}

func NewBookingService(
	bookingsRepo models.BookingsRepo,
	venuesRepo models.VenuesRepo,
	usersRepo models.UserRepo,
	m mailer.Mailer,
	adminEmail string,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		venuesRepo:   venuesRepo,
		usersRepo:    usersRepo,
		mailer:       m,
		adminEmail:   adminEmail,
		logger:       logger,
	}
}

// CreateInquiry writes a pending booking with a point-in-time snapshot of the
// customer's contact fields. Email side effects are best-effort: a failed send
// never rolls back the booking.
func (bs *BookingService) CreateInquiry(ctx context.Context, customerId uuid.UUID, in *InquiryInput) (*models.Booking, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid inquiry data: %w", err)
	}

	venueId, err := uuid.Parse(in.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %v", err)
	}

	venue, err := bs.venuesRepo.GetVenueByID(ctx, venueId)
	if err != nil {
		return nil, err
	}
	if venue.Status != models.StatusActive {
		return nil, ErrVenueInactive
	}
	if in.GuestCount > venue.Capacity {
		return nil, ErrGuestCount
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New(),
		VenueId:       venue.Id,
		CustomerId:    customerId,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		EventDate:     in.EventDate,
		EventType:     in.EventType,
		GuestCount:    in.GuestCount,
		Amount:        venue.PricePerDay,
		PaymentAmount: models.ComputePaymentAmount(venue.PricePerDay),
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentNotRequired,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := bs.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	bs.sendInquiryEmails(ctx, created, venue)

	return created, nil
}

func (bs *BookingService) sendInquiryEmails(ctx context.Context, booking *models.Booking, venue *models.Venue) {
	// Owner gets the inquiry without the customer's contact details.
	if owner, err := bs.usersRepo.GetUserByID(ctx, venue.OwnerId); err != nil {
		bs.logger.Error("failed to load venue owner for inquiry email", "venue_id", venue.Id, "error", err)
	} else {
		subject, html := mailer.OwnerInquiryEmail(venue.Name, booking.EventDate, booking.EventType, booking.GuestCount)
		if err := bs.mailer.Send(ctx, owner.Email, subject, html); err != nil {
			bs.logger.Error("failed to send inquiry email to owner", "booking_id", booking.ID, "error", err)
		}
	}

	subject, html := mailer.AdminInquiryEmail(
		venue.Name, booking.EventDate, booking.EventType, booking.GuestCount,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
	)
	if err := bs.mailer.Send(ctx, bs.adminEmail, subject, html); err != nil {
		bs.logger.Error("failed to send inquiry email to admin", "booking_id", booking.ID, "error", err)
	}
}

// UpdateStatus moves the booking to confirmed or cancelled on behalf of the
// venue owner. A booking whose venue belongs to someone else reports not-found
// rather than forbidden. Re-transitioning an already-terminal booking is not
// blocked.
func (bs *BookingService) UpdateStatus(ctx context.Context, ownerId, bookingId uuid.UUID, target models.BookingStatus) (*models.Booking, error) {
	if target != models.BookingConfirmed && target != models.BookingCancelled {
		return nil, ErrInvalidStatus
	}

	booking, err := bs.bookingsRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return nil, err
	}

	venue, err := bs.venuesRepo.GetVenueByID(ctx, booking.VenueId)
	if err != nil {
		return nil, err
	}
	if venue.OwnerId != ownerId {
		return nil, models.ErrBookingNotFound
	}

	fields := map[string]interface{}{"status": target}

	if target == models.BookingConfirmed {
		// Best-effort only: the read and the confirm write are not serialized.
		taken, err := bs.bookingsRepo.HasConfirmedForDate(ctx, venue.Id, booking.EventDate)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDateConflict
		}
		fields["payment_status"] = models.PaymentPending
	}

	wasPending := booking.Status == models.BookingPending

	updated, err := bs.bookingsRepo.UpdateBooking(ctx, fields, bookingId)
	if err != nil {
		return nil, err
	}

	if target == models.BookingConfirmed {
		// Independent second write; a failure here leaves the counter stale.
		if err := bs.venuesRepo.IncrementTotalBookings(ctx, venue.Id); err != nil {
			bs.logger.Error("failed to increment venue total bookings", "venue_id", venue.Id, "error", err)
		}
	}

	if wasPending {
		bs.sendStatusEmails(ctx, updated, venue, target)
	}

	return updated, nil
}

func (bs *BookingService) sendStatusEmails(ctx context.Context, booking *models.Booking, venue *models.Venue, target models.BookingStatus) {
	subject, html := mailer.AdminStatusEmail(venue.Name, booking.EventDate, string(target), booking.CustomerName, booking.CustomerEmail)
	if err := bs.mailer.Send(ctx, bs.adminEmail, subject, html); err != nil {
		bs.logger.Error("failed to send status email to admin", "booking_id", booking.ID, "error", err)
	}

	subject, html = mailer.CustomerStatusEmail(venue.Name, booking.EventDate, string(target), booking.PaymentAmount)
	if err := bs.mailer.Send(ctx, booking.CustomerEmail, subject, html); err != nil {
		bs.logger.Error("failed to send status email to customer", "booking_id", booking.ID, "error", err)
	}
}

func (bs *BookingService) ListOwnerBookings(ctx context.Context, ownerId uuid.UUID) ([]*models.OwnerBookingView, error) {
	if ownerId == uuid.Nil {
		return nil, fmt.Errorf("invalid owner ID")
	}
	return bs.bookingsRepo.ListBookingsByOwner(ctx, ownerId)
}

func (bs *BookingService) ListCustomerBookings(ctx context.Context, customerId uuid.UUID) ([]*models.CustomerBookingView, error) {
	if customerId == uuid.Nil {
		return nil, fmt.Errorf("invalid customer ID")
	}
	return bs.bookingsRepo.ListBookingsByCustomer(ctx, customerId)
}
