package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/payments"
)

var (
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
	ErrOrderAlreadyExists  = errors.New("a payment order already exists for this booking")
	ErrInvalidSignature    = errors.New("payment signature verification failed")
	ErrOrderMismatch       = errors.New("order does not belong to this booking")
)

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	KeyID    string `json:"key_id"`
	Amount   int64  `json:"amount"` // paisa
	Currency string `json:"currency"`
}

type VerifyInput struct {
	BookingID string `json:"booking_id" binding:"required,uuid" validate:"required,uuid"`
	OrderID   string `json:"razorpay_order_id" binding:"required" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required" validate:"required"`
	Signature string `json:"razorpay_signature" binding:"required" validate:"required"`
}

type PaymentService struct {
	bookingsRepo models.BookingsRepo
	gateway      payments.Gateway
	secret       string
	logger       *slog.Logger
}

func NewPaymentService(bookingsRepo models.BookingsRepo, gateway payments.Gateway, secret string, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		bookingsRepo: bookingsRepo,
		gateway:      gateway,
		secret:       secret,
		logger:       logger,
	}
}

// CreateOrder opens a gateway order for the booking's payment amount. The
// charged amount is payment_amount (incl. GST), not the displayed amount, and
// is sent to the gateway in paisa.
func (ps *PaymentService) CreateOrder(ctx context.Context, customerId, bookingId uuid.UUID) (*OrderResponse, error) {
	booking, err := ps.bookingsRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return nil, err
	}
	if booking.CustomerId != customerId {
		return nil, models.ErrBookingNotFound
	}
	if booking.Status != models.BookingConfirmed {
		return nil, ErrBookingNotConfirmed
	}
	if booking.RazorpayOrderID != "" {
		return nil, ErrOrderAlreadyExists
	}

	amountPaise := int64(booking.PaymentAmount * 100)
	orderID, err := ps.gateway.CreateOrder(ctx, amountPaise, "INR", booking.ID.String(), map[string]interface{}{
		"booking_id": booking.ID.String(),
	})
	if err != nil {
		return nil, err
	}

	if _, err := ps.bookingsRepo.UpdateBooking(ctx, map[string]interface{}{
		"razorpay_order_id": orderID,
	}, bookingId); err != nil {
		return nil, fmt.Errorf("failed to record gateway order: %v", err)
	}

	return &OrderResponse{
		OrderID:  orderID,
		KeyID:    ps.gateway.KeyID(),
		Amount:   amountPaise,
		Currency: "INR",
	}, nil
}

// VerifyPayment checks the client-returned signature against the server-held
// secret. There is no gateway webhook; completion is entirely client-attested.
func (ps *PaymentService) VerifyPayment(ctx context.Context, customerId uuid.UUID, in *VerifyInput) (*models.Booking, error) {
	if err := models.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid verification payload: %w", err)
	}

	bookingId, err := uuid.Parse(in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %v", err)
	}

	booking, err := ps.bookingsRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return nil, err
	}
	if booking.CustomerId != customerId {
		return nil, models.ErrBookingNotFound
	}
	if booking.RazorpayOrderID == "" || booking.RazorpayOrderID != in.OrderID {
		return nil, ErrOrderMismatch
	}

	if !payments.VerifySignature(in.OrderID, in.PaymentID, in.Signature, ps.secret) {
		return nil, ErrInvalidSignature
	}

	now := time.Now()
	updated, err := ps.bookingsRepo.UpdateBooking(ctx, map[string]interface{}{
		"payment_status":      models.PaymentCompleted,
		"razorpay_payment_id": in.PaymentID,
		"paid_at":             now,
	}, bookingId)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ReportFailure stores the client-reported reason verbatim. No retry or
// reconciliation against the gateway happens afterwards.
func (ps *PaymentService) ReportFailure(ctx context.Context, customerId, bookingId uuid.UUID, reason string) (*models.Booking, error) {
	booking, err := ps.bookingsRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return nil, err
	}
	if booking.CustomerId != customerId {
		return nil, models.ErrBookingNotFound
	}

	updated, err := ps.bookingsRepo.UpdateBooking(ctx, map[string]interface{}{
		"payment_status": models.PaymentFailed,
		"payment_error":  reason,
	}, bookingId)
	if err != nil {
		return nil, err
	}

	ps.logger.Info("payment failure reported", "booking_id", bookingId, "reason", reason)
	return updated, nil
}
