package models

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "not_required"
	PaymentPending     PaymentStatus = "pending"
	PaymentCompleted   PaymentStatus = "completed"
	PaymentFailed      PaymentStatus = "failed"
)

// GSTRate is applied on top of the venue's displayed price to derive the
// amount actually charged.
const GSTRate = 1.18

// ComputePaymentAmount derives the charged amount from the displayed price.
func ComputePaymentAmount(basePrice float64) float64 {
	return math.Round(basePrice * GSTRate)
}

// Booking is the inquiry/reservation record. The customer contact fields are a
// snapshot captured at inquiry time; they do not follow later profile edits.
type Booking struct {
	ID         uuid.UUID `bson:"_id" json:"id"`
	VenueId    uuid.UUID `bson:"venue_id" json:"venue_id"`
	CustomerId uuid.UUID `bson:"customer_id" json:"customer_id"`

	CustomerName  string `bson:"customer_name" json:"customer_name"`
	CustomerEmail string `bson:"customer_email" json:"customer_email"`
	CustomerPhone string `bson:"customer_phone" json:"customer_phone"`

	EventDate  string `bson:"event_date" json:"event_date"` // YYYY-MM-DD
	EventType  string `bson:"event_type" json:"event_type"`
	GuestCount int    `bson:"guest_count" json:"guest_count"`

	// Amount is the displayed price; PaymentAmount is what the gateway charges.
	Amount        float64 `bson:"amount" json:"amount"`
	PaymentAmount float64 `bson:"payment_amount" json:"payment_amount"`

	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`

	RazorpayOrderID   string     `bson:"razorpay_order_id,omitempty" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string     `bson:"razorpay_payment_id,omitempty" json:"razorpay_payment_id,omitempty"`
	PaidAt            *time.Time `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
	PaymentError      string     `bson:"payment_error,omitempty" json:"payment_error,omitempty"`

	AcknowledgedAt *time.Time `bson:"acknowledged_at,omitempty" json:"acknowledged_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// OwnerBookingView is a booking joined (at read time) with venue display fields.
type OwnerBookingView struct {
	Booking       `bson:",inline"`
	VenueName     string `bson:"venue_name" json:"venue_name"`
	VenueLocation string `bson:"venue_location" json:"venue_location"`
}

// CustomerBookingView additionally carries the venue owner's contact fields.
type CustomerBookingView struct {
	Booking       `bson:",inline"`
	VenueName     string `bson:"venue_name" json:"venue_name"`
	VenueLocation string `bson:"venue_location" json:"venue_location"`
	OwnerName     string `bson:"owner_name" json:"owner_name"`
	OwnerPhone    string `bson:"owner_phone" json:"owner_phone"`
}

type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateBooking(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerId uuid.UUID) ([]*OwnerBookingView, error)
	ListBookingsByCustomer(ctx context.Context, customerId uuid.UUID) ([]*CustomerBookingView, error)
	ListPendingByOwner(ctx context.Context, ownerId uuid.UUID) ([]*OwnerBookingView, error)
	CountPendingByOwner(ctx context.Context, ownerId uuid.UUID) (int, error)
	ListRecentByCustomer(ctx context.Context, customerId uuid.UUID, since time.Time) ([]*CustomerBookingView, error)
	CountRecentByCustomer(ctx context.Context, customerId uuid.UUID, since time.Time) (int, error)
	HasConfirmedForDate(ctx context.Context, venueId uuid.UUID, eventDate string) (bool, error)
}
