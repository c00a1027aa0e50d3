package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type VenueStatus string

const (
	StatusActive   VenueStatus = "active"
	StatusInactive VenueStatus = "inactive"
)

type Venue struct {
	Id      uuid.UUID `bson:"_id" json:"id"`
	OwnerId uuid.UUID `bson:"owner_id" json:"owner_id"`

	Name        string   `bson:"name" json:"name" validate:"required"`
	Description string   `bson:"description" json:"description"`
	VenueType   string   `bson:"venue_type" json:"venue_type" validate:"required"`
	Location    string   `bson:"location" json:"location" validate:"required"`
	Images      []string `bson:"images" json:"images,omitempty"`
	Facilities  []string `bson:"facilities" json:"facilities,omitempty"`

	Capacity int     `bson:"capacity" json:"capacity" validate:"required,gt=0"`
	PriceMin float64 `bson:"price_min" json:"price_min" validate:"required,gt=0"`
	PriceMax float64 `bson:"price_max" json:"price_max" validate:"required,gt=0"`
	// Displayed price, derived as the average of price_min/price_max.
	PricePerDay float64 `bson:"price_per_day" json:"price_per_day"`

	Status        VenueStatus `bson:"status" json:"status"`
	TotalBookings int         `bson:"total_bookings" json:"total_bookings"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}

// DerivePricePerDay recomputes the displayed price from the price band.
func (v *Venue) DerivePricePerDay() {
	v.PricePerDay = (v.PriceMin + v.PriceMax) / 2
}

// VenueFilter captures the public listing query.
type VenueFilter struct {
	Location string
	Type     string
	Search   string
}

// FilterOptions feeds the client-side filter UI, computed across active venues.
type FilterOptions struct {
	VenueTypes  []string `json:"venue_types"`
	Locations   []string `json:"locations"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	MinCapacity int      `json:"min_capacity"`
	MaxCapacity int      `json:"max_capacity"`
}

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	UpdateVenue(ctx context.Context, fields map[string]interface{}, venueId uuid.UUID) (*Venue, error)
	DeleteVenue(ctx context.Context, venueId uuid.UUID) error
	ListVenues(ctx context.Context, filter VenueFilter, offset, limit int) ([]*Venue, int, error)
	ListVenuesByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) ([]*Venue, int, error)
	GetFilterOptions(ctx context.Context) (*FilterOptions, error)
	IncrementTotalBookings(ctx context.Context, venueId uuid.UUID) error
}
