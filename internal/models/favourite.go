package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavouriteItem struct {
	VenueID string    `bson:"venue_id" json:"venue_id"`
	AddedAt time.Time `bson:"added_at" json:"added_at"`
}

// Favourite holds one document per user, with venues keyed by id so that the
// (user, venue) pair is unique by construction.
type Favourite struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID                `bson:"user_id" json:"user_id"`
	Items     map[string]FavouriteItem `bson:"items" json:"items"`
	CreatedAt time.Time                `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time                `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type FavouriteRepo interface {
	AddToFavourites(ctx context.Context, userId uuid.UUID, venueId string) (*Favourite, error)
	RemoveFromFavourites(ctx context.Context, userId uuid.UUID, venueId string) error
	GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*Favourite, error)
}
