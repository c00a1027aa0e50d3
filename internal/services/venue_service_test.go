package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVenue_DerivesDisplayedPrice(t *testing.T) {
	ownerId := uuid.New()

	venues := &mockVenuesRepo{
		createFn: func(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
			return venue, nil
		},
	}

	svc := NewVenuesService(venues)
	created, err := svc.CreateVenue(context.Background(), &models.Venue{
		Name:      "Grand Palace Banquets",
		VenueType: "banquet-hall",
		Location:  "Mumbai",
		Capacity:  100,
		PriceMin:  40000,
		PriceMax:  60000,
	}, ownerId)

	require.NoError(t, err)
	assert.Equal(t, float64(50000), created.PricePerDay)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, ownerId, created.OwnerId)
	assert.Equal(t, 0, created.TotalBookings)
	assert.NotEqual(t, uuid.Nil, created.Id)
}

func TestCreateVenue_RejectsInvertedPriceBand(t *testing.T) {
	svc := NewVenuesService(&mockVenuesRepo{})

	_, err := svc.CreateVenue(context.Background(), &models.Venue{
		Name:      "Grand Palace Banquets",
		VenueType: "banquet-hall",
		Location:  "Mumbai",
		Capacity:  100,
		PriceMin:  60000,
		PriceMax:  40000,
	}, uuid.New())

	assert.ErrorIs(t, err, ErrPriceRange)
}

func TestUpdateVenue_RederivesPriceWhenBandChanges(t *testing.T) {
	ownerId := uuid.New()
	venue := sampleVenue(ownerId)

	var updatedFields map[string]interface{}

	venues := &mockVenuesRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
			return venue, nil
		},
		updateFn: func(ctx context.Context, fields map[string]interface{}, venueId uuid.UUID) (*models.Venue, error) {
			updatedFields = fields
			return venue, nil
		},
	}

	svc := NewVenuesService(venues)
	_, err := svc.UpdateVenue(context.Background(), map[string]interface{}{
		"price_min": float64(50000),
		"price_max": float64(70000),
	}, venue.Id, ownerId)

	require.NoError(t, err)
	assert.Equal(t, float64(60000), updatedFields["price_per_day"])
}

func TestUpdateVenue_ForeignOwnerReportsNotFound(t *testing.T) {
	venue := sampleVenue(uuid.New())

	venues := &mockVenuesRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
			return venue, nil
		},
	}

	svc := NewVenuesService(venues)
	_, err := svc.UpdateVenue(context.Background(), map[string]interface{}{"name": "New name"}, venue.Id, uuid.New())

	assert.ErrorIs(t, err, models.ErrVenueNotFound)
}

func TestUpdateVenue_StripsProtectedFields(t *testing.T) {
	ownerId := uuid.New()
	venue := sampleVenue(ownerId)

	var updatedFields map[string]interface{}

	venues := &mockVenuesRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
			return venue, nil
		},
		updateFn: func(ctx context.Context, fields map[string]interface{}, venueId uuid.UUID) (*models.Venue, error) {
			updatedFields = fields
			return venue, nil
		},
	}

	svc := NewVenuesService(venues)
	_, err := svc.UpdateVenue(context.Background(), map[string]interface{}{
		"name":           "Renamed",
		"owner_id":       uuid.New().String(),
		"total_bookings": 999,
	}, venue.Id, ownerId)

	require.NoError(t, err)
	assert.NotContains(t, updatedFields, "owner_id")
	assert.NotContains(t, updatedFields, "total_bookings")
	assert.Contains(t, updatedFields, "updated_at")
}

func TestDeleteVenue_ForeignOwnerReportsNotFound(t *testing.T) {
	venue := sampleVenue(uuid.New())

	venues := &mockVenuesRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
			return venue, nil
		},
	}

	svc := NewVenuesService(venues)
	err := svc.DeleteVenue(context.Background(), venue.Id, uuid.New())

	assert.ErrorIs(t, err, models.ErrVenueNotFound)
}
