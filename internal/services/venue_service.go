package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/connect"
	"github.com/joshua-takyi/venuehub/internal/helpers"
	"github.com/joshua-takyi/venuehub/internal/models"
)

var ErrPriceRange = errors.New("price_min must be less than or equal to price_max")

type VenuesService struct {
	venuesRepo models.VenuesRepo
}

func NewVenuesService(venuesRepo models.VenuesRepo) *VenuesService {
	return &VenuesService{
		venuesRepo: venuesRepo,
	}
}

func (vs *VenuesService) CreateVenue(ctx context.Context, venue *models.Venue, ownerId uuid.UUID) (*models.Venue, error) {
	if err := models.Validate.Struct(venue); err != nil {
		return nil, fmt.Errorf("invalid venue data provided: %v", err)
	}
	if venue.PriceMin > venue.PriceMax {
		return nil, ErrPriceRange
	}

	// Upload images first if any
	if len(venue.Images) > 0 {
		uploadChan := make(chan []string, 1)
		errorChan := make(chan error, 1)

		go func() {
			urls, uploadErr := helpers.UploadImages(ctx, connect.Cld, venue.Images, helpers.VenueFolder)
			if uploadErr != nil {
				errorChan <- uploadErr
				return
			}
			uploadChan <- urls
		}()

		select {
		case urls := <-uploadChan:
			venue.Images = urls
		case uploadErr := <-errorChan:
			return nil, fmt.Errorf("failed to upload images: %v", uploadErr)
		case <-time.After(30 * time.Second):
			return nil, fmt.Errorf("image upload timeout")
		}
	}

	now := time.Now()
	if venue.Id == uuid.Nil {
		venue.Id = uuid.New()
	}
	venue.OwnerId = ownerId
	venue.DerivePricePerDay()
	venue.Status = models.StatusActive
	venue.TotalBookings = 0
	venue.CreatedAt = now
	venue.UpdatedAt = now

	return vs.venuesRepo.CreateVenue(ctx, venue)
}

// UpdateVenue applies a partial update after re-checking ownership. A venue
// owned by someone else reports not-found. Touching either price bound
// re-derives the displayed price.
func (vs *VenuesService) UpdateVenue(ctx context.Context, fields map[string]interface{}, venueId, ownerId uuid.UUID) (*models.Venue, error) {
	venue, err := vs.venuesRepo.GetVenueByID(ctx, venueId)
	if err != nil {
		return nil, err
	}
	if venue.OwnerId != ownerId {
		return nil, models.ErrVenueNotFound
	}

	priceMin := venue.PriceMin
	priceMax := venue.PriceMax
	if v, ok := toFloat(fields["price_min"]); ok {
		priceMin = v
	}
	if v, ok := toFloat(fields["price_max"]); ok {
		priceMax = v
	}
	if priceMin > priceMax {
		return nil, ErrPriceRange
	}
	if priceMin != venue.PriceMin || priceMax != venue.PriceMax {
		fields["price_min"] = priceMin
		fields["price_max"] = priceMax
		fields["price_per_day"] = (priceMin + priceMax) / 2
	}

	if v, ok := fields["capacity"]; ok {
		if c, ok := toFloat(v); !ok || c <= 0 {
			return nil, fmt.Errorf("capacity must be greater than zero")
		}
	}

	delete(fields, "owner_id")
	delete(fields, "total_bookings")
	fields["updated_at"] = time.Now()

	return vs.venuesRepo.UpdateVenue(ctx, fields, venueId)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func (vs *VenuesService) DeleteVenue(ctx context.Context, venueId, ownerId uuid.UUID) error {
	venue, err := vs.venuesRepo.GetVenueByID(ctx, venueId)
	if err != nil {
		return err
	}
	if venue.OwnerId != ownerId {
		return models.ErrVenueNotFound
	}

	return vs.venuesRepo.DeleteVenue(ctx, venueId)
}

func (vs *VenuesService) ListVenues(ctx context.Context, filter models.VenueFilter, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return vs.venuesRepo.ListVenues(ctx, filter, offset, limit)
}

func (vs *VenuesService) GetVenueByID(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid venue ID")
	}
	return vs.venuesRepo.GetVenueByID(ctx, id)
}

func (vs *VenuesService) ListVenuesByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	if ownerId == uuid.Nil {
		return nil, 0, fmt.Errorf("invalid owner ID")
	}
	return vs.venuesRepo.ListVenuesByOwner(ctx, ownerId, offset, limit)
}

func (vs *VenuesService) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return vs.venuesRepo.GetFilterOptions(ctx)
}
