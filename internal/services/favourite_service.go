package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/models"
)

type FavouriteService struct {
	favouritesRepo models.FavouriteRepo
}

func NewFavouriteService(favouritesRepo models.FavouriteRepo) *FavouriteService {
	return &FavouriteService{
		favouritesRepo: favouritesRepo,
	}
}

func (fs *FavouriteService) AddToFavourites(ctx context.Context, userId uuid.UUID, venueId string) (*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if strings.TrimSpace(venueId) == "" {
		return nil, fmt.Errorf("venue ID cannot be empty")
	}
	if _, err := uuid.Parse(venueId); err != nil {
		return nil, fmt.Errorf("invalid venue ID format")
	}

	return fs.favouritesRepo.AddToFavourites(ctx, userId, venueId)
}

func (fs *FavouriteService) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, venueId string) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}
	if strings.TrimSpace(venueId) == "" {
		return fmt.Errorf("venue ID cannot be empty")
	}

	return fs.favouritesRepo.RemoveFromFavourites(ctx, userId, venueId)
}

func (fs *FavouriteService) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	return fs.favouritesRepo.GetFavouritesByUserID(ctx, userId)
}
