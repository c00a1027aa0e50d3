package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) AddToFavourites(ctx context.Context, userId uuid.UUID, venueId string) (*Favourite, error) {
	col, err := mdb.GetCollection(ctx, DbName, FavouritesCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	now := time.Now()
	filter := bson.M{"user_id": userId}

	update := bson.M{
		"$set": bson.M{
			"updated_at": now,
			fmt.Sprintf("items.%s", venueId): FavouriteItem{
				VenueID: venueId,
				AddedAt: now,
			},
		},
		"$setOnInsert": bson.M{
			"user_id":    userId,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result Favourite
	if err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("error upserting favourite: %v", err)
	}

	return &result, nil
}

func (mdb *MongodbRepo) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, venueId string) error {
	col, err := mdb.GetCollection(ctx, DbName, FavouritesCol)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user_id": userId}
	update := bson.M{
		"$unset": bson.M{
			fmt.Sprintf("items.%s", venueId): "",
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
	}

	_, err = col.UpdateOne(ctx, filter, update)
	return err
}

func (mdb *MongodbRepo) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*Favourite, error) {
	col, err := mdb.GetCollection(ctx, DbName, FavouritesCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var fav Favourite
	if err := col.FindOne(ctx, bson.M{"user_id": userId}).Decode(&fav); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No favourites yet is not an error.
			return &Favourite{UserID: userId, Items: map[string]FavouriteItem{}}, nil
		}
		return nil, fmt.Errorf("error finding favourites: %v", err)
	}

	return &fav, nil
}
