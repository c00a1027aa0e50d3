package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrVenueNotFound = errors.New("venue not found")

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, venue); err != nil {
		return nil, fmt.Errorf("error inserting venue: %v", err)
	}
	return venue, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var venue Venue
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("error finding venue: %v", err)
	}
	return &venue, nil
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, fields map[string]interface{}, venueId uuid.UUID) (*Venue, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Venue
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": venueId}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("error updating venue: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, venueId uuid.UUID) error {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": venueId})
	if err != nil {
		return fmt.Errorf("error deleting venue: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrVenueNotFound
	}

	// Cascade bookings and favourite references for the removed venue.
	if bookingsCol, err := mdb.GetCollection(ctx, DbName, BookingsCol); err == nil {
		_, _ = bookingsCol.DeleteMany(ctx, bson.M{"venue_id": venueId})
	}
	if favCol, err := mdb.GetCollection(ctx, DbName, FavouritesCol); err == nil {
		_, _ = favCol.UpdateMany(ctx, bson.M{}, bson.M{
			"$unset": bson.M{fmt.Sprintf("items.%s", venueId.String()): ""},
		})
	}

	return nil
}

func buildVenueQuery(filter VenueFilter) bson.M {
	query := bson.M{"status": StatusActive}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Location, Options: "i"}}
	}
	if filter.Type != "" {
		query["venue_type"] = filter.Type
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": regex}},
			bson.M{"description": bson.M{"$regex": regex}},
		}
	}
	return query
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context, filter VenueFilter, offset, limit int) ([]*Venue, int, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := buildVenueQuery(filter)

	total, err := col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting venues: %v", err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding venues: %v", err)
	}
	defer cursor.Close(ctx)

	var venues []*Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, 0, fmt.Errorf("error decoding venues: %v", err)
	}

	return venues, int(total), nil
}

func (mdb *MongodbRepo) ListVenuesByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) ([]*Venue, int, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{"owner_id": ownerId}

	total, err := col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting venues: %v", err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding venues: %v", err)
	}
	defer cursor.Close(ctx)

	var venues []*Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, 0, fmt.Errorf("error decoding venues: %v", err)
	}

	return venues, int(total), nil
}

func (mdb *MongodbRepo) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	match := bson.M{"status": StatusActive}

	types, err := col.Distinct(ctx, "venue_type", match)
	if err != nil {
		return nil, fmt.Errorf("error fetching venue types: %v", err)
	}
	locations, err := col.Distinct(ctx, "location", match)
	if err != nil {
		return nil, fmt.Errorf("error fetching locations: %v", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"min_price":    bson.M{"$min": "$price_per_day"},
			"max_price":    bson.M{"$max": "$price_per_day"},
			"min_capacity": bson.M{"$min": "$capacity"},
			"max_capacity": bson.M{"$max": "$capacity"},
		}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating filter ranges: %v", err)
	}
	defer cursor.Close(ctx)

	opts := &FilterOptions{}
	for _, t := range types {
		if s, ok := t.(string); ok {
			opts.VenueTypes = append(opts.VenueTypes, s)
		}
	}
	for _, l := range locations {
		if s, ok := l.(string); ok {
			opts.Locations = append(opts.Locations, s)
		}
	}

	if cursor.Next(ctx) {
		var ranges struct {
			MinPrice    float64 `bson:"min_price"`
			MaxPrice    float64 `bson:"max_price"`
			MinCapacity int     `bson:"min_capacity"`
			MaxCapacity int     `bson:"max_capacity"`
		}
		if err := cursor.Decode(&ranges); err != nil {
			return nil, fmt.Errorf("error decoding filter ranges: %v", err)
		}
		opts.MinPrice = ranges.MinPrice
		opts.MaxPrice = ranges.MaxPrice
		opts.MinCapacity = ranges.MinCapacity
		opts.MaxCapacity = ranges.MaxCapacity
	}

	return opts, nil
}

func (mdb *MongodbRepo) IncrementTotalBookings(ctx context.Context, venueId uuid.UUID) error {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": venueId}, bson.M{"$inc": bson.M{"total_bookings": 1}})
	if err != nil {
		return fmt.Errorf("error incrementing total bookings: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrVenueNotFound
	}
	return nil
}
