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

var ErrBookingNotFound = errors.New("booking not found")

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}
	return booking, nil
}

func (mdb *MongodbRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) UpdateBooking(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	fields["updated_at"] = time.Now()
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Booking
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error updating booking: %v", err)
	}
	return &updated, nil
}

// ownerVenueIndex loads the owner's venues keyed by id. Booking views are
// joined at read time, not transactionally.
func (mdb *MongodbRepo) ownerVenueIndex(ctx context.Context, ownerId uuid.UUID) (map[uuid.UUID]*Venue, []uuid.UUID, error) {
	col, err := mdb.GetCollection(ctx, DbName, VenuesColName)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"owner_id": ownerId})
	if err != nil {
		return nil, nil, fmt.Errorf("error finding venues: %v", err)
	}
	defer cursor.Close(ctx)

	index := make(map[uuid.UUID]*Venue)
	var ids []uuid.UUID
	for cursor.Next(ctx) {
		var venue Venue
		if err := cursor.Decode(&venue); err != nil {
			return nil, nil, fmt.Errorf("error decoding venue: %v", err)
		}
		v := venue
		index[v.Id] = &v
		ids = append(ids, v.Id)
	}
	return index, ids, cursor.Err()
}

func (mdb *MongodbRepo) findOwnerBookings(ctx context.Context, ownerId uuid.UUID, extra bson.M) ([]*OwnerBookingView, error) {
	index, ids, err := mdb.ownerVenueIndex(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*OwnerBookingView{}, nil
	}

	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{"venue_id": bson.M{"$in": ids}}
	for k, v := range extra {
		query[k] = v
	}

	findOptions := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	views := []*OwnerBookingView{}
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		view := &OwnerBookingView{Booking: booking}
		if venue, ok := index[booking.VenueId]; ok {
			view.VenueName = venue.Name
			view.VenueLocation = venue.Location
		}
		views = append(views, view)
	}
	return views, cursor.Err()
}

func (mdb *MongodbRepo) ListBookingsByOwner(ctx context.Context, ownerId uuid.UUID) ([]*OwnerBookingView, error) {
	return mdb.findOwnerBookings(ctx, ownerId, nil)
}

func (mdb *MongodbRepo) ListPendingByOwner(ctx context.Context, ownerId uuid.UUID) ([]*OwnerBookingView, error) {
	return mdb.findOwnerBookings(ctx, ownerId, bson.M{"status": BookingPending})
}

func (mdb *MongodbRepo) CountPendingByOwner(ctx context.Context, ownerId uuid.UUID) (int, error) {
	_, ids, err := mdb.ownerVenueIndex(ctx, ownerId)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{
		"venue_id": bson.M{"$in": ids},
		"status":   BookingPending,
	})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %v", err)
	}
	return int(count), nil
}

func (mdb *MongodbRepo) findCustomerBookings(ctx context.Context, customerId uuid.UUID, extra bson.M) ([]*CustomerBookingView, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{"customer_id": customerId}
	for k, v := range extra {
		query[k] = v
	}

	findOptions := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}

	views := []*CustomerBookingView{}
	for i := range bookings {
		view := &CustomerBookingView{Booking: bookings[i]}
		// Separate read-time lookups; a deleted venue leaves the join fields
		// empty rather than failing the list.
		if venue, err := mdb.GetVenueByID(ctx, bookings[i].VenueId); err == nil {
			view.VenueName = venue.Name
			view.VenueLocation = venue.Location
			if owner, err := mdb.GetUserByID(ctx, venue.OwnerId); err == nil {
				view.OwnerName = owner.FullName
				view.OwnerPhone = owner.PhoneNumber
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (mdb *MongodbRepo) ListBookingsByCustomer(ctx context.Context, customerId uuid.UUID) ([]*CustomerBookingView, error) {
	return mdb.findCustomerBookings(ctx, customerId, nil)
}

// recentCustomerQuery matches bookings whose status changed within the window
// and that the customer has not acknowledged.
func recentCustomerQuery(since time.Time) bson.M {
	return bson.M{
		"status":          bson.M{"$in": bson.A{BookingConfirmed, BookingCancelled}},
		"updated_at":      bson.M{"$gte": since},
		"acknowledged_at": bson.M{"$exists": false},
	}
}

func (mdb *MongodbRepo) ListRecentByCustomer(ctx context.Context, customerId uuid.UUID, since time.Time) ([]*CustomerBookingView, error) {
	return mdb.findCustomerBookings(ctx, customerId, recentCustomerQuery(since))
}

func (mdb *MongodbRepo) CountRecentByCustomer(ctx context.Context, customerId uuid.UUID, since time.Time) (int, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := recentCustomerQuery(since)
	query["customer_id"] = customerId

	count, err := col.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %v", err)
	}
	return int(count), nil
}

func (mdb *MongodbRepo) HasConfirmedForDate(ctx context.Context, venueId uuid.UUID, eventDate string) (bool, error) {
	col, err := mdb.GetCollection(ctx, DbName, BookingsCol)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{
		"venue_id":   venueId,
		"event_date": eventDate,
		"status":     BookingConfirmed,
	})
	if err != nil {
		return false, fmt.Errorf("error checking confirmed bookings: %v", err)
	}
	return count > 0, nil
}
