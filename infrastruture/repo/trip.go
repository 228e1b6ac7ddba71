package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrTripNotFound = errors.New("trip not found")

// TripRepo handles the persistence of computed trips.
type TripRepo struct {
	collection *mongo.Collection
}

var _ i.TripRepo = &TripRepo{}

// NewTripRepo creates a new TripRepo with the given MongoDB client, database name, and collection name.
func NewTripRepo(client *mongo.Client, dbName, collectionName string) *TripRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &TripRepo{
		collection: collection,
	}
}

// Save inserts or replaces a trip.
func (t *TripRepo) Save(trip *dmn.Trip) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": trip.ID}
	update := bson.M{
		"$set": bson.M{
			"items":         trip.Items,
			"order":         trip.Order,
			"collected":     trip.Collected,
			"cost":          trip.Cost,
			"strategy":      trip.Strategy,
			"elapsedMicros": trip.Elapsed,
			"createdAt":     trip.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := t.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a trip by its ID.
func (t *TripRepo) ByID(id uuid.UUID) (*dmn.Trip, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var trip dmn.Trip
	if err := t.collection.FindOne(ctx, filter).Decode(&trip); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTripNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &trip, nil
}
