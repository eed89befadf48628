package tripRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"wayfarer/database"
	"wayfarer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTripRepo implements TripRepository using MongoDB.
type MongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo constructs a new instance of MongoTripRepo.
func NewMongoTripRepo() TripRepository {
	db := database.MongoClient.Database("wayfarer")
	repo := &MongoTripRepo{
		coll: db.Collection("trips"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("trip repo: %v", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (repo *MongoTripRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new trip document.
func (repo *MongoTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, trip)
	if err != nil {
		return fmt.Errorf("error creating trip: %w", err)
	}
	return nil
}

// GetByID retrieves a trip by its ID.
func (repo *MongoTripRepo) GetByID(ctx context.Context, tripID string) (*models.Trip, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": tripID}).Decode(&trip)
	if err != nil {
		return nil, fmt.Errorf("trip not found: %w", err)
	}
	return &trip, nil
}

// GetByUser retrieves all trips confirmed by a user, newest first.
func (repo *MongoTripRepo) GetByUser(ctx context.Context, userID string) ([]models.Trip, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching trips for user %s: %w", userID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var trips []models.Trip
	for cursor.Next(ctxWithTimeout) {
		var t models.Trip
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("error decoding trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return trips, nil
}

// MarkReminded flags a trip once its pre-trip reminder has fired.
func (repo *MongoTripRepo) MarkReminded(ctx context.Context, tripID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": tripID}
	update := bson.M{"$set": bson.M{"reminded": true}}
	_, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error marking trip %s reminded: %w", tripID, err)
	}
	return nil
}

// Delete removes a trip document.
func (repo *MongoTripRepo) Delete(ctx context.Context, tripID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": tripID})
	if err != nil {
		return fmt.Errorf("error deleting trip %s: %w", tripID, err)
	}
	return nil
}
