package repository

import (
	"context"
	"time"

	"allotment-service/internal/domain/entity"
	"allotment-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// snapshotID keys the single cached snapshot document.
const snapshotID = "reference-data"

// MongoSnapshotRepository implements SnapshotRepository
type MongoSnapshotRepository struct {
	collection *mongo.Collection
}

// NewMongoSnapshotRepository creates a new snapshot repository
func NewMongoSnapshotRepository(db *mongo.Database) repository.SnapshotRepository {
	collection := db.Collection("reference_snapshots")

	// Index on fetchedAt for inspection queries
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"fetchedAt": 1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoSnapshotRepository{
		collection: collection,
	}
}

// Save upserts the snapshot; only the most recent one is kept
func (r *MongoSnapshotRepository) Save(ctx context.Context, snapshot *entity.ReferenceSnapshot) error {
	snapshot.ID = snapshotID
	snapshot.FetchedAt = time.Now()

	updateDoc := bson.M{
		"allocations":   snapshot.Allocations,
		"stationGroups": snapshot.StationGroups,
		"fetchedAt":     snapshot.FetchedAt,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"_id": snapshotID}

	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updateDoc}, opts)
	return err
}

// Latest returns the cached snapshot
func (r *MongoSnapshotRepository) Latest(ctx context.Context) (*entity.ReferenceSnapshot, error) {
	var snapshot entity.ReferenceSnapshot
	err := r.collection.FindOne(ctx, bson.M{"_id": snapshotID}).Decode(&snapshot)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
