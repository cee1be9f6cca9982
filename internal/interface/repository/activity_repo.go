package repository

import (
	"context"
	"fmt"
	"time"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoActivityRepository implements the ActivityRepository interface
type MongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new MongoDB activity repository
func NewMongoActivityRepository(db *mongo.Database) repository.ActivityRepository {
	collection := db.Collection("activity_log")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// History of one entity, newest first
	entityIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "entityType", Value: 1},
			{Key: "entityId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	// Global feed
	createdAtIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		entityIndex,
		createdAtIndex,
	})

	return &MongoActivityRepository{
		collection: collection,
	}
}

// Append inserts one entry
func (r *MongoActivityRepository) Append(ctx context.Context, entry *entity.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.Changes == nil {
		entry.Changes = []entity.Change{}
	}

	doc, err := bson.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrUnencodable, err)
	}
	if _, err := r.collection.InsertOne(ctx, bson.Raw(doc)); err != nil {
		return fmt.Errorf("failed to insert activity entry: %w", err)
	}
	return nil
}

// List returns the newest entries matching the filter
func (r *MongoActivityRepository) List(ctx context.Context, filter entity.ActivityFilter) ([]*entity.ActivityEntry, error) {
	query := bson.M{}
	if filter.EntityType != "" {
		query["entityType"] = filter.EntityType
	}
	if filter.EntityID != "" {
		query["entityId"] = filter.EntityID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*entity.ActivityEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
