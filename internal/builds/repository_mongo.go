package builds

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database, collection string) *MongoRepository {
	return &MongoRepository{collection: db.Collection(collection)}
}

// --------------------------------------------------
// Save build
// --------------------------------------------------
func (r *MongoRepository) Save(ctx context.Context, build *BuildRecord) (string, error) {
	// Generate UUID if not already set
	if build.ID == "" {
		build.ID = uuid.New().String()
	}

	if _, err := r.collection.InsertOne(ctx, build); err != nil {
		return "", err
	}

	return build.ID, nil
}

// --------------------------------------------------
// List most recent builds (newest first)
// --------------------------------------------------
func (r *MongoRepository) ListRecent(ctx context.Context, limit int) ([]*BuildRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*BuildRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
