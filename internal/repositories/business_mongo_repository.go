package repositories

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepository is a MongoDB implementation of
// BusinessRepository. A unique index on the fixed key field keeps the
// collection a singleton even under concurrent create-if-absent calls.
type MongoBusinessRepository struct {
	col *mongo.Collection
}

// NewMongoBusinessRepository creates a new MongoBusinessRepository and
// ensures the singleton index.
func NewMongoBusinessRepository(db *mongo.Database) *MongoBusinessRepository {
	col := db.Collection(businessCollection)
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return &MongoBusinessRepository{col: col}
}

// EnsureDefault returns the singleton document, upserting the built-in
// defaults when absent. The upsert makes first-read provisioning
// atomic: two concurrent callers cannot both insert.
func (r *MongoBusinessRepository) EnsureDefault(ctx context.Context) (*models.BusinessInfo, error) {
	def := models.DefaultBusinessInfo()
	def.ID = uuid.New().String()
	def.UpdatedAt = time.Now().UTC()
	// The filter supplies the key on insert; setting it again in
	// $setOnInsert would conflict with the filter path.
	def.Key = ""

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var info models.BusinessInfo
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"key": models.BusinessInfoKey},
		bson.M{"$setOnInsert": def},
		opts,
	).Decode(&info)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure business info: %w", err)
	}
	return &info, nil
}

// Save overwrites the singleton document.
func (r *MongoBusinessRepository) Save(ctx context.Context, info *models.BusinessInfo) error {
	info.Key = models.BusinessInfoKey
	info.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"key": models.BusinessInfoKey}, info)
	if err != nil {
		return fmt.Errorf("failed to save business info: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
