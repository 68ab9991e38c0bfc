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

// MongoReviewRepository is a MongoDB implementation of ReviewRepository.
type MongoReviewRepository struct {
	col *mongo.Collection
}

// NewMongoReviewRepository creates a new MongoReviewRepository.
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{col: db.Collection(reviewsCollection)}
}

// GetApproved retrieves approved reviews, newest first.
func (r *MongoReviewRepository) GetApproved(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{"approved": true})
}

// GetAll retrieves every review regardless of moderation state.
func (r *MongoReviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoReviewRepository) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Create inserts a new review.
func (r *MongoReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.Date.IsZero() {
		review.Date = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// SetApproved marks a review approved. Re-approving an already
// approved review matches the same document and stays a no-op.
func (r *MongoReviewRepository) SetApproved(ctx context.Context, id string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return fmt.Errorf("failed to approve review %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a review by its ID.
func (r *MongoReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
