package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	reviews map[string]models.Review
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]models.Review),
	}
}

// GetApproved returns approved reviews, newest first.
func (r *MockReviewRepository) GetApproved(ctx context.Context) ([]models.Review, error) {
	return r.list(func(rev models.Review) bool { return rev.Approved }), nil
}

// GetAll returns every review, newest first.
func (r *MockReviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	return r.list(func(models.Review) bool { return true }), nil
}

func (r *MockReviewRepository) list(keep func(models.Review) bool) []models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviewList := []models.Review{}
	for _, rev := range r.reviews {
		if keep(rev) {
			reviewList = append(reviewList, rev)
		}
	}
	sort.Slice(reviewList, func(i, j int) bool {
		return reviewList[i].Date.After(reviewList[j].Date)
	})
	return reviewList
}

// Create adds a new review.
func (r *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.Date.IsZero() {
		review.Date = time.Now().UTC()
	}
	r.reviews[review.ID] = *review
	return nil
}

// SetApproved marks a review approved; idempotent for already-approved
// reviews.
func (r *MockReviewRepository) SetApproved(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.reviews[id]
	if !ok {
		return ErrNotFound
	}
	review.Approved = true
	r.reviews[id] = review
	return nil
}

// Delete removes a review by its ID.
func (r *MockReviewRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}
