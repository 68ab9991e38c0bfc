package services

import (
	"context"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ReviewService handles business logic for the review moderation
// workflow: anyone may submit, only approved reviews are public, and
// only an admin flips the approval flag.
type ReviewService struct {
	repo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{
		repo: repo,
	}
}

// GetApprovedReviews retrieves the publicly visible reviews.
func (s *ReviewService) GetApprovedReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.GetApproved(ctx)
}

// GetAllReviews retrieves every review regardless of moderation state.
func (s *ReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.GetAll(ctx)
}

// CreateReview stores a new review. The approved flag is forced to
// false no matter what the caller submitted; visibility is granted
// only through ApproveReview.
func (s *ReviewService) CreateReview(ctx context.Context, review *models.Review) error {
	review.Approved = false
	if review.Date.IsZero() {
		review.Date = time.Now().UTC()
	}
	return s.repo.Create(ctx, review)
}

// ApproveReview marks a review approved. The transition is one-way and
// idempotent.
func (s *ReviewService) ApproveReview(ctx context.Context, id string) error {
	return s.repo.SetApproved(ctx, id)
}

// DeleteReview removes a review by its ID.
func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
