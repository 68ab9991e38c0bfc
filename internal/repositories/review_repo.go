package repositories

import (
	"context"

	"storefront/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetApproved(ctx context.Context) ([]models.Review, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	// SetApproved marks the review approved. It is idempotent:
	// approving an already-approved review succeeds with the same
	// end state, and only a missing id yields ErrNotFound.
	SetApproved(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
