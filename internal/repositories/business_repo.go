package repositories

import (
	"context"

	"storefront/internal/models"
)

// BusinessRepository defines the interface for the singleton business
// info document.
type BusinessRepository interface {
	// EnsureDefault returns the singleton document, creating it with
	// the built-in defaults if the collection is empty. Concurrent
	// callers all observe the same document.
	EnsureDefault(ctx context.Context) (*models.BusinessInfo, error)
	// Save overwrites the singleton with the given document.
	Save(ctx context.Context, info *models.BusinessInfo) error
}
