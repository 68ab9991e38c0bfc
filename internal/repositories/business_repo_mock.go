package repositories

import (
	"context"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockBusinessRepository is an in-memory implementation of
// BusinessRepository.
type MockBusinessRepository struct {
	info *models.BusinessInfo
	mu   sync.Mutex
}

// NewMockBusinessRepository creates a new instance of MockBusinessRepository.
func NewMockBusinessRepository() *MockBusinessRepository {
	return &MockBusinessRepository{}
}

// EnsureDefault returns the singleton, provisioning the defaults on
// first call. The lock gives the same all-callers-see-one-document
// guarantee the unique index provides in Mongo.
func (r *MockBusinessRepository) EnsureDefault(ctx context.Context) (*models.BusinessInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.info == nil {
		def := models.DefaultBusinessInfo()
		def.ID = uuid.New().String()
		def.UpdatedAt = time.Now().UTC()
		r.info = def
	}
	info := *r.info
	return &info, nil
}

// Save overwrites the singleton.
func (r *MockBusinessRepository) Save(ctx context.Context, info *models.BusinessInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.info == nil {
		return ErrNotFound
	}
	info.Key = models.BusinessInfoKey
	info.UpdatedAt = time.Now().UTC()
	saved := *info
	r.info = &saved
	return nil
}
