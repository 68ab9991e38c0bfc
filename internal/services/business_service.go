package services

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// BusinessService handles the singleton business info document.
type BusinessService struct {
	repo repositories.BusinessRepository
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(repo repositories.BusinessRepository) *BusinessService {
	return &BusinessService{
		repo: repo,
	}
}

// GetBusinessInfo returns the singleton document, provisioning the
// built-in defaults if the collection is still empty.
func (s *BusinessService) GetBusinessInfo(ctx context.Context) (*models.BusinessInfo, error) {
	return s.repo.EnsureDefault(ctx)
}

// UpdateBusinessInfo merge-updates the singleton: only submitted
// fields are overwritten. The document is provisioned first when
// absent, so an update can never hit a missing singleton.
func (s *BusinessService) UpdateBusinessInfo(ctx context.Context, update *models.BusinessInfoUpdate) (*models.BusinessInfo, error) {
	info, err := s.repo.EnsureDefault(ctx)
	if err != nil {
		return nil, err
	}
	update.Apply(info)
	if err := s.repo.Save(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
