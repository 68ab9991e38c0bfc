package services_test

import (
	"context"
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBusinessRepository is a mock implementation of repositories.BusinessRepository
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) EnsureDefault(ctx context.Context) (*models.BusinessInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessInfo), args.Error(1)
}

func (m *MockBusinessRepository) Save(ctx context.Context, info *models.BusinessInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func TestBusinessService_GetBusinessInfo(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	service := services.NewBusinessService(mockRepo)
	ctx := context.Background()

	def := models.DefaultBusinessInfo()
	def.ID = "biz-1"
	mockRepo.On("EnsureDefault", mock.Anything).Return(def, nil).Once()

	info, err := service.GetBusinessInfo(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Hardware Boutique", info.Name)
	assert.Equal(t, "biz-1", info.ID)
	mockRepo.AssertExpectations(t)
}

func TestBusinessService_UpdateBusinessInfo_MergesFields(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	service := services.NewBusinessService(mockRepo)
	ctx := context.Background()

	stored := models.DefaultBusinessInfo()
	stored.ID = "biz-1"
	mockRepo.On("EnsureDefault", mock.Anything).Return(stored, nil).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.BusinessInfo")).Return(nil).Once()

	phone := "(555) 987-6543"
	info, err := service.UpdateBusinessInfo(ctx, &models.BusinessInfoUpdate{Phone: &phone})
	assert.NoError(t, err)

	// Only the phone changes; defaults survive the merge.
	assert.Equal(t, phone, info.Phone)
	assert.Equal(t, "Hardware Boutique", info.Name)
	assert.Equal(t, "Springfield", info.Address.City)
	assert.Equal(t, "Closed", info.Hours.Sunday)
	mockRepo.AssertExpectations(t)
}

func TestBusinessService_UpdateBusinessInfo_NestedReplacement(t *testing.T) {
	mockRepo := new(MockBusinessRepository)
	service := services.NewBusinessService(mockRepo)
	ctx := context.Background()

	stored := models.DefaultBusinessInfo()
	stored.ID = "biz-1"
	mockRepo.On("EnsureDefault", mock.Anything).Return(stored, nil).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.BusinessInfo")).Return(nil).Once()

	hours := models.BusinessHours{
		Monday: "9:00 AM - 5:00 PM", Tuesday: "9:00 AM - 5:00 PM",
		Wednesday: "9:00 AM - 5:00 PM", Thursday: "9:00 AM - 5:00 PM",
		Friday: "9:00 AM - 5:00 PM", Saturday: "Closed", Sunday: "Closed",
	}
	info, err := service.UpdateBusinessInfo(ctx, &models.BusinessInfoUpdate{Hours: &hours})
	assert.NoError(t, err)
	assert.Equal(t, hours, info.Hours)
	assert.Equal(t, "Hardware Boutique", info.Name)
	mockRepo.AssertExpectations(t)
}
