package services_test

import (
	"context"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	expectedProducts := []models.Product{
		{ID: "1", Name: "Claw Hammer", Price: 24.99, Category: "Tools", Quantity: 50},
		{ID: "2", Name: "Cordless Drill", Price: 149.99, Category: "Tools", Quantity: 25},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	plumbing := []models.Product{
		{ID: "3", Name: "Plumbing Pipe Set", Price: 34.99, Category: "Plumbing"},
	}
	mockRepo.On("GetByCategory", mock.Anything, "Plumbing").Return(plumbing, nil).Once()

	products, err := service.GetProductsByCategory(ctx, "Plumbing")
	assert.NoError(t, err)
	assert.Equal(t, plumbing, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	expectedProduct := &models.Product{ID: "1", Name: "Claw Hammer", Price: 24.99}

	mockRepo.On("GetByID", mock.Anything, "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", mock.Anything, "99").Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID(ctx, "99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_MergesFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	stored := &models.Product{
		ID:       "1",
		Name:     "Claw Hammer",
		Price:    24.99,
		Category: "Tools",
		Quantity: 50,
	}
	mockRepo.On("GetByID", mock.Anything, "1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

	newPrice := 29.99
	updated, err := service.UpdateProduct(ctx, "1", &models.ProductUpdate{Price: &newPrice})
	assert.NoError(t, err)

	// Only price changes; every unsubmitted field keeps its value.
	assert.Equal(t, 29.99, updated.Price)
	assert.Equal(t, "Claw Hammer", updated.Name)
	assert.Equal(t, "Tools", updated.Category)
	assert.Equal(t, 50, updated.Quantity)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByID", mock.Anything, "99").Return(nil, repositories.ErrNotFound).Once()

	name := "Renamed"
	_, err := service.UpdateProduct(ctx, "99", &models.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	newProduct := &models.Product{Name: "Screwdriver Set", Price: 19.99, Category: "Tools", Quantity: 100}
	mockRepo.On("Create", mock.Anything, newProduct).Return(nil).Once()

	err := service.CreateProduct(ctx, newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", mock.Anything, "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, "1"))

	mockRepo.On("Delete", mock.Anything, "99").Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.DeleteProduct(ctx, "99"), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
