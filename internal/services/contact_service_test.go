package services_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockContactPublisher is a mock implementation of services.ContactPublisher
type MockContactPublisher struct {
	mock.Mock
}

func (m *MockContactPublisher) PublishContactMessage(messageBody map[string]interface{}) error {
	args := m.Called(messageBody)
	return args.Error(0)
}

func TestContactService_Relay(t *testing.T) {
	mockPub := new(MockContactPublisher)
	service := services.NewContactService(mockPub, zap.NewNop().Sugar())
	ctx := context.Background()

	msg := &models.ContactMessage{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Do you stock copper fittings?",
	}

	mockPub.On("PublishContactMessage", mock.MatchedBy(func(body map[string]interface{}) bool {
		return body["name"] == "Jane Doe" && body["email"] == "jane@example.com" && body["id"] != ""
	})).Return(nil).Once()

	err := service.Relay(ctx, msg)
	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.SentAt.IsZero())
	mockPub.AssertExpectations(t)
}

func TestContactService_Relay_PublishError(t *testing.T) {
	mockPub := new(MockContactPublisher)
	service := services.NewContactService(mockPub, zap.NewNop().Sugar())

	mockPub.On("PublishContactMessage", mock.Anything).Return(errors.New("broker down")).Once()

	err := service.Relay(context.Background(), &models.ContactMessage{
		Name: "Jane Doe", Email: "jane@example.com", Message: "hello",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	mockPub.AssertExpectations(t)
}

func TestContactService_Relay_NoPublisherConfigured(t *testing.T) {
	service := services.NewContactService(nil, zap.NewNop().Sugar())

	msg := &models.ContactMessage{Name: "Jane Doe", Email: "jane@example.com", Message: "hello"}
	err := service.Relay(context.Background(), msg)
	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
}
