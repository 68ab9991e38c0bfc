package services

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactPublisher hands a contact submission to the message queue for
// the mail worker.
type ContactPublisher interface {
	PublishContactMessage(messageBody map[string]interface{}) error
}

// ContactService relays contact form submissions. Nothing is
// persisted; delivery beyond the queue is the mail worker's problem.
type ContactService struct {
	publisher ContactPublisher
	logger    *zap.SugaredLogger
}

// NewContactService creates a new ContactService. A nil publisher is
// allowed: submissions are then only logged, matching a deployment
// without a broker.
func NewContactService(publisher ContactPublisher, logger *zap.SugaredLogger) *ContactService {
	return &ContactService{
		publisher: publisher,
		logger:    logger,
	}
}

// Relay assigns the submission an id and timestamp and publishes it.
func (s *ContactService) Relay(ctx context.Context, msg *models.ContactMessage) error {
	msg.ID = uuid.New().String()
	msg.SentAt = time.Now().UTC()

	if s.publisher == nil {
		s.logger.Infow("contact message received, no relay configured",
			"id", msg.ID, "name", msg.Name, "email", msg.Email)
		return nil
	}

	body := map[string]interface{}{
		"id":      msg.ID,
		"name":    msg.Name,
		"email":   msg.Email,
		"message": msg.Message,
		"sentAt":  msg.SentAt.Format(time.RFC3339),
	}
	if err := s.publisher.PublishContactMessage(body); err != nil {
		return fmt.Errorf("failed to relay contact message: %w", err)
	}
	s.logger.Infow("contact message relayed", "id", msg.ID)
	return nil
}
