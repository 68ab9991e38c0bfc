package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContactHandler handles HTTP requests for the contact relay.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService, logger *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the contact route.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSendMessage)
}

// HandleSendMessage validates a contact submission and hands it to the
// relay. Nothing is persisted here.
func (h *ContactHandler) HandleSendMessage(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(msg); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.Relay(c.Context(), &msg); err != nil {
		h.logger.Errorw("failed to relay contact message", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error sending message",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you for your message. We will get back to you soon!",
		"id":      msg.ID,
	})
}
