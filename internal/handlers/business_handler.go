package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BusinessHandler handles HTTP requests for the business info singleton.
type BusinessHandler struct {
	service  *services.BusinessService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(service *services.BusinessService, logger *zap.SugaredLogger) *BusinessHandler {
	return &BusinessHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the business info routes.
func (h *BusinessHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	businessRoutes := router.Group("/business")
	businessRoutes.Get("/", h.HandleGetBusinessInfo)
	businessRoutes.Put("/", auth, admin, h.HandleUpdateBusinessInfo)
}

// HandleGetBusinessInfo returns the singleton document, provisioning
// the defaults on first read so the public site never sees a missing
// record.
func (h *BusinessHandler) HandleGetBusinessInfo(c *fiber.Ctx) error {
	info, err := h.service.GetBusinessInfo(c.Context())
	if err != nil {
		h.logger.Errorw("failed to get business info", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve business info",
			"error":   err.Error(),
		})
	}
	return c.JSON(info)
}

// HandleUpdateBusinessInfo merge-updates the singleton with the
// submitted fields.
func (h *BusinessHandler) HandleUpdateBusinessInfo(c *fiber.Ctx) error {
	var update models.BusinessInfoUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		return validationFailed(c, err)
	}

	info, err := h.service.UpdateBusinessInfo(c.Context(), &update)
	if err != nil {
		h.logger.Errorw("failed to update business info", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update business info",
			"error":   err.Error(),
		})
	}
	return c.JSON(info)
}
