package handlers

import (
	"errors"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReviewHandler handles HTTP requests for reviews and moderation.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService, logger *zap.SugaredLogger) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the review routes. Anyone can read approved
// reviews and submit one; moderation is admin-only.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleGetApprovedReviews)
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Get("/all", auth, admin, h.HandleGetAllReviews)
	reviewRoutes.Put("/:id/approve", auth, admin, h.HandleApproveReview)
	reviewRoutes.Delete("/:id", auth, admin, h.HandleDeleteReview)
}

// HandleGetApprovedReviews retrieves the publicly visible reviews.
func (h *ReviewHandler) HandleGetApprovedReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetApprovedReviews(c.Context())
	if err != nil {
		h.logger.Errorw("failed to list approved reviews", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleGetAllReviews retrieves every review for the moderation queue.
func (h *ReviewHandler) HandleGetAllReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetAllReviews(c.Context())
	if err != nil {
		h.logger.Errorw("failed to list reviews", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview stores a new review. Whatever the payload says,
// the review starts unapproved.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(review); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateReview(c.Context(), &review); err != nil {
		h.logger.Errorw("failed to create review", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleApproveReview marks a review approved.
func (h *ReviewHandler) HandleApproveReview(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.ApproveReview(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Review not found",
			})
		}
		h.logger.Errorw("failed to approve review", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not approve review",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Review approved",
	})
}

// HandleDeleteReview removes a review by its ID.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteReview(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Review not found",
			})
		}
		h.logger.Errorw("failed to delete review", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete review",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
