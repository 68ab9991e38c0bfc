package main

import (
	"context"
	"errors"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// seedData populates an empty store with sample catalog data, a few
// approved reviews, the default business info and an admin account.
// Existing documents are left alone so seeding is safe to re-run.
func seedData(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	reviewRepo repositories.ReviewRepository,
	businessRepo repositories.BusinessRepository,
	logger *zap.SugaredLogger,
) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if existing, err := productRepo.GetAll(ctx); err == nil && len(existing) == 0 {
		products := []models.Product{
			{Name: "Claw Hammer", Description: "Professional grade 16oz claw hammer with ergonomic grip", Price: 24.99, Category: "Tools", InStock: true, Quantity: 50},
			{Name: "Cordless Drill", Description: "20V MAX cordless drill/driver kit with 2 batteries", Price: 149.99, Category: "Tools", InStock: true, Quantity: 25},
			{Name: "Screwdriver Set", Description: "10-piece precision screwdriver set with magnetic tips", Price: 19.99, Category: "Tools", InStock: true, Quantity: 100},
			{Name: "Adjustable Wrench", Description: "12-inch adjustable wrench with chrome finish", Price: 14.99, Category: "Tools", InStock: true, Quantity: 75},
			{Name: "Plumbing Pipe Set", Description: "PVC pipe fitting kit for standard plumbing projects", Price: 34.99, Category: "Plumbing", InStock: true, Quantity: 40},
			{Name: "LED Light Bulbs (4-pack)", Description: "60W equivalent LED bulbs, energy efficient", Price: 12.99, Category: "Electrical", InStock: true, Quantity: 200},
		}
		for i := range products {
			if err := productRepo.Create(ctx, &products[i]); err != nil {
				logger.Errorw("failed to seed product", "name", products[i].Name, "error", err)
			}
		}
		logger.Infow("seeded products", "count", len(products))
	}

	if existing, err := reviewRepo.GetAll(ctx); err == nil && len(existing) == 0 {
		reviews := []models.Review{
			{CustomerName: "John Smith", Rating: 5, Comment: "Excellent service and quality products! The staff was very helpful.", Approved: true},
			{CustomerName: "Sarah Johnson", Rating: 5, Comment: "Best hardware store in town! Great selection and competitive prices.", Approved: true},
			{CustomerName: "Michael Brown", Rating: 4, Comment: "Good variety of tools and supplies. The staff is knowledgeable.", Approved: true},
		}
		for i := range reviews {
			if err := reviewRepo.Create(ctx, &reviews[i]); err != nil {
				logger.Errorw("failed to seed review", "customer", reviews[i].CustomerName, "error", err)
			}
		}
		logger.Infow("seeded reviews", "count", len(reviews))
	}

	if _, err := businessRepo.EnsureDefault(ctx); err != nil {
		logger.Errorw("failed to seed business info", "error", err)
	}

	if _, err := userRepo.GetByEmail(ctx, "admin@hardwareboutique.com"); errors.Is(err, repositories.ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			logger.Errorw("failed to hash admin password", "error", err)
			return
		}
		admin := models.User{
			Username: "admin",
			Email:    "admin@hardwareboutique.com",
			Password: string(hash),
			Role:     models.RoleAdmin,
		}
		if err := userRepo.Create(ctx, &admin); err != nil {
			logger.Errorw("failed to seed admin user", "error", err)
			return
		}
		logger.Infow("seeded admin user", "email", admin.Email)
	}
}
