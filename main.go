package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/logger"
	"storefront/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(logger.Config{Development: cfg.DevLog})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// --- Document store ---
	db, mongoClient, err := repositories.ConnectMongo(cfg.MongoURI, cfg.MongoDB, zlog)
	if err != nil {
		zlog.Fatalw("failed to connect to MongoDB", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			zlog.Errorw("error disconnecting from MongoDB", "error", err)
		}
	}()

	// --- Contact relay queue (optional) ---
	var contactPublisher services.ContactPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, zlog)
		if err != nil {
			zlog.Fatalw("failed to initialize RabbitMQ client", "error", err)
		}
		defer mqClient.Close()
		contactPublisher = mqClient
	} else {
		zlog.Info("RABBITMQ_URL not set, contact messages will only be logged")
	}

	// --- Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	productRepo := repositories.NewMongoProductRepository(db)
	reviewRepo := repositories.NewMongoReviewRepository(db)
	businessRepo := repositories.NewMongoBusinessRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, zlog)
	productService := services.NewProductService(productRepo)
	reviewService := services.NewReviewService(reviewRepo)
	businessService := services.NewBusinessService(businessRepo)
	contactService := services.NewContactService(contactPublisher, zlog)

	if cfg.SeedData {
		seedData(userRepo, productRepo, reviewRepo, businessRepo, zlog)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, zlog)
	productHandler := handlers.NewProductHandler(productService, zlog)
	reviewHandler := handlers.NewReviewHandler(reviewService, zlog)
	businessHandler := handlers.NewBusinessHandler(businessService, zlog)
	contactHandler := handlers.NewContactHandler(contactService, zlog)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	auth := middleware.AuthRequired(authService)
	admin := middleware.AdminRequired()

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api, auth, admin)
	reviewHandler.RegisterRoutes(api, auth, admin)
	businessHandler.RegisterRoutes(api, auth, admin)
	contactHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Infow("starting server", "port", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			zlog.Fatalw("server failed to start", "error", err)
		}
	}()

	<-quit
	zlog.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		zlog.Errorw("error during shutdown", "error", err)
	}
	zlog.Info("server gracefully stopped")
}
