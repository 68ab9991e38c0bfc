package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names used by the Mongo repositories.
const (
	usersCollection    = "users"
	productsCollection = "products"
	reviewsCollection  = "reviews"
	businessCollection = "business_info"
)

// ConnectMongo dials MongoDB, verifies the connection with a ping and
// returns the database handle. The client is safe for concurrent use
// by all in-flight requests.
func ConnectMongo(uri, dbName string, logger *zap.SugaredLogger) (*mongo.Database, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Infow("MongoDB connected", "db", dbName)
	return client.Database(dbName), client, nil
}
