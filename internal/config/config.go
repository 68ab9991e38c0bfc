package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs, loaded from environment
// variables with sane defaults for local development.
type Config struct {
	AppPort     string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	TokenTTL    time.Duration
	RabbitMQURL string
	SeedData    bool
	DevLog      bool
}

// Load reads configuration through Viper.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "storefront")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SEED_DATA", false)
	viper.SetDefault("DEV_LOG", false)
	viper.AutomaticEnv()

	return &Config{
		AppPort:     viper.GetString("APP_PORT"),
		MongoURI:    viper.GetString("MONGO_URI"),
		MongoDB:     viper.GetString("MONGO_DB"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		TokenTTL:    viper.GetDuration("TOKEN_TTL"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		SeedData:    viper.GetBool("SEED_DATA"),
		DevLog:      viper.GetBool("DEV_LOG"),
	}
}
