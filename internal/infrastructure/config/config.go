package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// The process refuses to start without a signing secret and lifetime.
	JWTSecret    string        `env:"JWT_SECRET,     required"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN, required"`

	BcryptCost int `env:"BCRYPT_COST, default=10"`

	RateLimitMax    int64         `env:"RATE_LIMIT_MAX,    default=100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=30m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
