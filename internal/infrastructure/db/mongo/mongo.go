package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultDatabase = "blog"

	// Auth traffic is short bursts of small point reads and single-document
	// writes; a modest pool covers it without starving bcrypt-bound handlers.
	maxPoolSize = 32
)

// Config captures the settings required to reach the blog's document store.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (cfg Config) withDefaults() Config {
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

// clientOptions builds the driver options for the auth workload. Retries are
// disabled: a failed credential write propagates to the caller instead of
// being replayed, and uniqueness races stay inside a single insert attempt.
func clientOptions(cfg Config) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(maxPoolSize).
		SetRetryWrites(false).
		SetRetryReads(false)
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the blog database. The user repository's unique
// email index is ensured at startup by the caller, not here, so Connect stays
// usable for probes that only need a ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	cfg = cfg.withDefaults()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}
