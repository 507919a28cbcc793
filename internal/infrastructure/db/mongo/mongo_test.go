package mongo

import (
	"testing"
	"time"
)

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{URI: "mongodb://localhost:27017"}.withDefaults()

	if cfg.Database != defaultDatabase {
		t.Fatalf("expected default database %q, got %q", defaultDatabase, cfg.Database)
	}
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout %v, got %v", defaultTimeout, cfg.Timeout)
	}

	cfg = Config{URI: "mongodb://localhost:27017", Database: "blog_test", Timeout: time.Second}.withDefaults()
	if cfg.Database != "blog_test" || cfg.Timeout != time.Second {
		t.Fatalf("explicit settings overridden: %+v", cfg)
	}
}

func TestClientOptions_NoRetries(t *testing.T) {
	opts := clientOptions(Config{URI: "mongodb://localhost:27017"}.withDefaults())

	if opts.RetryWrites == nil || *opts.RetryWrites {
		t.Fatalf("expected retryable writes disabled")
	}
	if opts.RetryReads == nil || *opts.RetryReads {
		t.Fatalf("expected retryable reads disabled")
	}
	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != maxPoolSize {
		t.Fatalf("expected pool size %d, got %v", maxPoolSize, opts.MaxPoolSize)
	}
}
