// ABOUTME: Server configuration loaded from environment variables via caarlos0/env.
// ABOUTME: Enforces the security constraint that the admin surface requires a password.
package server

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrNoAdminPassword refuses to start the server without an admin secret.
var ErrNoAdminPassword = errors.New(
	"ADMIN_PASSWORD is not set; refusing to start with an unprotected admin surface",
)

// Config holds all runtime configuration for the familybond server.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"FAMILYBOND_ADDR" envDefault:"127.0.0.1:8311"`
	// DataDir holds the sqlite store and seed backups.
	DataDir string `env:"FAMILYBOND_DATA_DIR" envDefault:"data"`
	// AdminPassword is the single admin secret gating every write.
	AdminPassword string `env:"ADMIN_PASSWORD"`
	// SessionSecret signs session tokens. When empty, a key is derived from
	// AdminPassword so rotating the password invalidates all sessions.
	SessionSecret string `env:"SESSION_SECRET"`
	// RedisURL selects the Redis store backend when set; otherwise the
	// sqlite store under DataDir is used.
	RedisURL string `env:"REDIS_URL"`

	// Object store settings for the upload passthrough. Uploads are
	// disabled (respond 500) until S3Bucket is configured.
	S3Bucket        string `env:"S3_BUCKET"`
	S3Region        string `env:"S3_REGION" envDefault:"ap-southeast-2"`
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

// ConfigFromEnv loads configuration from the environment and validates it.
func ConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.AdminPassword == "" {
		return nil, ErrNoAdminPassword
	}
	return &cfg, nil
}
