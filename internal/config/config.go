// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"your-secret-key-change-this-in-production",
	"change-me-to-32-byte-secret-key!",
}

// MinJWTSecretLength is the minimum required length for the signing secret.
const MinJWTSecretLength = 32

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DataDir    string `env:"WEBFOLIO_DATA_DIR" envDefault:"./data"`
	ServerHost string `env:"WEBFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"WEBFOLIO_SERVER_PORT" envDefault:"5000"`
	Env        string `env:"WEBFOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"WEBFOLIO_LOG_LEVEL" envDefault:"info"`

	// Auth configuration
	JWTSecret string `env:"WEBFOLIO_JWT_SECRET,required"`
	TokenTTL  int    `env:"WEBFOLIO_TOKEN_TTL_HOURS" envDefault:"24"` // Token lifetime in hours

	// Cache configuration
	CacheTTL int `env:"WEBFOLIO_CACHE_TTL" envDefault:"60"` // Post cache freshness window in seconds

	// Login throttling (5 attempts per 15 minutes by default)
	LoginMaxAttempts int `env:"WEBFOLIO_LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginWindowMin   int `env:"WEBFOLIO_LOGIN_WINDOW_MINUTES" envDefault:"15"`

	// AI configuration. With no API key the AI service runs in
	// fallback-only mode.
	AIAPIKey  string `env:"WEBFOLIO_AI_API_KEY"`
	AIBaseURL string `env:"WEBFOLIO_AI_BASE_URL"` // Optional OpenAI-compatible endpoint override
	AIModel   string `env:"WEBFOLIO_AI_MODEL" envDefault:"gpt-4o-mini"`
	AITimeout int    `env:"WEBFOLIO_AI_TIMEOUT" envDefault:"30"` // Seconds per provider call

	// Seeding configuration
	DoSeed bool `env:"WEBFOLIO_DO_SEED" envDefault:"false"` // Seed sample posts on first boot
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// TokenLifetime returns the configured token TTL as a duration.
func (c Config) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Hour
}

// CacheLifetime returns the post cache freshness window as a duration.
func (c Config) CacheLifetime() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// LoginWindow returns the login attempt window as a duration.
func (c Config) LoginWindow() time.Duration {
	return time.Duration(c.LoginWindowMin) * time.Minute
}

// AICallTimeout returns the per-call AI provider timeout as a duration.
func (c Config) AICallTimeout() time.Duration {
	return time.Duration(c.AITimeout) * time.Second
}

// AIEnabled returns true if an AI provider API key is configured.
func (c Config) AIEnabled() bool {
	return c.AIAPIKey != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("WEBFOLIO_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("WEBFOLIO_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.JWTSecret) {
		slog.Warn("WEBFOLIO_JWT_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
