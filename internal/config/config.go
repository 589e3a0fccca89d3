package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is everything the server binary reads from the environment.
// Credentials are required so a misconfigured deploy fails at startup, not on
// the first request that happens to need them.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	PublicBaseURL   string        `env:"PUBLIC_BASE_URL,required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	SanityProjectID  string `env:"SANITY_PROJECT_ID,required"`
	SanityDataset    string `env:"SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`

	StripeSecretKey      string `env:"STRIPE_SECRET_KEY,required"`
	StripePublishableKey string `env:"STRIPE_PUBLISHABLE_KEY"`
	StripeWebhookSecret  string `env:"STRIPE_WEBHOOK_SECRET,required"`

	ResendAPIKey string `env:"RESEND_API_KEY,required"`
	EmailFrom    string `env:"EMAIL_FROM" envDefault:"Maggie Mistal <onboarding@resend.dev>"`
}

// Load parses the server configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	// URLs get concatenated with paths all over the place; normalize once here.
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	return cfg, nil
}

// SeedConfig is the subset the seeding CLI needs. The write-scoped token is
// required here and nowhere else: the storefront itself never writes.
type SeedConfig struct {
	SanityProjectID  string `env:"SANITY_PROJECT_ID,required"`
	SanityDataset    string `env:"SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	SanityAPIToken   string `env:"SANITY_API_TOKEN,required"`
}

// LoadSeed parses the seeding configuration from the environment.
func LoadSeed() (SeedConfig, error) {
	var cfg SeedConfig
	if err := env.Parse(&cfg); err != nil {
		return SeedConfig{}, fmt.Errorf("load seed config: %w", err)
	}
	return cfg, nil
}
