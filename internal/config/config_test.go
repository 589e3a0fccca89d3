package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredServerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PUBLIC_BASE_URL", "https://shop.example.com")
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_x")
	t.Setenv("RESEND_API_KEY", "re_x")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredServerEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "production", cfg.SanityDataset)
	assert.Equal(t, "2024-01-01", cfg.SanityAPIVersion)
	assert.Equal(t, "Maggie Mistal <onboarding@resend.dev>", cfg.EmailFrom)
}

func TestLoadTrimsBaseURLTrailingSlash(t *testing.T) {
	setRequiredServerEnv(t)
	t.Setenv("PUBLIC_BASE_URL", "https://shop.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", cfg.PublicBaseURL)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredServerEnv(t)
	// t.Setenv above registered the restore; required means unset, not empty.
	os.Unsetenv("STRIPE_WEBHOOK_SECRET")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredServerEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SANITY_DATASET", "staging")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "staging", cfg.SanityDataset)
}

func TestLoadSeed(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_API_TOKEN", "sk_write_token")

	cfg, err := LoadSeed()
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.SanityProjectID)
	assert.Equal(t, "sk_write_token", cfg.SanityAPIToken)
	assert.Equal(t, "production", cfg.SanityDataset)
}

func TestLoadSeedMissingToken(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_API_TOKEN", "placeholder")
	os.Unsetenv("SANITY_API_TOKEN")

	_, err := LoadSeed()
	assert.Error(t, err)
}
