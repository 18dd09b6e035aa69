package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Cache.CartTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.CatalogTTL)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.API.BaseURL = "https://api.example.com/api"
	cfg.API.Timeout = time.Second
	cfg.applyDefaults()

	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, time.Second, cfg.API.Timeout)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	t.Setenv("FOODIES_API_BASEURL", "https://backend.test/api")

	cfg, err := LoadWithEnv[Config]("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, "https://backend.test/api", cfg.API.BaseURL)
}

func TestLoadWithEnv_IgnoresUnprefixedVariables(t *testing.T) {
	// An ambient variable whose underscore-split path collides with a typed
	// field must not reach the config map, or decoding would fail with a
	// map where a scalar is expected.
	t.Setenv("API_TIMEOUT_MS", "900000")
	t.Setenv("API_BASEURL", "https://ambient.test/api")

	cfg, err := LoadWithEnv[Config]("does-not-exist")
	require.NoError(t, err)

	assert.Empty(t, cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
}
