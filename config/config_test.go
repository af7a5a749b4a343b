package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "portfolio-service", cfg.Service.Name)
	assert.Equal(t, "8080", cfg.Service.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "gustavosilvabr", cfg.GitHub.Username)
	assert.Equal(t, 5*time.Minute, cfg.GitHub.CacheTTL)
	assert.Equal(t, time.Second, cfg.Auth.LoginDelay)
	assert.False(t, cfg.Tracing.Enabled)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GITHUB_CACHE_TTL", "90s")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATE", "0.25")
	t.Setenv("LOGIN_DELAY", "0s")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Service.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 90*time.Second, cfg.GitHub.CacheTTL)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRate)
	assert.Equal(t, time.Duration(0), cfg.Auth.LoginDelay)
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("GITHUB_CACHE_TTL", "soon")
	t.Setenv("TRACING_ENABLED", "yep")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.GitHub.CacheTTL)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Service.Port = "" },
			wantErr: "PORT",
		},
		{
			name:    "non-numeric port",
			mutate:  func(c *Config) { c.Service.Port = "eighty" },
			wantErr: "PORT",
		},
		{
			name: "no credential material",
			mutate: func(c *Config) {
				c.Auth.AdminPassword = ""
				c.Auth.AdminPasswordHash = ""
			},
			wantErr: "ADMIN_PASSWORD",
		},
		{
			name:    "empty github user",
			mutate:  func(c *Config) { c.GitHub.Username = "" },
			wantErr: "GITHUB_USERNAME",
		},
		{
			name:    "sample rate out of range",
			mutate:  func(c *Config) { c.Tracing.SampleRate = 1.5 },
			wantErr: "TRACING_SAMPLE_RATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
