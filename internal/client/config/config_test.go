package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://smrc.onrender.com", c.APIBaseURL)
	assert.Equal(t, "smrc.db", c.DatabasePath)
	assert.Empty(t, c.RedisAddr)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, []string{DefaultAuthorityGroupID}, c.AuthorityGroupIDs)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_UsesDefaultsWithoutArgs(t *testing.T) {
	cfg := load(nil)

	require.NotNil(t, cfg)
	assert.Equal(t, "https://smrc.onrender.com", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{DefaultAuthorityGroupID}, cfg.AuthorityGroupIDs)
}

func TestLoad_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_base_url":    "https://json.example",
		"request_timeout": "30s",
		"log_level":       "warn",
	})

	cfg := load([]string{"-c", path, "-a", "https://flag.example/", "-t", "5"})

	assert.Equal(t, "https://flag.example", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_KeepsSubSecondJSONTimeout(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "500ms", want: 500 * time.Millisecond},
		{value: "1500ms", want: 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			path := writeTempJSON(t, map[string]any{"request_timeout": tt.value})

			cfg := load([]string{"-c", path})
			assert.Equal(t, tt.want, cfg.RequestTimeout)
		})
	}
}
