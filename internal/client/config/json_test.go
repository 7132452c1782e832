package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	full := writeTempJSON(t, map[string]any{
		"api_base_url":        "https://api.example",
		"database_path":       "/var/lib/smrc/session.db",
		"redis_addr":          "redis:6379",
		"request_timeout":     "20s",
		"authority_group_ids": []string{"c1c1c1c1-0000-4000-8000-000000000003"},
		"log_level":           "debug",
	})

	t.Run("loads every field", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", full})

		assert.Equal(t, "https://api.example", cfg.APIBaseURL)
		assert.Equal(t, "/var/lib/smrc/session.db", cfg.DatabasePath)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
		assert.Equal(t, []string{"c1c1c1c1-0000-4000-8000-000000000003"}, cfg.AuthorityGroupIDs)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"request_timeout": 2000000000})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})

		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "https://smrc.onrender.com", cfg.APIBaseURL)
		assert.Equal(t, []string{DefaultAuthorityGroupID}, cfg.AuthorityGroupIDs)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "keep"}
		parseJson(cfg, []string{"-a", "other"})
		assert.Equal(t, "keep", cfg.APIBaseURL)
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() {
			parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "absent.json")})
		})
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})
}
