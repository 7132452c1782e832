package config

import (
	"os"
	"time"
)

// DefaultAuthorityGroupID is the account group whose members review
// ocorrências from the dashboard.
const DefaultAuthorityGroupID = "b9e4f4b8-57cc-43a7-8a54-ebc498bbc58c"

// Config holds runtime settings for the SMRC CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote REST API, without trailing slash.
//   - DatabasePath: SQLite file holding the local session record.
//   - RedisAddr: when set, the session record is kept in Redis instead of SQLite.
//   - RequestTimeout: deadline applied to every API request.
//   - AuthorityGroupIDs: account group UUIDs resolved to the authority role.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL        string
	DatabasePath      string
	RedisAddr         string
	RequestTimeout    time.Duration
	AuthorityGroupIDs []string
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://smrc.onrender.com"
	c.DatabasePath = "smrc.db"
	c.RedisAddr = ""
	c.RequestTimeout = 15 * time.Second
	c.AuthorityGroupIDs = []string{DefaultAuthorityGroupID}
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
