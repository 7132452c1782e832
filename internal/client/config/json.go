package config

import (
	"encoding/json"
	"os"

	"github.com/smrc/smrc-cli/internal/flagx"
	"github.com/smrc/smrc-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// nil-able fields distinguish "absent" from "empty" so a partial file only
// overrides what it names.
type JsonConfig struct {
	APIBaseURL        *string         `json:"api_base_url"`
	DatabasePath      *string         `json:"database_path"`
	RedisAddr         *string         `json:"redis_addr"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	AuthorityGroupIDs []string        `json:"authority_group_ids"`
	LogLevel          *string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// It does nothing when no file was requested and panics on read or decode
// errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RedisAddr != nil {
		cfg.RedisAddr = *jc.RedisAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.AuthorityGroupIDs != nil {
		cfg.AuthorityGroupIDs = jc.AuthorityGroupIDs
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
