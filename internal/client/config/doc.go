// Package config loads runtime configuration for the SMRC CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the SMRC REST API
//	-d string   path of the local SQLite session database
//	-r string   Redis address; switches session storage to Redis
//	-t int      API request timeout (seconds)
//	-g string   comma-separated authority account group UUIDs
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "15s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://smrc.onrender.com",
//	  "database_path": "smrc.db",
//	  "redis_addr": "",
//	  "request_timeout": "15s",
//	  "authority_group_ids": ["b9e4f4b8-57cc-43a7-8a54-ebc498bbc58c"],
//	  "log_level": "info"
//	}
//
// Environment variables are not read.
package config
