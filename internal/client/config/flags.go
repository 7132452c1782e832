package config

import (
	"flag"
	"strings"
	"time"

	"github.com/smrc/smrc-cli/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only the flags owned here are parsed (see flagx.FilterArgs); the JSON
// config flags are handled by parseJson. Panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-r", "-t", "-g", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the SMRC API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local session database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address for session storage")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "API request timeout (in seconds)")
	groups := fs.String("g", strings.Join(cfg.AuthorityGroupIDs, ","), "authority account group ids, comma separated")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	// -t only overrides when given, so finer JSON durations survive
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	cfg.AuthorityGroupIDs = splitList(*groups)
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
