package config

import (
	"flag"
	"io"
	"time"

	"github.com/filipedpsilva/counter/errs"
)

const defaultPort = "8080"

type Config struct {
	Addr            string
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	ShutdownTimeout time.Duration
	StatsInterval   time.Duration
}

// Load reads the server flags. The listen address falls back to $PORT.
func Load(args []string, getenv func(string) string) (Config, error) {
	port := getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	var cfg Config
	fs := flag.NewFlagSet("counter-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", ":"+port, "address to listen on")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 30*time.Minute, "how long an idle counter is kept")
	fs.DurationVar(&cfg.CleanupInterval, "cleanup-interval", 5*time.Minute, "how often expired counters are purged")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", 5*time.Second, "grace period for open requests on shutdown")
	fs.DurationVar(&cfg.StatsInterval, "stats-interval", time.Minute, "how often the number of live counters is logged")

	if err := fs.Parse(args); err != nil {
		return Config{}, errs.NewBadInputError("parse flags").Wrap(err)
	}

	switch {
	case cfg.SessionTTL <= 0:
		return Config{}, errs.NewBadInputError("session-ttl must be positive")
	case cfg.CleanupInterval <= 0:
		return Config{}, errs.NewBadInputError("cleanup-interval must be positive")
	case cfg.ShutdownTimeout <= 0:
		return Config{}, errs.NewBadInputError("shutdown-timeout must be positive")
	case cfg.StatsInterval <= 0:
		return Config{}, errs.NewBadInputError("stats-interval must be positive")
	}
	return cfg, nil
}
