package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
)

type config struct {
	Addr         string
	SessionTTL   time.Duration
	IdleInterval time.Duration
	LogLevel     log.Level
}

func lookupEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// loadConfig reads flags from args, falling back to ZBC_* environment
// variables and then to defaults.
func loadConfig(args []string) (config, error) {
	ttl, err := lookupDuration("ZBC_SESSION_TTL", 30*time.Minute)
	if err != nil {
		return config{}, err
	}
	interval, err := lookupDuration("ZBC_IDLE_INTERVAL", time.Minute)
	if err != nil {
		return config{}, err
	}

	var cfg config
	var level string
	fs := flag.NewFlagSet("zbc", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", lookupEnv("ZBC_ADDR", ":8080"), "listen address")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", ttl, "drop games idle for longer than this")
	fs.DurationVar(&cfg.IdleInterval, "idle-interval", interval, "how often idle games are checked")
	fs.StringVar(&level, "log-level", lookupEnv("ZBC_LOG_LEVEL", "info"), "debug, info, warn, error or fatal")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg.LogLevel, err = log.ParseLevel(level)
	if err != nil {
		return config{}, err
	}
	if cfg.SessionTTL <= 0 || cfg.IdleInterval <= 0 {
		return config{}, fmt.Errorf("session-ttl and idle-interval must be positive")
	}
	return cfg, nil
}
