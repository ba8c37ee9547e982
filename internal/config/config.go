package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr      string        // ex: ":8000"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ConfigFile    string        // path to the site configuration document
	WatchInterval time.Duration // poll interval for config changes in serve mode
}

// Load reads the tool's ambient settings from the environment. Paths and
// behavior flags set on the command line take precedence over these.
func Load() *Config {
	return &Config{
		// Preview server
		ListenAddr:      getenv("MKVET_LISTEN_ADDR", ":8000"),
		ShutdownTimeout: mustDuration("MKVET_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("MKVET_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MKVET_PRETTY_LOG", true),

		// Site configuration document
		ConfigFile:    getenv("MKVET_CONFIG_FILE", "mkdocs.yml"),
		WatchInterval: mustDuration("MKVET_WATCH_INTERVAL", 2*time.Second),
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
