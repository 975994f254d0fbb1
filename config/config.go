package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load merges the given .env files into the process environment. Without
// arguments it loads "./.env". Missing files are not an error: settings are
// optional and every key has a documented default.
//
// Existing environment variables always win over .env entries.
func Load(files ...string) {
	// godotenv returns an error for absent files; absence is the normal
	// case for production deployments.
	_ = godotenv.Load(files...)
}

// String resolves a string setting, returning def when the key is unset or
// empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Bool resolves a boolean setting. Accepts the forms understood by
// strconv.ParseBool ("1", "t", "true", "0", "false", ...). Unset or
// malformed values yield def.
func Bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Int64 resolves a 64-bit integer setting. Unset or malformed values yield
// def.
func Int64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Duration resolves a duration setting. Values use Go duration syntax and
// accept "ms", "s", "m" and "h" suffixes, e.g. "2s" or "1500ms". Unset or
// malformed values yield def.
func Duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
