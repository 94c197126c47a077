// Package config loads service configuration from the environment.
package config

import "os"

// Defaults applied when the environment leaves a value unset.
const (
	DefaultDBName = "feedback_system"
	DefaultDBUser = "postgres"
	DefaultDBPort = "5432"
	DefaultPort   = "8000"
)

// Config holds the recognized runtime configuration. Database settings
// accept the platform-provided PG* names first and fall back to the generic
// DB_* names, so the same binary runs on managed Postgres hosting and on a
// plain docker-compose setup without translation.
type Config struct {
	DBHost     string
	DBName     string
	DBUser     string
	DBPassword string
	DBPort     string

	// Port is the HTTP listen port.
	Port string

	// FrontendURL is the allowed CORS origin; "*" allows any origin.
	FrontendURL string
}

// FromEnv builds a Config from the process environment.
func FromEnv() Config {
	return Config{
		DBHost:      envOr("", "PGHOST", "DB_HOST"),
		DBName:      envOr(DefaultDBName, "PGDATABASE", "DB_NAME"),
		DBUser:      envOr(DefaultDBUser, "PGUSER", "DB_USER"),
		DBPassword:  envOr("", "PGPASSWORD", "DB_PASSWORD"),
		DBPort:      envOr(DefaultDBPort, "PGPORT", "DB_PORT"),
		Port:        envOr(DefaultPort, "PORT"),
		FrontendURL: envOr("*", "FRONTEND_URL"),
	}
}

// HasDatabase reports whether a database host was configured. Without one
// the service falls back to its embedded store.
func (c Config) HasDatabase() bool {
	return c.DBHost != ""
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// envOr returns the first set, non-empty variable among keys, or fallback.
func envOr(fallback string, keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return fallback
}
