// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging an optional .env file, environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App       App       `envPrefix:"APP_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Server    Server    `envPrefix:"SERVER_"`
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`
	Log       Log       `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Vocabulary names the fault vocabulary: "standard" or "extended".
	// Env: APP_VOCABULARY
	Vocabulary string `env:"VOCABULARY"`

	// SupervisorPINHash is the bcrypt hash of the supervisor PIN used to
	// certify submitted inspections. Generate it with `auditctl pin-hash`.
	// Env: APP_SUPERVISOR_PIN_HASH
	SupervisorPINHash string `env:"SUPERVISOR_PIN_HASH"`

	// Version overrides the build version shown by the version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the key-value store location.
type DB struct {
	// DSN selects the backend: "memory", a SQLite file path (optionally
	// prefixed with "sqlite://") or a "postgres://" URL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the local report HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per minute allowed per client IP.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// CORSOrigins lists the browser origins allowed to call the API, e.g.
	// "https://office.example.com". Empty disables CORS.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// Telemetry holds tracing export settings. An empty endpoint disables
// export.
type Telemetry struct {
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied when no source sets a value.
const (
	DefaultVocabulary     = "standard"
	DefaultDSN            = "fireaudit.db"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultRateLimit      = 120
	DefaultServiceName    = "fireaudit"
	DefaultLogLevel       = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App:       App{Vocabulary: DefaultVocabulary},
		Storage:   Storage{DB: DB{DSN: DefaultDSN}},
		Server:    Server{HTTPAddress: DefaultHTTPAddress, RequestTimeout: DefaultRequestTimeout, RateLimit: DefaultRateLimit},
		Telemetry: Telemetry{ServiceName: DefaultServiceName},
		Log:       Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first source that sets it wins:
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
