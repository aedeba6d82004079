// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-job-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Search holds paging limits applied to every list and search call.
	Search Search `envPrefix:"SEARCH_"`

	// Adapter holds the settings of the command-line API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum level written by the server logger
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SuperuserEmails lists the accounts that are registered as superusers.
	// Env: APP_SUPERUSER_EMAILS (comma separated)
	SuperuserEmails []string `env:"SUPERUSER_EMAILS" envSeparator:","`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit bounds how many requests one principal may issue.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// RateLimit holds per-principal request budgets. Reads and writes are
// limited separately; writes are expected to be the stricter of the two.
type RateLimit struct {
	// ReadsPerMinute limits GET requests.
	// Env: SERVER_RATE_LIMIT_READS_PER_MINUTE
	ReadsPerMinute int `env:"READS_PER_MINUTE"`

	// WritesPerMinute limits POST, PATCH and DELETE requests.
	// Env: SERVER_RATE_LIMIT_WRITES_PER_MINUTE
	WritesPerMinute int `env:"WRITES_PER_MINUTE"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database:
	//   - "postgres://..." or "postgresql://..." opens PostgreSQL via pgx;
	//   - "file:..." or "sqlite://..." opens a local SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the size of the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps the number of idle pooled connections.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// Search bounds the page size of list and search calls.
type Search struct {
	// DefaultPerPage is used when a request omits per_page or sends a
	// non-positive value.
	// Env: SEARCH_DEFAULT_PER_PAGE
	DefaultPerPage int `env:"DEFAULT_PER_PAGE"`

	// MaxPerPage is the largest page size served; larger requests are
	// clamped to it.
	// Env: SEARCH_MAX_PER_PAGE
	MaxPerPage int `env:"MAX_PER_PAGE"`
}

// Adapter holds the settings of the command-line API client.
type Adapter struct {
	// HTTPAddress is the base address of the API server, in "host:port"
	// format or as a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer token obtained from a previous login.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first non-zero value wins,
// in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
