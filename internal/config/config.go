// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// FeedErrorPolicy decides what the catalog does when the article feed
// cannot be fetched.
type FeedErrorPolicy string

const (
	// FeedErrorSwallow degrades a failed fetch to an empty article list.
	FeedErrorSwallow FeedErrorPolicy = "swallow"
	// FeedErrorSurface reports a failed fetch as an error distinct from an
	// empty category.
	FeedErrorSurface FeedErrorPolicy = "surface"
)

// StructuredConfig is the top-level configuration container for the
// news kiosk client. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: wallet defaults, hashing cost,
	// session synchronisation policy and the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local key-value persistence substrate.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration for the external article feed.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// StartingBalance is the wallet grant backfilled on the first
	// authenticated session of an account that has no balance yet.
	// Env: APP_STARTING_BALANCE
	StartingBalance int64 `env:"STARTING_BALANCE"`

	// BcryptCost is the bcrypt cost factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// StrictSessionSync turns a session write for an account missing from
	// the repository into an error instead of a silent no-op.
	// Env: APP_STRICT_SESSION_SYNC
	StrictSessionSync bool `env:"STRICT_SESSION_SYNC"`

	// LogFile is the path of the JSON log file. The terminal belongs to the
	// UI, so logs never go to stdout unless the file cannot be opened.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the key-value database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the key-value database.
type DB struct {
	// DSN selects the substrate: a SQLite file path (default), a
	// postgres:// URL, or ":memory:" for a process-local store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration for the most-popular article feed.
type Adapter struct {
	// FeedAddress is the base URL of the feed API
	// (e.g. "https://api.nytimes.com").
	// Env: ADAPTER_FEED_ADDRESS
	FeedAddress string `env:"FEED_ADDRESS"`

	// APIKey is sent as the api-key query parameter.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// Period is the most-popular window in days (1, 7 or 30).
	// Env: ADAPTER_PERIOD
	Period int `env:"PERIOD"`

	// RequestTimeout is the maximum duration of a single feed request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of feed requests allowed per minute.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// FeedErrorPolicy is "swallow" or "surface".
	// Env: ADAPTER_FEED_ERROR_POLICY
	FeedErrorPolicy FeedErrorPolicy `env:"FEED_ERROR_POLICY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// FeedRefreshInterval is how often the feed cache is refreshed.
	// Env: WORKERS_FEED_REFRESH_INTERVAL
	FeedRefreshInterval time.Duration `env:"FEED_REFRESH_INTERVAL"`
}

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			StartingBalance: 100000,
			BcryptCost:      10,
			LogFile:         defaultLogFile(),
		},
		Storage: Storage{
			DB: DB{DSN: "news-kiosk.db"},
		},
		Adapter: Adapter{
			FeedAddress:     "https://api.nytimes.com",
			Period:          7,
			RequestTimeout:  15 * time.Second,
			RateLimit:       5,
			FeedErrorPolicy: FeedErrorSwallow,
		},
		Workers: Workers{
			FeedRefreshInterval: 10 * time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
