package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// StartingBalance is the wallet grant backfilled at login.
	StartingBalance int64
	// BcryptCost is the password hashing cost factor.
	BcryptCost int
	// StrictSessionSync makes session writes for unknown accounts fail.
	StrictSessionSync bool
	// LogFile is the JSON log destination.
	LogFile string
}

// ClientAdapter holds settings used by the article feed transport.
type ClientAdapter struct {
	// FeedAddress is the base URL of the feed API.
	FeedAddress string
	// APIKey authenticates feed requests.
	APIKey string
	// Period is the most-popular window in days.
	Period int
	// RequestTimeout is the default timeout for outbound feed requests.
	RequestTimeout time.Duration
	// RateLimit is the number of feed requests allowed per minute.
	RateLimit int
	// FeedErrorPolicy decides whether fetch failures are swallowed or surfaced.
	FeedErrorPolicy FeedErrorPolicy
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path, PostgreSQL URL or ":memory:".
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// StrictSessionSync mirrors [ClientApp.StrictSessionSync] for the
	// repository layer.
	StrictSessionSync bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// FeedRefreshInterval defines how often the feed cache is refreshed.
	FeedRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains feed transport settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			StartingBalance:   cfg.App.StartingBalance,
			BcryptCost:        cfg.App.BcryptCost,
			StrictSessionSync: cfg.App.StrictSessionSync,
			LogFile:           cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			FeedAddress:     cfg.Adapter.FeedAddress,
			APIKey:          cfg.Adapter.APIKey,
			Period:          cfg.Adapter.Period,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			RateLimit:       cfg.Adapter.RateLimit,
			FeedErrorPolicy: cfg.Adapter.FeedErrorPolicy,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			StrictSessionSync: cfg.App.StrictSessionSync,
		},
		Workers: ClientWorkers{FeedRefreshInterval: cfg.Workers.FeedRefreshInterval},
	}
}
