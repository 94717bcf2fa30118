// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Only values that are set are checked; completeness is the
// job of [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	switch cfg.Adapter.FeedErrorPolicy {
	case "", FeedErrorSwallow, FeedErrorSurface:
	default:
		return fmt.Errorf("%w: unknown feed error policy %q", ErrInvalidAdapterConfigs, cfg.Adapter.FeedErrorPolicy)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.FeedAddress == "" || cfg.Adapter.APIKey == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Adapter.Period {
	case 1, 7, 30:
	default:
		return fmt.Errorf("%w: period must be 1, 7 or 30 days", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.RateLimit <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.FeedRefreshInterval < time.Minute {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.StartingBalance < 0 || cfg.App.BcryptCost < 4 || cfg.App.BcryptCost > 31 {
		return ErrInvalidAppConfigs
	}

	return nil
}
