// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] before it is mapped onto a
// [ClientConfig]. Only cross-source conflicts are caught here; required
// values are checked on the client view after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.MaxAttempts < 0 || cfg.Sync.DebounceDelay < 0 || cfg.Sync.RetryBaseDelay < 0 {
		return ErrInvalidSyncConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote.URL == "" && cfg.Remote.DSN == "" {
		return ErrInvalidRemoteConfigs
	}
	if cfg.Remote.RequestTimeout < 0 || cfg.Remote.RateLimit < 0 || cfg.Remote.RateBurst < 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.MaxAttempts < 1 || cfg.Sync.DebounceDelay < 0 || cfg.Sync.RetryBaseDelay <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.ResyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
