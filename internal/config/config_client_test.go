package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	// Arrange
	src := &StructuredConfig{Remote: Remote{URL: "https://example.supabase.co"}}

	// Act
	cfg := newClientConfig(src)

	// Assert
	require.NoError(t, cfg.validate())
	assert.Equal(t, "https://example.supabase.co", cfg.Remote.URL)
	assert.Equal(t, defaultRequestTimeout, cfg.Remote.RequestTimeout)
	assert.Equal(t, defaultLocalDBPath, cfg.Storage.DB.DSN)
	assert.Equal(t, time.Second, cfg.Sync.DebounceDelay)
	assert.Equal(t, 3, cfg.Sync.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.RetryBaseDelay)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, defaultResyncInterval, cfg.Workers.ResyncInterval)
	assert.Empty(t, cfg.Log.File)
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	// Arrange
	src := &StructuredConfig{
		Remote:  Remote{DSN: "postgres://localhost/tab", RateLimit: 3, RateBurst: 1},
		Storage: Storage{DB: DB{DSN: "/data/tab.db"}},
		Sync:    Sync{DebounceDelay: 50 * time.Millisecond, MaxAttempts: 1, RetryBaseDelay: time.Millisecond},
		Server:  Server{HTTPAddress: "localhost:9000", ShutdownTimeout: time.Second},
		Workers: Workers{ResyncInterval: time.Hour},
		Log:     Log{File: "/tmp/x.log"},
	}

	// Act
	cfg := newClientConfig(src)

	// Assert
	require.NoError(t, cfg.validate())
	assert.Equal(t, "postgres://localhost/tab", cfg.Remote.DSN)
	assert.InDelta(t, 3.0, cfg.Remote.RateLimit, 1e-9)
	assert.Equal(t, 1, cfg.Remote.RateBurst)
	assert.Equal(t, "/data/tab.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 50*time.Millisecond, cfg.Sync.DebounceDelay)
	assert.Equal(t, 1, cfg.Sync.MaxAttempts)
	assert.Equal(t, time.Millisecond, cfg.Sync.RetryBaseDelay)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, time.Hour, cfg.Workers.ResyncInterval)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{Remote: Remote{URL: "https://example.supabase.co"}})
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{
			name:    "no remote",
			mutate:  func(cfg *ClientConfig) { cfg.Remote.URL = "" },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "negative rate limit",
			mutate:  func(cfg *ClientConfig) { cfg.Remote.RateLimit = -1 },
			wantErr: ErrInvalidRemoteConfigs,
		},
		{
			name:    "in-memory sqlite",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero attempts",
			mutate:  func(cfg *ClientConfig) { cfg.Sync.MaxAttempts = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "zero retry delay",
			mutate:  func(cfg *ClientConfig) { cfg.Sync.RetryBaseDelay = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *ClientConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero resync interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.ResyncInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
