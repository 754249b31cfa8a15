package config

import (
	"fmt"
	"time"
)

const (
	defaultLocalDBPath     = "tabsync.db"
	defaultRequestTimeout  = 15 * time.Second
	defaultDebounceDelay   = time.Second
	defaultMaxAttempts     = 3
	defaultRetryBaseDelay  = 500 * time.Millisecond
	defaultHTTPAddress     = "127.0.0.1:7070"
	defaultShutdownTimeout = 10 * time.Second
	defaultResyncInterval  = 5 * time.Minute
)

// ClientRemote holds the remote store settings used by the client.
type ClientRemote struct {
	URL            string
	APIKey         string
	DSN            string
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSync holds the debounce and retry parameters of collection syncs.
type ClientSync struct {
	DebounceDelay  time.Duration
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

// ClientServer holds local API settings.
type ClientServer struct {
	HTTPAddress     string
	ShutdownTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	ResyncInterval time.Duration
}

// ClientLog holds client log settings.
type ClientLog struct {
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Remote  ClientRemote
	Storage ClientStorage
	Sync    ClientSync
	Server  ClientServer
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Zero values are replaced by defaults
// before validation.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Remote: ClientRemote{
			URL:            cfg.Remote.URL,
			APIKey:         cfg.Remote.APIKey,
			DSN:            cfg.Remote.DSN,
			RequestTimeout: cfg.Remote.RequestTimeout,
			RateLimit:      cfg.Remote.RateLimit,
			RateBurst:      cfg.Remote.RateBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Sync: ClientSync{
			DebounceDelay:  cfg.Sync.DebounceDelay,
			MaxAttempts:    cfg.Sync.MaxAttempts,
			RetryBaseDelay: cfg.Sync.RetryBaseDelay,
		},
		Server: ClientServer{
			HTTPAddress:     cfg.Server.HTTPAddress,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		Workers: ClientWorkers{ResyncInterval: cfg.Workers.ResyncInterval},
		Log:     ClientLog{File: cfg.Log.File},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultLocalDBPath
	}
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.DebounceDelay == 0 {
		cfg.Sync.DebounceDelay = defaultDebounceDelay
	}
	if cfg.Sync.MaxAttempts == 0 {
		cfg.Sync.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Sync.RetryBaseDelay == 0 {
		cfg.Sync.RetryBaseDelay = defaultRetryBaseDelay
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Workers.ResyncInterval == 0 {
		cfg.Workers.ResyncInterval = defaultResyncInterval
	}
}
