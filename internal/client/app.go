package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-tab-keeper/internal/handler/http"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/server"
	"github.com/MKhiriev/go-tab-keeper/internal/service"
	"github.com/MKhiriev/go-tab-keeper/internal/state"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/internal/workers"
)

type App struct {
	local  *store.ClientStorages
	remote *store.RemoteStorages // nil when syncing over HTTP

	syncs   *service.SyncServices
	state   *state.Store
	workers *workers.Workers
	server  server.Server

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	local, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remoteStore, remote, err := newRemoteStore(ctx, cfg.Remote, log)
	if err != nil {
		_ = local.Close()
		return nil, fmt.Errorf("create remote store: %w", err)
	}

	syncs := service.NewSyncServices(remoteStore, service.SyncOptions{
		DebounceDelay:  cfg.Sync.DebounceDelay,
		MaxAttempts:    cfg.Sync.MaxAttempts,
		RetryBaseDelay: cfg.Sync.RetryBaseDelay,
	}, log)
	st := state.NewStore(local.SnapshotRepository, syncs, log)

	srv, err := server.NewServer(myHTTP.NewHandler(st, log), cfg.Server, log)
	if err != nil {
		syncs.Stop()
		_ = closeAll(local, remote)
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		local:   local,
		remote:  remote,
		syncs:   syncs,
		state:   st,
		workers: workers.NewWorkers(workers.NewResyncWorker(st, cfg.Workers.ResyncInterval, log)),
		server:  srv,
		logger:  log,
	}, nil
}

// newRemoteStore connects straight to Postgres when a DSN is configured and
// falls back to the REST endpoint otherwise.
func newRemoteStore(ctx context.Context, cfg config.ClientRemote, log *logger.Logger) (adapter.RemoteStore, *store.RemoteStorages, error) {
	if cfg.DSN != "" {
		remote, err := store.NewRemoteStorages(ctx, cfg.DSN, log)
		if err != nil {
			return nil, nil, err
		}
		return remote.RemoteStore, remote, nil
	}

	remoteStore, err := adapter.NewHTTPRemoteStore(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return remoteStore, nil, nil
}

// Run hydrates local state, starts the background workers and serves the
// local API until a termination signal arrives.
func (a *App) Run() error {
	if err := a.start(context.Background()); err != nil {
		_ = a.shutdown()
		return err
	}

	a.server.RunServer()

	return a.shutdown()
}

func (a *App) start(ctx context.Context) error {
	if err := a.state.Hydrate(ctx); err != nil {
		return fmt.Errorf("hydrate local state: %w", err)
	}

	a.workers.Start(ctx)
	return nil
}

// shutdown stops producing new snapshots, delivers the pending ones and
// closes the databases.
func (a *App) shutdown() error {
	a.workers.Stop()

	a.logger.Info().Msg("flushing pending syncs")
	a.syncs.Flush()
	a.syncs.Stop()

	if err := closeAll(a.local, a.remote); err != nil {
		return fmt.Errorf("close storages: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func closeAll(local *store.ClientStorages, remote *store.RemoteStorages) error {
	var errs []error
	if remote != nil {
		errs = append(errs, remote.Close())
	}
	if local != nil {
		errs = append(errs, local.Close())
	}
	return errors.Join(errs...)
}
