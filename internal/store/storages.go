package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
)

// RemoteStorages holds the direct Postgres connection used when the client
// is configured with a remote DSN.
type RemoteStorages struct {
	RemoteStore adapter.RemoteStore

	db *DB
}

// NewRemoteStorages connects to the remote Postgres database at dsn,
// applies the remote schema migrations and returns a RemoteStore over it.
func NewRemoteStorages(ctx context.Context, dsn string, log *logger.Logger) (*RemoteStorages, error) {
	log.Info().Msg("connecting to remote database...")

	db, err := NewConnectPostgres(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &RemoteStorages{
		RemoteStore: NewPostgresRemoteStore(db, log),
		db:          db,
	}, nil
}

func (s *RemoteStorages) Close() error {
	return s.db.Close()
}
