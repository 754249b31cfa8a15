package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// localSnapshotRepository is the SQLite-backed implementation of
// [LocalSnapshotRepository]. One row per collection holds the JSON of its
// latest snapshot.
type localSnapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSnapshotRepository(db *DB, log *logger.Logger) LocalSnapshotRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &localSnapshotRepository{DB: db, logger: log}
}

func (r *localSnapshotRepository) SaveSnapshot(ctx context.Context, collection models.Collection, payload []byte) error {
	query, args, err := buildSaveSnapshotQuery(collection, payload, time.Now().UTC())
	if err != nil {
		r.logger.Err(err).
			Str("func", "localSnapshotRepository.SaveSnapshot").
			Str(logger.CollectionFieldName, collection.String()).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localSnapshotRepository.SaveSnapshot").
			Str(logger.CollectionFieldName, collection.String()).
			Int("bytes", len(payload)).
			Msg("failed to save snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSnapshotRepository) LoadSnapshot(ctx context.Context, collection models.Collection) ([]byte, error) {
	query, args, err := buildLoadSnapshotQuery(collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "localSnapshotRepository.LoadSnapshot").
			Str(logger.CollectionFieldName, collection.String()).
			Msg("failed to load snapshot")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return payload, nil
}
