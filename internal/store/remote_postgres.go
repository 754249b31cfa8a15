// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// postgresRemoteStore is the direct-SQL implementation of
// [adapter.RemoteStore]. Each snapshot is written in one transaction as
// INSERT ... ON CONFLICT DO UPDATE statements, preserving slice order.
//
// Failures classified as non-retryable are wrapped with utils.Permanent.
type postgresRemoteStore struct {
	*DB
	logger *logger.Logger
}

// NewPostgresRemoteStore returns a RemoteStore writing through db.
func NewPostgresRemoteStore(db *DB, log *logger.Logger) adapter.RemoteStore {
	if log == nil {
		log = logger.Nop()
	}
	if db.errorClassificator == nil {
		db.errorClassificator = NewPostgresErrorClassifier()
	}
	return &postgresRemoteStore{DB: db, logger: log}
}

func (p *postgresRemoteStore) UpsertTasks(ctx context.Context, tasks []models.Task) error {
	return p.upsert(ctx, models.Task{}.TableName(), "id", taskColumns, taskRows(tasks))
}

func (p *postgresRemoteStore) UpsertTags(ctx context.Context, tags []models.TagRow) error {
	return p.upsert(ctx, models.TagRow{}.TableName(), "id", tagColumns, tagRows(tags))
}

func (p *postgresRemoteStore) UpsertOwners(ctx context.Context, owners []models.OwnerRow) error {
	return p.upsert(ctx, models.OwnerRow{}.TableName(), "id", ownerColumns, ownerRows(owners))
}

func (p *postgresRemoteStore) UpsertPermissions(ctx context.Context, permissions []models.AppPermissions) error {
	return p.upsert(ctx, models.AppPermissions{}.TableName(), "owner_id", permissionColumns, permissionRows(permissions))
}

func (p *postgresRemoteStore) UpsertRunningTab(ctx context.Context, tab models.RunningTab) error {
	return p.upsert(ctx, tab.TableName(), "id", runningTabColumns, runningTabRows(tab))
}

func (p *postgresRemoteStore) UpsertExpenses(ctx context.Context, expenses []models.Expense) error {
	return p.upsert(ctx, models.Expense{}.TableName(), "id", expenseColumns, expenseRows(expenses))
}

func (p *postgresRemoteStore) UpsertTabHistory(ctx context.Context, history []models.TabHistoryEntry) error {
	return p.upsert(ctx, models.TabHistoryEntry{}.TableName(), "id", tabHistoryColumns, tabHistoryRows(history))
}

func (p *postgresRemoteStore) UpsertScheduledEvents(ctx context.Context, events []models.ScheduledEvent) error {
	return p.upsert(ctx, models.ScheduledEvent{}.TableName(), "id", scheduledEventColumns, scheduledEventRows(events))
}

func (p *postgresRemoteStore) upsert(ctx context.Context, table, conflict string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	log := p.logger.With().Str("func", "postgresRemoteStore.upsert").Str("table", table).Logger()

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return markPermanent(p.errorClassificator, fmt.Errorf("%s upsert: %w: %w", table, ErrBeginningTransaction, err))
	}
	defer func() { _ = tx.Rollback() }()

	for _, chunk := range chunkRows(rows, len(columns)) {
		query, args, err := buildUpsertQuery(table, conflict, columns, chunk)
		if err != nil {
			log.Err(err).Msg("failed to build upsert query")
			return fmt.Errorf("%s upsert: %w: %w", table, ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Int("rows", len(chunk)).Msg("failed to execute upsert")
			return markPermanent(p.errorClassificator, fmt.Errorf("%s upsert: %w: %w", table, ErrExecutingStatement, err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit upsert")
		return markPermanent(p.errorClassificator, fmt.Errorf("%s upsert: %w: %w", table, ErrCommitingTransaction, err))
	}

	log.Debug().Int("rows", len(rows)).Msg("upsert committed")
	return nil
}
