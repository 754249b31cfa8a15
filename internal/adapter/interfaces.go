// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for writing local
// collections to the remote store.
//
// The primary abstraction is [RemoteStore], which decouples the sync layer
// from the backend. The package ships an HTTP implementation speaking the
// PostgREST upsert dialect ([NewHTTPRemoteStore]); a direct Postgres
// implementation lives in the store package.
//
// Failures that retrying cannot fix are wrapped with utils.Permanent so the
// sync layer's Retrier stops early. Everything else is treated as transient.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore has one idempotent upsert per collection. Each call receives a
// full snapshot; every entity is inserted if absent or fully replaced if
// present, keyed by id, in slice order. An empty snapshot is a no-op.
type RemoteStore interface {
	UpsertTasks(ctx context.Context, tasks []models.Task) error
	UpsertTags(ctx context.Context, tags []models.TagRow) error
	UpsertOwners(ctx context.Context, owners []models.OwnerRow) error
	UpsertPermissions(ctx context.Context, permissions []models.AppPermissions) error
	UpsertRunningTab(ctx context.Context, tab models.RunningTab) error
	UpsertExpenses(ctx context.Context, expenses []models.Expense) error
	UpsertTabHistory(ctx context.Context, history []models.TabHistoryEntry) error
	UpsertScheduledEvents(ctx context.Context, events []models.ScheduledEvent) error
}
