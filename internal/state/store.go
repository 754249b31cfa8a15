// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/store"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// Snapshot is a point-in-time copy of every collection.
type Snapshot struct {
	Tasks           []models.Task             `json:"tasks"`
	Tags            []models.Tag              `json:"tags"`
	Owners          []models.Owner            `json:"owners"`
	Permissions     models.PermissionsByOwner `json:"permissions"`
	RunningTab      models.RunningTab         `json:"runningTab"`
	Expenses        []models.Expense          `json:"expenses"`
	TabHistory      []models.TabHistoryEntry  `json:"tabHistory"`
	ScheduledEvents []models.ScheduledEvent   `json:"scheduledEvents"`
}

// Store is the single source of local truth. Mutations apply in memory,
// are persisted to the snapshot repository and are then dispatched. A
// failed local save is logged and does not fail the mutation.
type Store struct {
	mu sync.RWMutex

	tasks       []models.Task
	tags        []models.Tag
	owners      []models.Owner
	permissions models.PermissionsByOwner
	runningTab  models.RunningTab
	expenses    []models.Expense
	history     []models.TabHistoryEntry
	events      []models.ScheduledEvent
	hydrated    bool

	repo       store.LocalSnapshotRepository
	dispatcher Dispatcher
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

func NewStore(repo store.LocalSnapshotRepository, dispatcher Dispatcher, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		tasks:      []models.Task{},
		tags:       []models.Tag{},
		owners:     []models.Owner{},
		runningTab: models.NewRunningTab(),
		expenses:   []models.Expense{},
		history:    []models.TabHistoryEntry{},
		events:     []models.ScheduledEvent{},
		repo:       repo,
		dispatcher: dispatcher,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     log,
	}
}

// Hydrate loads every collection from the snapshot repository and then
// signals the dispatcher, once, that hydration is complete. Loaded
// snapshots are not dispatched: they came from this device and the remote
// already has them or will get them on the next change.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return ErrAlreadyHydrated
	}

	for _, c := range models.Collections {
		if err := s.loadLocked(ctx, c); err != nil {
			return fmt.Errorf("hydrate %s: %w", c, err)
		}
	}

	s.hydrated = true
	s.dispatcher.MarkHydrated()
	s.logger.Info().
		Int("tasks", len(s.tasks)).
		Int("expenses", len(s.expenses)).
		Int64("balance", s.runningTab.Balance).
		Msg("local state hydrated")

	return nil
}

func (s *Store) loadLocked(ctx context.Context, c models.Collection) error {
	payload, err := s.repo.LoadSnapshot(ctx, c)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	switch c {
	case models.CollectionTasks:
		return decodeInto(payload, &s.tasks)
	case models.CollectionTags:
		return decodeInto(payload, &s.tags)
	case models.CollectionOwners:
		return decodeInto(payload, &s.owners)
	case models.CollectionPermissions:
		return json.Unmarshal(payload, &s.permissions)
	case models.CollectionRunningTab:
		if err := json.Unmarshal(payload, &s.runningTab); err != nil {
			return err
		}
		if s.runningTab.ID == "" {
			s.runningTab.ID = models.RunningTabID
		}
		return nil
	case models.CollectionExpenses:
		return decodeInto(payload, &s.expenses)
	case models.CollectionTabHistory:
		return decodeInto(payload, &s.history)
	case models.CollectionScheduledEvents:
		return decodeInto(payload, &s.events)
	}

	return fmt.Errorf("unknown collection %q", c)
}

// decodeInto unmarshals a JSON array into dst, keeping dst non-nil for a
// null payload.
func decodeInto[T any](payload []byte, dst *[]T) error {
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	*dst = items
	return nil
}

// commitLocked persists and dispatches the given collections. s.mu must be
// held for writing.
func (s *Store) commitLocked(ctx context.Context, collections ...models.Collection) {
	for _, c := range collections {
		s.persistLocked(ctx, c)
		s.dispatchLocked(c)
	}
}

func (s *Store) persistLocked(ctx context.Context, c models.Collection) {
	payload, err := json.Marshal(s.valueLocked(c))
	if err != nil {
		s.logger.Warn().Err(err).Str(logger.CollectionFieldName, c.String()).Msg("failed to encode snapshot")
		return
	}

	if err := s.repo.SaveSnapshot(ctx, c, payload); err != nil {
		s.logger.Warn().Err(err).Str(logger.CollectionFieldName, c.String()).Msg("failed to save snapshot locally")
	}
}

func (s *Store) valueLocked(c models.Collection) any {
	switch c {
	case models.CollectionTasks:
		return s.tasks
	case models.CollectionTags:
		return s.tags
	case models.CollectionOwners:
		return s.owners
	case models.CollectionPermissions:
		return s.permissions
	case models.CollectionRunningTab:
		return s.runningTab
	case models.CollectionExpenses:
		return s.expenses
	case models.CollectionTabHistory:
		return s.history
	case models.CollectionScheduledEvents:
		return s.events
	}
	return nil
}

func (s *Store) dispatchLocked(c models.Collection) {
	switch c {
	case models.CollectionTasks:
		s.dispatcher.SyncTasks(slices.Clone(s.tasks))
	case models.CollectionTags:
		s.dispatcher.SyncTags(slices.Clone(s.tags))
	case models.CollectionOwners:
		s.dispatcher.SyncOwners(slices.Clone(s.owners))
	case models.CollectionPermissions:
		s.dispatcher.SyncPermissions(s.permissions.Clone())
	case models.CollectionRunningTab:
		s.dispatcher.SyncRunningTab(s.runningTab)
	case models.CollectionExpenses:
		s.dispatcher.SyncExpenses(slices.Clone(s.expenses))
	case models.CollectionTabHistory:
		s.dispatcher.SyncTabHistory(slices.Clone(s.history))
	case models.CollectionScheduledEvents:
		s.dispatcher.SyncScheduledEvents(slices.Clone(s.events))
	}
}

// Resync dispatches every collection again without changing it.
func (s *Store) Resync() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range models.Collections {
		s.dispatchLocked(c)
	}
}

func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *Store) Tags() []models.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tags)
}

func (s *Store) Owners() []models.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.owners)
}

func (s *Store) Permissions() models.PermissionsByOwner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.permissions.Clone()
}

func (s *Store) RunningTab() models.RunningTab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runningTab
}

func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expenses)
}

func (s *Store) TabHistory() []models.TabHistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

func (s *Store) ScheduledEvents() []models.ScheduledEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

// Snapshot returns a copy of every collection taken under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Tasks:           slices.Clone(s.tasks),
		Tags:            slices.Clone(s.tags),
		Owners:          slices.Clone(s.owners),
		Permissions:     s.permissions.Clone(),
		RunningTab:      s.runningTab,
		Expenses:        slices.Clone(s.expenses),
		TabHistory:      slices.Clone(s.history),
		ScheduledEvents: slices.Clone(s.events),
	}
}

func (s *Store) ReplaceTasks(ctx context.Context, tasks []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nonNil(tasks)
	s.commitLocked(ctx, models.CollectionTasks)
}

func (s *Store) ReplaceTags(ctx context.Context, tags []models.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = nonNil(tags)
	s.commitLocked(ctx, models.CollectionTags)
}

func (s *Store) ReplaceOwners(ctx context.Context, owners []models.Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners = nonNil(owners)
	s.commitLocked(ctx, models.CollectionOwners)
}

func (s *Store) ReplacePermissions(ctx context.Context, perms models.PermissionsByOwner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions = perms.Clone()
	s.commitLocked(ctx, models.CollectionPermissions)
}

func (s *Store) ReplaceRunningTab(ctx context.Context, tab models.RunningTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tab.ID = models.RunningTabID
	s.runningTab = tab
	s.commitLocked(ctx, models.CollectionRunningTab)
}

func (s *Store) ReplaceExpenses(ctx context.Context, expenses []models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = nonNil(expenses)
	s.commitLocked(ctx, models.CollectionExpenses)
}

func (s *Store) ReplaceTabHistory(ctx context.Context, history []models.TabHistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nonNil(history)
	s.commitLocked(ctx, models.CollectionTabHistory)
}

func (s *Store) ReplaceScheduledEvents(ctx context.Context, events []models.ScheduledEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nonNil(events)
	s.commitLocked(ctx, models.CollectionScheduledEvents)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}
