// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/mock"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func makeTasks(n int) []models.Task {
	tasks := make([]models.Task, 0, n)
	for i := 1; i <= n; i++ {
		tasks = append(tasks, models.Task{
			ID:       fmt.Sprintf("t%d", i),
			Title:    fmt.Sprintf("task %d", i),
			Priority: models.TaskPriorityRegular,
			Status:   models.TaskStatusPending,
		})
	}
	return tasks
}

// ── debounce ─────────────────────────────────────────────────────────────────

func TestCollectionSync_BurstCollapsesToLatestSnapshot(t *testing.T) {
	remote := newFakeRemote()
	s := NewTasksSync(remote, fastOpts, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	for i := 1; i <= 5; i++ {
		s.Sync(makeTasks(i))
	}

	require.Eventually(t, func() bool {
		return remote.count(models.CollectionTasks) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(5 * fastOpts.DebounceDelay)
	s.Wait()

	assert.Equal(t, 1, remote.count(models.CollectionTasks))
	assert.Equal(t, makeTasks(5), remote.last(models.CollectionTasks))
	assert.False(t, s.State().IsSyncing())
}

func TestCollectionSync_SyncReturnsBeforeUpsert(t *testing.T) {
	remote := newFakeRemote()
	s := NewTasksSync(remote, SyncOptions{DebounceDelay: time.Hour}, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	s.Sync(makeTasks(1))

	assert.Zero(t, remote.count(models.CollectionTasks))
}

// ── guard ────────────────────────────────────────────────────────────────────

func TestCollectionSync_InitialLoadSuppressesRemoteCall(t *testing.T) {
	remote := newFakeRemote()
	s := NewTasksSync(remote, fastOpts, nil)
	defer s.Stop()

	s.Sync(makeTasks(2))
	s.Flush()

	assert.Zero(t, remote.count(models.CollectionTasks))
	assert.True(t, s.State().IsInitialLoad())
	assert.False(t, s.State().IsSyncing())
}

func TestCollectionSync_InFlightSuppressesRemoteCall(t *testing.T) {
	remote := newFakeRemote()
	s := NewTasksSync(remote, fastOpts, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	ok, _ := s.State().TryAcquire()
	require.True(t, ok)

	s.Sync(makeTasks(1))
	s.Flush()

	assert.Zero(t, remote.count(models.CollectionTasks))
	assert.True(t, s.State().IsSyncing(), "a skipped cycle must not release a guard it does not hold")

	s.State().Release()
	s.Sync(makeTasks(2))
	s.Flush()

	assert.Equal(t, 1, remote.count(models.CollectionTasks))
}

func TestCollectionSync_SnapshotDuringFlightIsDropped(t *testing.T) {
	remote := newFakeRemote()
	remote.block = make(chan struct{})
	s := NewTasksSync(remote, fastOpts, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	s.Sync(makeTasks(1))
	require.Eventually(t, func() bool {
		return remote.count(models.CollectionTasks) == 1
	}, time.Second, 5*time.Millisecond)
	require.True(t, s.State().IsSyncing())

	s.Sync(makeTasks(2))
	time.Sleep(5 * fastOpts.DebounceDelay)

	close(remote.block)
	s.Wait()

	assert.Equal(t, 1, remote.count(models.CollectionTasks))
	assert.False(t, s.State().IsSyncing())

	s.Sync(makeTasks(3))
	s.Flush()

	assert.Equal(t, 2, remote.count(models.CollectionTasks))
	assert.Equal(t, makeTasks(3), remote.last(models.CollectionTasks))
}

func TestCollectionSync_FlushPushesSnapshotQueuedBehindFlight(t *testing.T) {
	remote := newFakeRemote()
	remote.block = make(chan struct{})
	s := NewTasksSync(remote, SyncOptions{DebounceDelay: time.Hour, MaxAttempts: 3, RetryBaseDelay: time.Millisecond}, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	s.Sync(makeTasks(1))
	first := make(chan struct{})
	go func() {
		s.Flush()
		close(first)
	}()
	require.Eventually(t, func() bool {
		return remote.count(models.CollectionTasks) == 1
	}, time.Second, 5*time.Millisecond)
	require.True(t, s.State().IsSyncing())

	s.Sync(makeTasks(2))
	require.True(t, s.debouncer.Pending())

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(remote.block)
	}()
	s.Flush()
	<-first

	assert.Equal(t, 2, remote.count(models.CollectionTasks))
	assert.Equal(t, makeTasks(2), remote.last(models.CollectionTasks))
	assert.False(t, s.State().IsSyncing())
}

// ── retry ────────────────────────────────────────────────────────────────────

func TestCollectionSync_RetriesThenSucceeds(t *testing.T) {
	remote := newFakeRemote()
	remote.fail = func(_ models.Collection, n int) error {
		if n < 3 {
			return errors.New("connection reset")
		}
		return nil
	}
	s := NewTasksSync(remote, fastOpts, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	s.Sync(makeTasks(1))
	s.Flush()

	assert.Equal(t, 3, remote.count(models.CollectionTasks))
	assert.False(t, s.State().IsSyncing())
}

func TestCollectionSync_TerminalFailureReleasesGuard(t *testing.T) {
	remote := newFakeRemote()
	remote.fail = func(models.Collection, int) error { return errors.New("remote down") }
	s := NewTasksSync(remote, fastOpts, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	s.Sync(makeTasks(1))
	s.Flush()

	assert.Equal(t, fastOpts.MaxAttempts, remote.count(models.CollectionTasks))
	assert.False(t, s.State().IsSyncing())

	remote.mu.Lock()
	remote.fail = nil
	remote.mu.Unlock()

	s.Sync(makeTasks(2))
	s.Flush()

	assert.Equal(t, fastOpts.MaxAttempts+1, remote.count(models.CollectionTasks))
}

func TestCollectionSync_PermanentErrorIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)

	expenses := []models.Expense{{ID: "e1", Name: "lunch", Amount: 120000, Status: models.ExpenseStatusPending}}
	remote.EXPECT().
		UpsertExpenses(gomock.Any(), expenses).
		Return(utils.Permanent(errors.New("http 400: bad column"))).
		Times(1)

	s := NewExpensesSync(remote, fastOpts, nil)
	defer s.Stop()
	s.State().MarkHydrated()

	s.Sync(expenses)
	s.Flush()

	assert.False(t, s.State().IsSyncing())
}

func TestCollectionSync_StopDropsPendingSnapshot(t *testing.T) {
	remote := newFakeRemote()
	s := NewTasksSync(remote, fastOpts, nil)
	s.State().MarkHydrated()

	s.Sync(makeTasks(1))
	s.Stop()
	time.Sleep(5 * fastOpts.DebounceDelay)

	assert.Zero(t, remote.count(models.CollectionTasks))
}

func TestCollectionSync_StopAbortsBackoff(t *testing.T) {
	remote := newFakeRemote()
	remote.fail = func(models.Collection, int) error { return errors.New("remote down") }
	s := NewTasksSync(remote, SyncOptions{DebounceDelay: 0, MaxAttempts: 3, RetryBaseDelay: time.Hour}, nil)
	s.State().MarkHydrated()

	s.Sync(makeTasks(1))
	require.Eventually(t, func() bool {
		return remote.count(models.CollectionTasks) == 1
	}, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not abort the backoff wait")
	}
	assert.Equal(t, 1, remote.count(models.CollectionTasks))
	assert.False(t, s.State().IsSyncing())
}

// ── per-collection shapes ────────────────────────────────────────────────────

func TestCollectionSync_Shapes(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	master := true

	t.Run("tags gain is_default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteStore(ctrl)
		remote.EXPECT().UpsertTags(gomock.Any(), []models.TagRow{
			{ID: "g1", Name: "food", Color: "#fa0", IsDefault: false},
		}).Return(nil)

		s := NewTagsSync(remote, fastOpts, nil)
		defer s.Stop()
		s.State().MarkHydrated()
		s.Sync([]models.Tag{{ID: "g1", Name: "food", Color: "#fa0"}})
		s.Flush()
	})

	t.Run("owners renamed with is_master default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteStore(ctrl)
		remote.EXPECT().UpsertOwners(gomock.Any(), []models.OwnerRow{
			{ID: "o1", Name: "Anh", PasswordHash: "h", CreatedAt: created, IsMaster: false},
			{ID: "o2", Name: "Binh", PasswordHash: "h2", CreatedAt: created, IsMaster: true},
		}).Return(nil)

		s := NewOwnersSync(remote, fastOpts, nil)
		defer s.Stop()
		s.State().MarkHydrated()
		s.Sync([]models.Owner{
			{ID: "o1", Name: "Anh", PasswordHash: "h", CreatedAt: created},
			{ID: "o2", Name: "Binh", PasswordHash: "h2", CreatedAt: created, IsMaster: &master},
		})
		s.Flush()
	})

	t.Run("permissions flattened in insertion order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteStore(ctrl)
		remote.EXPECT().UpsertPermissions(gomock.Any(), []models.AppPermissions{
			{OwnerID: "zeta", CanCompleteTasks: true},
			{OwnerID: "alpha", CanApproveExpenses: true},
		}).Return(nil)

		s := NewPermissionsSync(remote, fastOpts, nil)
		defer s.Stop()
		s.State().MarkHydrated()
		s.Sync(models.NewPermissionsByOwner(
			models.AppPermissions{OwnerID: "zeta", CanCompleteTasks: true},
			models.AppPermissions{OwnerID: "alpha", CanApproveExpenses: true},
		))
		s.Flush()
	})

	t.Run("running tab passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteStore(ctrl)
		tab := models.RunningTab{ID: models.RunningTabID, Balance: 500000, UpdatedAt: created}
		remote.EXPECT().UpsertRunningTab(gomock.Any(), tab).Return(nil)

		s := NewRunningTabSync(remote, fastOpts, nil)
		defer s.Stop()
		s.State().MarkHydrated()
		s.Sync(tab)
		s.Flush()
	})

	t.Run("history and events pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		remote := mock.NewMockRemoteStore(ctrl)
		history := []models.TabHistoryEntry{{ID: "h1", Type: models.TabHistoryTopUp, Amount: 1000, BalanceAfter: 1000, CreatedAt: created}}
		events := []models.ScheduledEvent{{ID: "ev1", Title: "cleaning", StartsAt: created, CreatedAt: created}}
		remote.EXPECT().UpsertTabHistory(gomock.Any(), history).Return(nil)
		remote.EXPECT().UpsertScheduledEvents(gomock.Any(), events).Return(nil)

		hs := NewTabHistorySync(remote, fastOpts, nil)
		es := NewScheduledEventsSync(remote, fastOpts, nil)
		defer hs.Stop()
		defer es.Stop()
		hs.State().MarkHydrated()
		es.State().MarkHydrated()

		hs.Sync(history)
		es.Sync(events)
		hs.Flush()
		es.Flush()
	})
}

func TestSyncOptions_WithDefaults(t *testing.T) {
	got := SyncOptions{DebounceDelay: -1, MaxAttempts: 0, RetryBaseDelay: 0}.withDefaults()
	assert.Equal(t, DefaultSyncOptions(), got)

	custom := SyncOptions{DebounceDelay: 0, MaxAttempts: 5, RetryBaseDelay: time.Second}
	assert.Equal(t, custom, custom.withDefaults())
}
