package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tab-keeper/models"
)

var fastOpts = SyncOptions{
	DebounceDelay:  20 * time.Millisecond,
	MaxAttempts:    3,
	RetryBaseDelay: time.Millisecond,
}

// fakeRemote records every upsert. fail decides the result of the n-th call
// (1-based) for a collection; block, when set, holds every call until closed.
type fakeRemote struct {
	mu    sync.Mutex
	calls map[models.Collection][]any
	fail  func(c models.Collection, n int) error
	block chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{calls: make(map[models.Collection][]any)}
}

func (f *fakeRemote) record(ctx context.Context, c models.Collection, payload any) error {
	f.mu.Lock()
	f.calls[c] = append(f.calls[c], payload)
	n := len(f.calls[c])
	fail, block := f.fail, f.block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if fail != nil {
		return fail(c, n)
	}
	return nil
}

func (f *fakeRemote) count(c models.Collection) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls[c])
}

func (f *fakeRemote) last(c models.Collection) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := f.calls[c]
	if len(calls) == 0 {
		return nil
	}
	return calls[len(calls)-1]
}

func (f *fakeRemote) UpsertTasks(ctx context.Context, tasks []models.Task) error {
	return f.record(ctx, models.CollectionTasks, tasks)
}

func (f *fakeRemote) UpsertTags(ctx context.Context, tags []models.TagRow) error {
	return f.record(ctx, models.CollectionTags, tags)
}

func (f *fakeRemote) UpsertOwners(ctx context.Context, owners []models.OwnerRow) error {
	return f.record(ctx, models.CollectionOwners, owners)
}

func (f *fakeRemote) UpsertPermissions(ctx context.Context, permissions []models.AppPermissions) error {
	return f.record(ctx, models.CollectionPermissions, permissions)
}

func (f *fakeRemote) UpsertRunningTab(ctx context.Context, tab models.RunningTab) error {
	return f.record(ctx, models.CollectionRunningTab, tab)
}

func (f *fakeRemote) UpsertExpenses(ctx context.Context, expenses []models.Expense) error {
	return f.record(ctx, models.CollectionExpenses, expenses)
}

func (f *fakeRemote) UpsertTabHistory(ctx context.Context, history []models.TabHistoryEntry) error {
	return f.record(ctx, models.CollectionTabHistory, history)
}

func (f *fakeRemote) UpsertScheduledEvents(ctx context.Context, events []models.ScheduledEvent) error {
	return f.record(ctx, models.CollectionScheduledEvents, events)
}
