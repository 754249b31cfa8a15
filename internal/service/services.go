package service

import (
	"sync"

	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// SyncServices bundles the eight collection syncs. It is the sink the local
// state store hands every new snapshot to.
type SyncServices struct {
	Tasks           *CollectionSync[[]models.Task]
	Tags            *CollectionSync[[]models.Tag]
	Owners          *CollectionSync[[]models.Owner]
	Permissions     *CollectionSync[models.PermissionsByOwner]
	RunningTab      *CollectionSync[models.RunningTab]
	Expenses        *CollectionSync[[]models.Expense]
	TabHistory      *CollectionSync[[]models.TabHistoryEntry]
	ScheduledEvents *CollectionSync[[]models.ScheduledEvent]
}

func NewSyncServices(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *SyncServices {
	return &SyncServices{
		Tasks:           NewTasksSync(remote, opts, log),
		Tags:            NewTagsSync(remote, opts, log),
		Owners:          NewOwnersSync(remote, opts, log),
		Permissions:     NewPermissionsSync(remote, opts, log),
		RunningTab:      NewRunningTabSync(remote, opts, log),
		Expenses:        NewExpensesSync(remote, opts, log),
		TabHistory:      NewTabHistorySync(remote, opts, log),
		ScheduledEvents: NewScheduledEventsSync(remote, opts, log),
	}
}

func (s *SyncServices) SyncTasks(tasks []models.Task)             { s.Tasks.Sync(tasks) }
func (s *SyncServices) SyncTags(tags []models.Tag)                { s.Tags.Sync(tags) }
func (s *SyncServices) SyncOwners(owners []models.Owner)          { s.Owners.Sync(owners) }
func (s *SyncServices) SyncRunningTab(tab models.RunningTab)      { s.RunningTab.Sync(tab) }
func (s *SyncServices) SyncExpenses(expenses []models.Expense)    { s.Expenses.Sync(expenses) }
func (s *SyncServices) SyncTabHistory(h []models.TabHistoryEntry) { s.TabHistory.Sync(h) }

func (s *SyncServices) SyncPermissions(perms models.PermissionsByOwner) {
	s.Permissions.Sync(perms)
}

func (s *SyncServices) SyncScheduledEvents(events []models.ScheduledEvent) {
	s.ScheduledEvents.Sync(events)
}

// MarkHydrated ends the initial-load phase of every collection.
func (s *SyncServices) MarkHydrated() {
	for _, st := range s.states() {
		st.MarkHydrated()
	}
}

// Flush pushes every pending snapshot now, concurrently, and waits for all
// cycles to finish. Used on shutdown.
func (s *SyncServices) Flush() {
	var wg sync.WaitGroup
	for _, c := range s.all() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Flush()
		}()
	}
	wg.Wait()
}

// Stop drops pending snapshots and aborts retries in progress.
func (s *SyncServices) Stop() {
	for _, c := range s.all() {
		c.Stop()
	}
}

func (s *SyncServices) states() []*SyncState {
	all := s.all()
	states := make([]*SyncState, 0, len(all))
	for _, c := range all {
		states = append(states, c.State())
	}
	return states
}

func (s *SyncServices) all() []collectionSyncer {
	return []collectionSyncer{
		s.Tasks, s.Tags, s.Owners, s.Permissions,
		s.RunningTab, s.Expenses, s.TabHistory, s.ScheduledEvents,
	}
}
