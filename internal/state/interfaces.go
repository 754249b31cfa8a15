// Package state holds the in-memory local collections that the UI reads and
// mutates. Every mutation is persisted to the local snapshot database and the
// new snapshot is handed to a Dispatcher, which mirrors it to the remote
// store in the background.
package state

import "github.com/MKhiriev/go-tab-keeper/models"

// Dispatcher receives the full snapshot of a collection after every change.
// Calls must return immediately.
type Dispatcher interface {
	SyncTasks(tasks []models.Task)
	SyncTags(tags []models.Tag)
	SyncOwners(owners []models.Owner)
	SyncPermissions(perms models.PermissionsByOwner)
	SyncRunningTab(tab models.RunningTab)
	SyncExpenses(expenses []models.Expense)
	SyncTabHistory(history []models.TabHistoryEntry)
	SyncScheduledEvents(events []models.ScheduledEvent)

	// MarkHydrated is called once, after local state has been loaded.
	MarkHydrated()
}

// IDGenerator produces ids for entities created on this device.
type IDGenerator interface {
	Generate() string
}
