package service

import (
	"github.com/MKhiriev/go-tab-keeper/internal/adapter"
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/models"
)

func NewTasksSync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[[]models.Task] {
	return newCollectionSync(models.CollectionTasks, identity[[]models.Task], remote.UpsertTasks, opts, log)
}

func NewTagsSync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[[]models.Tag] {
	return newCollectionSync(models.CollectionTags, TagsToRows, remote.UpsertTags, opts, log)
}

func NewOwnersSync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[[]models.Owner] {
	return newCollectionSync(models.CollectionOwners, OwnersToRows, remote.UpsertOwners, opts, log)
}

func NewPermissionsSync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[models.PermissionsByOwner] {
	return newCollectionSync(models.CollectionPermissions, PermissionsToRows, remote.UpsertPermissions, opts, log)
}

func NewRunningTabSync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[models.RunningTab] {
	return newCollectionSync(models.CollectionRunningTab, identity[models.RunningTab], remote.UpsertRunningTab, opts, log)
}

func NewExpensesSync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[[]models.Expense] {
	return newCollectionSync(models.CollectionExpenses, identity[[]models.Expense], remote.UpsertExpenses, opts, log)
}

func NewTabHistorySync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[[]models.TabHistoryEntry] {
	return newCollectionSync(models.CollectionTabHistory, identity[[]models.TabHistoryEntry], remote.UpsertTabHistory, opts, log)
}

func NewScheduledEventsSync(remote adapter.RemoteStore, opts SyncOptions, log *logger.Logger) *CollectionSync[[]models.ScheduledEvent] {
	return newCollectionSync(models.CollectionScheduledEvents, identity[[]models.ScheduledEvent], remote.UpsertScheduledEvents, opts, log)
}
