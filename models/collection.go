package models

// Collection names one of the locally held collections that are mirrored to
// the remote store. The value doubles as the key under which the collection's
// snapshot is persisted locally.
type Collection string

const (
	CollectionTasks           Collection = "tasks"
	CollectionTags            Collection = "tags"
	CollectionOwners          Collection = "owners"
	CollectionPermissions     Collection = "permissions"
	CollectionRunningTab      Collection = "running_tab"
	CollectionExpenses        Collection = "expenses"
	CollectionTabHistory      Collection = "tab_history"
	CollectionScheduledEvents Collection = "scheduled_events"
)

// Collections lists every synchronised collection in hydration order.
var Collections = []Collection{
	CollectionTasks,
	CollectionTags,
	CollectionOwners,
	CollectionPermissions,
	CollectionRunningTab,
	CollectionExpenses,
	CollectionTabHistory,
	CollectionScheduledEvents,
}

func (c Collection) String() string {
	return string(c)
}
