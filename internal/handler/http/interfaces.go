package http

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/internal/state"
	"github.com/MKhiriev/go-tab-keeper/models"
)

// LocalState is the part of state.Store the API needs.
type LocalState interface {
	Snapshot() state.Snapshot

	ReplaceTasks(ctx context.Context, tasks []models.Task)
	ReplaceTags(ctx context.Context, tags []models.Tag)
	ReplaceOwners(ctx context.Context, owners []models.Owner)
	ReplacePermissions(ctx context.Context, perms models.PermissionsByOwner)
	ReplaceRunningTab(ctx context.Context, tab models.RunningTab)
	ReplaceExpenses(ctx context.Context, expenses []models.Expense)
	ReplaceTabHistory(ctx context.Context, history []models.TabHistoryEntry)
	ReplaceScheduledEvents(ctx context.Context, events []models.ScheduledEvent)

	AddTask(ctx context.Context, in state.NewTask) (models.Task, error)
	CompleteTask(ctx context.Context, id string, completedBy *string) (models.Task, error)
	UncompleteTask(ctx context.Context, id string) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	AddTag(ctx context.Context, name, color string) (models.Tag, error)
	AddOwner(ctx context.Context, in state.NewOwner) (models.Owner, error)
	SetPermissions(ctx context.Context, perms models.AppPermissions) error

	TopUp(ctx context.Context, amount int64, createdBy *string) (models.RunningTab, error)
	AddExpense(ctx context.Context, in state.NewExpense) (models.Expense, error)
	ApproveExpense(ctx context.Context, id string, approvedBy *string) (models.Expense, error)
	RejectExpense(ctx context.Context, id, reason string, rejectedBy *string) (models.Expense, error)
	SetExpenseAttachment(ctx context.Context, id, url string) (models.Expense, error)

	AddScheduledEvent(ctx context.Context, in state.NewScheduledEvent) (models.ScheduledEvent, error)
	DeleteScheduledEvent(ctx context.Context, id string) error
}
