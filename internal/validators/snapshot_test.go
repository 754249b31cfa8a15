package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tab-keeper/models"
)

func validTask(id string) models.Task {
	return models.Task{ID: id, Title: "t", Priority: models.TaskPriorityRegular, Status: models.TaskStatusPending}
}

func TestSnapshotValidator_Validate(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid tasks", obj: []models.Task{validTask("a"), validTask("b")}},
		{name: "empty task list", obj: []models.Task{}},
		{name: "task without id", obj: []models.Task{validTask("")}, wantErr: ErrEmptyID},
		{name: "duplicate task id", obj: []models.Task{validTask("a"), validTask("a")}, wantErr: ErrDuplicateID},
		{
			name:    "task with unknown priority",
			obj:     []models.Task{{ID: "a", Title: "t", Priority: "low", Status: models.TaskStatusPending}},
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "task with unknown status",
			obj:     []models.Task{{ID: "a", Title: "t", Priority: models.TaskPriorityUrgent, Status: "archived"}},
			wantErr: ErrInvalidStatus,
		},
		{
			name:   "scoped to id ignores title",
			obj:    []models.Task{{ID: "a"}},
			fields: []string{FieldID},
		},
		{name: "unknown field", obj: []models.Task{validTask("a")}, fields: []string{"color"}, wantErr: ErrUnknownField},
		{name: "tag without name", obj: []models.Tag{{ID: "g"}}, wantErr: ErrEmptyName},
		{name: "owner without name", obj: []models.Owner{{ID: "o"}}, wantErr: ErrEmptyName},
		{
			name:    "expense with zero amount",
			obj:     []models.Expense{{ID: "e", Name: "x", Status: models.ExpenseStatusPending}},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "expense with unknown status",
			obj:     []models.Expense{{ID: "e", Name: "x", Amount: 1, Status: "paid"}},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "history with unknown type",
			obj:     []models.TabHistoryEntry{{ID: "h", Type: "refund"}},
			wantErr: ErrInvalidHistoryType,
		},
		{
			name: "negative history amount is fine",
			obj:  []models.TabHistoryEntry{{ID: "h", Type: models.TabHistoryExpense, Amount: -5}},
		},
		{
			name:    "event ending before start",
			obj:     []models.ScheduledEvent{{ID: "s", Title: "x", StartsAt: start, EndsAt: &before}},
			wantErr: ErrInvalidEventTime,
		},
		{
			name:    "event without start",
			obj:     []models.ScheduledEvent{{ID: "s", Title: "x"}},
			wantErr: ErrInvalidEventTime,
		},
		{
			name: "permissions keyed by owner",
			obj:  models.NewPermissionsByOwner(models.AppPermissions{OwnerID: "o1"}),
		},
		{name: "overdrawn running tab", obj: models.RunningTab{ID: models.RunningTabID, Balance: -10}},
		{name: "unsupported type", obj: "tasks", wantErr: ErrUnsupportedType},
	}

	v := NewSnapshotValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSnapshotValidator_PermissionsKeyMismatch(t *testing.T) {
	var perms models.PermissionsByOwner
	perms.Set("o1", models.AppPermissions{OwnerID: "o2"})

	err := NewSnapshotValidator().Validate(context.Background(), perms)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOwnerIDMismatch)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestSnapshotValidator_ErrorNamesItem(t *testing.T) {
	err := NewSnapshotValidator().Validate(context.Background(), []models.Tag{{ID: "a", Name: "ok"}, {ID: "b"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
}
