package store

import (
	"strings"

	"github.com/MKhiriev/go-tab-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// postgresMaxParams is the bind parameter limit of a single Postgres
// statement.
const postgresMaxParams = 65535

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

const snapshotsTable = "snapshots"

var (
	taskColumns = []string{
		"id", "title", "priority", "status",
		"created_by", "completed_by", "created_at", "completed_at",
	}
	tagColumns = []string{"id", "name", "color", "is_default"}

	ownerColumns = []string{"id", "name", "password_hash", "created_at", "is_master"}

	permissionColumns = []string{
		"owner_id", "can_complete_tasks", "can_delete_tasks",
		"can_add_expenses", "can_approve_expenses", "can_manage_tags",
	}
	runningTabColumns = []string{"id", "balance", "updated_at"}

	expenseColumns = []string{
		"id", "name", "amount", "status", "created_by", "approved_by",
		"rejection_reason", "attachment_url", "created_at", "resolved_at",
	}
	tabHistoryColumns = []string{
		"id", "type", "amount", "balance_after", "description",
		"expense_id", "created_by", "created_at",
	}
	scheduledEventColumns = []string{
		"id", "title", "description", "starts_at", "ends_at", "created_by", "created_at",
	}
)

// buildUpsertQuery builds one INSERT ... ON CONFLICT (conflict) DO UPDATE
// statement writing rows in order. Every non-key column is replaced by the
// incoming value.
func buildUpsertQuery(table, conflict string, columns []string, rows [][]any) (string, []any, error) {
	q := psql.Insert(table).Columns(columns...)
	for _, row := range rows {
		q = q.Values(row...)
	}

	return q.Suffix(onConflictUpdate(conflict, columns)).ToSql()
}

func onConflictUpdate(conflict string, columns []string) string {
	set := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == conflict {
			continue
		}
		set = append(set, c+" = EXCLUDED."+c)
	}

	return "ON CONFLICT (" + conflict + ") DO UPDATE SET " + strings.Join(set, ", ")
}

// chunkRows splits rows so that no statement exceeds the bind parameter
// limit. Order is preserved across chunks.
func chunkRows(rows [][]any, columns int) [][][]any {
	if len(rows) == 0 {
		return nil
	}

	size := postgresMaxParams / columns
	chunks := make([][][]any, 0, len(rows)/size+1)
	for len(rows) > size {
		chunks = append(chunks, rows[:size])
		rows = rows[size:]
	}
	return append(chunks, rows)
}

func buildSaveSnapshotQuery(collection models.Collection, payload []byte, updatedAt any) (string, []any, error) {
	return sqlite.Insert(snapshotsTable).
		Columns("collection", "payload", "updated_at").
		Values(string(collection), payload, updatedAt).
		Suffix("ON CONFLICT (collection) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}

func buildLoadSnapshotQuery(collection models.Collection) (string, []any, error) {
	return sqlite.Select("payload").
		From(snapshotsTable).
		Where(sq.Eq{"collection": string(collection)}).
		ToSql()
}

func taskRows(tasks []models.Task) [][]any {
	rows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []any{
			t.ID, t.Title, string(t.Priority), string(t.Status),
			t.CreatedBy, t.CompletedBy, t.CreatedAt, t.CompletedAt,
		})
	}
	return rows
}

func tagRows(tags []models.TagRow) [][]any {
	rows := make([][]any, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []any{t.ID, t.Name, t.Color, t.IsDefault})
	}
	return rows
}

func ownerRows(owners []models.OwnerRow) [][]any {
	rows := make([][]any, 0, len(owners))
	for _, o := range owners {
		rows = append(rows, []any{o.ID, o.Name, o.PasswordHash, o.CreatedAt, o.IsMaster})
	}
	return rows
}

func permissionRows(perms []models.AppPermissions) [][]any {
	rows := make([][]any, 0, len(perms))
	for _, p := range perms {
		rows = append(rows, []any{
			p.OwnerID, p.CanCompleteTasks, p.CanDeleteTasks,
			p.CanAddExpenses, p.CanApproveExpenses, p.CanManageTags,
		})
	}
	return rows
}

func runningTabRows(tab models.RunningTab) [][]any {
	return [][]any{{tab.ID, tab.Balance, tab.UpdatedAt}}
}

func expenseRows(expenses []models.Expense) [][]any {
	rows := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []any{
			e.ID, e.Name, e.Amount, string(e.Status), e.CreatedBy, e.ApprovedBy,
			e.RejectionReason, e.AttachmentURL, e.CreatedAt, e.ResolvedAt,
		})
	}
	return rows
}

func tabHistoryRows(history []models.TabHistoryEntry) [][]any {
	rows := make([][]any, 0, len(history))
	for _, h := range history {
		rows = append(rows, []any{
			h.ID, string(h.Type), h.Amount, h.BalanceAfter, h.Description,
			h.ExpenseID, h.CreatedBy, h.CreatedAt,
		})
	}
	return rows
}

func scheduledEventRows(events []models.ScheduledEvent) [][]any {
	rows := make([][]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, []any{
			e.ID, e.Title, e.Description, e.StartsAt, e.EndsAt, e.CreatedBy, e.CreatedAt,
		})
	}
	return rows
}
