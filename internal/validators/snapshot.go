package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// Field names accepted by SnapshotValidator.Validate.
const (
	FieldID       = "id"
	FieldTitle    = "title"
	FieldName     = "name"
	FieldPriority = "priority"
	FieldStatus   = "status"
	FieldAmount   = "amount"
	FieldType     = "type"
	FieldOwnerID  = "owner_id"
	FieldTime     = "time"
)

// SnapshotValidator validates whole collection snapshots: every element is
// checked and ids must be unique within the snapshot. The remote upsert
// rejects a batch that touches the same row twice, so a duplicate would
// never sync.
type SnapshotValidator struct{}

func NewSnapshotValidator() Validator {
	return &SnapshotValidator{}
}

func (v *SnapshotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.Task:
		return validateEach(value, func(t models.Task) string { return t.ID }, fields,
			[]string{FieldID, FieldTitle, FieldPriority, FieldStatus}, validateTask)
	case []models.Tag:
		return validateEach(value, func(t models.Tag) string { return t.ID }, fields,
			[]string{FieldID, FieldName}, validateTag)
	case []models.Owner:
		return validateEach(value, func(o models.Owner) string { return o.ID }, fields,
			[]string{FieldID, FieldName}, validateOwner)
	case []models.Expense:
		return validateEach(value, func(e models.Expense) string { return e.ID }, fields,
			[]string{FieldID, FieldName, FieldAmount, FieldStatus}, validateExpense)
	case []models.TabHistoryEntry:
		return validateEach(value, func(h models.TabHistoryEntry) string { return h.ID }, fields,
			[]string{FieldID, FieldType}, validateHistoryEntry)
	case []models.ScheduledEvent:
		return validateEach(value, func(e models.ScheduledEvent) string { return e.ID }, fields,
			[]string{FieldID, FieldTitle, FieldTime}, validateEvent)
	case models.PermissionsByOwner:
		return validatePermissions(value)
	case models.RunningTab:
		// any balance is valid, overdrafts included
		return nil
	default:
		return ErrUnsupportedType
	}
}

// validateEach runs check on every element with the requested fields, or
// defaults when none are given. The id field also enforces uniqueness.
func validateEach[T any](items []T, id func(T) string, fields, defaults []string, check func(T, string) error) error {
	if len(fields) == 0 {
		fields = defaults
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		for _, f := range fields {
			if f == FieldID {
				key := id(item)
				if key == "" {
					return fmt.Errorf("item %d: %w", i, ErrEmptyID)
				}
				if _, dup := seen[key]; dup {
					return fmt.Errorf("item %d: %w %q", i, ErrDuplicateID, key)
				}
				seen[key] = struct{}{}
				continue
			}

			if err := check(item, f); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}

	return nil
}

func validateTask(t models.Task, field string) error {
	switch field {
	case FieldTitle:
		if t.Title == "" {
			return ErrEmptyTitle
		}
	case FieldPriority:
		if !t.Priority.Valid() {
			return ErrInvalidPriority
		}
	case FieldStatus:
		if t.Status != models.TaskStatusPending && t.Status != models.TaskStatusCompleted {
			return ErrInvalidStatus
		}
	default:
		return ErrUnknownField
	}
	return nil
}

func validateTag(t models.Tag, field string) error {
	if field != FieldName {
		return ErrUnknownField
	}
	if t.Name == "" {
		return ErrEmptyName
	}
	return nil
}

func validateOwner(o models.Owner, field string) error {
	if field != FieldName {
		return ErrUnknownField
	}
	if o.Name == "" {
		return ErrEmptyName
	}
	return nil
}

func validateExpense(e models.Expense, field string) error {
	switch field {
	case FieldName:
		if e.Name == "" {
			return ErrEmptyName
		}
	case FieldAmount:
		if e.Amount <= 0 {
			return ErrInvalidAmount
		}
	case FieldStatus:
		switch e.Status {
		case models.ExpenseStatusPending, models.ExpenseStatusApproved, models.ExpenseStatusRejected:
		default:
			return ErrInvalidStatus
		}
	default:
		return ErrUnknownField
	}
	return nil
}

func validateHistoryEntry(h models.TabHistoryEntry, field string) error {
	if field != FieldType {
		return ErrUnknownField
	}
	switch h.Type {
	case models.TabHistoryTopUp, models.TabHistoryExpense, models.TabHistoryAdjustment:
		return nil
	}
	return ErrInvalidHistoryType
}

func validateEvent(e models.ScheduledEvent, field string) error {
	switch field {
	case FieldTitle:
		if e.Title == "" {
			return ErrEmptyTitle
		}
	case FieldTime:
		if e.StartsAt.IsZero() || (e.EndsAt != nil && e.EndsAt.Before(e.StartsAt)) {
			return ErrInvalidEventTime
		}
	default:
		return ErrUnknownField
	}
	return nil
}

func validatePermissions(perms models.PermissionsByOwner) error {
	for _, key := range perms.Keys() {
		p, _ := perms.Get(key)
		if p.OwnerID == "" {
			return fmt.Errorf("owner %q: %w", key, ErrEmptyID)
		}
		if p.OwnerID != key {
			return fmt.Errorf("owner %q: %w", key, ErrOwnerIDMismatch)
		}
	}
	return nil
}
