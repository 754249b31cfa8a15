package state

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-tab-keeper/models"
)

// NewTask is the input of AddTask.
type NewTask struct {
	Title     string              `json:"title"`
	Priority  models.TaskPriority `json:"priority"`
	CreatedBy *string             `json:"created_by"`
}

// NewOwner is the input of AddOwner. Password is plaintext and is hashed
// before it is stored.
type NewOwner struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	IsMaster bool   `json:"isMaster"`
}

// NewExpense is the input of AddExpense.
type NewExpense struct {
	Name      string  `json:"name"`
	Amount    int64   `json:"amount"`
	CreatedBy *string `json:"created_by"`
}

// NewScheduledEvent is the input of AddScheduledEvent.
type NewScheduledEvent struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	CreatedBy   *string    `json:"created_by"`
}

// AddTask appends a pending task. An empty priority means regular.
func (s *Store) AddTask(ctx context.Context, in NewTask) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, fmt.Errorf("%w: task title is empty", ErrInvalidInput)
	}
	if in.Priority == "" {
		in.Priority = models.TaskPriorityRegular
	}
	if !in.Priority.Valid() {
		return models.Task{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, in.Priority)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:        s.ids.Generate(),
		Title:     title,
		Priority:  in.Priority,
		Status:    models.TaskStatusPending,
		CreatedBy: in.CreatedBy,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, task)
	s.commitLocked(ctx, models.CollectionTasks)

	return task, nil
}

// CompleteTask marks a task completed by the given owner.
func (s *Store) CompleteTask(ctx context.Context, id string, completedBy *string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndexLocked(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}

	now := s.now()
	s.tasks[i].Status = models.TaskStatusCompleted
	s.tasks[i].CompletedBy = completedBy
	s.tasks[i].CompletedAt = &now
	s.commitLocked(ctx, models.CollectionTasks)

	return s.tasks[i], nil
}

// UncompleteTask moves a completed task back to pending.
func (s *Store) UncompleteTask(ctx context.Context, id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndexLocked(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}

	s.tasks[i].Status = models.TaskStatusPending
	s.tasks[i].CompletedBy = nil
	s.tasks[i].CompletedAt = nil
	s.commitLocked(ctx, models.CollectionTasks)

	return s.tasks[i], nil
}

// DeleteTask removes a task locally. The remote row is left in place since
// sync only upserts.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: task %s", ErrNotFound, id)
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.commitLocked(ctx, models.CollectionTasks)
	return nil
}

func (s *Store) taskIndexLocked(id string) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

func (s *Store) AddTag(ctx context.Context, name, color string) (models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Tag{}, fmt.Errorf("%w: tag name is empty", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tag := models.Tag{ID: s.ids.Generate(), Name: name, Color: color}
	s.tags = append(s.tags, tag)
	s.commitLocked(ctx, models.CollectionTags)

	return tag, nil
}

// AddOwner registers an owner with a bcrypt hash of the password.
func (s *Store) AddOwner(ctx context.Context, in NewOwner) (models.Owner, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Owner{}, fmt.Errorf("%w: owner name is empty", ErrInvalidInput)
	}
	if in.Password == "" {
		return models.Owner{}, fmt.Errorf("%w: owner password is empty", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Owner{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owner := models.Owner{
		ID:           s.ids.Generate(),
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if in.IsMaster {
		isMaster := true
		owner.IsMaster = &isMaster
	}
	s.owners = append(s.owners, owner)
	s.commitLocked(ctx, models.CollectionOwners)

	return owner, nil
}

// SetPermissions stores perms for an existing owner.
func (s *Store) SetPermissions(ctx context.Context, perms models.AppPermissions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.owners, func(o models.Owner) bool { return o.ID == perms.OwnerID }) {
		return fmt.Errorf("%w: owner %s", ErrNotFound, perms.OwnerID)
	}

	s.permissions.Set(perms.OwnerID, perms)
	s.commitLocked(ctx, models.CollectionPermissions)
	return nil
}

// TopUp adds amount to the running tab and records it in the history.
func (s *Store) TopUp(ctx context.Context, amount int64, createdBy *string) (models.RunningTab, error) {
	if amount <= 0 {
		return models.RunningTab{}, fmt.Errorf("%w: top-up amount must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyBalanceLocked(models.TabHistoryTopUp, amount, "Top up", nil, createdBy)
	s.commitLocked(ctx, models.CollectionRunningTab, models.CollectionTabHistory)

	return s.runningTab, nil
}

// applyBalanceLocked changes the balance by delta and appends the matching
// history entry.
func (s *Store) applyBalanceLocked(kind models.TabHistoryType, delta int64, description string, expenseID, createdBy *string) {
	now := s.now()
	s.runningTab.Balance += delta
	s.runningTab.UpdatedAt = now

	s.history = append(s.history, models.TabHistoryEntry{
		ID:           s.ids.Generate(),
		Type:         kind,
		Amount:       delta,
		BalanceAfter: s.runningTab.Balance,
		Description:  description,
		ExpenseID:    expenseID,
		CreatedBy:    createdBy,
		CreatedAt:    now,
	})
}

// AddExpense files a pending expense. The balance is untouched until the
// expense is approved.
func (s *Store) AddExpense(ctx context.Context, in NewExpense) (models.Expense, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Expense{}, fmt.Errorf("%w: expense name is empty", ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return models.Expense{}, fmt.Errorf("%w: expense amount must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expense := models.Expense{
		ID:        s.ids.Generate(),
		Name:      name,
		Amount:    in.Amount,
		Status:    models.ExpenseStatusPending,
		CreatedBy: in.CreatedBy,
		CreatedAt: s.now(),
	}
	s.expenses = append(s.expenses, expense)
	s.commitLocked(ctx, models.CollectionExpenses)

	return expense, nil
}

// ApproveExpense resolves a pending expense and deducts it from the running
// tab.
func (s *Store) ApproveExpense(ctx context.Context, id string, approvedBy *string) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.pendingExpenseLocked(id)
	if err != nil {
		return models.Expense{}, err
	}

	now := s.now()
	e := &s.expenses[i]
	e.Status = models.ExpenseStatusApproved
	e.ApprovedBy = approvedBy
	e.ResolvedAt = &now

	expenseID := e.ID
	s.applyBalanceLocked(models.TabHistoryExpense, -e.Amount, e.Name, &expenseID, approvedBy)
	s.commitLocked(ctx, models.CollectionExpenses, models.CollectionRunningTab, models.CollectionTabHistory)

	return s.expenses[i], nil
}

// RejectExpense resolves a pending expense with a reason. The balance is
// unchanged.
func (s *Store) RejectExpense(ctx context.Context, id, reason string, rejectedBy *string) (models.Expense, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Expense{}, fmt.Errorf("%w: rejection reason is empty", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.pendingExpenseLocked(id)
	if err != nil {
		return models.Expense{}, err
	}

	now := s.now()
	e := &s.expenses[i]
	e.Status = models.ExpenseStatusRejected
	e.ApprovedBy = rejectedBy
	e.RejectionReason = &reason
	e.ResolvedAt = &now
	s.commitLocked(ctx, models.CollectionExpenses)

	return s.expenses[i], nil
}

func (s *Store) pendingExpenseLocked(id string) (int, error) {
	i := s.expenseIndexLocked(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: expense %s", ErrNotFound, id)
	}
	if s.expenses[i].Resolved() {
		return -1, fmt.Errorf("%w: expense %s is %s", ErrExpenseResolved, id, s.expenses[i].Status)
	}
	return i, nil
}

func (s *Store) expenseIndexLocked(id string) int {
	return slices.IndexFunc(s.expenses, func(e models.Expense) bool { return e.ID == id })
}

// SetExpenseAttachment sets or, with an empty url, clears the receipt link.
func (s *Store) SetExpenseAttachment(ctx context.Context, id, url string) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.expenseIndexLocked(id)
	if i < 0 {
		return models.Expense{}, fmt.Errorf("%w: expense %s", ErrNotFound, id)
	}

	if url = strings.TrimSpace(url); url == "" {
		s.expenses[i].AttachmentURL = nil
	} else {
		s.expenses[i].AttachmentURL = &url
	}
	s.commitLocked(ctx, models.CollectionExpenses)

	return s.expenses[i], nil
}

func (s *Store) AddScheduledEvent(ctx context.Context, in NewScheduledEvent) (models.ScheduledEvent, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.ScheduledEvent{}, fmt.Errorf("%w: event title is empty", ErrInvalidInput)
	}
	if in.StartsAt.IsZero() {
		return models.ScheduledEvent{}, fmt.Errorf("%w: event start is missing", ErrInvalidInput)
	}
	if in.EndsAt != nil && in.EndsAt.Before(in.StartsAt) {
		return models.ScheduledEvent{}, fmt.Errorf("%w: event ends before it starts", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.ScheduledEvent{
		ID:          s.ids.Generate(),
		Title:       title,
		Description: in.Description,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   s.now(),
	}
	s.events = append(s.events, event)
	s.commitLocked(ctx, models.CollectionScheduledEvents)

	return event, nil
}

func (s *Store) DeleteScheduledEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.events, func(e models.ScheduledEvent) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: event %s", ErrNotFound, id)
	}

	s.events = slices.Delete(s.events, i, i+1)
	s.commitLocked(ctx, models.CollectionScheduledEvents)
	return nil
}
