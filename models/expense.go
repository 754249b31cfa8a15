package models

import "time"

// ExpenseStatus is the approval state of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

// Expense is a spending request against the running tab. Approved expenses
// are deducted from the balance; rejected ones carry a reason.
type Expense struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Amount int64         `json:"amount"`
	Status ExpenseStatus `json:"status"`

	CreatedBy       *string `json:"created_by"`
	ApprovedBy      *string `json:"approved_by"`
	RejectionReason *string `json:"rejection_reason"`
	AttachmentURL   *string `json:"attachment_url"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

// TableName returns the name of the remote table associated with Expense.
func (e Expense) TableName() string {
	return "expenses"
}

// Resolved reports whether the expense was approved or rejected already.
func (e Expense) Resolved() bool {
	return e.Status == ExpenseStatusApproved || e.Status == ExpenseStatusRejected
}
