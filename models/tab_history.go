package models

import "time"

// TabHistoryType classifies a running tab balance change.
type TabHistoryType string

const (
	TabHistoryTopUp      TabHistoryType = "top_up"
	TabHistoryExpense    TabHistoryType = "expense"
	TabHistoryAdjustment TabHistoryType = "adjustment"
)

// TabHistoryEntry records one change of the running tab balance.
// Amount is signed: top-ups are positive, expenses negative.
type TabHistoryEntry struct {
	ID           string         `json:"id"`
	Type         TabHistoryType `json:"type"`
	Amount       int64          `json:"amount"`
	BalanceAfter int64          `json:"balance_after"`
	Description  string         `json:"description"`
	ExpenseID    *string        `json:"expense_id"`
	CreatedBy    *string        `json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
}

// TableName returns the name of the remote table associated with TabHistoryEntry.
func (h TabHistoryEntry) TableName() string {
	return "tab_history"
}
