package models

import "time"

// RunningTabID is the identifier of the singleton running tab row.
const RunningTabID = "main"

// RunningTab is the shared running balance. There is exactly one per
// installation. Balance is kept in whole VND.
type RunningTab struct {
	ID        string    `json:"id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the remote table associated with RunningTab.
func (r RunningTab) TableName() string {
	return "running_tab"
}

// NewRunningTab returns an empty running tab.
func NewRunningTab() RunningTab {
	return RunningTab{ID: RunningTabID}
}
