package models

import "time"

// ScheduledEvent is a calendar entry shared between owners.
type ScheduledEvent struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	CreatedBy   *string    `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName returns the name of the remote table associated with ScheduledEvent.
func (e ScheduledEvent) TableName() string {
	return "scheduled_events"
}
