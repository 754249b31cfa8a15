package models

import "time"

// Owner is a member of the shared tab as it is held locally.
//
// PasswordHash is a bcrypt hash and must never hold a plaintext password.
// IsMaster is optional locally; an absent value means "not master".
type Owner struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	IsMaster     *bool     `json:"isMaster,omitempty"`
}

// OwnerRow is the remote representation of an Owner, using the remote
// schema's column names.
type OwnerRow struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	IsMaster     bool      `json:"is_master"`
}

// TableName returns the name of the remote table associated with OwnerRow.
func (o OwnerRow) TableName() string {
	return "owners"
}
