package models

// Tag is a colored label as it is held locally.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagRow is the remote representation of a Tag. Tags created on the client
// are never default tags, so IsDefault is always false when produced from a
// local Tag.
type TagRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
}

// TableName returns the name of the remote table associated with TagRow.
func (t TagRow) TableName() string {
	return "tags"
}
