package service

import "github.com/MKhiriev/go-tab-keeper/models"

// TagsToRows adds the remote-only is_default column. Tags created on the
// device are never defaults.
func TagsToRows(tags []models.Tag) []models.TagRow {
	rows := make([]models.TagRow, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, models.TagRow{
			ID:        t.ID,
			Name:      t.Name,
			Color:     t.Color,
			IsDefault: false,
		})
	}
	return rows
}

// OwnersToRows maps owners onto the remote column layout. A missing
// IsMaster becomes false.
func OwnersToRows(owners []models.Owner) []models.OwnerRow {
	rows := make([]models.OwnerRow, 0, len(owners))
	for _, o := range owners {
		isMaster := false
		if o.IsMaster != nil {
			isMaster = *o.IsMaster
		}
		rows = append(rows, models.OwnerRow{
			ID:           o.ID,
			Name:         o.Name,
			PasswordHash: o.PasswordHash,
			CreatedAt:    o.CreatedAt,
			IsMaster:     isMaster,
		})
	}
	return rows
}

// PermissionsToRows flattens the per-owner mapping into its values, in key
// insertion order.
func PermissionsToRows(perms models.PermissionsByOwner) []models.AppPermissions {
	return perms.Values()
}

func identity[S any](s S) S { return s }
