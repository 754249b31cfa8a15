package store

import (
	"context"

	"github.com/MKhiriev/go-tab-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSnapshotRepository persists the latest JSON snapshot of each
// collection on the device so local state survives restarts.
type LocalSnapshotRepository interface {
	SaveSnapshot(ctx context.Context, collection models.Collection, payload []byte) error
	// LoadSnapshot returns ErrSnapshotNotFound when the collection was never
	// saved.
	LoadSnapshot(ctx context.Context, collection models.Collection) ([]byte, error)
}
