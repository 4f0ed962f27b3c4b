package repository

import (
	"context"

	"allotment-service/internal/domain/entity"
)

// SnapshotRepository caches the last good reference snapshot so a session
// can still be opened while the provider is unreachable.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.ReferenceSnapshot) error
	Latest(ctx context.Context) (*entity.ReferenceSnapshot, error)
}
