package repository

import (
	"context"

	"allotment-service/internal/domain/entity"
)

// StationGroupRepository serves station-grouping master data for
// deployments that load the allotment workbook into a database instead of
// the HTTP provider.
type StationGroupRepository interface {
	ListAll(ctx context.Context) ([]entity.StationGroup, error)
}
