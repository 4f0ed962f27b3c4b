package repository

import (
	"context"

	"allotment-service/internal/domain/entity"
)

// ProviderRepository fetches the two read-only reference collections from
// the external allotment data provider.
type ProviderRepository interface {
	FetchAllocations(ctx context.Context) ([]entity.AllocationRow, error)
	FetchStationGroups(ctx context.Context) ([]entity.StationGroup, error)
}
