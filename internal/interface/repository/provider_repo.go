package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"allotment-service/internal/domain/entity"
	"allotment-service/internal/domain/repository"
	"allotment-service/pkg/logger"
)

// HTTPProviderRepository fetches reference collections from the allotment
// data provider over HTTP.
type HTTPProviderRepository struct {
	logger  logger.Logger
	baseURL string
	client  *http.Client
}

// NewHTTPProviderRepository creates a new provider repository
func NewHTTPProviderRepository(baseURL string, timeout time.Duration, logger logger.Logger) repository.ProviderRepository {
	return &HTTPProviderRepository{
		logger:  logger,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchAllocations fetches the full allocation row set
func (r *HTTPProviderRepository) FetchAllocations(ctx context.Context) ([]entity.AllocationRow, error) {
	var rows []entity.AllocationRow
	if err := r.getJSON(ctx, "/api/allocation-data", &rows); err != nil {
		return nil, fmt.Errorf("%w: allocations: %v", entity.ErrDataLoad, err)
	}
	r.logger.Info("Fetched allocation data", "rows", len(rows))
	return rows, nil
}

// FetchStationGroups fetches the station-grouping row set
func (r *HTTPProviderRepository) FetchStationGroups(ctx context.Context) ([]entity.StationGroup, error) {
	var groups []entity.StationGroup
	if err := r.getJSON(ctx, "/api/station-data", &groups); err != nil {
		return nil, fmt.Errorf("%w: station groups: %v", entity.ErrDataLoad, err)
	}
	r.logger.Info("Fetched station data", "rows", len(groups))
	return groups, nil
}

func (r *HTTPProviderRepository) getJSON(ctx context.Context, path string, out interface{}) error {
	url := r.baseURL + path
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
