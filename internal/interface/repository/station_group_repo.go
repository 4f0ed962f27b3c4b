package repository

import (
	"context"
	"time"

	"allotment-service/internal/domain/entity"
	"allotment-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormStationGroupRepository implements the StationGroupRepository interface
type GormStationGroupRepository struct {
	db *gorm.DB
}

// NewGormStationGroupRepository creates a new GORM station-group repository
func NewGormStationGroupRepository(db *gorm.DB) repository.StationGroupRepository {
	return &GormStationGroupRepository{
		db: db,
	}
}

// StationGroups GORM model for database mapping
type StationGroups struct {
	ID        uint           `gorm:"primaryKey"`
	GroupName string         `gorm:"column:group_name"`
	Sector    string         `gorm:"column:sector;index:idx_station_sector"`
	Station   string         `gorm:"column:station;index:idx_station_sector"`
	Note      string         `gorm:"column:note"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (StationGroups) TableName() string {
	return "m_station_groups"
}

// ListAll returns every station-group row
func (r *GormStationGroupRepository) ListAll(ctx context.Context) ([]entity.StationGroup, error) {
	var rows []StationGroups
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	groups := make([]entity.StationGroup, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, entity.StationGroup{
			Group:   row.GroupName,
			Sector:  row.Sector,
			Station: row.Station,
			Note:    row.Note,
		})
	}
	return groups, nil
}
