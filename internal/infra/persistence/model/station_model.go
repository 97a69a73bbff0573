package model

import (
	"time"
)

// StationModel is the GORM-specific struct for the 'stations' table.
// Position keeps the insertion order the graph builder depends on.
type StationModel struct {
	Name      string  `gorm:"type:varchar(255);primaryKey"`
	Latitude  float64 `gorm:"column:lat;not null"`
	Longitude float64 `gorm:"column:lon;not null"`
	Position  int64   `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StationModel) TableName() string {
	return "stations"
}
