// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"transitflow/internal/domain/entity"
	"transitflow/internal/errors"
)

// ErrStationConflict is returned when a store already holds a station with the same name.
var ErrStationConflict = errors.New("station already stored")

// StationRepository defines the durable record store of stations.
type StationRepository interface {
	// List returns every stored station in insertion order.
	List(ctx context.Context) ([]*entity.Station, error)

	// Append stores new stations after the existing ones.
	// Either all stations are stored or none are.
	Append(ctx context.Context, stations []*entity.Station) error
}
