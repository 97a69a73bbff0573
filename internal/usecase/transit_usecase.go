package usecase

import (
	"context"

	"transitflow/internal/domain/entity"
)

// OriginAuto asks FindRoute to resolve the origin from a coordinate
const OriginAuto = "auto"

// Coordinate represents a geographic coordinate
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FindRouteInput describes a single route query.
// Origin may be empty, OriginAuto or an unknown name, in which case
// OriginCoordinate is used to pick the nearest station.
type FindRouteInput struct {
	Origin           string
	OriginCoordinate *Coordinate
	Destination      string
}

// StationInput is a station candidate submitted by a client.
// Nil coordinates mean the field was missing.
type StationInput struct {
	Name      string
	Latitude  *float64
	Longitude *float64
}

// SkippedStation explains why a bulk add entry was not added
type SkippedStation struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// AddStationsResult reports the outcome of a bulk add
type AddStationsResult struct {
	Added   []*entity.Station
	Skipped []SkippedStation
}

// TransitUsecase defines the routing service over the station network
type TransitUsecase interface {
	// Initialize loads the stored stations and publishes the first network snapshot
	Initialize(ctx context.Context) error

	// ListStations returns the stations of the current network in load order
	ListStations(ctx context.Context) ([]*entity.Station, error)

	// GetStation returns one station of the current network
	GetStation(ctx context.Context, name string) (*entity.Station, error)

	// FindRoute computes the shortest path to the destination,
	// resolving the origin from a coordinate when needed
	FindRoute(ctx context.Context, input *FindRouteInput) (*entity.Route, error)

	// LookupPrecomputedEta reads the all-pairs table without reconstructing a path
	LookupPrecomputedEta(ctx context.Context, from, to string) (*entity.Eta, error)

	// StitchMultiLegRoute joins shortest paths through every waypoint in order
	StitchMultiLegRoute(ctx context.Context, waypoints []string) (*entity.Route, error)

	// AddStation persists one new station and rebuilds the network
	AddStation(ctx context.Context, input *StationInput) (*entity.Station, error)

	// AddStations persists every valid new station and rebuilds the network once;
	// invalid or duplicate entries are skipped
	AddStations(ctx context.Context, inputs []*StationInput) (*AddStationsResult, error)

	// NetworkStatus describes the current snapshot
	NetworkStatus(ctx context.Context) (*entity.NetworkStatus, error)

	// IsReady returns whether a network snapshot has been published
	IsReady() bool

	// NetworkVersion returns the version of the snapshot currently served
	NetworkVersion() int64
}
