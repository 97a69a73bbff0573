package service

import (
	"context"
	"time"
)

// NetworkChangedEvent announces a newly published transit network snapshot
type NetworkChangedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Version       int64     `json:"version"`
	StationCount  int       `json:"station_count"`
	EdgeCount     int       `json:"edge_count"`
	AddedStations []string  `json:"added_stations"`
	BuiltAt       time.Time `json:"built_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNetworkChanged publishes a network change after a successful rebuild
	PublishNetworkChanged(ctx context.Context, event *NetworkChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
