package main

import (
	"context"
	"io"
	"log/slog"

	"transitflow/internal/infra/persistence/jsonfile"
	"transitflow/internal/infra/routing/loader"
	"transitflow/internal/infra/routing/transit"

	"github.com/pkg/errors"
)

// loadNetwork reads a station file and an edge list and builds one snapshot from them.
func loadNetwork(ctx context.Context, stationsPath, edgesPath string) (*transit.Snapshot, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	stored, err := jsonfile.NewStationRepository(stationsPath, logger).List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stations")
	}

	edges, err := loader.NewCSVLoader(edgesPath).LoadPresetEdges()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preset edges")
	}

	stations := make([]transit.Station, len(stored))
	for i, station := range stored {
		stations[i] = transit.Station{
			ID:       station.Name,
			Location: transit.Coordinate{Lat: station.Latitude, Lng: station.Longitude},
		}
	}

	snapshot, err := transit.NewEngine(transit.DefaultEngineConfig(), logger).Rebuild(ctx, stations, edges)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build network")
	}

	return snapshot, nil
}
