package transit

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCoordinate is returned for non-finite or out-of-range latitude/longitude
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnknownStation is returned when a station id is not part of the graph
	ErrUnknownStation = errors.New("unknown station")

	// ErrUnknownPair is returned when a distance table lookup names a station it never saw
	ErrUnknownPair = errors.New("unknown station pair")

	// ErrUnreachable is returned when no path connects two stations
	ErrUnreachable = errors.New("destination is unreachable")

	// ErrInfiniteDistance is returned by the distance table for disconnected pairs
	ErrInfiniteDistance = errors.New("no route between stations")

	// ErrNoStations is returned when a query needs at least one station
	ErrNoStations = errors.New("no stations available")

	// ErrTooFewWaypoints is returned when a multi-leg route has fewer than two stops
	ErrTooFewWaypoints = errors.New("at least two waypoints required")
)

// EngineConfig holds configuration for the transit engine
type EngineConfig struct {
	WeightDivisor float64 // meters per weight unit
	NeighborCount int     // auto-connected nearest stations per station
}

// DefaultEngineConfig returns the construction constants of the transit network
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		WeightDivisor: DefaultWeightDivisor,
		NeighborCount: DefaultNeighborCount,
	}
}

// Snapshot is an immutable, fully built graph plus its distance table.
// Queries against one snapshot never observe a later rebuild.
type Snapshot struct {
	Version     int64
	BuiltAt     time.Time
	Graph       *Graph
	Table       *DistanceTable
	Diagnostics []Diagnostic
}

// Stations returns the stations of the snapshot in graph order
func (s *Snapshot) Stations() []Station {
	return s.Graph.Stations()
}

// FindPath runs a single-pair shortest path search on this snapshot
func (s *Snapshot) FindPath(origin, destination string) ([]string, float64, error) {
	return FindPath(s.Graph, origin, destination)
}

// Lookup reads a precomputed shortest path weight
func (s *Snapshot) Lookup(a, b string) (float64, error) {
	return s.Table.Lookup(a, b)
}

// Nearest finds the station closest to coord
func (s *Snapshot) Nearest(coord Coordinate) (*NearestResult, error) {
	return s.Graph.Nearest(coord)
}

// Stitch composes a multi-waypoint route
func (s *Snapshot) Stitch(waypoints []string) ([]string, float64, error) {
	return StitchRoute(s.Graph, waypoints)
}

// Engine owns the current transit snapshot.
// Rebuild constructs a new snapshot off to the side and publishes it with one atomic swap,
// so readers never need a lock. Callers must serialize Rebuild themselves.
type Engine struct {
	config  EngineConfig
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
	ready   atomic.Bool
}

// NewEngine creates an engine holding an empty snapshot
func NewEngine(config EngineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	engine := &Engine{
		config: config,
		logger: logger,
	}

	graph, _ := BuildGraph(nil, nil, engine.buildOptions())
	table, _ := BuildDistanceTable(context.Background(), graph)
	engine.current.Store(&Snapshot{
		Graph: graph,
		Table: table,
	})

	return engine
}

func (e *Engine) buildOptions() BuildOptions {
	return BuildOptions{
		WeightDivisor: e.config.WeightDivisor,
		NeighborCount: e.config.NeighborCount,
	}
}

// Rebuild builds a graph and distance table from scratch and makes them current.
// On error the previous snapshot stays in place.
func (e *Engine) Rebuild(ctx context.Context, stations []Station, presetEdges []PresetEdge) (*Snapshot, error) {
	start := time.Now()

	graph, diagnostics := BuildGraph(stations, presetEdges, e.buildOptions())
	if components := graph.Components(); len(components) > 1 {
		for _, component := range components[1:] {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticIsolatedComponent,
				From:    component[0],
				Message: fmt.Sprintf("%d station(s) unreachable from %s", len(component), components[0][0]),
			})
		}
	}

	table, err := BuildDistanceTable(ctx, graph)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rebuild transit network")
	}

	snapshot := &Snapshot{
		Version:     e.current.Load().Version + 1,
		BuiltAt:     time.Now(),
		Graph:       graph,
		Table:       table,
		Diagnostics: diagnostics,
	}
	e.current.Store(snapshot)
	e.ready.Store(true)

	for _, diagnostic := range diagnostics {
		e.logger.Warn("Transit network build diagnostic",
			slog.String("kind", string(diagnostic.Kind)),
			slog.String("message", diagnostic.Message),
		)
	}

	e.logger.Info("Transit network rebuilt",
		slog.Int64("version", snapshot.Version),
		slog.Int("stations", graph.Len()),
		slog.Int("edges", graph.EdgeCount()),
		slog.Int("diagnostics", len(diagnostics)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return snapshot, nil
}

// Snapshot returns the current snapshot; it is never nil
func (e *Engine) Snapshot() *Snapshot {
	return e.current.Load()
}

// IsReady reports whether at least one rebuild has completed
func (e *Engine) IsReady() bool {
	return e.ready.Load()
}
