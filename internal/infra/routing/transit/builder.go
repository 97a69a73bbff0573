package transit

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	// DefaultWeightDivisor converts meters into the approximate travel-time unit used as edge weight
	DefaultWeightDivisor = 100.0

	// DefaultNeighborCount is how many nearest stations every station is auto-connected to
	DefaultNeighborCount = 2
)

// PresetEdge is a curated connection between two station ids
type PresetEdge struct {
	From string
	To   string
}

// DiagnosticKind classifies a non-fatal build problem
type DiagnosticKind string

const (
	DiagnosticDuplicateStation  DiagnosticKind = "duplicate_station"
	DiagnosticInvalidStation    DiagnosticKind = "invalid_station"
	DiagnosticMissingStation    DiagnosticKind = "missing_station"
	DiagnosticSelfLoop          DiagnosticKind = "self_loop"
	DiagnosticDuplicatePreset   DiagnosticKind = "duplicate_preset_edge"
	DiagnosticIsolatedComponent DiagnosticKind = "isolated_component"
)

// Diagnostic records input that was skipped while building a graph
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	From    string         `json:"from,omitempty"`
	To      string         `json:"to,omitempty"`
	Message string         `json:"message"`
}

// BuildOptions tunes graph construction
type BuildOptions struct {
	WeightDivisor float64
	NeighborCount int
}

// DefaultBuildOptions returns the weight divisor and neighbor count used in production
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		WeightDivisor: DefaultWeightDivisor,
		NeighborCount: DefaultNeighborCount,
	}
}

func (o BuildOptions) normalized() BuildOptions {
	if o.WeightDivisor <= 0 {
		o.WeightDivisor = DefaultWeightDivisor
	}
	if o.NeighborCount < 0 {
		o.NeighborCount = DefaultNeighborCount
	}

	return o
}

// BuildGraph assembles the undirected transit graph.
//
// Stations become nodes in input order. Preset edges referencing unknown stations are skipped
// and reported. Every station is then connected to its NeighborCount nearest stations, with
// distance ties going to the station seen first in the input.
func BuildGraph(stations []Station, presetEdges []PresetEdge, opts BuildOptions) (*Graph, []Diagnostic) {
	opts = opts.normalized()
	graph := newGraph(len(stations))
	var diagnostics []Diagnostic

	for _, station := range stations {
		if err := station.Location.Validate(); err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticInvalidStation,
				From:    station.ID,
				Message: err.Error(),
			})

			continue
		}

		if !graph.addNode(station) {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticDuplicateStation,
				From:    station.ID,
				Message: fmt.Sprintf("station %q already defined, keeping first occurrence", station.ID),
			})
		}
	}

	diagnostics = append(diagnostics, addPresetEdges(graph, presetEdges, opts)...)
	connectNearestNeighbors(graph, opts)

	return graph, diagnostics
}

func addPresetEdges(graph *Graph, presetEdges []PresetEdge, opts BuildOptions) []Diagnostic {
	var diagnostics []Diagnostic

	for _, edge := range presetEdges {
		from, okFrom := graph.index[edge.From]
		to, okTo := graph.index[edge.To]
		if !okFrom || !okTo {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticMissingStation,
				From:    edge.From,
				To:      edge.To,
				Message: fmt.Sprintf("skipping %s -> %s: station data missing", edge.From, edge.To),
			})

			continue
		}

		if from == to {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticSelfLoop,
				From:    edge.From,
				To:      edge.To,
				Message: fmt.Sprintf("skipping %s -> %s: self-loop", edge.From, edge.To),
			})

			continue
		}

		weight := distanceMeters(graph.stations[from].Location, graph.stations[to].Location) / opts.WeightDivisor
		if !graph.addEdge(from, to, weight, EdgeSourcePreset) {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    DiagnosticDuplicatePreset,
				From:    edge.From,
				To:      edge.To,
				Message: fmt.Sprintf("preset edge %s -> %s listed more than once", edge.From, edge.To),
			})
		}
	}

	return diagnostics
}

type candidate struct {
	idx      int
	distance float64
}

func connectNearestNeighbors(graph *Graph, opts BuildOptions) {
	if opts.NeighborCount == 0 {
		return
	}

	candidates := make([]candidate, 0, graph.Len())
	for base := range graph.stations {
		candidates = candidates[:0]
		for other := range graph.stations {
			if other == base {
				continue
			}

			candidates = append(candidates, candidate{
				idx:      other,
				distance: distanceMeters(graph.stations[base].Location, graph.stations[other].Location),
			})
		}

		// Stable sort keeps input order among equal distances
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return cmp.Compare(a.distance, b.distance)
		})

		for _, nearest := range candidates[:min(opts.NeighborCount, len(candidates))] {
			graph.addEdge(base, nearest.idx, nearest.distance/opts.WeightDivisor, EdgeSourceAuto)
		}
	}
}
