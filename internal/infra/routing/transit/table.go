package transit

import (
	"context"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// DistanceTable holds all-pairs shortest path weights in a flat row-major matrix.
// Rows and columns use the station indices of the graph it was built from.
type DistanceTable struct {
	ids   []string
	index map[string]int
	dist  []float64
}

// BuildDistanceTable runs Floyd-Warshall over the graph in O(V^3).
// The context is checked once per intermediate node so callers can bound a large rebuild.
func BuildDistanceTable(ctx context.Context, graph *Graph) (*DistanceTable, error) {
	size := graph.Len()
	table := &DistanceTable{
		ids:   make([]string, size),
		index: make(map[string]int, size),
		dist:  make([]float64, size*size),
	}

	for idx, station := range graph.stations {
		table.ids[idx] = station.ID
		table.index[station.ID] = idx
	}

	inf := math.Inf(1)
	for cell := range table.dist {
		table.dist[cell] = inf
	}
	for idx := range size {
		table.dist[idx*size+idx] = 0
	}
	for from, neighbors := range graph.adjList {
		for _, edge := range neighbors {
			table.dist[from*size+edge.to] = edge.weight
		}
	}

	for via := range size {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "distance table build canceled")
		}

		viaRow := table.dist[via*size : (via+1)*size]
		for from := range size {
			fromVia := table.dist[from*size+via]
			if math.IsInf(fromVia, 1) {
				continue
			}

			fromRow := table.dist[from*size : (from+1)*size]
			for to, viaTo := range viaRow {
				if candidate := fromVia + viaTo; candidate < fromRow[to] {
					fromRow[to] = candidate
				}
			}
		}
	}

	return table, nil
}

// Lookup returns the precomputed shortest path weight between a and b
func (t *DistanceTable) Lookup(a, b string) (float64, error) {
	from, okFrom := t.index[a]
	to, okTo := t.index[b]
	if !okFrom || !okTo {
		return 0, errors.Wrapf(ErrUnknownPair, "%s -> %s", a, b)
	}

	weight := t.dist[from*len(t.ids)+to]
	if math.IsInf(weight, 1) {
		return 0, errors.Wrapf(ErrInfiniteDistance, "%s -> %s", a, b)
	}

	return weight, nil
}

// Size returns the number of stations covered by the table
func (t *DistanceTable) Size() int {
	return len(t.ids)
}

// Stations returns the station ids in row order
func (t *DistanceTable) Stations() []string {
	return slices.Clone(t.ids)
}
