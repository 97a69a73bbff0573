package transit

import (
	"slices"
)

// EdgeSource tells which construction phase created an edge
type EdgeSource string

const (
	// EdgeSourcePreset marks edges taken from the curated edge list
	EdgeSourcePreset EdgeSource = "preset"
	// EdgeSourceAuto marks edges added by nearest-neighbor augmentation
	EdgeSourceAuto EdgeSource = "auto"
)

// Station is a named node of the transit graph
type Station struct {
	ID       string
	Location Coordinate
}

// Edge is an undirected weighted connection between two stations
type Edge struct {
	From   string
	To     string
	Weight float64
	Source EdgeSource
}

type neighbor struct {
	to     int
	weight float64
}

// pairKey identifies an unordered station pair, lo < hi
type pairKey struct {
	lo int
	hi int
}

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Graph is an undirected weighted graph over stations.
// Each station gets a stable integer index (its position in Stations) at build time.
// A Graph is only mutated while it is being built and is read-only afterwards.
type Graph struct {
	stations []Station
	index    map[string]int
	adjList  [][]neighbor
	edges    []Edge
	edgeSet  map[pairKey]float64
}

func newGraph(capacity int) *Graph {
	return &Graph{
		stations: make([]Station, 0, capacity),
		index:    make(map[string]int, capacity),
		adjList:  make([][]neighbor, 0, capacity),
		edgeSet:  make(map[pairKey]float64),
	}
}

// addNode returns false when a station with the same id already exists
func (g *Graph) addNode(station Station) bool {
	if _, exists := g.index[station.ID]; exists {
		return false
	}

	g.index[station.ID] = len(g.stations)
	g.stations = append(g.stations, station)
	g.adjList = append(g.adjList, nil)

	return true
}

// addEdge is a no-op for self-loops and for pairs that are already connected
func (g *Graph) addEdge(a, b int, weight float64, source EdgeSource) bool {
	if a == b {
		return false
	}

	key := newPairKey(a, b)
	if _, exists := g.edgeSet[key]; exists {
		return false
	}

	g.edgeSet[key] = weight
	g.adjList[a] = append(g.adjList[a], neighbor{to: b, weight: weight})
	g.adjList[b] = append(g.adjList[b], neighbor{to: a, weight: weight})
	g.edges = append(g.edges, Edge{
		From:   g.stations[a].ID,
		To:     g.stations[b].ID,
		Weight: weight,
		Source: source,
	})

	return true
}

// Len returns the number of stations
func (g *Graph) Len() int {
	return len(g.stations)
}

// EdgeCount returns the number of undirected edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Stations returns the stations in index order
func (g *Graph) Stations() []Station {
	return slices.Clone(g.stations)
}

// Edges returns the edges in insertion order
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// Station returns the station with the given id
func (g *Graph) Station(id string) (Station, bool) {
	idx, ok := g.index[id]
	if !ok {
		return Station{}, false
	}

	return g.stations[idx], true
}

// HasStation reports whether id is a node of the graph
func (g *Graph) HasStation(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Weight returns the weight of the edge between a and b, if any
func (g *Graph) Weight(a, b string) (float64, bool) {
	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return 0, false
	}

	weight, ok := g.edgeSet[newPairKey(ia, ib)]

	return weight, ok
}

// Degree returns the number of edges incident to id
func (g *Graph) Degree(id string) int {
	idx, ok := g.index[id]
	if !ok {
		return 0
	}

	return len(g.adjList[idx])
}

// Neighbors returns the ids adjacent to id in edge insertion order
func (g *Graph) Neighbors(id string) []string {
	idx, ok := g.index[id]
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(g.adjList[idx]))
	for _, n := range g.adjList[idx] {
		ids = append(ids, g.stations[n.to].ID)
	}

	return ids
}

// Components groups station ids by connected component, ordered by first member index
func (g *Graph) Components() [][]string {
	seen := make([]bool, len(g.stations))
	var components [][]string

	for start := range g.stations {
		if seen[start] {
			continue
		}

		var component []string
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, g.stations[current].ID)

			for _, n := range g.adjList[current] {
				if !seen[n.to] {
					seen[n.to] = true
					stack = append(stack, n.to)
				}
			}
		}
		components = append(components, component)
	}

	return components
}
