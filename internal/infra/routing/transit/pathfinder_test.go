package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDehradunGraph(t *testing.T) *Graph {
	t.Helper()

	graph, _ := BuildGraph(dehradunStations(), dehradunEdges(), DefaultBuildOptions())
	require.Equal(t, len(dehradunStations()), graph.Len())

	return graph
}

func TestFindPath_SameStation(t *testing.T) {
	graph := setupDehradunGraph(t)

	for _, station := range graph.Stations() {
		path, weight, err := FindPath(graph, station.ID, station.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{station.ID}, path)
		assert.Equal(t, 0.0, weight)
	}
}

func TestFindPath_TwoStations(t *testing.T) {
	x := Station{ID: "X", Location: Coordinate{Lat: 0, Lng: 0}}
	y := Station{ID: "Y", Location: Coordinate{Lat: 0, Lng: 0.01}}
	graph, _ := BuildGraph([]Station{x, y}, []PresetEdge{{From: "X", To: "Y"}}, DefaultBuildOptions())

	path, weight, err := FindPath(graph, "X", "Y")
	require.NoError(t, err)

	meters, err := Distance(x.Location, y.Location)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, path)
	assert.InDelta(t, meters/100, weight, 1e-9)
}

func TestFindPath_PrefersShorterDetour(t *testing.T) {
	// A-C is long, A-B-C is shorter in total
	stations := []Station{
		{ID: "A", Location: Coordinate{Lat: 0, Lng: 0}},
		{ID: "B", Location: Coordinate{Lat: 0.001, Lng: 0.005}},
		{ID: "C", Location: Coordinate{Lat: 0, Lng: 0.01}},
	}
	graph := newGraph(len(stations))
	for _, s := range stations {
		graph.addNode(s)
	}
	graph.addEdge(0, 2, 50, EdgeSourcePreset)
	graph.addEdge(0, 1, 10, EdgeSourcePreset)
	graph.addEdge(1, 2, 10, EdgeSourcePreset)

	path, weight, err := FindPath(graph, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Equal(t, 20.0, weight)
}

func TestFindPath_UnknownStation(t *testing.T) {
	graph := setupDehradunGraph(t)

	tests := []struct {
		name        string
		origin      string
		destination string
	}{
		{"unknown origin", "Nowhere", "ISBT"},
		{"unknown destination", "ISBT", "Nowhere"},
		{"both unknown", "Nowhere", "Elsewhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, weight, err := FindPath(graph, tt.origin, tt.destination)
			assert.ErrorIs(t, err, ErrUnknownStation)
			assert.Nil(t, path)
			assert.Zero(t, weight)
		})
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	graph, _ := BuildGraph(twoIslands(), nil, DefaultBuildOptions())

	path, _, err := FindPath(graph, "A1", "B1")
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Nil(t, path)

	path, _, err = FindPath(graph, "A1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "A1", path[0])
	assert.Equal(t, "A3", path[len(path)-1])
}

func TestFindPath_PathFollowsEdges(t *testing.T) {
	graph := setupDehradunGraph(t)

	path, weight, err := FindPath(graph, "Sudhowala", "Mussoorie")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)

	sum := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := graph.Weight(path[i-1], path[i])
		require.True(t, ok, "%s -> %s is not an edge", path[i-1], path[i])
		sum += w
	}
	assert.InDelta(t, weight, sum, 1e-9)
}
