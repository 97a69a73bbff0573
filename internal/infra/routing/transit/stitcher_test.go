package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLineGraph(t *testing.T) *Graph {
	t.Helper()

	stations := []Station{
		{ID: "A", Location: Coordinate{Lat: 0, Lng: 0}},
		{ID: "B", Location: Coordinate{Lat: 0, Lng: 0.01}},
		{ID: "C", Location: Coordinate{Lat: 0, Lng: 0.02}},
	}
	graph, diagnostics := BuildGraph(stations, []PresetEdge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
	}, DefaultBuildOptions())
	require.Empty(t, diagnostics)

	return graph
}

func TestStitchRoute_JunctionAppearsOnce(t *testing.T) {
	graph := setupLineGraph(t)

	path, weight, err := StitchRoute(graph, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	ab, ok := graph.Weight("A", "B")
	require.True(t, ok)
	bc, ok := graph.Weight("B", "C")
	require.True(t, ok)
	assert.InDelta(t, ab+bc, weight, 1e-9)
}

func TestStitchRoute_BackAndForth(t *testing.T) {
	graph := setupLineGraph(t)

	path, weight, err := StitchRoute(graph, []string{"A", "C", "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "B", "A"}, path)

	_, oneWay, err := FindPath(graph, "A", "C")
	require.NoError(t, err)
	assert.InDelta(t, 2*oneWay, weight, 1e-9)
}

func TestStitchRoute_RepeatedWaypoint(t *testing.T) {
	graph := setupLineGraph(t)

	path, weight, err := StitchRoute(graph, []string{"A", "A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, path)

	ab, _ := graph.Weight("A", "B")
	assert.InDelta(t, ab, weight, 1e-9)
}

func TestStitchRoute_FirstFailingLeg(t *testing.T) {
	graph, _ := BuildGraph(twoIslands(), nil, DefaultBuildOptions())

	tests := []struct {
		name      string
		waypoints []string
		want      error
		message   string
	}{
		{"unknown in second leg", []string{"A1", "A2", "Nowhere"}, ErrUnknownStation, "leg 2"},
		{"unreachable first leg", []string{"A1", "B1", "Nowhere"}, ErrUnreachable, "leg 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, weight, err := StitchRoute(graph, tt.waypoints)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.message)
			assert.Nil(t, path)
			assert.Zero(t, weight)
		})
	}
}

func TestStitchRoute_TooFewWaypoints(t *testing.T) {
	graph := setupLineGraph(t)

	for _, waypoints := range [][]string{nil, {"A"}} {
		_, _, err := StitchRoute(graph, waypoints)
		assert.ErrorIs(t, err, ErrTooFewWaypoints)
	}
}
