package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"transitflow/internal/infra/routing/transit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoader_LoadPresetEdges(t *testing.T) {
	tmpDir := t.TempDir()

	edgesCSV := `from,to
ISBT,Majra
Majra, Subhash Nagar
"Clock Tower",Mussoorie
`
	path := filepath.Join(tmpDir, "preset_edges.csv")
	err := os.WriteFile(path, []byte(edgesCSV), 0644)
	require.NoError(t, err)

	edges, err := NewCSVLoader(path).LoadPresetEdges()
	require.NoError(t, err)

	assert.Equal(t, []transit.PresetEdge{
		{From: "ISBT", To: "Majra"},
		{From: "Majra", To: "Subhash Nagar"},
		{From: "Clock Tower", To: "Mussoorie"},
	}, edges)
}

func TestCSVLoader_MissingFileUsesDefaults(t *testing.T) {
	loader := NewCSVLoader(filepath.Join(t.TempDir(), "nonexistent.csv"))

	edges, err := loader.LoadPresetEdges()
	require.NoError(t, err)
	assert.Equal(t, DefaultPresetEdges(), edges)

	edges, err = NewCSVLoader("").LoadPresetEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 19)
}

func TestReadPresetEdges_HeaderOnly(t *testing.T) {
	edges, err := ReadPresetEdges(strings.NewReader("from,to\n"))
	require.NoError(t, err)
	assert.Empty(t, edges)

	edges, err = ReadPresetEdges(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestReadPresetEdges_InvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"single column", "from,to\nISBT\n"},
		{"empty name", "from,to\nISBT,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPresetEdges(strings.NewReader(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPresetEdges_NoSelfLoops(t *testing.T) {
	for _, edge := range DefaultPresetEdges() {
		assert.NotEqual(t, edge.From, edge.To)
	}
}
