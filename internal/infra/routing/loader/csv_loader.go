package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"transitflow/internal/infra/routing/transit"

	"github.com/pkg/errors"
)

// CSVLoader loads the curated preset edge list from a CSV file
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a loader for the given file.
// An empty path means the built-in preset edges are used.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// LoadPresetEdges reads preset edges from the configured file.
// Expected CSV format: from,to
// A missing file falls back to DefaultPresetEdges.
func (l *CSVLoader) LoadPresetEdges() ([]transit.PresetEdge, error) {
	if l.path == "" {
		return DefaultPresetEdges(), nil
	}

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPresetEdges(), nil
		}

		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return ReadPresetEdges(file)
}

// ReadPresetEdges parses a from,to CSV stream; the first row is a header
func ReadPresetEdges(r io.Reader) ([]transit.PresetEdge, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	// Skip header row
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []transit.PresetEdge{}, nil
		}

		return nil, errors.WithStack(err)
	}

	edges := []transit.PresetEdge{}
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < 2 {
			return nil, errors.Errorf("invalid preset edge format at line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		from := strings.TrimSpace(record[0])
		to := strings.TrimSpace(record[1])
		if from == "" || to == "" {
			return nil, errors.Errorf("invalid preset edge at line %d: empty station name", lineNum)
		}

		edges = append(edges, transit.PresetEdge{From: from, To: to})
	}

	return edges, nil
}
