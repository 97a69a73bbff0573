package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

func runValidate(ctx context.Context, out io.Writer, stationsPath, edgesPath string, strict bool) error {
	fmt.Fprintf(out, "Validating %s with edges from %s\n", stationsPath, edgesPath)

	snapshot, err := loadNetwork(ctx, stationsPath, edgesPath)
	if err != nil {
		return err
	}

	graph := snapshot.Graph
	fmt.Fprintf(out, "  Stations:   %d\n", graph.Len())
	fmt.Fprintf(out, "  Edges:      %d\n", graph.EdgeCount())
	fmt.Fprintf(out, "  Components: %d\n", len(graph.Components()))

	if graph.Len() == 0 {
		return errors.New("station list is empty")
	}

	if len(snapshot.Diagnostics) == 0 {
		fmt.Fprintln(out, "Validation passed")

		return nil
	}

	fmt.Fprintf(out, "\n%d diagnostics:\n", len(snapshot.Diagnostics))
	for _, d := range snapshot.Diagnostics {
		fmt.Fprintf(out, "  [%s] %s\n", d.Kind, d.Message)
	}

	if strict {
		return errors.Errorf("%d diagnostics found", len(snapshot.Diagnostics))
	}

	return nil
}
