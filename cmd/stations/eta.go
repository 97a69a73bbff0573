package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

func runEta(ctx context.Context, out io.Writer, stationsPath, edgesPath, from, to string) error {
	snapshot, err := loadNetwork(ctx, stationsPath, edgesPath)
	if err != nil {
		return err
	}

	path, weight, err := snapshot.FindPath(from, to)
	if err != nil {
		return errors.Wrapf(err, "no route from %s to %s", from, to)
	}

	precomputed, err := snapshot.Lookup(from, to)
	if err != nil {
		return errors.Wrap(err, "precomputed lookup failed")
	}

	fmt.Fprintf(out, "Route:          %s\n", strings.Join(path, " -> "))
	fmt.Fprintf(out, "Dijkstra:       %.2f min\n", weight)
	fmt.Fprintf(out, "Floyd-Warshall: %.2f min\n", precomputed)

	return nil
}
