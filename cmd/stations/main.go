package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate: Build the network from a station file and report problems
// - eta:      Print the shortest path and precomputed ETA between two stations

const (
	defaultStationsPath = "data/stations.json"
	defaultEdgesPath    = "data/preset_edges.csv"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	etaCmd := flag.NewFlagSet("eta", flag.ExitOnError)

	// validate parameters
	validateStations := validateCmd.String("stations", defaultStationsPath, "JSON station list")
	validateEdges := validateCmd.String("edges", defaultEdgesPath, "from,to CSV of preset edges")
	validateStrict := validateCmd.Bool("strict", false, "Treat build diagnostics as failures")

	// eta parameters
	etaStations := etaCmd.String("stations", defaultStationsPath, "JSON station list")
	etaEdges := etaCmd.String("edges", defaultEdgesPath, "from,to CSV of preset edges")
	etaFrom := etaCmd.String("from", "", "Origin station")
	etaTo := etaCmd.String("to", "", "Destination station")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := stationsFlags{
		Validate: validateFlags{
			cmd:      validateCmd,
			stations: validateStations,
			edges:    validateEdges,
			strict:   validateStrict,
		},
		Eta: etaFlags{
			cmd:      etaCmd,
			stations: etaStations,
			edges:    etaEdges,
			from:     etaFrom,
			to:       etaTo,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type stationsFlags struct {
	Validate validateFlags
	Eta      etaFlags
}

type validateFlags struct {
	cmd      *flag.FlagSet
	stations *string
	edges    *string
	strict   *bool
}

type etaFlags struct {
	cmd      *flag.FlagSet
	stations *string
	edges    *string
	from     *string
	to       *string
}

func runSubcommand(ctx context.Context, flags *stationsFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(ctx, flags)
	case "eta":
		return handleEta(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(ctx context.Context, flags *stationsFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(ctx, os.Stdout, *flags.Validate.stations, *flags.Validate.edges, *flags.Validate.strict)
}

func handleEta(ctx context.Context, flags *stationsFlags) error {
	if err := flags.Eta.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse eta flags")
	}

	if *flags.Eta.from == "" || *flags.Eta.to == "" {
		return errors.New("--from and --to flags are required for eta command")
	}

	return runEta(ctx, os.Stdout, *flags.Eta.stations, *flags.Eta.edges, *flags.Eta.from, *flags.Eta.to)
}

func printUsage() {
	fmt.Println("Usage: stations <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Build the network and report diagnostics")
	fmt.Println("  eta         Print route and ETA between two stations")
	fmt.Println("")
	fmt.Println("Use 'stations <command> -h' for more information about a command.")
}
