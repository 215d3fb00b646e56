package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/route"
)

func routeCmd() *cobra.Command {
	var tour string
	cmd := &cobra.Command{
		Use:   "route [location-id...]",
		Short: "Print the walking order and itinerary for the given stops",
		Long: "Orders the stops with the nearest-neighbour heuristic starting at the first id " +
			"and prints dwell and walking estimates. Use --tour to plan a curated tour instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, args, tour)
		},
	}
	cmd.Flags().StringVar(&tour, "tour", "", "Plan the stops of a curated tour")
	return cmd
}

func runRoute(cmd *cobra.Command, args []string, tour string) error {
	ctx := context.Background()

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	ids, err := stopIDs(ctx, a, args, tour)
	if err != nil {
		return err
	}

	ordered, unknown, err := planRoute(ctx, a.catalog, ids)
	if len(unknown) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "unknown locations skipped: %s\n", strings.Join(unknown, ", "))
	}
	if err != nil {
		return err
	}

	printItinerary(cmd.OutOrStdout(), route.ComputeItinerary(ordered))
	return nil
}

// stopIDs - идентификаторы из аргументов или из тура
func stopIDs(ctx context.Context, a *app, args []string, tour string) ([]string, error) {
	if tour == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("pass at least one location id or --tour")
		}
		return args, nil
	}
	t, ok, err := a.catalog.TourByName(ctx, tour)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("tour %q not found", tour)
	}
	return t.Locations, nil
}

func printItinerary(out io.Writer, it domain.Itinerary) {
	for _, step := range it.Steps {
		fmt.Fprintf(out, "%2d. %-24s %3d min", step.Order, step.Location.Name, step.DwellMinutes)
		if step.WalkToNext > 0 {
			fmt.Fprintf(out, "  -> walk %d min", step.WalkToNext)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Viewing: %d min, walking: %d min, total: %d min\n", it.TotalDwell, it.TotalWalk, it.Total)
}
