package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoo-visit-planner/internal/domain"
)

func locationsCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List exhibits and facilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocations(cmd, filter)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "Category filter: all, animals, places or dining")
	return cmd
}

func runLocations(cmd *cobra.Command, filter string) error {
	ctx := context.Background()

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	locs, err := a.catalog.ByFilter(ctx, domain.ParseFilter(filter))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(locs) == 0 {
		fmt.Fprintln(out, "No locations found.")
		return nil
	}

	for _, loc := range locs {
		kind := loc.Category
		if loc.Partition == domain.PartitionPlace {
			kind = loc.Type
		}
		fmt.Fprintf(out, "%-12s %-24s %-6s %-14s %3d min\n",
			loc.ID, loc.Name, loc.Partition.Label(), kind, loc.DwellMinutes())
	}
	return nil
}
