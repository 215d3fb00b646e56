package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func toursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tours",
		Short: "List curated tours",
		Args:  cobra.NoArgs,
		RunE:  runTours,
	}
}

func runTours(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	tours, err := a.catalog.Tours(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, t := range tours {
		fmt.Fprintf(out, "%s (%d min, %s)\n", t.Name, t.Duration, t.Difficulty)
		fmt.Fprintf(out, "  %s\n", t.Description)
		fmt.Fprintf(out, "  stops: %s\n", strings.Join(t.Locations, " "))
	}
	return nil
}
