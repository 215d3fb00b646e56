package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func renderCmd() *cobra.Command {
	var (
		output string
		tour   string
		width  float64
		dpr    float64
	)
	cmd := &cobra.Command{
		Use:   "render [location-id...]",
		Short: "Render the planned route as an SVG map",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, tour, output, width, dpr)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "map.svg", "Output file, - for stdout")
	cmd.Flags().StringVar(&tour, "tour", "", "Render the stops of a curated tour")
	cmd.Flags().Float64Var(&width, "width", 0, "Display width in logical pixels, 0 for the configured default")
	cmd.Flags().Float64Var(&dpr, "dpr", 1, "Device pixel ratio, capped at 2")
	return cmd
}

func runRender(cmd *cobra.Command, args []string, tour, output string, width, dpr float64) error {
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

	svg, err := a.mapUseCase().RenderRoute(ctx, ordered, width, dpr)
	if err != nil {
		return err
	}

	if output == "-" {
		_, err = cmd.OutOrStdout().Write(svg)
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	a.log.Info("Map rendered",
		zap.String("output", output),
		zap.Int("stops", len(ordered)),
		zap.Int("bytes", len(svg)))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d stops)\n", output, len(ordered))
	return nil
}
