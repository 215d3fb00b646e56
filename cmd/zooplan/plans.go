package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func plansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage saved visit plans",
	}
	cmd.AddCommand(plansListCmd())
	cmd.AddCommand(plansDeleteCmd())
	return cmd
}

func plansListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans, newest first",
		Args:  cobra.NoArgs,
		RunE:  runPlansList,
	}
}

func plansDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlansDelete,
	}
}

func runPlansList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	repo, closeStore, err := a.openPlans(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	saved, err := repo.List(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(saved) == 0 {
		fmt.Fprintln(out, "No saved plans.")
		return nil
	}

	for i := len(saved) - 1; i >= 0; i-- {
		p := saved[i]
		fmt.Fprintf(out, "%d  %s  %s  %d visitors  %d stops\n", p.ID, p.Date, p.Name, p.Visitors, len(p.Locations))
		if len(p.Route) > 0 {
			fmt.Fprintf(out, "    route: %s\n", strings.Join(p.Route, " -> "))
		}
		if p.Notes != "" {
			fmt.Fprintf(out, "    notes: %s\n", p.Notes)
		}
	}
	return nil
}

func runPlansDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid plan id %q", args[0])
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	repo, closeStore, err := a.openPlans(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, ok, err := repo.Get(ctx, id); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("plan %d not found", id)
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %d\n", id)
	return nil
}
