package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zooplan",
		Short:         "Plan a walking route through the zoo",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to the env file with configuration")
	root.AddCommand(locationsCmd())
	root.AddCommand(toursCmd())
	root.AddCommand(routeCmd())
	root.AddCommand(renderCmd())
	root.AddCommand(plansCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(versionCmd())
	return root
}
