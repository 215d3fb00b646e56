package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zoo-visit-planner/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	server := mcp.NewServer(a.catalog, a.mapUseCase(), version, a.log)
	return server.Run(ctx, &sdk.StdioTransport{})
}
