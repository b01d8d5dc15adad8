package cmd

import (
	"github.com/spf13/cobra"

	"movetest/internal/backend"
	"movetest/internal/mcpserver"
)

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-serve",
		Short: "Serve the test runner as an MCP tool over stdio",
		Long: `mcp-serve starts a Model Context Protocol server exposing
run_move_unit_tests as a single tool, so an MCP-aware agent can submit a
test plan manifest and receive the same pass/fail statistics movetest run
prints to a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcpserver.New(backend.UnconfiguredVM{})
			return srv.Start(cmd.Context())
		},
	}
}
