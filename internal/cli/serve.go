package cli

import (
	"github.com/spf13/cobra"

	"csiface/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for IDE integration",
	Long: `Start an MCP server on stdio.

Exposes the refactoring operations (extract_interface, add_member,
implement_interface, list_interfaces) as tools for MCP-compatible editor
agents. The server runs until stdin closes.`,
	Run: func(cmd *cobra.Command, args []string) {
		mcp.NewServer(buildVersion).Run()
	},
}
