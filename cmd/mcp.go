package cmd

import (
	"github.com/faithboard/faithboard/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Faithboard MCP server",
	Long:  `Launch an MCP server on stdio that lets AI agents read the dashboard statistics and charts via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Emojis and file notices go to stderr, so stdio stays clean for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, newProvider(cfg))
	},
}
