package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/okang-lab/Kaffesa-Cargo-Print/internal/tool"
)

func newMCPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the parse_shipments tool over stdio (Model Context Protocol)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			logger.Debug("mcp server starting", "version", version)
			return tool.NewServer(version).Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
