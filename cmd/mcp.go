package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/zkmedar/ctcaematch/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing symptom matching and CTCAE lookup tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repo, err := loadRepository(cfg)
		if err != nil {
			return err
		}

		m, err := buildMatcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "ctcaematch MCP server started on stdio (terms=%d, CTCAE v%s)\n", repo.Count(), repo.Version())

		srv := mcpserver.NewServer(m, repo)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
