package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ctcaematch",
	Short: "Standardize free-text symptoms to CTCAE terms and severity grades",
	Long: `ctcaematch maps free-text symptom descriptions to standardized CTCAE
adverse-event terminology. It indexes the CTCAE term list into a local
vector database and combines semantic retrieval with a language model
to return the matched term, severity grade, and rationale. It can run
as a CLI, an HTTP API, or an MCP server for AI agents.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".ctcaematch.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
