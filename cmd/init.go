package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zkmedar/ctcaematch/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ctcaematch configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose the LLM provider, models, and data directory, and generates a .ctcaematch.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
