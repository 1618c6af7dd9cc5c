package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zkmedar/ctcaematch/internal/ctcae"
)

var processInput string

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process the CTCAE source file into the terminology JSON",
	Long: `Parses the downloaded CTCAE CSV into the processed terminology file
(ctcae_processed.json): one record per term with its MedDRA codes,
definition, and the defined severity grade descriptions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		input := processInput
		if input == "" {
			input = filepath.Join(cfg.DataDir, "CTCAE_v5.0.csv")
		}

		set, err := ctcae.ProcessCSVFile(input, "5.0")
		if err != nil {
			return err
		}

		out := terminologyPath(cfg)
		if err := set.Save(out); err != nil {
			return err
		}

		fmt.Printf("Processed %d CTCAE terms with %d categories\n", len(set.Terms), len(set.Categories))
		fmt.Printf("Output saved to %s\n", out)
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processInput, "input", "", "CTCAE CSV file (default <data_dir>/CTCAE_v5.0.csv)")
	rootCmd.AddCommand(processCmd)
}
