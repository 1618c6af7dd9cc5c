package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	matchDetails string
	matchJSON    bool
)

var matchCmd = &cobra.Command{
	Use:   "match <symptom>",
	Short: "Match a free-text symptom to a CTCAE term and grade",
	Long: `Runs the full matching pipeline for one symptom description: retrieves
similar CTCAE terms and grade descriptions from the vector index, asks
the configured language model to pick the best match, and prints the
standardized result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symptom := strings.TrimSpace(strings.Join(args, " "))
		if symptom == "" {
			return fmt.Errorf("symptom must not be empty")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		m, err := buildMatcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "matching with %s/%s (term_k=%d, grade_k=%d)\n",
				cfg.Provider, cfg.Model, cfg.TermK, cfg.GradeK)
		}

		result := m.Match(cmd.Context(), symptom, matchDetails)

		if matchJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if result.IsError() {
			fmt.Printf("Match failed: %s\n", result.Error)
			if result.RawResponse != "" {
				fmt.Printf("Raw response:\n%s\n", result.RawResponse)
			}
			return nil
		}

		fmt.Printf("Symptom:    %s\n", result.OriginalSymptom)
		if result.Details != "" {
			fmt.Printf("Details:    %s\n", result.Details)
		}
		fmt.Printf("CTCAE Term: %s\n", result.CTCAETerm)
		fmt.Printf("Grade:      %s\n", result.Grade)
		if result.GradeDescription != "" {
			fmt.Printf("Criteria:   %s\n", result.GradeDescription)
		}
		if result.MedDRASOC != "" {
			fmt.Printf("MedDRA SOC: %s\n", result.MedDRASOC)
		}
		if result.Confidence != "" {
			fmt.Printf("Confidence: %s\n", result.Confidence)
		}
		if result.Rationale != "" {
			fmt.Printf("Rationale:  %s\n", result.Rationale)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchDetails, "details", "", "additional clinical context for grading")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "print the raw JSON result")
	rootCmd.AddCommand(matchCmd)
}
