package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zkmedar/ctcaematch/internal/ctcae"
)

var (
	termsCategory string
	termsSearch   string
)

var termsCmd = &cobra.Command{
	Use:   "terms [name]",
	Short: "Browse the processed CTCAE terminology",
	Long: `Lists CTCAE terms from the processed terminology file. With a name
argument, prints the full record for that term including all grade
descriptions. Use --category to list one system organ class or
--search for a keyword lookup.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repo, err := loadRepository(cfg)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			term := repo.TermByName(args[0])
			if term == nil {
				return fmt.Errorf("no CTCAE term named %q", args[0])
			}
			printTerm(term)
			return nil
		}

		var terms []ctcae.TermRecord
		switch {
		case termsSearch != "":
			terms = repo.SearchTerms(termsSearch)
		case termsCategory != "":
			terms = repo.TermsByCategory(termsCategory)
		default:
			terms = repo.Terms()
		}

		if len(terms) == 0 {
			fmt.Println("No terms found.")
			return nil
		}

		for _, t := range terms {
			fmt.Printf("%-60s %s\n", t.CTCAETerm, t.MedDRASOC)
		}
		fmt.Printf("\n%d term(s), CTCAE v%s\n", len(terms), repo.Version())
		return nil
	},
}

func printTerm(term *ctcae.TermRecord) {
	fmt.Printf("CTCAE Term:  %s\n", term.CTCAETerm)
	fmt.Printf("MedDRA Code: %s\n", term.MedDRACode)
	fmt.Printf("MedDRA SOC:  %s\n", term.MedDRASOC)
	if term.Definition != "" {
		fmt.Printf("Definition:  %s\n", term.Definition)
	}
	if term.NavigationalNote != "" {
		fmt.Printf("Note:        %s\n", term.NavigationalNote)
	}
	if len(term.Grades) > 0 {
		fmt.Println("\nGrades:")
		for _, g := range term.Grades {
			fmt.Printf("  %s: %s\n", g.Grade, ctcae.FormatGradeDescription(g.Description, 200))
		}
	}
}

func init() {
	termsCmd.Flags().StringVar(&termsCategory, "category", "", "filter by MedDRA system organ class")
	termsCmd.Flags().StringVar(&termsSearch, "search", "", "keyword search over names and descriptions")
	rootCmd.AddCommand(termsCmd)
}
