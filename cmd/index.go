package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zkmedar/ctcaematch/internal/indexer"
	"github.com/zkmedar/ctcaematch/internal/progress"
)

var indexReset bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the vector index from the processed terminology",
	Long: `Embeds every CTCAE term and grade description into the local vector
database and persists it under the data directory. Use --reset to drop
the existing collection and rebuild from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repo, err := loadRepository(cfg)
		if err != nil {
			return err
		}

		store, err := loadStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		ix := indexer.New(store, progress.NewReporter())
		count, err := ix.Index(cmd.Context(), repo.Terms(), indexReset)
		if err != nil {
			return fmt.Errorf("indexing: %w", err)
		}

		vectorDir := filepath.Join(cfg.DataDir, "vectordb")
		if err := store.Persist(cmd.Context(), vectorDir); err != nil {
			return fmt.Errorf("persisting vector store: %w", err)
		}

		fmt.Printf("Indexed %d documents from %d terms (CTCAE v%s)\n", count, repo.Count(), repo.Version())
		fmt.Printf("Vector store saved to %s\n", vectorDir)
		return nil
	},
}

func init() {
	indexCmd.Flags().BoolVar(&indexReset, "reset", false, "drop the existing collection before indexing")
	rootCmd.AddCommand(indexCmd)
}
