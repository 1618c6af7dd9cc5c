package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// CTCAE v5.0 term export published by the NCI Enterprise Vocabulary Services.
const defaultCTCAEURL = "https://evs.nci.nih.gov/ftp1/CTCAE/CTCAE_5.0/CTCAE_v5.0.csv"

var (
	downloadURL   string
	downloadForce bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the CTCAE v5.0 source file",
	Long:  `Downloads the CTCAE v5.0 CSV export into the data directory. Skipped if the file already exists unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dest := filepath.Join(cfg.DataDir, "CTCAE_v5.0.csv")
		if !downloadForce {
			if _, err := os.Stat(dest); err == nil {
				fmt.Printf("CTCAE file already exists at %s\n", dest)
				return nil
			}
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}

		fmt.Printf("Downloading CTCAE v5.0 from %s...\n", downloadURL)
		if err := downloadFile(cmd.Context(), downloadURL, dest); err != nil {
			return fmt.Errorf("downloading CTCAE file: %w", err)
		}

		fmt.Printf("Saved CTCAE v5.0 to %s\n", dest)
		return nil
	},
}

func downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	// Write to a temp file first so an interrupted download never leaves a
	// truncated CSV behind.
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".ctcae-download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), dest)
}

func init() {
	downloadCmd.Flags().StringVar(&downloadURL, "url", defaultCTCAEURL, "CTCAE CSV source URL")
	downloadCmd.Flags().BoolVar(&downloadForce, "force", false, "re-download even if the file exists")
	rootCmd.AddCommand(downloadCmd)
}
