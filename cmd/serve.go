package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zkmedar/ctcaematch/internal/db"
	"github.com/zkmedar/ctcaematch/internal/history"
	"github.com/zkmedar/ctcaematch/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP matching API",
	Long: `Starts the REST API: POST /api/match for symptom standardization, plus
endpoints for browsing CTCAE terms and reviewing match history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		repo, err := loadRepository(cfg)
		if err != nil {
			return err
		}

		m, err := buildMatcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		dbPath := filepath.Join(cfg.DataDir, "ctcaematch.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer database.Close()

		srv := server.New(cfg.Server, m, repo, history.NewStore(database))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "ctcaematch v%s listening on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Terms loaded: %d (CTCAE v%s)\n", repo.Count(), repo.Version())
		fmt.Fprintf(os.Stderr, "  History: %s\n", dbPath)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
