package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/mockapi"
)

func mockCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
		seed   bool
	)

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Run the local demo API server",
		Long: `Serve the procurement API locally against a SQLite database. Requests must
carry the demo auth header; any non-empty token is accepted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := mockapi.OpenStore(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer store.Close()

			if seed {
				if err := store.Seed(cmd.Context()); err != nil {
					return fmt.Errorf("failed to seed store: %w", err)
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           mockapi.NewServer(store, slog.Default()).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Demo API listening on %s (db: %s)", addr, dbPath)))

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("failed to shut down server: %w", err)
				}
				return nil
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server stopped: %w", err)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&dbPath, "db", "officepro.db", "path to the SQLite database file")
	cmd.Flags().BoolVar(&seed, "seed", true, "seed demo data when the database is empty")
	return cmd
}
