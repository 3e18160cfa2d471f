package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/officepro/officepro/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the full-screen resource browser",
		Long:  `Launch the interactive terminal UI for browsing and editing all procurement resources.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := newGateways()
			if err != nil {
				return err
			}

			if err := tui.Run(cmd.Context(), tui.Config{
				Gateways: gw,
				Logger:   slog.Default(),
			}); err != nil {
				return fmt.Errorf("browser exited with error: %w", err)
			}
			return nil
		},
	}
}
