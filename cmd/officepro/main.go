package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/officepro/officepro/internal/common"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "officepro",
		Short: "Office procurement front office",
		Long: `officepro manages the office procurement records: budgets, purchasing
categories, suppliers, staff accounts, and purchase requests. It talks to the
procurement API and ships a local demo server for offline work.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/officepro/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the procurement API")
	rootCmd.PersistentFlags().String("api-token", "", "demo auth token sent with every request")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	_ = viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("api.token", rootCmd.PersistentFlags().Lookup("api-token"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(budgetsCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(suppliersCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(purchasesCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(mockCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/officepro", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("OFFICEPRO")
	viper.AutomaticEnv()

	viper.SetDefault("api.url", "http://localhost:8080")
	viper.SetDefault("api.token", "demo-token")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	slog.SetDefault(common.NewLogger(level, viper.GetString("logging.format")))
	return nil
}
