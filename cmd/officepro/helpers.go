package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/viper"

	"github.com/officepro/officepro/internal/api"
	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/service"
)

// newGateways builds the resource gateways from the configured API
// endpoint and demo token.
func newGateways() (service.Gateways, error) {
	baseURL := viper.GetString("api.url")
	if baseURL == "" {
		return service.Gateways{}, fmt.Errorf("api.url is not configured")
	}
	client := api.NewClient(baseURL, viper.GetString("api.token"), slog.Default())
	return client.Gateways(), nil
}

// newTable returns a tabwriter on stdout with a styled header row.
func newTable(columns ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cli.HeaderStyle.Render(col))
	}
	fmt.Fprintln(w)
	return w
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return v, nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
