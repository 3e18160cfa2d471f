package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/officepro/officepro/internal/controller"
)

const effectTimeout = 30 * time.Second

// effectCmd runs a controller effect off the update loop and feeds its
// result message back into the program.
func effectCmd(eff controller.Effect) tea.Cmd {
	if eff == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), effectTimeout)
		defer cancel()
		return eff(ctx)
	}
}
