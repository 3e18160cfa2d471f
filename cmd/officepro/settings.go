package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/officepro/officepro/internal/cli"
	"github.com/officepro/officepro/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage local preferences",
		Long:  `Show and toggle the client-side preferences. Preferences live in the local config file, not on the server.`,
	}

	cmd.AddCommand(listSettingsCmd())
	cmd.AddCommand(setSettingCmd())

	return cmd
}

// currentSettings overlays any persisted toggles on the defaults.
func currentSettings() []model.SettingOption {
	options := model.DefaultSettings()
	for i, opt := range options {
		key := "settings." + opt.Key
		if viper.IsSet(key) {
			options[i].Enabled = viper.GetBool(key)
		}
	}
	return options
}

func listSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all preferences",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := newTable("Key", "Setting", "Enabled")
			defer w.Flush()
			for _, opt := range currentSettings() {
				state := cli.SubtleStyle.Render("off")
				if opt.Enabled {
					state = cli.SuccessStyle.Render("on")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", opt.Key, opt.Label, state)
			}
			return nil
		},
	}
}

func setSettingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <on|off>",
		Short: "Toggle a preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			var enabled bool
			switch args[1] {
			case "on", "true":
				enabled = true
			case "off", "false":
				enabled = false
			default:
				return fmt.Errorf("value must be on or off, got %q", args[1])
			}

			known := false
			for _, opt := range model.DefaultSettings() {
				if opt.Key == args[0] {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown setting %q", args[0])
			}

			viper.Set("settings."+args[0], enabled)
			if err := viper.WriteConfig(); err != nil {
				// No config file yet; create one in the working directory.
				if err = viper.SafeWriteConfig(); err != nil {
					return fmt.Errorf("failed to persist setting: %w", err)
				}
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s → %s", args[0], args[1])))
			return nil
		},
	}
}
