package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage CLI settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("API Base URL:  %s\n", config.GetString("api.base_url"))
		fmt.Printf("API Timeout:   %d seconds\n", config.GetInt("api.timeout"))
		fmt.Printf("Feed Page Size: %d\n", config.GetInt("feed.page_size"))
		fmt.Printf("Output Format: %s\n", config.GetString("output.format"))
		fmt.Printf("Log File:      %s\n", config.GetString("log.file"))
		fmt.Printf("Config Dir:    %s\n", config.GetConfigDir())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetString(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
