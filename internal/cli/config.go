package cli

import (
	"fmt"
	"time"

	"github.com/driverup/driverup/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change driverup settings",
	Long: `config manages the settings stored in ~/.driverup/config.json.

Environment variables prefixed DRIVERUP_ override stored values for a single
run, e.g. DRIVERUP_PLATFORM=linux64 driverup check.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "target_directory:     %s\n", orUnset(cfg.TargetDirectory))
		fmt.Fprintf(out, "last_update:          %s\n", lastUpdateAge(cfg.LastUpdate))
		fmt.Fprintf(out, "auto_update:          %t\n", cfg.AutoUpdate)
		fmt.Fprintf(out, "driver_path:          %s\n", cfg.DriverPath)
		fmt.Fprintf(out, "platform:             %s\n", cfg.Platform)
		fmt.Fprintf(out, "download_dir:         %s\n", cfg.DownloadDir)
		fmt.Fprintf(out, "http_timeout_seconds: %d\n", cfg.HTTPTimeoutSeconds)
		fmt.Fprintf(out, "show_progress:        %t\n", cfg.ShowProgress)
		fmt.Fprintf(out, "skip_confirmations:   %t\n", cfg.SkipConfirmations)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting and persist it",
	Example: `  driverup config set platform linux64
  driverup config set target_directory ~/bin
  driverup config set skip_confirmations true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		if err := config.Set(cfg, key, value); err != nil {
			return err
		}
		if err := config.Save(flagConfigPath, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfigPath
		if path == "" {
			defaultPath, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = defaultPath
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}

// lastUpdateAge renders the stored RFC 3339 timestamp with a relative age.
func lastUpdateAge(lastUpdate string) string {
	if lastUpdate == "" {
		return "never"
	}
	t, err := time.Parse(time.RFC3339, lastUpdate)
	if err != nil {
		return lastUpdate
	}
	return fmt.Sprintf("%s (%s ago)", lastUpdate, time.Since(t).Round(time.Minute))
}
