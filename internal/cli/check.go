package cli

import (
	"encoding/json"
	"fmt"

	"github.com/driverup/driverup/internal/update"
	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare the local driver against the latest stable release",
	Long: `check probes the local ChromeDriver, fetches the latest Stable version
from the Chrome for Testing feed, and reports the comparison without changing
anything on disk.

The exit code encodes the result so scripts can branch on it:

  0   local driver is the latest stable version
  10  local driver is outdated
  20  no local driver installed
  30  local driver is newer than stable`,
	Example: `  # Human-readable comparison
  driverup check

  # Machine-readable output
  driverup check --json`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	check, err := newChecker(cfg).Check(cmd.Context())
	if err != nil {
		return wrapCheckError(err)
	}

	if checkJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(check); err != nil {
			return fmt.Errorf("encoding check result: %w", err)
		}
	} else {
		printComparison(cmd, check)
	}

	switch check.Status {
	case update.Outdated:
		return NewExitError(ExitOutdated)
	case update.NotInstalled:
		return NewExitError(ExitNotInstalled)
	case update.NewerThanStable:
		return NewExitError(ExitNewerThanStable)
	default:
		return nil
	}
}
