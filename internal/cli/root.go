// Package cli provides the Cobra-based commands for driverup: the default
// interactive update walkthrough, a scriptable check command, a
// non-interactive update command, and configuration management.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/driverup/driverup/internal/errors"
	"github.com/spf13/cobra"
)

var flagConfigPath string

var rootCmd = &cobra.Command{
	Use:   "driverup",
	Short: "Keep your local ChromeDriver in sync with the Stable channel",
	Long: `driverup checks the locally installed ChromeDriver against the latest
Stable release of Chrome for Testing and installs the newer binary on request.

Run without arguments for the interactive walkthrough: driverup compares
versions, downloads the stable archive when the local driver is outdated or
missing, asks for a target directory (remembering your last choice), backs up
any existing binary with a .bak suffix, and copies the new driver in.`,
	Example: `  # Interactive walkthrough
  driverup

  # Scriptable version check (exit code encodes the status)
  driverup check
  driverup check --json

  # Non-interactive update into a known directory
  driverup update --target C:\tools --yes

  # Inspect or change stored settings
  driverup config show
  driverup config set target_directory C:\tools`,
	RunE:          runInteractive,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and renders any error.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) && exitErr.Err == nil {
		// Pure status code, already reported by the command.
		return err
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		errors.PrintError(cliErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "Path to config file (default ~/.driverup/config.json)")
}
