package cli

import (
	"fmt"

	"github.com/driverup/driverup/internal/health"
	"github.com/driverup/driverup/internal/progress"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment driverup depends on",
	Long: `doctor verifies that the pieces an update needs are in place: the
configured chromedriver binary, the Chrome for Testing release feed, and the
remembered target directory. A failing check explains what to fix.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report := health.RunHealthChecks(cmd.Context(), cfg, releaseEndpoint)

	symbols := progress.SelectSymbols(progress.DetectTerminalCapabilities())
	out := cmd.OutOrStdout()
	for _, check := range report.Checks {
		mark := color.GreenString(symbols.Checkmark)
		if !check.Passed {
			mark = color.RedString(symbols.Failure)
		}
		fmt.Fprintf(out, "%s %s: %s\n", mark, check.Name, check.Message)
	}

	if !report.Passed {
		return NewExitError(ExitFailure)
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}
