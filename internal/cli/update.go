package cli

import (
	"fmt"

	"github.com/driverup/driverup/internal/progress"
	"github.com/spf13/cobra"
)

var (
	updateTarget string
	updateYes    bool
	updateForce  bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download and install the latest stable driver",
	Long: `update downloads the latest Stable ChromeDriver and installs it into the
target directory, backing up any existing binary with a .bak suffix.

Without --force, nothing happens when the local driver already matches (or is
ahead of) the stable channel.`,
	Example: `  # Update into the remembered target directory, asking before install
  driverup update

  # Fully non-interactive
  driverup update --target /usr/local/bin --yes

  # Reinstall even when already up to date
  driverup update --force --yes`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateTarget, "target", "t", "", "Target directory (default: remembered directory, then cwd)")
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "Don't ask before changing your system. Assume yes.")
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "Install even when the local driver is current")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if updateYes {
		cfg.SkipConfirmations = true
	}

	display := progress.NewDisplay(progress.DetectTerminalCapabilities(), cfg.ShowProgress)

	display.StartTask("Checking Chrome for Testing releases...")
	check, err := newChecker(cfg).Check(cmd.Context())
	if err != nil {
		display.Fail("Release check failed")
		return wrapCheckError(err)
	}
	display.StopTask()

	printComparison(cmd, check)

	if !check.NeedsUpdate && !updateForce {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do.")
		return nil
	}

	if check.DownloadURL == "" {
		// Can only happen with --force on a feed missing our platform entry.
		return fmt.Errorf("no chromedriver download available for platform %s", cfg.Platform)
	}

	driverPath, err := downloadAndExtract(cmd, cfg, display, check.DownloadURL)
	if err != nil {
		return err
	}

	targetDir := updateTarget
	if targetDir == "" {
		targetDir = chooseTargetDir(cmd, cfg)
	}

	if !cfg.SkipConfirmations {
		question := fmt.Sprintf("Install chromedriver %s to %s?", check.StableVersion, targetDir)
		if !promptYesNo(cmd, question, true) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	installedPath, err := installDriver(driverPath, targetDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed ChromeDriver %s to %s\n", check.StableVersion, installedPath)
	persistTargetDir(cmd, cfg, targetDir)
	return nil
}
