package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/driverup/driverup/internal/config"
	"github.com/driverup/driverup/internal/driver"
	"github.com/driverup/driverup/internal/errors"
	"github.com/driverup/driverup/internal/progress"
	"github.com/driverup/driverup/internal/release"
	"github.com/driverup/driverup/internal/update"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// releaseEndpoint is the feed URL used by all commands. Overridden in tests.
var releaseEndpoint = release.DefaultEndpoint

// loadConfig loads the effective configuration for a command run.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, errors.InvalidConfiguration(err)
	}
	return cfg, nil
}

// newChecker wires the release client and local prober for the given config.
func newChecker(cfg *config.Configuration) *update.Checker {
	client := release.NewClient(cfg.Timeout())
	client.SetEndpoint(releaseEndpoint)
	prober := driver.NewProber(cfg.DriverPath, 0)
	return update.NewChecker(client, prober, cfg.Platform)
}

// runInteractive is the default walkthrough: compare, download when needed,
// prompt for a target directory, install with backup, and persist the choice.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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

	switch check.Status {
	case update.Latest:
		fmt.Fprintln(cmd.OutOrStdout(), "Your ChromeDriver is already the latest stable version.")
		return nil
	case update.NewerThanStable:
		fmt.Fprintln(cmd.OutOrStdout(), "Your ChromeDriver is ahead of the stable channel (likely a Beta/Dev build). Nothing to do.")
		return nil
	case update.NotInstalled:
		fmt.Fprintln(cmd.OutOrStdout(), "No local ChromeDriver detected; installing the latest stable version.")
	case update.Outdated:
		fmt.Fprintf(cmd.OutOrStdout(), "A newer stable release is available: %s\n", check.StableVersion)
	}

	driverPath, err := downloadAndExtract(cmd, cfg, display, check.DownloadURL)
	if err != nil {
		return err
	}

	targetDir := chooseTargetDir(cmd, cfg)

	if !cfg.SkipConfirmations {
		question := fmt.Sprintf("Install chromedriver %s to %s?", check.StableVersion, targetDir)
		if !promptYesNo(cmd, question, true) {
			fmt.Fprintf(cmd.OutOrStdout(), "Skipping install. The extracted driver is at: %s\n", driverPath)
			return nil
		}
	}

	installedPath, err := installDriver(driverPath, targetDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed ChromeDriver %s to %s\n", check.StableVersion, installedPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Tip: add the target directory to your PATH to run chromedriver from anywhere.")

	persistTargetDir(cmd, cfg, targetDir)
	return nil
}

// downloadAndExtract fetches the archive and returns the extracted driver path.
func downloadAndExtract(cmd *cobra.Command, cfg *config.Configuration, display *progress.Display, url string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "Downloading: %s\n", url)

	downloader := update.NewDownloader(nil)
	archivePath, err := downloader.DownloadArchive(cmd.Context(), url, cfg.DownloadDir, display.DownloadProgress())
	if err != nil {
		return "", errors.DownloadFailed(url, release.ListingPageURL, err)
	}

	driverPath, err := update.ExtractZip(archivePath, cfg.DownloadDir)
	if err != nil {
		return "", errors.ArchiveCorrupt(archivePath, err)
	}

	return driverPath, nil
}

// chooseTargetDir determines the install directory, prompting unless
// confirmations are skipped. The remembered directory (or the current working
// directory on first run) is the default.
func chooseTargetDir(cmd *cobra.Command, cfg *config.Configuration) string {
	defaultDir := cfg.TargetDirectory
	if defaultDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			defaultDir = cwd
		}
	}

	if cfg.SkipConfirmations {
		return defaultDir
	}
	return promptString(cmd, "Target directory", defaultDir)
}

// installDriver copies the extracted binary into targetDir with a .bak backup.
func installDriver(driverPath, targetDir string) (string, error) {
	installer := update.NewInstaller(targetDir)
	if err := installer.CheckWritePermission(); err != nil {
		return "", errors.TargetNotWritable(targetDir, err)
	}

	installedPath, err := installer.Install(driverPath)
	if err != nil {
		return "", errors.InstallFailed(driverPath, targetDir, err)
	}
	return installedPath, nil
}

// persistTargetDir records the chosen directory and update time. A failed
// save only warns; the install itself already succeeded.
func persistTargetDir(cmd *cobra.Command, cfg *config.Configuration, targetDir string) {
	cfg.TargetDirectory = targetDir
	cfg.LastUpdate = time.Now().UTC().Format(time.RFC3339)
	if err := config.Save(flagConfigPath, cfg); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not save config: %v\n", err)
	}
}

// printComparison prints the local/stable versions and the classification.
func printComparison(cmd *cobra.Command, check *update.UpdateCheck) {
	out := cmd.OutOrStdout()

	local := check.LocalVersion
	if local == "" {
		local = "(not installed)"
	}
	fmt.Fprintf(out, "Local version:  %s\n", local)
	fmt.Fprintf(out, "Stable version: %s\n", check.StableVersion)
	fmt.Fprintf(out, "Status: %s\n", describeStatus(check.Status))
}

// describeStatus renders a human-readable, colored status line.
func describeStatus(status update.Status) string {
	switch status {
	case update.Latest:
		return color.GreenString("up to date with the Stable channel")
	case update.NewerThanStable:
		return color.CyanString("newer than the Stable channel")
	case update.Outdated:
		return color.YellowString("outdated, update recommended")
	case update.NotInstalled:
		return color.YellowString("not installed")
	default:
		return "unknown"
	}
}

// wrapCheckError maps checker failures onto user-facing error categories.
func wrapCheckError(err error) error {
	switch {
	case stderrors.Is(err, release.ErrUnavailable):
		return errors.FeedUnreachable(releaseEndpoint, err)
	case stderrors.Is(err, release.ErrMalformed):
		return errors.FeedMalformed(err)
	case stderrors.Is(err, update.ErrInvalidVersion):
		return errors.InvalidVersion(err)
	default:
		return err
	}
}
