// Package health runs environment checks for the doctor command: is a
// chromedriver on the PATH, does the release feed answer, can we write to the
// configured target directory.
package health

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/driverup/driverup/internal/config"
	"github.com/driverup/driverup/internal/driver"
	"github.com/driverup/driverup/internal/release"
	"github.com/driverup/driverup/internal/update"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

func (r *HealthReport) add(check CheckResult) {
	r.Checks = append(r.Checks, check)
	if !check.Passed {
		r.Passed = false
	}
}

// RunHealthChecks runs all health checks against the given configuration.
// An empty endpoint means the default Chrome for Testing feed.
func RunHealthChecks(ctx context.Context, cfg *config.Configuration, endpoint string) *HealthReport {
	report := &HealthReport{Passed: true}

	report.add(CheckDriver(ctx, cfg.DriverPath))
	report.add(CheckFeed(ctx, cfg, endpoint))
	report.add(CheckTargetDirectory(cfg.TargetDirectory))

	return report
}

// CheckDriver checks that the configured driver binary exists and reports a
// parsable version.
func CheckDriver(ctx context.Context, driverPath string) CheckResult {
	name := "ChromeDriver binary"

	if _, err := exec.LookPath(driverPath); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s not found in PATH (a fresh install will be offered on the next run)", driverPath),
		}
	}

	version, err := driver.NewProber(driverPath, 0).Version(ctx)
	if err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s did not report a usable version: %v", driverPath, err),
		}
	}

	if _, err := update.ParseVersion(version); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("unparsable version %q from %s", version, driverPath),
		}
	}

	return CheckResult{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("%s reports version %s", driverPath, version),
	}
}

// CheckFeed checks that the Chrome for Testing feed answers and carries a
// Stable entry.
func CheckFeed(ctx context.Context, cfg *config.Configuration, endpoint string) CheckResult {
	name := "Release feed"

	client := release.NewClient(cfg.Timeout())
	if endpoint != "" {
		client.SetEndpoint(endpoint)
	}
	stable, err := client.LatestStable(ctx)
	if err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("feed check failed: %v", err),
		}
	}

	if _, ok := stable.DownloadURL(release.BinaryChromeDriver, cfg.Platform); !ok {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("feed has no chromedriver download for platform %s", cfg.Platform),
		}
	}

	return CheckResult{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("stable channel at %s", stable.Version),
	}
}

// CheckTargetDirectory checks that the remembered target directory is
// writable. An empty directory (first run) passes; there is nothing to verify
// until the user picks one.
func CheckTargetDirectory(targetDir string) CheckResult {
	name := "Target directory"

	if targetDir == "" {
		return CheckResult{
			Name:    name,
			Passed:  true,
			Message: "not set yet; the first install will ask for one",
		}
	}

	if err := update.NewInstaller(targetDir).CheckWritePermission(); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s is not writable: %v", targetDir, err),
		}
	}

	return CheckResult{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("%s is writable", targetDir),
	}
}
