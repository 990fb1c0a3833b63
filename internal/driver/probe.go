// Package driver probes the locally installed ChromeDriver binary.
package driver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds the --version subprocess. ChromeDriver answers in
// milliseconds; anything longer means a wedged binary.
const DefaultTimeout = 10 * time.Second

// Prober shells out to the installed driver to read its version.
type Prober struct {
	driverPath string
	timeout    time.Duration
}

// NewProber creates a prober for the given driver executable.
// driverPath may be a bare name resolved via PATH or an absolute path.
func NewProber(driverPath string, timeout time.Duration) *Prober {
	if driverPath == "" {
		driverPath = "chromedriver"
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Prober{driverPath: driverPath, timeout: timeout}
}

// Path returns the configured driver executable path.
func (p *Prober) Path() string {
	return p.driverPath
}

// Version runs `<driver> --version` and extracts the version string.
//
// A missing binary, failing command, or unparsable output all yield an empty
// version with a non-nil diagnostic error: the caller treats the driver as
// absent and may surface the diagnostic in verbose output. The probe never
// aborts the run.
func (p *Prober) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, p.driverPath, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", p.driverPath, err)
	}

	version := ParseVersionOutput(string(out))
	if version == "" {
		return "", fmt.Errorf("unrecognized version output from %s: %q", p.driverPath, strings.TrimSpace(string(out)))
	}

	return version, nil
}

// ParseVersionOutput extracts the version from ChromeDriver's --version
// output, which looks like:
//
//	ChromeDriver 124.0.6367.8 (045ffa7ecbaedcee3b5e3ba53e51ff98a38eb3a0-refs/...)
//
// Returns the second whitespace-separated field, or "" if the output does not
// match that shape.
func ParseVersionOutput(out string) string {
	line := strings.TrimSpace(out)
	if line == "" {
		return ""
	}

	fields := strings.Fields(line)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "ChromeDriver") {
		return ""
	}

	return fields[1]
}
