package update

import (
	"context"
	"fmt"

	"github.com/driverup/driverup/internal/release"
)

// ReleaseSource supplies the latest stable release channel.
type ReleaseSource interface {
	LatestStable(ctx context.Context) (*release.Channel, error)
}

// VersionProber reads the locally installed driver version.
// An empty version means no driver is installed; the error is diagnostic only.
type VersionProber interface {
	Version(ctx context.Context) (string, error)
}

// UpdateCheck contains the result of comparing the local driver against the
// latest stable release.
type UpdateCheck struct {
	LocalVersion  string `json:"local_version,omitempty"`
	StableVersion string `json:"stable_version"`
	Status        Status `json:"-"`
	StatusName    string `json:"status"`
	NeedsUpdate   bool   `json:"needs_update"`
	DownloadURL   string `json:"download_url,omitempty"`

	// ProbeDiagnostic carries the reason the local probe came up empty.
	// Informational only; an absent driver is not an error.
	ProbeDiagnostic error `json:"-"`
}

// Checker combines the local probe and the release feed into an update
// decision.
type Checker struct {
	releases ReleaseSource
	prober   VersionProber
	platform string
}

// NewChecker creates a checker that resolves chromedriver downloads for the
// given platform (e.g. "win64").
func NewChecker(releases ReleaseSource, prober VersionProber, platform string) *Checker {
	return &Checker{
		releases: releases,
		prober:   prober,
		platform: platform,
	}
}

// Check fetches the stable release, probes the local driver, and classifies
// the result. A download URL is resolved whenever an update is needed.
func (c *Checker) Check(ctx context.Context) (*UpdateCheck, error) {
	channel, err := c.releases.LatestStable(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching stable release: %w", err)
	}

	stable, err := ParseVersion(channel.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing stable version: %w", err)
	}

	result := &UpdateCheck{StableVersion: stable.String()}

	var local *Version
	localRaw, probeErr := c.prober.Version(ctx)
	if localRaw != "" {
		local, err = ParseVersion(localRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing local version: %w", err)
		}
		result.LocalVersion = local.String()
	}
	result.ProbeDiagnostic = probeErr

	result.Status = Classify(local, stable)
	result.StatusName = result.Status.String()
	result.NeedsUpdate = result.Status == Outdated || result.Status == NotInstalled

	url, ok := channel.DownloadURL(release.BinaryChromeDriver, c.platform)
	if !ok && result.NeedsUpdate {
		return nil, fmt.Errorf("%w: no chromedriver download for platform %s", release.ErrMalformed, c.platform)
	}
	result.DownloadURL = url

	return result, nil
}
