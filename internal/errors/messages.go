package errors

import "fmt"

// FeedUnreachable is returned when the Chrome for Testing feed cannot be fetched.
func FeedUnreachable(endpoint string, cause error) *CLIError {
	return &CLIError{
		Category: Network,
		Message:  "could not reach the Chrome for Testing release feed",
		Details:  fmt.Sprintf("endpoint: %s", endpoint),
		Err:      cause,
		Remediation: []string{
			"Check your network connection and proxy settings",
			fmt.Sprintf("Verify the feed is reachable: %s", endpoint),
		},
	}
}

// FeedMalformed is returned when the feed was fetched but did not have the
// expected structure.
func FeedMalformed(cause error) *CLIError {
	return &CLIError{
		Category: Parse,
		Message:  "the Chrome for Testing release feed has an unexpected format",
		Err:      cause,
		Remediation: []string{
			"The feed format may have changed; check for a newer driverup release",
		},
	}
}

// InvalidVersion is returned when a version string is not a dotted-integer tuple.
func InvalidVersion(cause error) *CLIError {
	return &CLIError{
		Category: Parse,
		Message:  "could not parse a version string",
		Err:      cause,
		Remediation: []string{
			"Expected a dot-separated sequence of integers, e.g. 124.0.6367.8",
		},
	}
}

// DownloadFailed is returned when the archive download fails. The manual
// download URL and the listing page are offered as a fallback.
func DownloadFailed(url, listingPage string, cause error) *CLIError {
	return &CLIError{
		Category: Network,
		Message:  "downloading the ChromeDriver archive failed",
		Details:  fmt.Sprintf("url: %s", url),
		Err:      cause,
		Remediation: []string{
			fmt.Sprintf("Download manually: %s", url),
			fmt.Sprintf("Or browse the listing page: %s", listingPage),
		},
	}
}

// ArchiveCorrupt is returned when the downloaded zip cannot be extracted.
func ArchiveCorrupt(path string, cause error) *CLIError {
	return &CLIError{
		Category: Archive,
		Message:  "the downloaded archive could not be extracted",
		Details:  fmt.Sprintf("archive: %s", path),
		Err:      cause,
		Remediation: []string{
			"Delete the file and run driverup again to re-download",
		},
	}
}

// TargetNotWritable is returned when the install target rejects writes.
func TargetNotWritable(dir string, cause error) *CLIError {
	return &CLIError{
		Category: Install,
		Message:  fmt.Sprintf("cannot write to target directory %s", dir),
		Err:      cause,
		Remediation: []string{
			"Choose a directory you have write access to",
			"Or re-run with elevated permissions",
		},
	}
}

// InstallFailed is returned when copying the new binary into place fails.
func InstallFailed(sourcePath, targetDir string, cause error) *CLIError {
	return &CLIError{
		Category: Install,
		Message:  "installing the new driver failed",
		Details:  fmt.Sprintf("source: %s, target: %s", sourcePath, targetDir),
		Err:      cause,
		Remediation: []string{
			fmt.Sprintf("Copy the file manually from %s to %s", sourcePath, targetDir),
		},
	}
}

// InvalidConfiguration is returned when stored settings fail validation.
func InvalidConfiguration(cause error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  "the driverup configuration is invalid",
		Err:      cause,
		Remediation: []string{
			"Run `driverup config show` to inspect the stored settings",
			"Fix or delete ~/.driverup/config.json and try again",
		},
	}
}
