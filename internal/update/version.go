package update

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned when a version string cannot be parsed as a
// dot-separated sequence of non-negative integers.
var ErrInvalidVersion = errors.New("invalid version format")

// Version represents a parsed ChromeDriver version.
//
// ChromeDriver versions are dot-separated integer tuples of arbitrary length
// (current releases use four components, e.g. "124.0.6367.8"). Comparison is
// lexicographic over the integer sequence, so "9" sorts before "10".
type Version struct {
	Parts []int
	Raw   string
}

// ParseVersion parses a version string like "124.0.6367.8".
// Every dot-separated component must be a non-negative integer.
func ParseVersion(raw string) (*Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty version string", ErrInvalidVersion)
	}

	segments := strings.Split(trimmed, ".")
	parts := make([]int, 0, len(segments))
	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q is not a dotted-integer version", ErrInvalidVersion, raw)
		}
		parts = append(parts, n)
	}

	return &Version{Parts: parts, Raw: trimmed}, nil
}

// String returns the version as originally written.
func (v *Version) String() string {
	return v.Raw
}

// Compare compares two versions and returns:
//   - -1 if v < other
//   - 0 if v == other
//   - 1 if v > other
//
// The shorter tuple is zero-padded before comparing, so "124.0" and
// "124.0.0" are equal.
func (v *Version) Compare(other *Version) int {
	maxLen := len(v.Parts)
	if len(other.Parts) > maxLen {
		maxLen = len(other.Parts)
	}

	for i := 0; i < maxLen; i++ {
		a, b := 0, 0
		if i < len(v.Parts) {
			a = v.Parts[i]
		}
		if i < len(other.Parts) {
			b = other.Parts[i]
		}
		if a != b {
			return compareInts(a, b)
		}
	}
	return 0
}

// compareInts compares two integers and returns -1, 0, or 1.
func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Status classifies the local driver version relative to the latest stable.
type Status int

const (
	// NotInstalled means no local driver was found.
	NotInstalled Status = iota
	// Latest means the local driver matches the latest stable release.
	Latest
	// NewerThanStable means the local driver is ahead of stable
	// (likely a Beta/Dev/Canary build).
	NewerThanStable
	// Outdated means a newer stable release is available.
	Outdated
)

// String returns a short identifier for the status, suitable for JSON output.
func (s Status) String() string {
	switch s {
	case NotInstalled:
		return "not_installed"
	case Latest:
		return "latest"
	case NewerThanStable:
		return "newer_than_stable"
	case Outdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// Classify derives the update status from an optional local version and the
// stable release version. A nil local version means no driver is installed.
// Pure function, no side effects.
func Classify(local, stable *Version) Status {
	if local == nil {
		return NotInstalled
	}

	switch local.Compare(stable) {
	case 0:
		return Latest
	case 1:
		return NewerThanStable
	default:
		return Outdated
	}
}
