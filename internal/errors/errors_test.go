package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategoryString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"network":       {Network, "Network Error"},
		"parse":         {Parse, "Parse Error"},
		"archive":       {Archive, "Archive Error"},
		"install":       {Install, "Install Error"},
		"configuration": {Configuration, "Configuration Error"},
		"driver":        {Driver, "Driver Error"},
		"unknown":       {ErrorCategory(42), "Error"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestCLIErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection refused")
	err := FeedUnreachable("https://example.com/feed.json", cause)

	assert.Equal(t, "could not reach the Chrome for Testing release feed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Network, err.Category)
}

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(Driver, "driver misbehaved", "Reinstall the driver")
	assert.Equal(t, Driver, err.Category)
	assert.Equal(t, "driver misbehaved", err.Error())
	require.Len(t, err.Remediation, 1)
	assert.Nil(t, err.Unwrap())
}

func TestMessageConstructors(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("boom")

	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
	}{
		"feed unreachable": {FeedUnreachable("https://example.com", cause), Network},
		"feed malformed":   {FeedMalformed(cause), Parse},
		"invalid version":  {InvalidVersion(cause), Parse},
		"download failed":  {DownloadFailed("https://example.com/a.zip", "https://example.com/", cause), Network},
		"archive corrupt":  {ArchiveCorrupt("/tmp/a.zip", cause), Archive},
		"target not writable": {
			TargetNotWritable("/opt/drivers", cause), Install,
		},
		"install failed": {
			InstallFailed("/tmp/chromedriver", "/opt/drivers", cause), Install,
		},
		"invalid configuration": {InvalidConfiguration(cause), Configuration},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.NotEmpty(t, tt.err.Message)
			assert.NotEmpty(t, tt.err.Remediation)
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestDownloadFailedOffersManualFallback(t *testing.T) {
	t.Parallel()

	err := DownloadFailed("https://example.com/driver.zip", "https://example.com/listing/", nil)

	require.Len(t, err.Remediation, 2)
	assert.Contains(t, err.Remediation[0], "https://example.com/driver.zip")
	assert.Contains(t, err.Remediation[1], "https://example.com/listing/")
}
