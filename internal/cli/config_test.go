package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow(t *testing.T) {
	setConfigPath(t, writeTestConfig(t, "chromedriver"))

	out := &bytes.Buffer{}
	configShowCmd.SetOut(out)
	require.NoError(t, configShowCmd.RunE(configShowCmd, nil))

	output := out.String()
	assert.Regexp(t, `platform:\s+win64`, output)
	assert.Regexp(t, `driver_path:\s+chromedriver`, output)
	assert.Regexp(t, `target_directory:\s+\(unset\)`, output)
	assert.Regexp(t, `last_update:\s+never`, output)
}

func TestConfigSetPersists(t *testing.T) {
	configPath := writeTestConfig(t, "chromedriver")
	setConfigPath(t, configPath)

	out := &bytes.Buffer{}
	configSetCmd.SetOut(out)
	require.NoError(t, configSetCmd.RunE(configSetCmd, []string{"platform", "linux64"}))
	assert.Contains(t, out.String(), "Set platform")

	saved, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"platform": "linux64"`)
}

func TestConfigSetRejectsBadValue(t *testing.T) {
	configPath := writeTestConfig(t, "chromedriver")
	setConfigPath(t, configPath)

	err := configSetCmd.RunE(configSetCmd, []string{"platform", "amiga"})
	require.Error(t, err)

	// The stored file is untouched on a rejected value.
	saved, readErr := os.ReadFile(configPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(saved), `"platform": "win64"`)
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	setConfigPath(t, path)

	out := &bytes.Buffer{}
	configPathCmd.SetOut(out)
	require.NoError(t, configPathCmd.RunE(configPathCmd, nil))
	assert.Equal(t, path+"\n", out.String())
}

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	versionCmd.SetOut(out)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "driverup dev")
	assert.Contains(t, out.String(), "go: go")
	assert.Contains(t, out.String(), "platform: ")
}
