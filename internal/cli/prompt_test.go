package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func newPromptCommand(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(input))
	return cmd, out
}

func TestPromptYesNo(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input      string
		defaultYes bool
		want       bool
	}{
		"explicit yes":            {"y\n", false, true},
		"explicit yes word":       {"yes\n", false, true},
		"uppercase yes":           {"Y\n", false, true},
		"explicit no":             {"n\n", true, false},
		"empty takes default yes": {"\n", true, true},
		"empty takes default no":  {"\n", false, false},
		"garbage means no":        {"whatever\n", true, false},
		"eof takes default":       {"", true, true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd, out := newPromptCommand(tt.input)
			got := promptYesNo(cmd, "Install?", tt.defaultYes)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Install?")
		})
	}
}

func TestPromptYesNoHint(t *testing.T) {
	t.Parallel()

	cmd, out := newPromptCommand("\n")
	promptYesNo(cmd, "Install?", true)
	assert.Contains(t, out.String(), "[Y/n]")

	cmd, out = newPromptCommand("\n")
	promptYesNo(cmd, "Install?", false)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestPromptString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input        string
		defaultValue string
		want         string
	}{
		"typed value":         {"/opt/drivers\n", "/home/user", "/opt/drivers"},
		"empty takes default": {"\n", "/home/user", "/home/user"},
		"whitespace trimmed":  {"  /opt/drivers  \n", "", "/opt/drivers"},
		"no default":          {"\n", "", ""},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd, out := newPromptCommand(tt.input)
			got := promptString(cmd, "Target directory", tt.defaultValue)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Target directory")
		})
	}
}
