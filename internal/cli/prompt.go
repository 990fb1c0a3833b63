package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"
)

var (
	promptMu     sync.Mutex
	promptSource io.Reader
	promptReader *bufio.Reader
)

// readerFor returns a buffered reader over the command's stdin. The reader is
// shared across prompts in a run so buffered-ahead input is not lost between
// consecutive questions.
func readerFor(r io.Reader) *bufio.Reader {
	promptMu.Lock()
	defer promptMu.Unlock()
	if promptSource != r {
		promptSource = r
		promptReader = bufio.NewReader(r)
	}
	return promptReader
}

// promptYesNo prompts the user for a yes/no answer. An empty answer takes
// the default.
func promptYesNo(cmd *cobra.Command, question string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: ", question, hint)

	answer, _ := readerFor(cmd.InOrStdin()).ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}

// promptString prompts for a free-form value, returning defaultValue when
// the user just presses enter.
func promptString(cmd *cobra.Command, label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (enter for %s): ", label, defaultValue)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	}

	answer, _ := readerFor(cmd.InOrStdin()).ReadString('\n')
	answer = strings.TrimSpace(answer)

	if answer == "" {
		return defaultValue
	}
	return answer
}
