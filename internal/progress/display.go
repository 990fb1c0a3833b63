package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Display orchestrates progress indicators for a single sequential run.
type Display struct {
	capabilities TerminalCapabilities
	spinner      *spinner.Spinner
	symbols      Symbols
	enabled      bool
}

// NewDisplay creates a display for the given terminal capabilities.
// When enabled is false every method degrades to plain prints.
func NewDisplay(caps TerminalCapabilities, enabled bool) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		enabled:      enabled,
	}
}

// StartTask begins displaying a spinner with the given message.
func (d *Display) StartTask(msg string) {
	if d.enabled && d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		d.spinner.Writer = os.Stderr // keep stdout clean for the actual results
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
		return
	}

	fmt.Println(msg)
}

// StopTask stops the spinner without printing a result line.
func (d *Display) StopTask() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// Success stops the spinner and prints a completion line.
func (d *Display) Success(msg string) {
	d.StopTask()
	mark := d.symbols.Checkmark
	if d.capabilities.SupportsColor {
		mark = color.GreenString(mark)
	}
	fmt.Printf("%s %s\n", mark, msg)
}

// Fail stops the spinner and prints a failure line.
func (d *Display) Fail(msg string) {
	d.StopTask()
	mark := d.symbols.Failure
	if d.capabilities.SupportsColor {
		mark = color.RedString(mark)
	}
	fmt.Printf("%s %s\n", mark, msg)
}

// DownloadProgress returns a callback for update.ProgressWriter that renders
// an in-place percentage line on a TTY. Off-TTY the download stays silent;
// the surrounding messages already announce start and completion.
func (d *Display) DownloadProgress() func(current, total int64) {
	if !d.enabled || !d.capabilities.IsTTY {
		return nil
	}

	return func(current, total int64) {
		if total <= 0 {
			fmt.Printf("\rDownloading... %d KB", current/1024)
			return
		}
		fmt.Printf("\rDownloading... %3d%% (%d/%d KB)", current*100/total, current/1024, total/1024)
		if current >= total {
			fmt.Println()
		}
	}
}
