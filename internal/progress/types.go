// Package progress renders console feedback for long-running steps: a
// spinner while the release feed is fetched and a percentage line while the
// archive downloads. Output degrades to plain prints when stdout is not a
// terminal.
package progress

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
	Width           int
}

// Symbols holds the glyphs used for progress output.
type Symbols struct {
	Checkmark  string
	Failure    string
	SpinnerSet int
}
