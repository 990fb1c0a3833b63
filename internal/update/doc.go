// Package update decides whether the local ChromeDriver needs updating and
// carries out the update.
//
// The package includes:
//   - Dotted-integer version parsing and comparison (version.go)
//   - The update decision combining the local probe and the release feed (check.go)
//   - Archive download with progress display and zip extraction (download.go)
//   - Installation into a target directory with .bak backup (install.go)
//
// Everything here is sequential and blocking; context.Context bounds the
// network and subprocess calls.
package update
