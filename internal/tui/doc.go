// Package tui provides the interactive status message preview.
//
// The preview is a Bubble Tea program. It shows the current variant painted
// with the configured theme and symbols, lets the user cycle through the
// variants and edit the message, and copies the uncolored rendering to the
// clipboard.
//
// # Logging
//
// While the preview runs, logging is switched to TUI mode (see
// pkg/logging.InitForTUI). Entries arrive on a channel and are shown below
// the preview as status messages themselves: errors as error messages,
// warnings as warnings and everything else as info.
//
// # Key Bindings
//
//   - ←/h, →/l: previous / next variant
//   - e: edit the message, enter or esc to finish
//   - y: copy as plain text
//   - ?: toggle full help
//   - q, ctrl+c: quit
package tui
