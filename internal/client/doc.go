// Package client implements the terminal client runtime.
//
// It runs the TUI over local storage inside a signal-aware process
// lifecycle and closes the storage when the UI exits.
package client
