// Package cli holds the command-line flags shared by the desktop and
// headless binaries, and the session setup they both perform.
package cli
