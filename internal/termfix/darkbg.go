// ABOUTME: Fixes lipgloss to a dark background before Bubble Tea's init() can query it
// ABOUTME: Import with _ from main ahead of any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background set, lipgloss skips the OSC 11 query whose
	// late reply would otherwise land in the preview's input stream.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(true)
}
