// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the "config" CLI subcommand to show merged settings

package config

import (
	"fmt"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
// Configured values are listed first, then the overlay options they resolve to.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== Configured ===\n")
	if s.BackgroundColor != "" {
		fmt.Fprintf(&b, "  BackgroundColor: %s\n", s.BackgroundColor)
	}
	if s.SpinnerColor != "" {
		fmt.Fprintf(&b, "  SpinnerColor:    %s\n", s.SpinnerColor)
	}
	if s.SpinnerScale != nil {
		fmt.Fprintf(&b, "  SpinnerScale:    %d\n", *s.SpinnerScale)
	}
	if s.LogLevel != "" {
		fmt.Fprintf(&b, "  LogLevel:        %s\n", s.LogLevel)
	}
	if s.PreviewFPS != 0 {
		fmt.Fprintf(&b, "  PreviewFPS:      %d\n", s.PreviewFPS)
	}
	b.WriteString("\n")

	opts := s.Options()
	b.WriteString("=== Effective ===\n")
	fmt.Fprintf(&b, "  BackgroundColor: %s\n", opts.BackgroundColor)
	fmt.Fprintf(&b, "  SpinnerColor:    %s\n", opts.SpinnerColor)
	fmt.Fprintf(&b, "  SpinnerScale:    %d%%\n", opts.SpinnerScale)
	fmt.Fprintf(&b, "  PreviewFPS:      %d\n", s.FPS())

	return b.String()
}
