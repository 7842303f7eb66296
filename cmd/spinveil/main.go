// ABOUTME: CLI entry point for spinveil: render, explain, frames, preview, and config subcommands
// ABOUTME: Loads layered config, applies flag overrides, dispatches to the selected subcommand

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/spinveil/internal/termfix"

	"github.com/mauromedda/spinveil/internal/config"
	svlog "github.com/mauromedda/spinveil/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const usage = `usage: spinveil <command> [flags]

commands:
  render    cover an element of an HTML page with the loading overlay
  explain   describe the overlay geometry for an element of a layout
  frames    rasterize the spinner animation to PNG frames
  preview   animate the spinner in the terminal
  config    show the effective configuration
  version   print version information
`

// env carries the process streams and working directory into subcommands.
type env struct {
	cwd    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: getting working directory: %v\n", err)
		os.Exit(1)
	}

	e := env{cwd: cwd, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := run(os.Args[1:], e); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run dispatches args[0] to its subcommand.
func run(args []string, e env) error {
	if len(args) == 0 {
		fmt.Fprint(e.stderr, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "render":
		a, err := parseRenderFlags(args[1:], e.stderr)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(e.cwd, a.overrides())
		if err != nil {
			return err
		}
		return runRender(a, cfg, e)
	case "explain":
		a, err := parseExplainFlags(args[1:], e.stderr)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(e.cwd, a.overrides())
		if err != nil {
			return err
		}
		return runExplain(a, cfg, e)
	case "frames":
		a, err := parseFramesFlags(args[1:], e.stderr)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(e.cwd, a.overrides())
		if err != nil {
			return err
		}
		return runFrames(a, cfg, e)
	case "preview":
		a, err := parsePreviewFlags(args[1:], e.stderr)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(e.cwd, a.overrides())
		if err != nil {
			return err
		}
		return runPreview(a, cfg, e)
	case "config":
		a, err := parseConfigFlags(args[1:], e.stderr)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(e.cwd, a.overrides())
		if err != nil {
			return err
		}
		fmt.Fprint(e.stdout, config.Explain(cfg))
		return nil
	case "version", "-version", "--version":
		fmt.Fprintf(e.stdout, "spinveil %s (%s) built %s\n", version, commit, date)
		return nil
	case "help", "-h", "-help", "--help":
		fmt.Fprint(e.stdout, usage)
		return nil
	default:
		fmt.Fprint(e.stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// loadConfig merges config files with CLI overrides and applies the log level.
func loadConfig(cwd string, overrides *config.Settings) (*config.Settings, error) {
	cfg, err := config.LoadAll(cwd, overrides)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.LogLevel != "" {
		level, ok := svlog.ParseLevel(cfg.LogLevel)
		if !ok {
			svlog.Warn("unknown log level %q, using info", cfg.LogLevel)
		}
		svlog.SetLevel(level)
	}
	svlog.Debug("config: %+v", cfg.Options())
	return cfg, nil
}
