// ABOUTME: Subcommand implementations: HTML rendering, layout reports, PNG frames, preview
// ABOUTME: Each reads inputs, builds the overlay through pkg/overlay, and writes results

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mauromedda/spinveil/internal/config"
	svlog "github.com/mauromedda/spinveil/internal/log"
	"github.com/mauromedda/spinveil/internal/preview"
	"github.com/mauromedda/spinveil/internal/raster"
	"github.com/mauromedda/spinveil/internal/report"
	"github.com/mauromedda/spinveil/pkg/layout"
	"github.com/mauromedda/spinveil/pkg/overlay"
	"golang.org/x/net/html"
	"golang.org/x/term"
)

// maxPageBytes bounds how much HTML render and explain will read.
const maxPageBytes = 16 << 20

func readInput(path string, stdin io.Reader) (string, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxPageBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if len(data) > maxPageBytes {
		return "", fmt.Errorf("input exceeds %d bytes", maxPageBytes)
	}
	return string(data), nil
}

// resolveLayout prefers an explicit snapshot file over the page's frontmatter.
// With neither, every lookup misses and the overlay collapses to zero size.
func resolveLayout(path string, embedded *layout.Snapshot) (*layout.Snapshot, error) {
	if path != "" {
		return layout.Load(path)
	}
	if embedded != nil {
		return embedded, nil
	}
	svlog.Warn("no layout snapshot given; element geometry is unknown")
	return &layout.Snapshot{}, nil
}

func runRender(a renderArgs, cfg *config.Settings, e env) error {
	if a.id == "" {
		return errors.New("render: -id is required")
	}

	page, err := readInput(a.in, e.stdin)
	if err != nil {
		return err
	}
	embedded, body, err := layout.SplitPage(page)
	if err != nil {
		return err
	}
	snap, err := resolveLayout(a.layout, embedded)
	if err != nil {
		return err
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}
	target := findByID(doc, a.id)
	if target == nil {
		return fmt.Errorf("render: no element with id %q in the page", a.id)
	}

	composed := overlay.New(snap).IsLoadingWithOptions(a.loading, cfg.Options(), target)
	overlay.Replace(target, composed)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	buf.WriteByte('\n')

	if a.out == "-" {
		_, err = e.stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(a.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", a.out, err)
	}
	svlog.Info("wrote %s", a.out)
	return nil
}

// findByID returns the first element under n whose id attribute equals id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && overlay.ElementID(n) == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func runExplain(a explainArgs, cfg *config.Settings, e env) error {
	if a.id == "" {
		return errors.New("explain: -id is required")
	}

	var embedded *layout.Snapshot
	if a.in != "" {
		page, err := readInput(a.in, e.stdin)
		if err != nil {
			return err
		}
		embedded, _, err = layout.SplitPage(page)
		if err != nil {
			return err
		}
	}
	snap, err := resolveLayout(a.layout, embedded)
	if err != nil {
		return err
	}

	md := report.Explain(snap, a.id, cfg.Options())
	styled, width := terminalWidth(e.stdout)
	_, err = io.WriteString(e.stdout, report.Render(md, width, styled))
	return err
}

// terminalWidth reports whether w is a terminal and its width (80 otherwise).
func terminalWidth(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return true, 80
	}
	return true, width
}

func runFrames(a framesArgs, cfg *config.Settings, e env) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	paths, err := raster.WriteFrames(ctx, a.out, cfg.Options(), a.count, a.size)
	if err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	fmt.Fprintf(e.stdout, "wrote %d frames to %s\n", len(paths), a.out)
	return nil
}

func runPreview(a previewArgs, cfg *config.Settings, e env) error {
	fps := a.fps
	if fps <= 0 {
		fps = cfg.FPS()
	}
	if !a.watch {
		return preview.Run(cfg.Options(), fps, a.label, nil)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	updates := make(chan overlay.Options, 1)
	w := config.WatchSettings(e.cwd, home, func() {
		next, err := config.LoadAllWithHome(e.cwd, home, a.overrides())
		if err != nil {
			svlog.Warn("reloading config: %v", err)
			return
		}
		svlog.Debug("config reloaded: %+v", next.Options())
		select {
		case updates <- next.Options():
		default:
		}
	})
	w.Start()
	defer w.Stop()

	return preview.Run(cfg.Options(), fps, a.label, updates)
}
