// ABOUTME: CLI flag parsing using stdlib flag package, one FlagSet per subcommand
// ABOUTME: Shared appearance flags (-background, -color, -scale) become config overrides

package main

import (
	"flag"
	"io"

	"github.com/mauromedda/spinveil/internal/config"
)

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	verbose    bool
	background string
	color      string
	scale      int
	scaleSet   bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "Enable debug logging")
	fs.StringVar(&c.background, "background", "", "Overlay background CSS color")
	fs.StringVar(&c.color, "color", "", "Spinner CSS color")
	fs.IntVar(&c.scale, "scale", 0, "Spinner scale in percent (100 = 126px)")
}

// parse parses args and records whether -scale was given explicitly, so an
// explicit 0 still overrides the configured scale.
func (c *commonFlags) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "scale" {
			c.scaleSet = true
		}
	})
	return nil
}

// overrides converts the appearance flags into CLI-level settings.
func (c *commonFlags) overrides() *config.Settings {
	s := &config.Settings{
		BackgroundColor: c.background,
		SpinnerColor:    c.color,
	}
	if c.scaleSet {
		scale := c.scale
		s.SpinnerScale = &scale
	}
	if c.verbose {
		s.LogLevel = "debug"
	}
	return s
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("spinveil "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

type renderArgs struct {
	commonFlags
	in      string
	out     string
	layout  string
	id      string
	loading bool
}

func parseRenderFlags(args []string, stderr io.Writer) (renderArgs, error) {
	var a renderArgs
	fs := newFlagSet("render", stderr)
	a.register(fs)
	fs.StringVar(&a.in, "in", "-", "Input HTML page (\"-\" for stdin)")
	fs.StringVar(&a.out, "out", "-", "Output file (\"-\" for stdout)")
	fs.StringVar(&a.layout, "layout", "", "Layout snapshot (YAML/JSON); defaults to the page's frontmatter")
	fs.StringVar(&a.id, "id", "", "Id of the element to cover (required)")
	fs.BoolVar(&a.loading, "loading", true, "Whether the element is loading")
	return a, a.parse(fs, args)
}

type explainArgs struct {
	commonFlags
	in     string
	layout string
	id     string
}

func parseExplainFlags(args []string, stderr io.Writer) (explainArgs, error) {
	var a explainArgs
	fs := newFlagSet("explain", stderr)
	a.register(fs)
	fs.StringVar(&a.in, "in", "", "HTML page whose frontmatter holds the layout")
	fs.StringVar(&a.layout, "layout", "", "Layout snapshot (YAML/JSON)")
	fs.StringVar(&a.id, "id", "", "Id of the element to explain (required)")
	return a, a.parse(fs, args)
}

type framesArgs struct {
	commonFlags
	out   string
	count int
	size  int
}

func parseFramesFlags(args []string, stderr io.Writer) (framesArgs, error) {
	var a framesArgs
	fs := newFlagSet("frames", stderr)
	a.register(fs)
	fs.StringVar(&a.out, "out", "frames", "Output directory")
	fs.IntVar(&a.count, "count", 16, "Frames per animation cycle")
	fs.IntVar(&a.size, "size", 126, "Frame side length in pixels")
	return a, a.parse(fs, args)
}

type previewArgs struct {
	commonFlags
	fps   int
	label string
	watch bool
}

func parsePreviewFlags(args []string, stderr io.Writer) (previewArgs, error) {
	var a previewArgs
	fs := newFlagSet("preview", stderr)
	a.register(fs)
	fs.IntVar(&a.fps, "fps", 0, "Frames per second (default from config)")
	fs.StringVar(&a.label, "label", "Loading…", "Text shown under the spinner")
	fs.BoolVar(&a.watch, "watch", false, "Restyle the preview when config files change")
	return a, a.parse(fs, args)
}

type configArgs struct {
	commonFlags
}

func parseConfigFlags(args []string, stderr io.Writer) (configArgs, error) {
	var a configArgs
	fs := newFlagSet("config", stderr)
	a.register(fs)
	return a, a.parse(fs, args)
}
