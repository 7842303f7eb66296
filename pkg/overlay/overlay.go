// ABOUTME: Package overlay draws an animated loading spinner over an HTML element
// ABOUTME: Entry points probe the element's geometry and compose the overlay markup

// Package overlay covers an HTML element with a fixed-position layer holding
// an animated SVG spinner while a loading flag is set.
//
// The content node must carry a unique id attribute. On activation the
// element's geometry is measured through a Probe, the overlay is sized to
// cover it, and the spinner is scaled to fit:
//
//	page := overlay.IsLoading(busy, content)
//
// Outside the browser, install a probe (for example a layout.Snapshot) with
// SetDefaultProbe, or create a Compositor with New.
package overlay

import (
	"sync/atomic"

	"golang.org/x/net/html"
)

// Compositor binds the overlay entry points to a geometry probe.
type Compositor struct {
	probe Probe
}

// New creates a Compositor measuring elements with p.
func New(p Probe) *Compositor {
	return &Compositor{probe: p}
}

// IsLoading overlays content with the default appearance when flag is set.
func (c *Compositor) IsLoading(flag bool, content *html.Node) *html.Node {
	return c.IsLoadingWithOptions(flag, defaultOptions, content)
}

// IsLoadingWithOptions overlays content with opts when flag is set. The probe
// runs only when flag is true, and runs afresh on every call.
func (c *Compositor) IsLoadingWithOptions(flag bool, opts Options, content *html.Node) *html.Node {
	if !flag {
		return content
	}
	g := c.probe.Probe(ElementID(content))
	return Compose(true, opts, g, content)
}

var defaultCompositor atomic.Pointer[Compositor]

func init() {
	defaultCompositor.Store(New(platformProbe()))
}

// SetDefaultProbe replaces the probe used by the package-level entry points.
func SetDefaultProbe(p Probe) {
	defaultCompositor.Store(New(p))
}

// IsLoading overlays content with the default appearance when flag is set,
// measuring it with the default probe.
func IsLoading(flag bool, content *html.Node) *html.Node {
	return defaultCompositor.Load().IsLoading(flag, content)
}

// IsLoadingWithOptions overlays content with opts when flag is set,
// measuring it with the default probe.
func IsLoadingWithOptions(flag bool, opts Options, content *html.Node) *html.Node {
	return defaultCompositor.Load().IsLoadingWithOptions(flag, opts, content)
}
