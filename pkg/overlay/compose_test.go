// ABOUTME: Tests for overlay composition, markup, probes, and package entry points
// ABOUTME: Uses StaticProbe fixtures and captures the missing-element diagnostic

package overlay

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	svlog "github.com/mauromedda/spinveil/internal/log"
	"golang.org/x/net/html"
)

// Compile-time checks: probe implementations satisfy Probe.
var (
	_ Probe = StaticProbe{}
	_ Probe = ProbeFunc(nil)
)

func content(id string) *html.Node {
	n := element("section")
	if id != "" {
		n.Attr = append(n.Attr, attr("id", id))
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: "payload"})
	return n
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// captureLog collects diagnostics for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := svlog.SetOutput(&buf)
	level := svlog.GetLevel()
	svlog.SetLevel(svlog.LevelInfo)
	t.Cleanup(func() {
		svlog.SetOutput(prev)
		svlog.SetLevel(level)
	})
	return &buf
}

func TestCompose_NotLoadingPassesThrough(t *testing.T) {
	t.Parallel()

	c := content("target")
	before := render(t, c)

	got := Compose(false, DefaultOptions(), Geometry{X: 5, Y: 5, Width: 50, Height: 50}, c)
	if got != c {
		t.Fatal("Compose(false) must return the content node itself")
	}
	if after := render(t, c); after != before {
		t.Errorf("content changed: %q -> %q", before, after)
	}
	if c.Parent != nil {
		t.Error("content should not be wrapped")
	}
}

func TestCompose_Structure(t *testing.T) {
	t.Parallel()

	c := content("target")
	got := Compose(true, DefaultOptions(), Geometry{X: 10, Y: 20, Width: 200, Height: 150}, c)

	if got.Data != "div" {
		t.Fatalf("container = <%s>, want <div>", got.Data)
	}
	layer := got.FirstChild
	if layer == nil || layer.Data != "div" {
		t.Fatal("first child should be the overlay div")
	}
	if got.LastChild != c || layer.NextSibling != c {
		t.Error("content should follow the overlay as the last child")
	}

	svg := layer.FirstChild
	if svg == nil || svg.Data != "svg" {
		t.Fatal("overlay should contain the spinner svg")
	}
}

func TestCompose_RoomyTargetScenario(t *testing.T) {
	t.Parallel()

	got := Compose(true, DefaultOptions(), Geometry{X: 10, Y: 20, Width: 200, Height: 150}, content("target"))
	layer := got.FirstChild

	wantStyle := "background-color: rgba(200,200,200,0.7); position: fixed; left: 10px; top: 20px; " +
		"height: 150px; width: 200px; z-index: 99999"
	if style := getAttr(layer, "style"); style != wantStyle {
		t.Errorf("overlay style = %q\nwant %q", style, wantStyle)
	}

	svg := layer.FirstChild
	if w, h := getAttr(svg, "width"), getAttr(svg, "height"); w != "126" || h != "126" {
		t.Errorf("spinner size = %sx%s, want 126x126", w, h)
	}
	if vb := getAttr(svg, "viewBox"); vb != "0 0 126 126" {
		t.Errorf("viewBox = %q", vb)
	}
	if style := getAttr(svg, "style"); !strings.Contains(style, "translate(-50%, -50%)") {
		t.Errorf("spinner should be center anchored, style = %q", style)
	}
}

func TestCompose_ZeroGeometry(t *testing.T) {
	t.Parallel()

	got := Compose(true, DefaultOptions(), Geometry{}, content("gone"))
	style := getAttr(got.FirstChild, "style")
	for _, want := range []string{"left: 0px", "top: 0px", "height: 0px", "width: 0px"} {
		if !strings.Contains(style, want) {
			t.Errorf("overlay style %q missing %q", style, want)
		}
	}
	if w := getAttr(got.FirstChild.FirstChild, "width"); w != "0" {
		t.Errorf("spinner width = %q, want 0", w)
	}
}

func parseWithTarget(t *testing.T) (doc, target *html.Node) {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(`<html><body><p>before</p><main id="app">hi</main><p>after</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	var find func(*html.Node)
	find = func(n *html.Node) {
		if ElementID(n) == "app" {
			target = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if target == nil {
		t.Fatal("target not found")
	}
	return doc, target
}

func TestCompose_LeavesAttachedContentAlone(t *testing.T) {
	t.Parallel()

	doc, target := parseWithTarget(t)
	before := render(t, doc)

	container := Compose(true, DefaultOptions(), Geometry{Width: 300, Height: 300}, target)

	if after := render(t, doc); after != before {
		t.Errorf("document changed:\nbefore %s\nafter  %s", before, after)
	}
	if container.Parent != nil {
		t.Error("container should be detached")
	}
	copied := container.LastChild
	if copied == target || ElementID(copied) != "app" || render(t, copied) != render(t, target) {
		t.Errorf("container should hold a copy of the target, got %s", render(t, copied))
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	_, target := parseWithTarget(t)
	body := target.Parent

	container := Compose(true, DefaultOptions(), Geometry{Width: 300, Height: 300}, target)
	Replace(target, container)

	if container.Parent != body {
		t.Fatal("container should take the target's place")
	}
	if container.PrevSibling == nil || container.NextSibling == nil {
		t.Error("siblings around the target should be preserved")
	}
	if target.Parent != nil {
		t.Error("the replaced target should be detached")
	}
	if got := render(t, body); !strings.Contains(got, `<p>before</p><div><div style=`) || !strings.Contains(got, `<main id="app">hi</main></div><p>after</p>`) {
		t.Errorf("body = %s", got)
	}
}

func TestReplace_NoOps(t *testing.T) {
	t.Parallel()

	detached := content("x")
	n := element("div")
	Replace(detached, n)
	if n.Parent != nil {
		t.Error("replacing a detached node should not attach anything")
	}

	_, target := parseWithTarget(t)
	parent := target.Parent
	Replace(target, target)
	if target.Parent != parent {
		t.Error("replacing a node with itself should be a no-op")
	}
}

func TestCompose_NilContent(t *testing.T) {
	t.Parallel()

	got := Compose(true, DefaultOptions(), Geometry{}, nil)
	if got.FirstChild == nil || got.FirstChild != got.LastChild {
		t.Error("container should hold only the overlay when content is nil")
	}
}

func TestCompose_OptionsPassThroughVerbatim(t *testing.T) {
	t.Parallel()

	opts := Options{BackgroundColor: "not-a-color", SpinnerColor: "???", SpinnerScale: -10}
	got := Compose(true, opts, Geometry{Width: 500, Height: 500}, content("x"))
	out := render(t, got)

	for _, want := range []string{"background-color: not-a-color", `fill="???"`, `width="-12.6"`} {
		if !strings.Contains(out, want) {
			t.Errorf("markup missing %q:\n%s", want, out)
		}
	}
}

func TestSpinner_Markup(t *testing.T) {
	t.Parallel()

	out := render(t, Spinner("#ff0000", 64))

	if n := strings.Count(out, "<circle"); n != CircleCount {
		t.Errorf("got %d circles, want %d", n, CircleCount)
	}
	if n := strings.Count(out, "<animate"); n != CircleCount {
		t.Errorf("got %d animate elements, want %d", n, CircleCount)
	}
	for _, want := range []string{
		`fill="#ff0000"`,
		`cx="63" cy="18" r="18"`,
		`cx="95" cy="31" r="3"`,
		`values="18;15;13;11;9;7;5;3;18"`,
		`values="15;13;11;9;7;5;3;18;15"`,
		`dur="2s"`,
		`calcMode="linear"`,
		`repeatCount="indefinite"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("spinner markup missing %q", want)
		}
	}
}

func TestElementID(t *testing.T) {
	t.Parallel()

	if got := ElementID(nil); got != "" {
		t.Errorf("ElementID(nil) = %q", got)
	}
	if got := ElementID(content("")); got != "" {
		t.Errorf("ElementID(no id) = %q", got)
	}
	if got := ElementID(content("main")); got != "main" {
		t.Errorf("ElementID = %q, want main", got)
	}
}

func TestCompositor_ProbesOnlyWhenLoading(t *testing.T) {
	t.Parallel()

	calls := 0
	c := New(ProbeFunc(func(id string) Geometry {
		calls++
		return Geometry{Width: 100, Height: 100}
	}))

	n := content("target")
	if got := c.IsLoading(false, n); got != n {
		t.Error("IsLoading(false) should pass content through")
	}
	if calls != 0 {
		t.Errorf("probe called %d times while not loading", calls)
	}

	c.IsLoading(true, content("target"))
	c.IsLoading(true, content("target"))
	if calls != 2 {
		t.Errorf("probe called %d times, want one per activation", calls)
	}
}

func TestCompositor_UsesProbedGeometry(t *testing.T) {
	t.Parallel()

	c := New(StaticProbe{"target": {X: 0, Y: 0, Width: 60, Height: 90}})
	opts := Options{BackgroundColor: "black", SpinnerColor: "white", SpinnerScale: 300}

	got := c.IsLoadingWithOptions(true, opts, content("target"))
	layer := got.FirstChild
	if style := getAttr(layer, "style"); !strings.HasPrefix(style, "background-color: black;") {
		t.Errorf("style = %q", style)
	}
	w, err := strconv.ParseFloat(getAttr(layer.FirstChild, "width"), 64)
	if err != nil {
		t.Fatalf("spinner width: %v", err)
	}
	if !approx(w, 60) {
		t.Errorf("spinner width = %v, want 60", w)
	}
}

func TestStaticProbe_MissingLogsOnce(t *testing.T) {
	buf := captureLog(t)

	got := StaticProbe{}.Probe("nowhere")
	if !got.IsZero() {
		t.Errorf("missing element geometry = %+v, want zero", got)
	}

	out := buf.String()
	if n := strings.Count(out, "\n"); n != 1 {
		t.Fatalf("got %d diagnostics, want 1: %q", n, out)
	}
	if !strings.Contains(out, MissingElementMessage) || !strings.Contains(out, `"nowhere"`) {
		t.Errorf("diagnostic = %q", out)
	}
}

func TestIsLoading_UnknownIDStillComposes(t *testing.T) {
	buf := captureLog(t)
	t.Cleanup(func() { SetDefaultProbe(platformProbe()) })
	SetDefaultProbe(StaticProbe{})

	n := content("missing")
	got := IsLoading(true, n)
	if got == n || got.LastChild != n {
		t.Fatal("content should be wrapped even when the element is missing")
	}
	if style := getAttr(got.FirstChild, "style"); !strings.Contains(style, "width: 0px") {
		t.Errorf("overlay should be zero sized, style = %q", style)
	}
	if n := strings.Count(buf.String(), MissingElementMessage); n != 1 {
		t.Errorf("got %d diagnostics, want 1", n)
	}
}

func TestIsLoadingWithOptions_DefaultProbe(t *testing.T) {
	t.Cleanup(func() { SetDefaultProbe(platformProbe()) })
	SetDefaultProbe(StaticProbe{"card": {X: 4, Y: 8, Width: 400, Height: 300}})

	opts := DefaultOptions()
	opts.SpinnerScale = 50
	got := IsLoadingWithOptions(true, opts, content("card"))

	if w := getAttr(got.FirstChild.FirstChild, "width"); w != "63" {
		t.Errorf("spinner width = %q, want 63", w)
	}
	if got := IsLoadingWithOptions(false, opts, content("card")); got.Data != "section" {
		t.Error("IsLoadingWithOptions(false) should pass content through")
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	if opts.BackgroundColor != "rgba(200,200,200,0.7)" || opts.SpinnerColor != "#000000" || opts.SpinnerScale != 100 {
		t.Errorf("DefaultOptions() = %+v", opts)
	}

	opts.SpinnerScale = 1
	if DefaultOptions().SpinnerScale != 100 {
		t.Error("modifying a returned value must not change the defaults")
	}
}

func TestGeometry_Region(t *testing.T) {
	t.Parallel()

	r := Geometry{X: 1, Y: 2, Height: 3, Width: 4}.Region()
	if r != (Region{Left: 1, Top: 2, Height: 3, Width: 4}) {
		t.Errorf("Region() = %+v", r)
	}
}
