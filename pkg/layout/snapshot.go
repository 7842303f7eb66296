// ABOUTME: Captured page layout: per-element bounding rects, client sizes, scroll offset
// ABOUTME: Loaded from YAML or JSON; implements overlay.Probe with live-DOM semantics

package layout

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/mauromedda/spinveil/pkg/overlay"
	"gopkg.in/yaml.v3"
)

// Box is one element's measurements as a browser reports them: the
// viewport-relative bounding rect origin and the client (content plus
// padding, no border or scrollbar) size.
type Box struct {
	Left         float64 `yaml:"left"`
	Top          float64 `yaml:"top"`
	ClientWidth  float64 `yaml:"client_width"`
	ClientHeight float64 `yaml:"client_height"`
}

// Snapshot is the layout of a rendered document at one moment.
type Snapshot struct {
	ScrollX  float64        `yaml:"scroll_x"`
	ScrollY  float64        `yaml:"scroll_y"`
	Elements map[string]Box `yaml:"elements"`
}

// Load reads a snapshot from a YAML or JSON file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a snapshot. JSON input is accepted as a YAML subset.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for id, b := range s.Elements {
		if b.ClientWidth < 0 || b.ClientHeight < 0 {
			return nil, fmt.Errorf("element %q: negative client size", id)
		}
	}
	if s.ScrollX < 0 || s.ScrollY < 0 {
		return nil, errors.New("negative scroll offset")
	}
	return &s, nil
}

// Probe measures id the way the live document would: bounding rect origin
// plus scroll offset for the position, client size for the dimensions.
func (s *Snapshot) Probe(id string) overlay.Geometry {
	b, ok := s.Elements[id]
	if !ok {
		return overlay.Missing(id)
	}
	return overlay.Geometry{
		X:      b.Left + s.ScrollX,
		Y:      b.Top + s.ScrollY,
		Height: b.ClientHeight,
		Width:  b.ClientWidth,
	}
}

// Has reports whether the snapshot records id, without logging.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.Elements[id]
	return ok
}

// IDs returns the recorded element ids in sorted order.
func (s *Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.Elements))
	for id := range s.Elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
