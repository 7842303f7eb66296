// ABOUTME: Geometry probe contract plus in-memory implementations for fixtures
// ABOUTME: Missing elements degrade to zero geometry with one logged diagnostic

package overlay

import (
	svlog "github.com/mauromedda/spinveil/internal/log"
)

// MissingElementMessage is the diagnostic logged when a probe cannot resolve an id.
const MissingElementMessage = "could not locate element for loading overlay"

// Probe measures the current geometry of the element with the given id.
// Implementations must not cache: layout may change between activations.
// A missing element yields the zero Geometry, reported through Missing.
type Probe interface {
	Probe(id string) Geometry
}

// ProbeFunc adapts a plain function to the Probe interface.
type ProbeFunc func(id string) Geometry

// Probe calls f(id).
func (f ProbeFunc) Probe(id string) Geometry {
	return f(id)
}

// StaticProbe resolves ids from a fixed table.
type StaticProbe map[string]Geometry

// Probe returns the recorded geometry for id, or reports it missing.
func (p StaticProbe) Probe(id string) Geometry {
	if g, ok := p[id]; ok {
		return g
	}
	return Missing(id)
}

// Missing logs the missing-element diagnostic for id and returns zero geometry.
// Probe implementations call it on lookup failure so every probe reports the
// condition the same way.
func Missing(id string) Geometry {
	svlog.Warn("%s (id=%q)", MissingElementMessage, id)
	return Geometry{}
}
