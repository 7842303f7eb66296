// ABOUTME: Live DOM geometry probe for js/wasm builds via syscall/js
// ABOUTME: Bounding rect plus window scroll for position; client size for dimensions

//go:build js && wasm

package overlay

import "syscall/js"

// DOMProbe measures elements of the browser document the program runs in.
type DOMProbe struct{}

// Probe looks up id with document.getElementById and measures it.
func (DOMProbe) Probe(id string) Geometry {
	global := js.Global()
	el := global.Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return Missing(id)
	}

	rect := el.Call("getBoundingClientRect")
	return Geometry{
		X:      rect.Get("left").Float() + global.Get("scrollX").Float(),
		Y:      rect.Get("top").Float() + global.Get("scrollY").Float(),
		Height: el.Get("clientHeight").Float(),
		Width:  el.Get("clientWidth").Float(),
	}
}

func platformProbe() Probe {
	return DOMProbe{}
}
