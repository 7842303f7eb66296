// ABOUTME: Fallback probe for non-browser builds; resolves nothing until replaced
// ABOUTME: Server-side callers install a layout snapshot via SetDefaultProbe

//go:build !(js && wasm)

package overlay

// platformProbe has no live document outside the browser; every lookup
// reports the element missing until SetDefaultProbe installs a real probe.
func platformProbe() Probe {
	return StaticProbe{}
}
