// ABOUTME: Appearance options for the loading overlay and the shared default value
// ABOUTME: Options are passed through to markup verbatim; nothing is validated

package overlay

// Options controls the overlay's appearance.
//
// BackgroundColor and SpinnerColor are CSS color strings. SpinnerScale is a
// percentage of NaturalSize used when the target is large enough to ignore its
// own size. Malformed colors and non-positive scales are not rejected; they
// reach the markup unchanged.
type Options struct {
	BackgroundColor string `yaml:"background_color,omitempty"`
	SpinnerColor    string `yaml:"spinner_color,omitempty"`
	SpinnerScale    int    `yaml:"spinner_scale,omitempty"`
}

var defaultOptions = Options{
	BackgroundColor: "rgba(200,200,200,0.7)",
	SpinnerColor:    "#000000",
	SpinnerScale:    100,
}

// DefaultOptions returns the built-in appearance: translucent grey backdrop,
// black spinner at natural size.
func DefaultOptions() Options {
	return defaultOptions
}
