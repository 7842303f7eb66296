// ABOUTME: Settings loading with global + project config merge and CLI overrides
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; JSON files parse as YAML

package config

import (
	"fmt"
	"os"

	"github.com/mauromedda/spinveil/pkg/overlay"
	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	BackgroundColor string `yaml:"background_color,omitempty"`
	SpinnerColor    string `yaml:"spinner_color,omitempty"`
	// SpinnerScale is a pointer so an explicit 0 or negative value survives merging.
	SpinnerScale *int   `yaml:"spinner_scale,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
	PreviewFPS   int    `yaml:"preview_fps,omitempty"`
}

// DefaultPreviewFPS is the terminal preview frame rate when none is configured.
const DefaultPreviewFPS = 12

// Options returns the overlay appearance: built-in defaults with any
// configured values layered on top.
func (s *Settings) Options() overlay.Options {
	opts := overlay.DefaultOptions()
	if s == nil {
		return opts
	}
	if s.BackgroundColor != "" {
		opts.BackgroundColor = s.BackgroundColor
	}
	if s.SpinnerColor != "" {
		opts.SpinnerColor = s.SpinnerColor
	}
	if s.SpinnerScale != nil {
		opts.SpinnerScale = *s.SpinnerScale
	}
	return opts
}

// FPS returns the preview frame rate, falling back to DefaultPreviewFPS.
func (s *Settings) FPS() int {
	if s == nil || s.PreviewFPS <= 0 {
		return DefaultPreviewFPS
	}
	return s.PreviewFPS
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadAll(projectRoot, nil)
}

// LoadAll merges global, project and CLI settings, in increasing precedence,
// then expands ${VAR} references.
func LoadAll(projectRoot string, cli *Settings) (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return LoadAllWithHome(projectRoot, home, cli)
}

// LoadAllWithHome is LoadAll with an explicit home directory.
func LoadAllWithHome(projectRoot, home string, cli *Settings) (*Settings, error) {
	global, err := loadFile(GlobalConfigFileIn(home))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(global, project), cli)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays override onto base. Non-zero override values win.
func merge(base, override *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if override == nil {
		return base
	}

	result := *base

	if override.BackgroundColor != "" {
		result.BackgroundColor = override.BackgroundColor
	}
	if override.SpinnerColor != "" {
		result.SpinnerColor = override.SpinnerColor
	}
	if override.SpinnerScale != nil {
		scale := *override.SpinnerScale
		result.SpinnerScale = &scale
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.PreviewFPS != 0 {
		result.PreviewFPS = override.PreviewFPS
	}

	return &result
}
