// Package config holds the seam carver's settings file and the validation of
// resize requests coming from the command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML settings file.
type Settings struct {
	// Debug controls the energy map written with --debug.
	Debug struct {
		// Palette is "gray" or "heat".
		Palette string `yaml:"palette"`

		// SeamColor, when set, draws the first seam over the energy map.
		SeamColor string `yaml:"seamColor"`
	} `yaml:"debug"`

	// Output controls encoding of the resized image.
	Output struct {
		// JPEGQuality ranges from 1 to 100.
		JPEGQuality int `yaml:"jpegQuality"`
	} `yaml:"output"`

	Log struct {
		// Level is "info" or "debug".
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.Debug.Palette = "gray"
	s.Output.JPEGQuality = 95
	s.Log.Level = "info"
	return s
}

// LoadSettings reads settings from a YAML file on top of the defaults.
// An empty path or a missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("error parsing settings file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveSettings writes s to path as YAML, creating the directory if needed.
func SaveSettings(s *Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("error marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing settings file: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if q := s.Output.JPEGQuality; q < 1 || q > 100 {
		return fmt.Errorf("%w: jpegQuality %d outside 1-100", ErrInvalidOptions, q)
	}
	switch strings.ToLower(s.Debug.Palette) {
	case "", "gray", "heat":
	default:
		return fmt.Errorf("%w: unknown palette %q", ErrInvalidOptions, s.Debug.Palette)
	}
	switch strings.ToLower(s.Log.Level) {
	case "", "info", "debug":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidOptions, s.Log.Level)
	}
	return nil
}

// Debugging reports whether debug logging is enabled.
func (s *Settings) Debugging() bool {
	return strings.EqualFold(s.Log.Level, "debug")
}
