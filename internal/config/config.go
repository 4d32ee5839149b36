// =============================================================================
// CSV to HTML Converter - Configuration Module
// =============================================================================
//
// This module loads the optional style configuration file. The file adjusts
// presentation only (placeholder glyph, fonts, widths, accent colors); it
// never changes parsing behavior. When no file is present, built-in defaults
// matching the stock stylesheet are used.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/csv-to-html/internal/htmlwriter"
)

// DefaultConfigFile is the style file looked up when --config is not given.
const DefaultConfigFile = "style.yaml"

// StyleConfig holds the presentation settings for the rendered document.
type StyleConfig struct {
	// Placeholder is the glyph rendered for cells that are empty after
	// trimming. Default: "—" (em dash).
	Placeholder string `yaml:"placeholder"`

	// FontFamily is the CSS font stack for the document body.
	FontFamily string `yaml:"font_family"`

	// MaxWidth is the container width cap in pixels. Must be positive.
	MaxWidth int `yaml:"max_width"`

	// AccentStart and AccentEnd are the header gradient endpoints,
	// as CSS color values.
	AccentStart string `yaml:"accent_start"`
	AccentEnd   string `yaml:"accent_end"`

	// Language is the value of the <html lang> attribute.
	Language string `yaml:"language"`
}

// Load reads the style configuration from configPath.
//
// When explicit is false (the user did not pass --config) and the default
// file does not exist, the built-in defaults are returned. An explicitly
// requested file must exist and parse.
func Load(configPath string, explicit bool) (*StyleConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			config := &StyleConfig{}
			applyStyleDefaults(config)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read style config %s: %w", configPath, err)
	}

	config := &StyleConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse style config %s: %w", configPath, err)
	}

	applyStyleDefaults(config)

	if err := validateStyleConfig(config); err != nil {
		return nil, fmt.Errorf("invalid style config %s: %w", configPath, err)
	}

	return config, nil
}

// applyStyleDefaults fills unset fields with the stock stylesheet values.
func applyStyleDefaults(config *StyleConfig) {
	defaults := htmlwriter.DefaultGenerateOptions()

	if config.Placeholder == "" {
		config.Placeholder = defaults.Placeholder
	}
	if config.FontFamily == "" {
		config.FontFamily = defaults.FontFamily
	}
	if config.MaxWidth == 0 {
		config.MaxWidth = defaults.MaxWidth
	}
	if config.AccentStart == "" {
		config.AccentStart = defaults.AccentStart
	}
	if config.AccentEnd == "" {
		config.AccentEnd = defaults.AccentEnd
	}
	if config.Language == "" {
		config.Language = defaults.Language
	}
}

// validateStyleConfig rejects settings that would produce a broken document.
func validateStyleConfig(config *StyleConfig) error {
	if config.MaxWidth < 0 {
		return fmt.Errorf("max_width must be positive, got %d", config.MaxWidth)
	}
	return nil
}

// GenerateOptions converts the configuration into renderer options.
func (c *StyleConfig) GenerateOptions() htmlwriter.GenerateOptions {
	return htmlwriter.GenerateOptions{
		Placeholder: c.Placeholder,
		FontFamily:  c.FontFamily,
		MaxWidth:    c.MaxWidth,
		AccentStart: c.AccentStart,
		AccentEnd:   c.AccentEnd,
		Language:    c.Language,
	}
}
