// Package config provides configuration types and defaults for osgdb.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/osgdb/internal/log"
)

// Output formats accepted by the output key.
const (
	OutputTable    = "table"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
)

// Config holds all configuration options for osgdb.
type Config struct {
	Root           string          `mapstructure:"root"`            // Catalog root; detected from the working directory when empty
	VocabularyFile string          `mapstructure:"vocabulary_file"` // Alternate vocabulary YAML; built-in tables when empty
	Output         string          `mapstructure:"output"`          // "table" (default), "json", or "markdown"
	Check          CheckConfig     `mapstructure:"check"`
	UI             UIConfig        `mapstructure:"ui"`
	Flags          map[string]bool `mapstructure:"flags"`
}

// CheckConfig holds maintenance checker options.
type CheckConfig struct {
	// URLContextEntry selects the URL prefix list for entry records.
	// Valid values: "extended" (default, accepts @see-/@not-/? sentinels), "strict"
	URLContextEntry string `mapstructure:"url_context_entry"`

	// MaxFindings caps the number of findings printed. 0 prints all.
	MaxFindings int `mapstructure:"max_findings"`
}

// UIConfig holds terminal output options.
type UIConfig struct {
	MarkdownStyle string      `mapstructure:"markdown_style"` // "auto" (default), "dark", or "light"
	WordWrap      int         `mapstructure:"word_wrap"`      // Markdown wrap width; 0 uses 80
	NoColor       bool        `mapstructure:"no_color"`
	Theme         ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig holds table color customization.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens. Accepts nested YAML
	// (status: {error: "#FF0000"}) or quoted dot keys ("status.error").
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Output: OutputTable,
		Check: CheckConfig{
			URLContextEntry: "extended",
		},
		UI: UIConfig{
			MarkdownStyle: "auto",
			WordWrap:      80,
		},
		Flags: map[string]bool{},
	}
}

// Validate checks the whole configuration.
func Validate(c Config) error {
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	if err := ValidateCheck(c.Check); err != nil {
		return err
	}
	return ValidateUI(c.UI)
}

// ValidateOutput checks the output format. Empty uses the default.
func ValidateOutput(output string) error {
	switch output {
	case "", OutputTable, OutputJSON, OutputMarkdown:
		return nil
	default:
		return fmt.Errorf("output must be \"table\", \"json\", or \"markdown\", got %q", output)
	}
}

// ValidateCheck checks maintenance checker configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateCheck(check CheckConfig) error {
	switch check.URLContextEntry {
	case "", "extended", "strict":
	default:
		return fmt.Errorf("check.url_context_entry must be \"extended\" or \"strict\", got %q", check.URLContextEntry)
	}
	if check.MaxFindings < 0 {
		return fmt.Errorf("check.max_findings must be >= 0, got %d", check.MaxFindings)
	}
	return nil
}

// ValidateUI checks terminal output configuration for errors.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"auto\", \"dark\", or \"light\", got %q", ui.MarkdownStyle)
	}
	if ui.WordWrap < 0 {
		return fmt.Errorf("ui.word_wrap must be >= 0, got %d", ui.WordWrap)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# osgdb Configuration

# Catalog root (the directory containing entries/ and code/).
# Detected by walking up from the working directory when unset.
# root: /path/to/open-source-games

# Alternate vocabulary file (see 'osgdb vocab:export').
# Uses the built-in vocabulary when unset.
# vocabulary_file: /path/to/vocabulary.yaml

# Output format: table (default), json, or markdown
output: table

# Maintenance checker
check:
  # URL prefixes accepted in entry records:
  #   extended - http(s)://, git://, svn://, ftp://, bzr:// plus @see-, @not-, ? (default)
  #   strict   - network schemes only
  url_context_entry: extended
  # max_findings: 0   # Cap printed findings (0 = all)

# Terminal output
ui:
  markdown_style: auto   # auto (default), dark, or light
  word_wrap: 80          # Markdown wrap width
  # no_color: true       # Disable colors
  # theme:
  #   preset: nord        # default, catppuccin-mocha, dracula, nord, high-contrast
  #   colors:
  #     status:
  #       error: "#FF0000"

# Feature flags
# flags:
#   order-diff: true        # Attach a field diff to ordering warnings
#   dependency-check: false # Skip code dependency checks
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
