// Package markdown provides styled markdown rendering for terminal output.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// DefaultWidth is used when the configured width is not positive.
const DefaultWidth = 80

// Renderer wraps glamour with osgdb-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer. style is "auto" (terminal detection),
// "dark", "light" or "notty" (plain text); empty means auto.
func New(style string, width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	var styleOpt glamour.TermRendererOption
	switch style {
	case "", "auto":
		styleOpt = glamour.WithAutoStyle()
	case "dark", "light", "notty":
		styleOpt = glamour.WithStandardStyle(style)
	default:
		return nil, fmt.Errorf("unknown markdown style %q", style)
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
