// Package render is the document decoration layer: it parses markdown,
// pushes code spans and fenced blocks through the highlight compositor, and
// applies simple formatting policies to everything else.
package render

import (
	"github.com/lone-wolf-akela/MarkdownRender/internal/highlight/chromatree"
)

// Options configure a Renderer.
type Options struct {
	// Width is the wrap and banner width in terminal cells. Values <= 0
	// fall back to 80.
	Width int
	// NoColor suppresses every escape sequence; output is plain text with
	// the same layout.
	NoColor bool
	// Theme selects the highlight style tables by name ("dark", "light").
	// Unknown or empty names fall back to the dark theme.
	Theme string
}

// Renderer turns markdown source into styled terminal output. A Renderer is
// stateless apart from its lexer cache and is safe to reuse across documents.
type Renderer struct {
	width   int
	noColor bool
	theme   string
	tok     *chromatree.Tokenizer
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	return &Renderer{
		width:   width,
		noColor: opts.NoColor,
		theme:   opts.Theme,
		tok:     chromatree.New(),
	}
}

// Width returns the configured wrap width.
func (r *Renderer) Width() int {
	return r.width
}
