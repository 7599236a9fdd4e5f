package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lone-wolf-akela/MarkdownRender/internal/highlight"
	"github.com/lone-wolf-akela/MarkdownRender/internal/styles"
)

const tabStop = 4

// InlineCode renders a single inline code span: one style applied to one
// literal string, no scope tree involved.
func (r *Renderer) InlineCode(code string) string {
	if r.noColor {
		return code
	}
	return styles.InlineCodeStyle.Render(code)
}

// CodeBlock renders a fenced code block: a banner line above and below sized
// to the renderer width, with each source line highlighted independently.
// Leading tabs are expanded to spaces except for makefile blocks, where tab
// indentation is significant and kept literal.
func (r *Renderer) CodeBlock(code, lang string) (string, error) {
	var b strings.Builder
	b.WriteString(r.banner(lang))
	b.WriteString("\n")

	for _, line := range strings.Split(strings.TrimSuffix(code, "\n"), "\n") {
		if lang != "makefile" {
			line = expandTabs(line)
		}
		rendered, err := r.codeLine(line, lang)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
		b.WriteString("\n")
	}

	b.WriteString(r.banner(""))
	b.WriteString("\n")
	return b.String(), nil
}

// codeLine runs one source line through the tokenize-flatten-compose
// pipeline.
func (r *Renderer) codeLine(line, lang string) (string, error) {
	if r.noColor {
		return line, nil
	}
	root, err := r.tok.Tokenize(line, lang)
	if err != nil {
		return "", err
	}
	return highlight.Compose(line, root, highlight.TableFor(r.theme, lang))
}

// banner builds a horizontal rule sized to the renderer width, embedding the
// language tag when one is present.
func (r *Renderer) banner(lang string) string {
	label := "───"
	if lang != "" {
		label = "── " + lang + " "
	}
	rest := r.width - runewidth.StringWidth(label)
	if rest < 0 {
		rest = 0
	}
	rule := label + strings.Repeat("─", rest)
	if r.noColor {
		return rule
	}
	return styles.BannerStyle.Render(rule)
}

// expandTabs replaces tabs with spaces up to the next tab stop, keeping
// column alignment for lines that mix tabs and text.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, ch := range line {
		if ch == '\t' {
			n := tabStop - col%tabStop
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(ch)
		col += runewidth.RuneWidth(ch)
	}
	return b.String()
}
