package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/lone-wolf-akela/MarkdownRender/internal/log"
	"github.com/lone-wolf-akela/MarkdownRender/internal/styles"
)

// Render parses markdown source and renders every top-level block, returning
// the decorated document as a single string ready for terminal output.
func (r *Renderer) Render(src []byte) (string, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var out strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		block, err := r.renderBlock(n, src)
		if err != nil {
			return "", err
		}
		out.WriteString(block)
		if n.NextSibling() != nil {
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

func (r *Renderer) renderBlock(n ast.Node, src []byte) (string, error) {
	switch n := n.(type) {
	case *ast.Heading:
		return r.heading(n, src), nil

	case *ast.Paragraph:
		return wordwrap.String(r.renderInline(n, src), r.width) + "\n", nil

	case *ast.FencedCodeBlock:
		lang := string(n.Language(src))
		return r.CodeBlock(blockLines(n, src), lang)

	case *ast.CodeBlock:
		// Indented code block: no language tag known, fall back to the
		// default table via the plaintext lexer.
		return r.CodeBlock(blockLines(n, src), "")

	case *ast.List:
		return r.list(n, src, 0)

	case *ast.Blockquote:
		return r.blockquote(n, src)

	case *ast.ThematicBreak:
		return r.styled(styles.BannerStyle, strings.Repeat("─", r.width)) + "\n", nil

	default:
		log.Debug(log.CatRender, "unhandled block kind", "kind", n.Kind().String())
		return wordwrap.String(r.renderInline(n, src), r.width) + "\n", nil
	}
}

func (r *Renderer) heading(n *ast.Heading, src []byte) string {
	marker := strings.Repeat("#", n.Level)
	return r.styled(styles.HeadingStyle, marker+" "+r.renderInline(n, src)) + "\n"
}

func (r *Renderer) list(n *ast.List, src []byte, depth int) (string, error) {
	indent := strings.Repeat("  ", depth)
	var out strings.Builder

	index := n.Start
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d.", index)
			index++
		}

		// Only the item's first block carries the marker; continuation
		// blocks align under it.
		markerDone := false
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child := child.(type) {
			case *ast.List:
				nested, err := r.list(child, src, depth+1)
				if err != nil {
					return "", err
				}
				out.WriteString(nested)
			default:
				out.WriteString(indent)
				if markerDone {
					out.WriteString(strings.Repeat(" ", runewidth.StringWidth(marker)+1))
				} else {
					out.WriteString(r.styled(styles.BulletStyle, marker))
					out.WriteString(" ")
					markerDone = true
				}
				out.WriteString(r.renderInline(child, src))
				out.WriteString("\n")
			}
		}
	}
	return out.String(), nil
}

func (r *Renderer) blockquote(n *ast.Blockquote, src []byte) (string, error) {
	var inner strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		block, err := r.renderBlock(child, src)
		if err != nil {
			return "", err
		}
		inner.WriteString(block)
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(inner.String(), "\n"), "\n") {
		out.WriteString(r.styled(styles.BlockquoteStyle, "│ "+line))
		out.WriteString("\n")
	}
	return out.String(), nil
}

// renderInline flattens a block node's inline children into one styled
// string. Code spans go through InlineCode; emphasis and links use the
// shared styles.
func (r *Renderer) renderInline(n ast.Node, src []byte) string {
	var out strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			out.Write(child.Segment.Value(src))
			if child.HardLineBreak() {
				out.WriteString("\n")
			} else if child.SoftLineBreak() {
				out.WriteString(" ")
			}

		case *ast.CodeSpan:
			out.WriteString(r.InlineCode(r.renderInline(child, src)))

		case *ast.Emphasis:
			style := styles.EmphasisStyle
			if child.Level >= 2 {
				style = styles.StrongStyle
			}
			out.WriteString(r.styled(style, r.renderInline(child, src)))

		case *ast.Link:
			label := r.renderInline(child, src)
			out.WriteString(r.styled(styles.LinkStyle, label))
			if dest := string(child.Destination); dest != "" && dest != label {
				out.WriteString(" (" + dest + ")")
			}

		case *ast.AutoLink:
			out.WriteString(r.styled(styles.LinkStyle, string(child.URL(src))))

		case *ast.Image:
			out.WriteString(r.renderInline(child, src))

		default:
			out.WriteString(r.renderInline(child, src))
		}
	}
	return out.String()
}

// styled applies a lipgloss style unless color is suppressed.
func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if r.noColor {
		return s
	}
	return style.Render(s)
}

// blockLines reassembles a code block's raw source lines.
func blockLines(n ast.Node, src []byte) string {
	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(src))
	}
	return code.String()
}
