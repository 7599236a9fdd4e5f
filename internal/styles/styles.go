// Package styles contains Lip Gloss style definitions for the document
// decoration layer. The code-block interior is styled by the highlight
// compositor directly; everything around it goes through these.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names
	TextMutedColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"} // Banners, rules
	HeadingColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	BulletColor      = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"} // teal
	LinkColor        = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve

	// HeadingStyle renders markdown headings.
	HeadingStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// BulletStyle renders list item markers.
	BulletStyle = lipgloss.NewStyle().
			Foreground(BulletColor)

	// EmphasisStyle renders *emphasized* inline text.
	EmphasisStyle = lipgloss.NewStyle().Italic(true)

	// StrongStyle renders **strong** inline text.
	StrongStyle = lipgloss.NewStyle().Bold(true)

	// LinkStyle renders link destinations.
	LinkStyle = lipgloss.NewStyle().
			Foreground(LinkColor).
			Underline(true)

	// InlineCodeStyle renders inline code spans: a single styled run, no
	// scope tree, dim plus reverse-video.
	InlineCodeStyle = lipgloss.NewStyle().
			Faint(true).
			Reverse(true)

	// BannerStyle renders the rule lines above and below a code block.
	BannerStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	// BlockquoteStyle renders quoted paragraphs.
	BlockquoteStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Italic(true)
)
