package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestNew_Defaults(t *testing.T) {
	r := New(Options{})
	require.Equal(t, 80, r.Width())

	r = New(Options{Width: -5})
	require.Equal(t, 80, r.Width())

	r = New(Options{Width: 120})
	require.Equal(t, 120, r.Width())
}

func TestInlineCode(t *testing.T) {
	r := New(Options{Width: 80})
	out := r.InlineCode("fmt.Println")
	require.Contains(t, out, "fmt.Println")
	require.Equal(t, "fmt.Println", ansi.Strip(out))
}

func TestInlineCode_NoColor(t *testing.T) {
	r := New(Options{Width: 80, NoColor: true})
	require.Equal(t, "x := 1", r.InlineCode("x := 1"))
}

func TestCodeBlock_BannersAndContent(t *testing.T) {
	r := New(Options{Width: 40})
	out, err := r.CodeBlock("func main() {}\n", "go")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3, "banner, one code line, banner")

	top := ansi.Strip(lines[0])
	require.Contains(t, top, "go")
	require.Equal(t, 40, len([]rune(top)), "banner sized to width")

	require.Equal(t, "func main() {}", ansi.Strip(lines[1]))

	bottom := ansi.Strip(lines[2])
	require.NotContains(t, bottom, "go")
	require.Equal(t, 40, len([]rune(bottom)))
}

func TestCodeBlock_TabExpansion(t *testing.T) {
	r := New(Options{Width: 40, NoColor: true})

	out, err := r.CodeBlock("\tindented\n", "go")
	require.NoError(t, err)
	require.Contains(t, out, "    indented", "go blocks expand tabs")
	require.NotContains(t, out, "\t")
}

func TestCodeBlock_MakefileKeepsTabs(t *testing.T) {
	r := New(Options{Width: 40, NoColor: true})

	out, err := r.CodeBlock("all:\n\tgo build\n", "makefile")
	require.NoError(t, err)
	require.Contains(t, out, "\tgo build", "makefile tab indentation is significant")
}

func TestCodeBlock_NoColorIsPlain(t *testing.T) {
	r := New(Options{Width: 40, NoColor: true})

	out, err := r.CodeBlock("func main() {}\n", "go")
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b[")
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no tabs", "abc", "abc"},
		{"leading tab", "\tx", "    x"},
		{"mid tab aligns to stop", "ab\tx", "ab  x"},
		{"tab at stop", "abcd\tx", "abcd    x"},
		{"only tab", "\t", "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, expandTabs(tt.in))
		})
	}
}

func TestRender_Heading(t *testing.T) {
	r := New(Options{Width: 80})

	out, err := r.Render([]byte("# Title\n\nContent here"))
	require.NoError(t, err)

	stripped := ansi.Strip(out)
	require.Contains(t, stripped, "# Title")
	require.Contains(t, stripped, "Content here")
}

func TestRender_List(t *testing.T) {
	r := New(Options{Width: 80})

	out, err := r.Render([]byte("- Item 1\n- Item 2\n\n1. First\n2. Second"))
	require.NoError(t, err)

	stripped := ansi.Strip(out)
	require.Contains(t, stripped, "• Item 1")
	require.Contains(t, stripped, "• Item 2")
	require.Contains(t, stripped, "1. First")
	require.Contains(t, stripped, "2. Second")
}

func TestRender_ThemeSelectsTable(t *testing.T) {
	src := []byte("```go\nfunc main() {}\n```")

	dark, err := New(Options{Width: 60, Theme: "dark"}).Render(src)
	require.NoError(t, err)
	require.Contains(t, dark, "\x1b[38;2;86;156;214m", "dark theme keyword color")

	light, err := New(Options{Width: 60, Theme: "light"}).Render(src)
	require.NoError(t, err)
	require.Contains(t, light, "\x1b[38;2;136;57;239m", "light theme keyword color")

	// Unknown themes fall back to dark instead of failing.
	fallback, err := New(Options{Width: 60, Theme: "solarized"}).Render(src)
	require.NoError(t, err)
	require.Contains(t, fallback, "\x1b[38;2;86;156;214m")
}

func TestRender_ListItemWithMultipleBlocks(t *testing.T) {
	r := New(Options{Width: 80, NoColor: true})

	out, err := r.Render([]byte("- first block\n\n  second block\n- next item"))
	require.NoError(t, err)

	require.Equal(t, 2, strings.Count(out, "•"), "one marker per item")
	require.Contains(t, out, "• first block")
	require.Contains(t, out, "\n  second block\n", "continuation aligns under the marker")
	require.Contains(t, out, "• next item")
}

func TestRender_FencedCodeBlock(t *testing.T) {
	r := New(Options{Width: 60})

	out, err := r.Render([]byte("```go\nfunc main() {}\n```"))
	require.NoError(t, err)

	stripped := ansi.Strip(out)
	require.Contains(t, stripped, "func main() {}")
	require.Contains(t, stripped, "go", "banner carries the language tag")
	require.Contains(t, out, "\x1b[38;2;", "keyword should be styled")
}

func TestRender_CodeBlockUnknownLanguage(t *testing.T) {
	// Unrecognized language tags fall back instead of failing.
	r := New(Options{Width: 60})

	out, err := r.Render([]byte("```wibble\nsome text\n```"))
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "some text")
}

func TestRender_InlineCodeSpan(t *testing.T) {
	r := New(Options{Width: 80})

	out, err := r.Render([]byte("Use `go build` to compile"))
	require.NoError(t, err)

	stripped := ansi.Strip(out)
	require.Contains(t, stripped, "go build")
	require.Contains(t, stripped, "to compile")
}

func TestRender_EmphasisAndStrong(t *testing.T) {
	r := New(Options{Width: 80})

	out, err := r.Render([]byte("This is *em* and **strong** text"))
	require.NoError(t, err)

	stripped := ansi.Strip(out)
	require.Contains(t, stripped, "em")
	require.Contains(t, stripped, "strong")
}

func TestRender_Blockquote(t *testing.T) {
	r := New(Options{Width: 80, NoColor: true})

	out, err := r.Render([]byte("> quoted line"))
	require.NoError(t, err)
	require.Contains(t, out, "│ quoted line")
}

func TestRender_ThematicBreak(t *testing.T) {
	r := New(Options{Width: 20, NoColor: true})

	out, err := r.Render([]byte("above\n\n---\n\nbelow"))
	require.NoError(t, err)
	require.Contains(t, out, strings.Repeat("─", 20))
}

func TestRender_EmptyInput(t *testing.T) {
	r := New(Options{Width: 80})

	out, err := r.Render([]byte(""))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRender_WrapsParagraphs(t *testing.T) {
	r := New(Options{Width: 20, NoColor: true})

	out, err := r.Render([]byte("one two three four five six seven eight nine ten"))
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		require.LessOrEqual(t, len(line), 20, "wrapped line exceeds width: %q", line)
	}
}
