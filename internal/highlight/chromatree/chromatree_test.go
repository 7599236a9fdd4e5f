package chromatree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lone-wolf-akela/MarkdownRender/internal/highlight"
)

func TestTokenize_Go(t *testing.T) {
	tok := New()
	source := `func main() { return }`

	root, err := tok.Tokenize(source, "go")
	require.NoError(t, err)
	require.Equal(t, 0, root.Start)
	require.Equal(t, len(source), root.Length)
	require.Empty(t, root.Class, "root scope renders unstyled")
	require.NotEmpty(t, root.Children, "expected classified tokens in go source")

	classes := make(map[string]bool)
	for _, c := range root.Children {
		classes[c.Class] = true
	}
	require.True(t, classes["keyword"], "expected func/return to classify as keyword, got %v", classes)
}

func TestTokenize_ChildrenOrderedAndContained(t *testing.T) {
	tok := New()
	source := "x := \"hello\" // greet\n"

	root, err := tok.Tokenize(source, "go")
	require.NoError(t, err)

	prevEnd := 0
	for _, c := range root.Children {
		require.GreaterOrEqual(t, c.Start, prevEnd, "siblings must not overlap")
		require.LessOrEqual(t, c.End(), root.Length, "children must stay inside the root")
		require.NotEmpty(t, c.Class)
		prevEnd = c.End()
	}
}

func TestTokenize_UnknownLanguageFallsBack(t *testing.T) {
	tok := New()
	source := "plain old text"

	root, err := tok.Tokenize(source, "not-a-language")
	require.NoError(t, err)
	require.Equal(t, len(source), root.Length)
	// The plaintext fallback classifies nothing.
	require.Empty(t, root.Children)
}

func TestTokenize_EmptySource(t *testing.T) {
	tok := New()

	root, err := tok.Tokenize("", "go")
	require.NoError(t, err)
	require.Equal(t, highlight.Scope{}, root)
}

func TestTokenize_LexerCacheReuse(t *testing.T) {
	tok := New()

	_, err := tok.Tokenize("a = 1", "python")
	require.NoError(t, err)
	_, ok := tok.lexerCache.Get("python")
	require.True(t, ok, "lexer should be cached after first use")

	_, err = tok.Tokenize("b = 2", "python")
	require.NoError(t, err)
}

func TestTokenize_ComposeRoundTrip(t *testing.T) {
	// The scope tree a tokenizer produces must satisfy the compositor's
	// text-preservation guarantee end to end.
	tok := New()
	source := "let x = 1"

	root, err := tok.Tokenize(source, "javascript")
	require.NoError(t, err)

	out, err := highlight.Compose(source, root, highlight.DefaultTable)
	require.NoError(t, err)
	require.Contains(t, out, "let")
	require.Contains(t, out, "\x1b[38;2;", "expected at least one styled token")
}
