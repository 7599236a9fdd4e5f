// Package chromatree adapts chroma lexers into the scope trees consumed by
// the highlight compositor. It owns the mapping from chroma token types to
// the token-class names the style tables know about.
package chromatree

import (
	"fmt"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	gocache "github.com/patrickmn/go-cache"

	"github.com/lone-wolf-akela/MarkdownRender/internal/highlight"
	"github.com/lone-wolf-akela/MarkdownRender/internal/log"
)

// Tokenizer lexes source text into scope trees. Lexer lookups are cached per
// language tag since chroma's registry match is comparatively expensive.
type Tokenizer struct {
	lexerCache *gocache.Cache
}

// New creates a Tokenizer with an empty lexer cache.
func New() *Tokenizer {
	return &Tokenizer{
		lexerCache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// Tokenize lexes source and returns a root scope spanning the whole input
// with one child per classified token. Unclassified runs (plain text,
// whitespace, punctuation) get no child and render unstyled. Unknown
// language tags fall back to the plaintext lexer rather than failing.
func (t *Tokenizer) Tokenize(source, lang string) (highlight.Scope, error) {
	it, err := t.lexer(lang).Tokenise(nil, source)
	if err != nil {
		return highlight.Scope{}, fmt.Errorf("tokenising %q source: %w", lang, err)
	}

	root := highlight.Scope{Length: len(source)}
	offset := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := len(tok.Value)
		// Lexers configured with EnsureNL append a newline the source never
		// had; clamp so children stay inside the root.
		end := offset + n
		if end > len(source) {
			end = len(source)
		}
		if class := className(tok.Type); class != "" && end > offset {
			root.Children = append(root.Children, highlight.Scope{
				Start:  offset,
				Length: end - offset,
				Class:  class,
			})
		}
		offset += n
	}
	return root, nil
}

func (t *Tokenizer) lexer(lang string) chroma.Lexer {
	if cached, ok := t.lexerCache.Get(lang); ok {
		return cached.(chroma.Lexer)
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		log.Debug(log.CatTokenize, "no lexer for language, using fallback", "lang", lang)
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	t.lexerCache.Set(lang, lexer, gocache.DefaultExpiration)
	return lexer
}

// className folds chroma's fine-grained token types down to the class names
// used by the style tables. Empty string means "leave unstyled".
func className(tt chroma.TokenType) string {
	switch {
	case tt == chroma.Text, tt == chroma.TextWhitespace:
		return ""
	case tt == chroma.LiteralStringEscape:
		return "escape"
	case tt.InSubCategory(chroma.LiteralString):
		return "string"
	case tt.InSubCategory(chroma.LiteralNumber):
		return "number"
	case tt == chroma.NameConstant, tt == chroma.KeywordConstant:
		return "constant"
	case tt.InCategory(chroma.Keyword):
		return "keyword"
	case tt.InCategory(chroma.Comment):
		return "comment"
	case tt == chroma.NameFunction:
		return "function"
	case tt == chroma.NameClass, tt == chroma.NameBuiltin:
		return "type"
	case tt.InCategory(chroma.Operator):
		return "operator"
	case tt == chroma.GenericInserted:
		return "inserted"
	case tt == chroma.GenericDeleted:
		return "deleted"
	case tt == chroma.GenericHeading, tt == chroma.GenericSubheading:
		return "heading"
	default:
		return ""
	}
}
