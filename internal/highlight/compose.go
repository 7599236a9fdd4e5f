package highlight

import "strings"

// SGR sequences emitted by the compositor. Foreground and background get the
// resolved triplet spliced between prefix and suffix.
const (
	Reset = "\x1b[0m"

	fgPrefix  = "\x1b[38;2;"
	bgPrefix  = "\x1b[48;2;"
	sgrSuffix = "m"
	italicSeq = "\x1b[3m"
	boldSeq   = "\x1b[1m"
)

// Compose renders text with the scope tree's styles applied, returning the
// literal text interleaved with SGR sequences. Every byte of the input
// appears exactly once in the output, in order; the transform never drops or
// duplicates source text.
//
// A close always emits a full reset rather than restoring the enclosing
// scope's style, so an outer style is not re-applied after an inner scope
// closes. Known cosmetic limitation, kept for output compatibility.
//
// A FormatError from a malformed table color aborts the whole call; nothing
// is returned for partially composed text.
func Compose(text string, root Scope, table StyleTable) (string, error) {
	var out strings.Builder
	offset := 0

	for _, ev := range flatten(&root) {
		pos := ev.pos
		// Tolerate trees that overshoot the text.
		if pos > len(text) {
			pos = len(text)
		}
		if pos > offset {
			out.WriteString(text[offset:pos])
			offset = pos
		}

		if ev.kind == closeEvent {
			out.WriteString(Reset)
			continue
		}
		seq, err := openSequence(table.Resolve(ev.scope.Class))
		if err != nil {
			return "", err
		}
		out.WriteString(seq)
	}

	out.WriteString(text[offset:])
	return out.String(), nil
}

// openSequence builds the escape codes for one style: foreground and
// background first, then italic and bold, each as its own sequence. A zero
// style yields an empty string, never a no-op escape.
func openSequence(st Style) (string, error) {
	if st.IsZero() {
		return "", nil
	}

	var b strings.Builder
	fg, err := HexToRGB(st.Foreground)
	if err != nil {
		return "", err
	}
	if fg != "" {
		b.WriteString(fgPrefix + fg + sgrSuffix)
	}

	bg, err := HexToRGB(st.Background)
	if err != nil {
		return "", err
	}
	if bg != "" {
		b.WriteString(bgPrefix + bg + sgrSuffix)
	}

	if st.Italic {
		b.WriteString(italicSeq)
	}
	if st.Bold {
		b.WriteString(boldSeq)
	}
	return b.String(), nil
}
