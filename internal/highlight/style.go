package highlight

// Style is the visual attribute set associated with a token class.
// The zero value renders as plain text.
type Style struct {
	Foreground string // hex color, empty means none
	Background string // hex color, empty means none
	Italic     bool
	Bold       bool
}

// IsZero reports whether the style carries no attributes at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// StyleTable maps token-class names to their styles.
type StyleTable map[string]Style

// Resolve looks up a token-class name. The lookup is exact-name only, no
// cascading between classes. Absent names yield the zero Style, which is the
// common case for punctuation and plain-text scopes, not an error.
func (t StyleTable) Resolve(class string) Style {
	return t[class]
}
