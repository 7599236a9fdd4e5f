package highlight

// Built-in theme tables. The dark table follows the Dark+ palette, the
// light table the Latte palette.
var (
	darkTable = StyleTable{
		"keyword":  {Foreground: "569CD6", Bold: true},   // blue
		"operator": {Foreground: "D4D4D4"},               // light grey
		"string":   {Foreground: "CE9178"},               // orange
		"number":   {Foreground: "B5CEA8"},               // pale green
		"comment":  {Foreground: "6A9955", Italic: true}, // green
		"function": {Foreground: "DCDCAA"},               // pale yellow
		"type":     {Foreground: "4EC9B0"},               // teal
		"constant": {Foreground: "569CD6"},               // blue
		"escape":   {Foreground: "D7BA7D"},               // gold
	}

	lightTable = StyleTable{
		"keyword":  {Foreground: "8839EF", Bold: true},   // mauve
		"operator": {Foreground: "5C5F77"},               // subtext
		"string":   {Foreground: "DF8E1D"},               // yellow
		"number":   {Foreground: "FE640B"},               // peach
		"comment":  {Foreground: "9CA0B0", Italic: true}, // overlay0
		"function": {Foreground: "1E66F5"},               // blue
		"type":     {Foreground: "179299"},               // teal
		"constant": {Foreground: "D20F39"},               // red
		"escape":   {Foreground: "E64553"},               // maroon
	}
)

// themes maps theme names to their base tables.
var themes = map[string]StyleTable{
	"dark":  darkTable,
	"light": lightTable,
}

// DefaultTable is the table used when no theme is configured.
var DefaultTable = darkTable

// languageTables holds per-language overrides applied regardless of theme.
// Anything not listed here renders with the selected theme's table.
var languageTables = map[string]StyleTable{
	"diff": {
		"inserted": {Foreground: "73F59F"}, // green
		"deleted":  {Foreground: "FF8787"}, // red
		"heading":  {Foreground: "89B4FA", Bold: true},
		"comment":  {Foreground: "6C7086"},
	},
}

// KnownTheme reports whether name is a built-in theme.
func KnownTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// TableFor returns the style table for a theme and language tag. Language
// overrides win over the theme; unknown theme names fall back to
// DefaultTable rather than failing.
func TableFor(theme, lang string) StyleTable {
	if t, ok := languageTables[lang]; ok {
		return t
	}
	if t, ok := themes[theme]; ok {
		return t
	}
	return DefaultTable
}
