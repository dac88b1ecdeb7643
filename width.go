package vtcore

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width a codepoint occupies: 2 for wide
// characters (CJK, fullwidth forms, most emoji), 1 for normal printable
// runes, 0 for combining marks and other zero-width codepoints.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune reports whether r occupies two columns.
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of s.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
