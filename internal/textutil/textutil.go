// Package textutil provides rune classification, word-boundary checks and
// Unicode composition shared by the recognizers.
//
// A word boundary sits between two runes when at most one of them is a word
// rune (a letter or a digit). Offsets are byte offsets into UTF-8 text.
//
// All functions are safe for concurrent use.
package textutil

import (
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r is a letter or a digit.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsTokenRune reports whether r continues a plain word token:
// a letter, a digit or a combining mark.
func IsTokenRune(r rune) bool {
	return IsWordRune(r) || unicode.Is(unicode.Mn, r)
}

// PrevRune returns the rune ending at byte offset i.
// ok is false at the start of s.
func PrevRune(s string, i int) (r rune, ok bool) {
	if i <= 0 || i > len(s) {
		return 0, false
	}
	r, _ = utf8.DecodeLastRuneInString(s[:i])
	return r, true
}

// NextRune returns the rune starting at byte offset i.
// ok is false at the end of s.
func NextRune(s string, i int) (r rune, ok bool) {
	if i < 0 || i >= len(s) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(s[i:])
	return r, true
}

// BoundaryBefore reports whether a word may start at byte offset i:
// i is the start of s or the preceding rune is not a word rune.
func BoundaryBefore(s string, i int) bool {
	r, ok := PrevRune(s, i)
	return !ok || !IsWordRune(r)
}

// BoundaryAfter reports whether a word may end at byte offset i:
// i is the end of s or the following rune is not a word rune.
func BoundaryAfter(s string, i int) bool {
	r, ok := NextRune(s, i)
	return !ok || !IsWordRune(r)
}

// DigitAfter reports whether an ASCII digit starts at byte offset i.
func DigitAfter(s string, i int) bool {
	return i >= 0 && i < len(s) && s[i] >= '0' && s[i] <= '9'
}
