package normalize

import (
	"unicode"
	"unicode/utf8"

	"github.com/lemoi18/Text-Normalizer-norwegian/internal/textutil"
)

// scan walks s left to right and returns the recognized spans.
// Whitespace is skipped; at each token start the longest rule match is taken,
// otherwise one plain token is skipped. Spans never overlap.
func scan(s string) []Span {
	const minCap = 4
	spans := make([]Span, 0, len(s)/32+minCap)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		if sp, ok := longestMatch(s, i); ok {
			spans = append(spans, sp)
			i = sp.End
			continue
		}

		i = skipToken(s, i)
	}

	if len(spans) == 0 {
		return nil
	}
	return spans
}

// longestMatch tries every rule at byte offset i. The longest match wins;
// among equally long matches the earlier-declared rule wins.
// A match must start and end on a word boundary.
func longestMatch(s string, i int) (Span, bool) {
	if !textutil.BoundaryBefore(s, i) {
		return Span{}, false
	}

	var (
		best     Span
		found    bool
		bestSize int
	)
	for _, r := range rules {
		end, spoken, ok := r.match(s, i)
		if !ok || end <= i || end > len(s) {
			continue
		}
		if !textutil.BoundaryAfter(s, end) {
			continue
		}
		if size := end - i; size > bestSize {
			best = Span{Text: s[i:end], Start: i, End: end, Rule: r.name, Spoken: spoken}
			bestSize = size
			found = true
		}
	}
	return best, found
}

// skipToken returns the offset just past the plain token starting at i:
// a run of letters, digits and combining marks, or a single other rune.
func skipToken(s string, i int) int {
	r, size := utf8.DecodeRuneInString(s[i:])
	if !textutil.IsTokenRune(r) {
		return i + size
	}
	for i < len(s) {
		r, size = utf8.DecodeRuneInString(s[i:])
		if !textutil.IsTokenRune(r) {
			break
		}
		i += size
	}
	return i
}
