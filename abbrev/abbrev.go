// Package abbrev expands Norwegian abbreviations to their spelled-out form.
//
// The table is authored in the spelled-out → abbreviation direction and
// inverted once at package initialization. Several spellings can share an
// abbreviation ("cirka" and "sirka" both abbreviate to "ca."); the first
// spelling registered is always the one Expand returns.
//
// Matching is exact and case-sensitive, since case distinguishes units
// ("kb" is kilobit, "kB" kilobyte, "MB" megabyte, "Mb" megabit).
//
// All functions are safe for concurrent use. The tables are never modified
// after initialization.
package abbrev

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lemoi18/Text-Normalizer-norwegian/internal/textutil"
)

// Entry pairs a spelled-out form with its abbreviation.
type Entry struct {
	Full string `json:"full"` // spelled-out form, e.g. "for eksempel"
	Abbr string `json:"abbr"` // abbreviation, e.g. "f.eks."
}

var (
	// reverse maps an abbreviation to every spelled-out form in registration order.
	reverse = buildReverse(forward)

	// byFirstByte groups abbreviations by their first byte, longest first.
	byFirstByte = buildIndex(reverse)
)

func buildReverse(entries []Entry) map[string][]string {
	m := make(map[string][]string, len(entries))
	for _, e := range entries {
		m[e.Abbr] = append(m[e.Abbr], e.Full)
	}
	return m
}

func buildIndex(rev map[string][]string) map[byte][]string {
	idx := make(map[byte][]string)
	for abbr := range rev {
		idx[abbr[0]] = append(idx[abbr[0]], abbr)
	}
	for _, list := range idx {
		slices.SortFunc(list, func(a, b string) int {
			if c := cmp.Compare(len(b), len(a)); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})
	}
	return idx
}

// Forward returns the authoring table in registration order.
// The returned slice is a copy.
func Forward() []Entry {
	return slices.Clone(forward)
}

// Lookup returns every spelled-out form registered for abbr, in registration
// order. Returns nil for an unknown abbreviation.
func Lookup(abbr string) []string {
	return slices.Clone(reverse[abbr])
}

// Expand returns the spelled-out form for abbr: the first registered spelling.
func Expand(abbr string) (string, bool) {
	fulls, ok := reverse[abbr]
	if !ok {
		return "", false
	}
	return fulls[0], true
}

// Match returns the longest abbreviation that starts at byte offset i of s and
// stands as a separate word: the rune before i and the rune after the
// abbreviation are not letters or digits.
func Match(s string, i int) (abbr string, ok bool) {
	if i < 0 || i >= len(s) || !textutil.BoundaryBefore(s, i) {
		return "", false
	}
	for _, cand := range byFirstByte[s[i]] {
		if strings.HasPrefix(s[i:], cand) && textutil.BoundaryAfter(s, i+len(cand)) {
			return cand, true
		}
	}
	return "", false
}
