// Package normalize rewrites Norwegian text into its spoken form for speech
// synthesis.
//
// Numbers, years, dates, clock times, abbreviations, ranges, fractions,
// percentages and scientific notation are recognized and replaced by the
// words a reader would say:
//
//	"ca. 10-15 deltakere"     → "cirka ti til femten deltakere"
//	"Møte kl. 15:30 3. juni"  → "Møte klokka femten tretti tredje juni"
//	"Rapporten 2010-2020"     → "Rapporten to tusen og ti til to tusen og tjue"
//
// Recognition is a single left-to-right pass. At every token start each rule
// is tried; the longest match wins and ties go to the rule declared first
// (see Rules). Text no rule matches is copied through unchanged, so the
// output differs from the input only inside recognized spans.
//
// Three functions are provided:
//
//   - Normalize returns the rewritten text.
//   - Spans returns the recognized spans with their spoken forms.
//   - Rules lists the rule names in priority order.
//
// All functions are pure and safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - A number followed by a period is read as an ordinal ("3." → "tredje"),
//     also when the period ends a sentence.
//   - "1/2" on its own reads as a date ("første i februar"); only mixed
//     numbers ("1 1/2") and fraction glyphs ("½") read as fractions.
//   - Four-digit numbers always use the year reading ("1950 kroner" →
//     "nitten femti kroner").
//   - Abbreviations match case-sensitively; a capitalized "Ca." is not expanded.
package normalize

import (
	"fmt"
	"strings"

	"github.com/lemoi18/Text-Normalizer-norwegian/internal/textutil"
)

// maxInputBytes is the largest text Normalize and Spans scan in one piece.
// Longer text is processed line by line; a single line over the limit is
// left unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// Span is a recognized stretch of text and its spoken replacement.
type Span struct {
	Text   string `json:"text"`   // The matched substring
	Start  int    `json:"start"`  // Byte offset in the NFC-composed text (inclusive)
	End    int    `json:"end"`    // Byte offset in the NFC-composed text (exclusive)
	Rule   string `json:"rule"`   // Name of the rule that matched
	Spoken string `json:"spoken"` // Replacement text
}

// String returns a debug representation, e.g. year("1984")[4:8].
func (s Span) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", s.Rule, s.Text, s.Start, s.End)
}

// Normalize returns text with every recognized span replaced by its spoken
// form. The result is byte-for-byte the input when nothing is recognized.
// Text over 1 MiB is normalized line by line.
func Normalize(text string) string {
	if len(text) <= maxInputBytes {
		return normalizeChunk(text)
	}

	var b strings.Builder
	b.Grow(len(text) * 2)
	for line := range strings.SplitAfterSeq(text, "\n") {
		if len(line) > maxInputBytes {
			b.WriteString(line)
			continue
		}
		b.WriteString(normalizeChunk(line))
	}
	return b.String()
}

func normalizeChunk(text string) string {
	if text == "" {
		return text
	}
	composed := textutil.ComposeNFC(text)
	spans := scan(composed)
	if len(spans) == 0 {
		return text
	}
	return rewrite(composed, spans)
}

// Spans returns the recognized spans of text in order. Offsets index the
// NFC-composed form of text, which is text itself for already-composed input.
// Text over 1 MiB is scanned line by line, skipping lines over the limit.
func Spans(text string) []Span {
	if len(text) <= maxInputBytes {
		return scan(textutil.ComposeNFC(text))
	}

	var (
		spans  []Span
		offset int
	)
	for line := range strings.SplitAfterSeq(text, "\n") {
		composed := textutil.ComposeNFC(line)
		if len(line) <= maxInputBytes {
			for _, sp := range scan(composed) {
				sp.Start += offset
				sp.End += offset
				spans = append(spans, sp)
			}
		}
		offset += len(composed)
	}
	return spans
}

// Rules returns the rule names in priority order.
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// rewrite applies non-overlapping spans, sorted by Start, to s.
func rewrite(s string, spans []Span) string {
	var b strings.Builder
	b.Grow(len(s) * 2) // spoken forms are longer than digits

	last := 0
	for _, sp := range spans {
		b.WriteString(s[last:sp.Start])
		b.WriteString(sp.Spoken)
		last = sp.End
	}
	b.WriteString(s[last:])
	return b.String()
}
