package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lemoi18/Text-Normalizer-norwegian/abbrev"
	"github.com/lemoi18/Text-Normalizer-norwegian/datetime"
	"github.com/lemoi18/Text-Normalizer-norwegian/numtext"
)

// Rule names, as reported in Span.Rule.
const (
	RuleRange         = "range"
	RuleFraction      = "unicode-fraction"
	RuleSlashDate     = "slash-date"
	RuleDashDate      = "dash-date"
	RuleYearFirstDate = "year-first-date"
	RuleScientific    = "scientific"
	RuleMixedNumber   = "mixed-number"
	RuleLargeNumber   = "large-number"
	RuleAbbreviation  = "abbreviation"
	RuleThousands     = "thousand-separated"
	RuleClock         = "clock"
	RuleMonthNameDate = "month-name-date"
	RuleDottedDate    = "dotted-date"
	RuleOrdinal       = "ordinal"
	RuleYear          = "year"
	RuleParenthesized = "parenthesized"
	RuleVersion       = "version"
	RuleTiden         = "tiden"
	RulePercent       = "percent"
	RuleSpacedNumber  = "spaced-number"
	RuleDecimal       = "decimal"
	RuleInteger       = "integer"
)

// Every pattern is anchored at the scan position. Boundaries on both sides
// are checked by the scanner. Digit groups are capped at what fits in 64 bits.
var (
	reRange         = regexp.MustCompile(`^([(\[]?)(\d+(?:[.,]\d+)?)[ \t]*[-–][ \t]*(\d+(?:[.,]\d+)?)([)\]]?)(?:[ \t]?(%))?`)
	reFraction      = regexp.MustCompile(`^(\d*)([¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞])`)
	reSciTimes      = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)[ \t]*[×x·*][ \t]*10(?:\^([-−]?\d+)|([⁻]?[⁰¹²³⁴⁵⁶⁷⁸⁹]+))`)
	reSciE          = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)[eE]([-+−]?\d+)`)
	reMixed         = regexp.MustCompile(`^(\d+)[ \t]+(\d+)/(\d+)`)
	reLarge         = regexp.MustCompile(`^\d{9,}`)
	reThousands     = regexp.MustCompile(`^\d{1,3}(?:\.\d{3}){1,6}`)
	reOrdinal       = regexp.MustCompile(`^(\d{1,3})\.`)
	reYear          = regexp.MustCompile(`^\d{4}`)
	reParenthesized = regexp.MustCompile(`^\((\d+)\)`)
	reVersion       = regexp.MustCompile(`^(\d+)\.(\d+)`)
	reTiden         = regexp.MustCompile(`^(\d+)(?:[.:](\d{2}))?-(tiden|tida)`)
	rePercent       = regexp.MustCompile(`^(\d+)(?:,(\d+))?[ \t\x{00A0}\x{202F}]?%`)
	reSpaced        = regexp.MustCompile(`^\d{1,3}(?:[ \x{00A0}\x{202F}]\d{3}){1,6}`)
	reDecimal       = regexp.MustCompile(`^(\d+),(\d+)`)
	reInteger       = regexp.MustCompile(`^\d+`)
)

// matchFunc reports whether a rule matches s at byte offset i, returning the
// end offset of the match and its spoken form.
type matchFunc func(s string, i int) (end int, spoken string, ok bool)

type rule struct {
	name  string
	match matchFunc
}

// rules is the recognizer table in priority order: multi-token patterns,
// then abbreviations, dates, years, numbers.
var rules = []rule{
	{RuleRange, regexRule(reRange, spokenRange)},
	{RuleFraction, regexRule(reFraction, spokenFractionGlyph)},
	{RuleSlashDate, dateRule(datetime.LayoutSlash)},
	{RuleDashDate, dateRule(datetime.LayoutDashed)},
	{RuleYearFirstDate, dateRule(datetime.LayoutYearFirst)},
	{RuleScientific, scientificRule},
	{RuleMixedNumber, regexRule(reMixed, spokenMixed)},
	{RuleLargeNumber, regexRule(reLarge, spokenLargeNumber)},
	{RuleAbbreviation, abbreviationRule},
	{RuleThousands, regexRule(reThousands, spokenThousands)},
	{RuleClock, clockRule},
	{RuleMonthNameDate, dateRule(datetime.LayoutMonthName)},
	{RuleDottedDate, dateRule(datetime.LayoutDotted)},
	{RuleOrdinal, ordinalRule},
	{RuleYear, regexRule(reYear, spokenYear)},
	{RuleParenthesized, regexRule(reParenthesized, spokenParenthesized)},
	{RuleVersion, regexRule(reVersion, spokenVersion)},
	{RuleTiden, regexRule(reTiden, spokenTiden)},
	{RulePercent, regexRule(rePercent, spokenPercent)},
	{RuleSpacedNumber, regexRule(reSpaced, spokenSpaced)},
	{RuleDecimal, regexRule(reDecimal, spokenDecimal)},
	{RuleInteger, regexRule(reInteger, spokenInteger)},
}

// regexRule builds a matcher from an anchored pattern and a conversion of
// its submatches (g[0] is the whole match; absent groups are "").
func regexRule(re *regexp.Regexp, convert func(g []string) (string, bool)) matchFunc {
	return func(s string, i int) (int, string, bool) {
		m := re.FindStringSubmatchIndex(s[i:])
		if m == nil {
			return 0, "", false
		}
		g := make([]string, len(m)/2)
		for k := range g {
			if m[2*k] >= 0 {
				g[k] = s[i+m[2*k] : i+m[2*k+1]]
			}
		}
		spoken, ok := convert(g)
		if !ok {
			return 0, "", false
		}
		return i + m[1], spoken, true
	}
}

func dateRule(layout datetime.Layout) matchFunc {
	return func(s string, i int) (int, string, bool) {
		d, n, ok := datetime.MatchDate(s[i:], layout)
		if !ok {
			return 0, "", false
		}
		return i + n, d.Spoken(), true
	}
}

func clockRule(s string, i int) (int, string, bool) {
	c, n, ok := datetime.MatchClock(s[i:])
	if !ok {
		return 0, "", false
	}
	return i + n, c.Spoken(), true
}

func abbreviationRule(s string, i int) (int, string, bool) {
	abbr, ok := abbrev.Match(s, i)
	if !ok {
		return 0, "", false
	}
	full, _ := abbrev.Expand(abbr)
	return i + len(abbr), full, true
}

func scientificRule(s string, i int) (int, string, bool) {
	if end, spoken, ok := regexRule(reSciTimes, spokenScientific)(s, i); ok {
		return end, spoken, true
	}
	return regexRule(reSciE, spokenScientificE)(s, i)
}

// ordinalRule matches "N." with up to three digits. The period is dropped
// when the sentence continues ("3. plass" → "tredje plass") and kept when it
// ends one: at the end of the text, before a line break, or before a
// capitalized word.
func ordinalRule(s string, i int) (int, string, bool) {
	m := reOrdinal.FindStringSubmatchIndex(s[i:])
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(s[i+m[2] : i+m[3]])
	if err != nil {
		return 0, "", false
	}
	end := i + m[1]
	spoken := datetime.DayOrdinal(n)
	if sentenceEnds(s, end) {
		spoken += "."
	}
	return end, spoken, true
}

// sentenceEnds reports whether a period ending at byte offset i closes a
// sentence.
func sentenceEnds(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	for j := i; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		switch {
		case r == '\n' || r == '\r':
			return true
		case unicode.IsSpace(r):
			j += size
			continue
		}
		return j > i && unicode.IsUpper(r)
	}
	return true
}

// ---------- conversions ----------

func spokenRange(g []string) (string, bool) {
	open, left, right, closing, percent := g[1], g[2], g[3], g[4], g[5]

	var a, b string
	if ya, yb, ok := yearPair(left, right); ok {
		a, b = numtext.ConvertYear(ya), numtext.ConvertYear(yb)
	} else {
		var okA, okB bool
		a, okA = spokenEndpoint(left)
		b, okB = spokenEndpoint(right)
		if !okA || !okB {
			return "", false
		}
	}

	var sb strings.Builder
	sb.Grow(len(a) + len(b) + 16)
	sb.WriteString(open)
	sb.WriteString(a)
	sb.WriteString(" " + wordTo + " ")
	sb.WriteString(b)
	sb.WriteString(closing)
	if percent != "" {
		sb.WriteString(" " + wordPercent)
	}
	return sb.String(), true
}

// yearPair reports whether both range endpoints are plain four-digit years.
func yearPair(left, right string) (int64, int64, bool) {
	if len(left) != 4 || len(right) != 4 || !allDigits(left) || !allDigits(right) {
		return 0, 0, false
	}
	a, _ := strconv.ParseInt(left, 10, 64)
	b, _ := strconv.ParseInt(right, 10, 64)
	if a < 1000 || b < 1000 {
		return 0, 0, false
	}
	return a, b, true
}

func spokenFractionGlyph(g []string) (string, bool) {
	glyph, _ := utf8.DecodeRuneInString(g[2])
	phrase, ok := fractionGlyphs[glyph]
	if !ok {
		return "", false
	}
	if g[1] == "" {
		return phrase, true
	}
	whole, ok := spokenDigits(g[1])
	if !ok {
		return "", false
	}
	return whole + " " + wordAnd + " " + phrase, true
}

func spokenScientific(g []string) (string, bool) {
	exp := g[2]
	if exp == "" {
		exp = fromSuperscript(g[3])
	}
	return scientific(g[1], exp)
}

func spokenScientificE(g []string) (string, bool) {
	return scientific(g[1], g[2])
}

func spokenMixed(g []string) (string, bool) {
	whole, err1 := strconv.ParseUint(g[1], 10, 64)
	num, err2 := strconv.ParseUint(g[2], 10, 64)
	den, err3 := strconv.ParseUint(g[3], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	return numtext.ConvertUint(whole) + " " + wordAnd + " " + spokenFraction(num, den), true
}

func spokenLargeNumber(g []string) (string, bool) {
	n, err := strconv.ParseUint(g[0], 10, 64)
	if err != nil {
		return "", false
	}
	return spokenLarge(n), true
}

func spokenThousands(g []string) (string, bool) {
	return spokenDigits(strings.ReplaceAll(g[0], ".", ""))
}

func spokenYear(g []string) (string, bool) {
	y, err := strconv.ParseInt(g[0], 10, 64)
	if err != nil {
		return "", false
	}
	return numtext.ConvertYear(y), true
}

func spokenParenthesized(g []string) (string, bool) {
	var inner string
	if len(g[1]) == 4 {
		if y, err := strconv.ParseInt(g[1], 10, 64); err == nil {
			inner = numtext.ConvertYear(y)
		}
	}
	if inner == "" {
		var ok bool
		if inner, ok = spokenDigits(g[1]); !ok {
			return "", false
		}
	}
	return "(" + inner + ")", true
}

func spokenVersion(g []string) (string, bool) {
	major, ok1 := spokenDigits(g[1])
	minor, ok2 := spokenDigits(g[2])
	if !ok1 || !ok2 {
		return "", false
	}
	return major + " " + minor, true
}

func spokenTiden(g []string) (string, bool) {
	hour, ok := spokenDigits(g[1])
	if !ok {
		return "", false
	}
	if g[2] != "" {
		minute, ok := spokenDigits(g[2])
		if !ok {
			return "", false
		}
		hour += " " + minute
	}
	return hour + "-" + g[3], true
}

func spokenPercent(g []string) (string, bool) {
	var n string
	var ok bool
	if g[2] == "" {
		n, ok = spokenDigits(g[1])
	} else {
		n, ok = spokenComma(g[1], g[2])
	}
	if !ok {
		return "", false
	}
	return n + " " + wordPercent, true
}

func spokenSpaced(g []string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, g[0])
	return spokenDigits(digits)
}

func spokenDecimal(g []string) (string, bool) {
	s := numtext.ConvertDecimal(g[1], g[2])
	return s, s != ""
}

func spokenInteger(g []string) (string, bool) {
	return spokenDigits(g[0])
}
