package normalize

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lemoi18/Text-Normalizer-norwegian/numtext"
)

// spokenDigits reads an unsigned digit string as a count.
// Reports false for literals that do not fit in 64 bits.
func spokenDigits(digits string) (string, bool) {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return "", false
	}
	return spokenCount(n), true
}

// spokenCount reads n, naming milliards from 10^9 on.
func spokenCount(n uint64) string {
	if n >= milliard {
		return spokenLarge(n)
	}
	return numtext.ConvertUint(n)
}

// spokenLarge reads n with the milliard and billion names:
// 10^12 is "en billion", 10^9 up to 10^12 is "<n> milliarder [<rest>]",
// anything else is a plain cardinal.
func spokenLarge(n uint64) string {
	switch {
	case n == billion:
		return wordBillion
	case n > billion || n < milliard:
		return numtext.ConvertUint(n)
	}

	milliards, rest := n/milliard, n%milliard

	var s string
	if milliards == 1 {
		s = "en " + wordMilliard
	} else {
		s = numtext.ConvertUint(milliards) + " " + wordMilliards
	}
	if rest > 0 {
		s += " " + numtext.ConvertUint(rest)
	}
	return s
}

// spokenEndpoint reads one side of a range: an integer, a decimal with comma
// or period, or a number with a single period thousands separator ("1.000").
func spokenEndpoint(s string) (string, bool) {
	sep := strings.IndexAny(s, ".,")
	if sep < 0 {
		return spokenDigits(s)
	}

	whole, frac := s[:sep], s[sep+1:]
	if s[sep] == '.' && len(frac) == 3 && len(whole) <= 3 {
		return spokenDigits(whole + frac)
	}

	d, err := decimal.NewFromString(whole + "." + frac)
	if err != nil {
		return "", false
	}
	if d.IsInteger() {
		return spokenDigits(whole)
	}
	out := numtext.ConvertDecimal(whole, frac)
	return out, out != ""
}

// spokenComma reads a decimal always with "komma", without the
// "og en halv" reading ConvertDecimal gives a lone 5.
func spokenComma(whole, frac string) (string, bool) {
	if frac == "5" {
		w, ok := spokenDigits(whole)
		if !ok {
			return "", false
		}
		return w + " " + wordComma + " " + numtext.Convert(5), true
	}
	out := numtext.ConvertDecimal(whole, frac)
	return out, out != ""
}

// spokenFraction reads num/den. Halves, thirds and quarters are named;
// other denominators are read as "<num>/<den>".
func spokenFraction(num, den uint64) string {
	if names, ok := fractionNames[den]; ok {
		if num == 1 {
			return names[0]
		}
		return numtext.ConvertUint(num) + " " + names[1]
	}
	return numtext.ConvertUint(num) + "/" + numtext.ConvertUint(den)
}

// scientific reads base × 10^exp. A base with a fraction is cut to its first
// decimal ("1,57" → "en komma fem").
func scientific(base, exp string) (string, bool) {
	b, ok := spokenBase(base)
	if !ok {
		return "", false
	}

	negative := false
	switch {
	case strings.HasPrefix(exp, "-"):
		negative, exp = true, exp[1:]
	case strings.HasPrefix(exp, "−"):
		negative, exp = true, strings.TrimPrefix(exp, "−")
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	}
	e, ok := spokenDigits(exp)
	if !ok {
		return "", false
	}

	s := b + " " + wordTimesTen + " "
	if negative {
		s += wordMinus + " "
	}
	return s + e, true
}

// spokenBase reads the base of a scientific number: a whole number, or the
// whole part and the first fractional digit.
func spokenBase(raw string) (string, bool) {
	d, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return "", false
	}

	whole := d.Truncate(0)
	wi := whole.BigInt()
	if !wi.IsUint64() {
		return "", false
	}
	w := numtext.ConvertUint(wi.Uint64())
	if d.IsInteger() {
		return w, true
	}

	digit := d.Sub(whole).Shift(1).Truncate(0).IntPart()
	return w + " " + wordComma + " " + numtext.Convert(digit), true
}

// fromSuperscript converts superscript digits and minus to ASCII.
func fromSuperscript(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := superscripts[r]; ok {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// allDigits reports whether s is a non-empty run of ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
