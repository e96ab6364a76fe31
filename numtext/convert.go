// Unexported conversion functions for Norwegian number-to-text conversion.
package numtext

import (
	"strconv"
	"strings"
)

const (
	growConvert = 64 // estimated bytes for a full cardinal conversion
	growDecimal = 96 // estimated bytes for a decimal conversion

	yearMax = 3000
)

// convert converts n to Norwegian cardinal text.
func convert(n uint64) string {
	if n == 0 {
		return wordZero
	}
	var b strings.Builder
	b.Grow(growConvert)
	writeNumber(&b, n)
	return b.String()
}

// writeNumber writes n > 0 as cardinal text into b, separated from any
// existing content by a single space.
func writeNumber(b *strings.Builder, n uint64) {
	millions := n / million
	rem := n % million

	if millions > 0 {
		space(b)
		if millions == 1 {
			b.WriteString(wordOneMillion)
		} else {
			writeNumber(b, millions)
			b.WriteByte(' ')
			b.WriteString(wordMillions)
		}
	}

	thousands := rem / thousand
	rem %= thousand

	if thousands > 0 {
		space(b)
		if thousands == 1 {
			b.WriteString(wordThousand)
		} else {
			writeNumber(b, thousands)
			b.WriteByte(' ')
			b.WriteString(wordThousand)
		}
		if rem > 0 {
			b.WriteByte(' ')
			b.WriteString(wordAnd)
		}
	}

	hundreds := rem / hundred
	rem %= hundred

	if hundreds > 0 {
		space(b)
		if hundreds == 1 {
			b.WriteString(wordOneHundred)
		} else {
			writeNumber(b, hundreds)
			b.WriteByte(' ')
			b.WriteString(wordHundred)
		}
		if rem > 0 {
			b.WriteByte(' ')
			b.WriteString(wordAnd)
		}
	}

	if rem > 0 {
		space(b)
		writeBelowHundred(b, rem)
	}
}

// writeBelowHundred writes n in [1, 99], with a space between the tens and
// ones words ("tjue tre").
func writeBelowHundred(b *strings.Builder, n uint64) {
	switch {
	case n < 10:
		b.WriteString(ones[n])
	case n < 20:
		b.WriteString(teens[n-10])
	default:
		b.WriteString(tens[n/10])
		if o := n % 10; o > 0 {
			b.WriteByte(' ')
			b.WriteString(ones[o])
		}
	}
}

func space(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
}

// compressBelowHundred returns n in [0, 99] with the tens and ones words
// joined without a space ("åttifire"). Used for the two last digits of years.
func compressBelowHundred(n int64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	}
	if o := n % 10; o != 0 {
		return tens[n/10] + ones[o]
	}
	return tens[n/10]
}

// convertYear implements ConvertYear.
func convertYear(y int64) string {
	if y <= 0 || y >= yearMax {
		return Convert(y)
	}

	switch {
	case y >= 2000 && y <= 2099:
		rem := y - 2000
		switch rem {
		case 0:
			return wordYear2000
		case 1:
			return wordYear2000 + " " + wordAnd + " " + wordYearOne
		}
		return wordYear2000 + " " + wordAnd + " " + compressBelowHundred(rem)

	case y >= 1900 && y <= 1999:
		rem := y - 1900
		if rem == 0 {
			return wordNineteen + " " + wordHundred
		}
		// 1980 → "nitten åtti", without "hundre".
		if rem >= 10 && rem%10 == 0 {
			return wordNineteen + " " + compressBelowHundred(rem)
		}
		return wordNineteen + " " + wordHundred + " " + wordAnd + " " + compressBelowHundred(rem)
	}

	return Convert(y)
}

// convertOrdinal converts n to Norwegian ordinal text.
func convertOrdinal(n uint64) string {
	if n < 20 {
		return ordinalOnes[n]
	}
	if n < hundred {
		t, o := n/10, n%10
		if o == 0 {
			return ordinalTens[t]
		}
		return tens[t] + ordinalOnes[o]
	}

	rem := n % hundred
	if rem != 0 {
		return convert(n-rem) + " " + wordAnd + " " + convertOrdinal(rem)
	}

	// Round values: the last magnitude word takes the ordinal suffix.
	cardinal := convert(n)
	switch {
	case strings.HasSuffix(cardinal, wordMillions):
		return strings.TrimSuffix(cardinal, "er") + "te"
	case strings.HasSuffix(cardinal, wordMillion):
		return cardinal + "te"
	default:
		// "hundre" → "hundrede", "tusen" → "tusende"
		return cardinal + "de"
	}
}

// convertDecimal implements ConvertDecimal.
func convertDecimal(whole, frac string) string {
	if whole == "" {
		whole = "0"
	}
	if !allDigits(whole) || !allDigits(frac) {
		return ""
	}

	wholeVal, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return ""
	}
	wholeText := convert(wholeVal)

	if frac == "5" {
		return wholeText + " " + wordAnd + " " + wordHalf
	}

	var b strings.Builder
	b.Grow(growDecimal)
	b.WriteString(wholeText)
	b.WriteByte(' ')
	b.WriteString(wordComma)

	rest := strings.TrimLeft(frac, "0")
	for range len(frac) - len(rest) {
		b.WriteByte(' ')
		b.WriteString(wordZero)
	}
	if rest != "" {
		fracVal, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return ""
		}
		b.WriteByte(' ')
		writeNumber(&b, fracVal)
	}

	return b.String()
}

// convertDigits implements ConvertDigits.
func convertDigits(s string) string {
	if !allDigits(s) {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) * 5)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ones[s[i]-'0'])
	}
	return b.String()
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
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
