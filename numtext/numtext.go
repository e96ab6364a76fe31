// Package numtext converts between numbers and Norwegian (bokmål) text.
//
// The package provides conversion in both directions:
//
//   - Convert turns a non-negative integer into cardinal Norwegian text.
//   - ConvertYear reads a year the way it is spoken ("nitten åtti").
//   - ConvertOrdinal produces ordinal words ("tredje", "førtiandre").
//   - ConvertDecimal reads a comma decimal ("tre komma fjorten").
//   - ConvertDigits spells a digit string one digit at a time.
//   - Parse turns cardinal text produced by Convert back into an integer.
//
// Cardinal composition follows the magnitude rules used for speech
// synthesis: "ett hundre" for a single hundred, "tusen" for a single
// thousand, "en million" for a single million, and the connector "og"
// after the thousands and hundreds groups when a smaller part follows.
//
// All functions are pure and safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Negative numbers are outside the domain; Convert returns "".
//   - Millions are not followed by "og" ("en million fem").
//   - Very large values compose recursively ("tusen millioner" for 10^9).
package numtext

import "fmt"

// Convert returns the Norwegian cardinal text for n.
// Zero returns "null". Negative numbers return an empty string.
func Convert(n int64) string {
	if n < 0 {
		return ""
	}
	return convert(uint64(n))
}

// ConvertUint is Convert for the full unsigned 64-bit range.
func ConvertUint(n uint64) string {
	return convert(n)
}

// ConvertYear returns the spoken form of a year.
//
// Years 1900–2099 use the century readings ("nitten hundre og fire",
// "nitten åtti", "to tusen og tjuetre", "to tusen og én"); every other value,
// including anything outside (0, 3000), falls back to Convert.
func ConvertYear(y int64) string {
	return convertYear(y)
}

// ConvertOrdinal returns the Norwegian ordinal text for n.
// Zero returns "nullte". Negative numbers return an empty string.
func ConvertOrdinal(n int64) string {
	if n < 0 {
		return ""
	}
	return convertOrdinal(uint64(n))
}

// ConvertDecimal reads a decimal number given as its whole and fractional
// digit strings (the two sides of a decimal comma).
//
// A fraction of exactly "5" is read as a half ("to og en halv"). Otherwise the
// result is "<whole> komma <fraction>", where leading zeros of the fraction
// are read as "null" and the rest as a cardinal.
//
// Returns an empty string for non-digit or out-of-range input.
func ConvertDecimal(whole, frac string) string {
	return convertDecimal(whole, frac)
}

// ConvertDigits spells every digit of s separately ("07" → "null sju").
// Returns an empty string if s is empty or contains a non-digit.
func ConvertDigits(s string) string {
	return convertDigits(s)
}

// Parse converts Norwegian cardinal text, as produced by Convert, to an integer.
// Input is whitespace-normalized and case-insensitive. The connector "og" is
// ignored, and "en", "ett" and "én" are all accepted for one.
//
// Returns an error for empty, unparseable, or out-of-range input.
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("numtext: empty input")
	}
	return parse(s)
}
