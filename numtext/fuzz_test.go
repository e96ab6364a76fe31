package numtext

import (
	"strings"
	"testing"
)

// FuzzConvert verifies that Convert never panics and never emits a digit.
func FuzzConvert(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(100))
	f.Add(int64(1000))
	f.Add(int64(1_000_000))
	f.Add(int64(1_000_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		got := Convert(n)
		if strings.ContainsAny(got, "0123456789") {
			t.Errorf("Convert(%d) = %q, contains a digit", n, got)
		}
		_ = ConvertOrdinal(n)
		_ = ConvertYear(n)
	})
}

// FuzzParse verifies that Parse never panics for any string input.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("null")
	f.Add("en")
	f.Add("ett hundre og tjue tre")
	f.Add("tusen millioner")
	f.Add("hallo verden")
	f.Add("\xff\xfe")
	f.Add("en million to hundre tusen")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_, _ = Parse(s)
	})
}

// FuzzRoundTrip verifies that Parse(Convert(n)) == n for all valid n.
func FuzzRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(123))
	f.Add(int64(1000))
	f.Add(int64(2300095))
	f.Add(int64(1_000_000_000_000_000_000))

	f.Fuzz(func(t *testing.T, n int64) {
		text := Convert(n)
		if text == "" {
			return // negative, skip
		}
		got, err := Parse(text)
		if err != nil {
			t.Errorf("Parse(Convert(%d)) = %q, error: %v", n, text, err)
		}
		if got != n {
			t.Errorf("Parse(Convert(%d)) = %d, want %d (text: %q)", n, got, n, text)
		}
	})
}

// FuzzConvertDecimal verifies that ConvertDecimal never panics.
func FuzzConvertDecimal(f *testing.F) {
	f.Add("3", "14")
	f.Add("0", "5")
	f.Add("", "")
	f.Add("abc", "1")
	f.Add("3", "0005")
	f.Add("\xff", "\xfe")
	f.Add("999999999999999999999", "1")

	f.Fuzz(func(t *testing.T, whole, frac string) {
		got := ConvertDecimal(whole, frac)
		if strings.ContainsAny(got, "0123456789") {
			t.Errorf("ConvertDecimal(%q, %q) = %q, contains a digit", whole, frac, got)
		}
	})
}
