// Tests for the numtext package: Convert, ConvertYear, ConvertOrdinal, ConvertDecimal, Parse.
package numtext

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "null"},
		{"one", 1, "en"},
		{"nine", 9, "ni"},
		{"ten", 10, "ti"},
		{"eleven", 11, "elleve"},
		{"nineteen", 19, "nitten"},
		{"twenty", 20, "tjue"},
		{"twenty-one", 21, "tjue en"},
		{"forty-two", 42, "førti to"},
		{"ninety-nine", 99, "nitti ni"},
		{"hundred", 100, "ett hundre"},
		{"hundred one", 101, "ett hundre og en"},
		{"two hundred", 200, "to hundre"},
		{"three hundred fifty", 350, "tre hundre og femti"},
		{"nine hundred ninety-nine", 999, "ni hundre og nitti ni"},
		{"thousand", 1000, "tusen"},
		{"thousand one", 1001, "tusen og en"},
		{"thousand hundred", 1100, "tusen og ett hundre"},
		{"thousand hundred five", 1105, "tusen og ett hundre og fem"},
		{"two thousand", 2000, "to tusen"},
		{"ten thousand", 10000, "ti tusen"},
		{"hundred thousand", 100000, "ett hundre tusen"},
		{"million", 1000000, "en million"},
		{"million five", 1000005, "en million fem"},
		{"two million three hundred thousand ninety-five", 2300095, "to millioner tre hundre tusen og nitti fem"},
		{"thousand million", 1000000000, "tusen millioner"},
		{"negative one", -1, ""},
		{"min int64", math.MinInt64, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertNoDigits(t *testing.T) {
	t.Parallel()

	values := []int64{0, 7, 19, 99, 101, 1234, 98765, 1234567, 987654321, math.MaxInt64}
	for _, n := range values {
		got := Convert(n)
		if strings.ContainsAny(got, "0123456789") {
			t.Errorf("Convert(%d) = %q, contains a digit", n, got)
		}
		if got == "" {
			t.Errorf("Convert(%d) returned empty string", n)
		}
	}
}

func TestConvertUint(t *testing.T) {
	t.Parallel()

	if got, want := ConvertUint(42), Convert(42); got != want {
		t.Errorf("ConvertUint(42) = %q, want %q", got, want)
	}

	got := ConvertUint(math.MaxUint64)
	if got == "" || strings.ContainsAny(got, "0123456789") {
		t.Errorf("ConvertUint(MaxUint64) = %q", got)
	}
}

func TestConvertYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"2000", 2000, "to tusen"},
		{"2001", 2001, "to tusen og én"},
		{"2010", 2010, "to tusen og ti"},
		{"2023", 2023, "to tusen og tjuetre"},
		{"2099", 2099, "to tusen og nittini"},
		{"1900", 1900, "nitten hundre"},
		{"1904", 1904, "nitten hundre og fire"},
		{"1910", 1910, "nitten ti"},
		{"1980", 1980, "nitten åtti"},
		{"1984", 1984, "nitten hundre og åttifire"},
		{"1815 falls back", 1815, "tusen og åtte hundre og femten"},
		{"2100 falls back", 2100, "to tusen og ett hundre"},
		{"3000 outside domain", 3000, "tre tusen"},
		{"zero outside domain", 0, "null"},
		{"negative", -5, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConvertYear(tt.input)
			if got != tt.want {
				t.Errorf("ConvertYear(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "nullte"},
		{"one", 1, "første"},
		{"two", 2, "andre"},
		{"three", 3, "tredje"},
		{"seven", 7, "sjuende"},
		{"eleven", 11, "ellevte"},
		{"twenty", 20, "tjuende"},
		{"twenty-one", 21, "tjueførste"},
		{"thirty-one", 31, "trettiførste"},
		{"forty-two", 42, "førtiandre"},
		{"ninety", 90, "nittiende"},
		{"hundred", 100, "ett hundrede"},
		{"hundred first", 101, "ett hundre og første"},
		{"thousand", 1000, "tusende"},
		{"two thousand", 2000, "to tusende"},
		{"million", 1000000, "en millionte"},
		{"two million", 2000000, "to millionte"},
		{"negative", -5, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConvertOrdinal(tt.input)
			if got != tt.want {
				t.Errorf("ConvertOrdinal(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertDecimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		whole string
		frac  string
		want  string
	}{
		{"pi", "3", "14", "tre komma fjorten"},
		{"leading zero", "3", "05", "tre komma null fem"},
		{"only zero", "3", "0", "tre komma null"},
		{"trailing zero", "3", "50", "tre komma femti"},
		{"half", "2", "5", "to og en halv"},
		{"zero and a half", "0", "5", "null og en halv"},
		{"empty whole", "", "25", "null komma tjue fem"},
		{"invalid whole", "abc", "1", ""},
		{"empty fraction", "3", "", ""},
		{"overflow", strings.Repeat("9", 25), "1", ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConvertDecimal(tt.whole, tt.frac)
			if got != tt.want {
				t.Errorf("ConvertDecimal(%q, %q) = %q, want %q", tt.whole, tt.frac, got, tt.want)
			}
		})
	}
}

func TestConvertDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"0047", "null null fire sju"},
		{"9", "ni"},
		{"", ""},
		{"1a", ""},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := ConvertDigits(tt.input)
			if got != tt.want {
				t.Errorf("ConvertDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"zero", "null", 0, false},
		{"one", "en", 1, false},
		{"accented one", "én", 1, false},
		{"hundred", "ett hundre", 100, false},
		{"bare hundred lenient", "hundre", 100, false},
		{"thousand", "tusen", 1000, false},
		{"en tusen lenient", "en tusen", 1000, false},
		{"million", "en million", 1000000, false},
		{"compound", "to millioner tre hundre tusen og nitti fem", 2300095, false},
		{"thousand million", "tusen millioner", 1000000000, false},
		{"whitespace", "  ett   hundre og  tjue   tre  ", 123, false},
		{"case-insensitive", "Tusen og En", 1001, false},
		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"unknown word", "hallo", 0, true},
		{"ordinal rejected", "første", 0, true},
		{"zero in compound", "null fem", 0, true},
		{"overflow", "ni millioner millioner millioner millioner", 0, true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) = %d, nil; want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	values := []int64{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
		20, 42, 99, 100, 101, 123, 999,
		1000, 1001, 1105, 9999, 10000, 100000, 999999,
		1000000, 2300095, 1000000000, 1000500000000,
		math.MaxInt64,
	}

	for _, n := range values {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			t.Parallel()
			text := Convert(n)
			if text == "" {
				t.Fatalf("Convert(%d) returned empty string", n)
			}
			got, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(Convert(%d)) = error: %v (text: %q)", n, err, text)
			}
			if got != n {
				t.Errorf("Parse(Convert(%d)) = %d, want %d (text: %q)", n, got, n, text)
			}
		})
	}
}

func ExampleConvert() {
	fmt.Println(Convert(123))
	// Output: ett hundre og tjue tre
}

func ExampleConvertYear() {
	fmt.Println(ConvertYear(1984))
	// Output: nitten hundre og åttifire
}

func ExampleConvertOrdinal() {
	fmt.Println(ConvertOrdinal(42))
	// Output: førtiandre
}

func ExampleConvertDecimal() {
	fmt.Println(ConvertDecimal("3", "14"))
	// Output: tre komma fjorten
}

func ExampleParse() {
	n, _ := Parse("ett hundre og tjue tre")
	fmt.Println(n)
	// Output: 123
}

func BenchmarkConvert(b *testing.B) {
	for b.Loop() {
		Convert(2300095)
	}
}

func BenchmarkConvertYear(b *testing.B) {
	for b.Loop() {
		ConvertYear(1984)
	}
}

func BenchmarkConvertOrdinal(b *testing.B) {
	for b.Loop() {
		ConvertOrdinal(2300095)
	}
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		Parse("to millioner tre hundre tusen og nitti fem")
	}
}
