// Package datetime reads Norwegian numeric dates and clock times aloud.
//
// It parses the surface forms found in running text into structured values
// and formats those values as spoken Norwegian:
//
//   - "3. juni 2024"  → "tredje juni to tusen og tjuefire"
//   - "3.6.2024"      → "tredje i juni to tusen og tjuefire"
//   - "3/6/24"        → "tredje i juni to tusen og tjuefire"
//   - "2024.6.3"      → "tredje juni to tusen og tjuefire"
//   - "klokka 15.30"  → "klokka femten tretti"
//
// Two API layers are provided:
//
//   - MatchDate and MatchClock recognize a form at the start of a string and
//     report how many bytes it spans, for scanners walking running text.
//   - Parse and ParseClock parse a single isolated expression.
//
// Each form is extracted once into named fields (Date, Clock) and then
// formatted; no formatting step re-reads the source text.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Day and month are not checked against the calendar: "31.2" reads as
//     "trettiførste i februar" and "32.5" as "trettiandre i mai". A month
//     outside 1–12 is read as a cardinal number.
//   - Clock times are read as two plain numbers ("femten null"), not with
//     idiomatic phrases such as "halv fire".
package datetime

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lemoi18/Text-Normalizer-norwegian/numtext"
)

// maxInputBytes is the largest input Parse and ParseClock accept.
const maxInputBytes = 1 << 20

// Layout identifies the surface form a date was written in.
type Layout int

const (
	LayoutMonthName Layout = iota // "3. juni [2024]"
	LayoutDotted                  // "3.6[.2024]"
	LayoutSlash                   // "3/6[/24]"
	LayoutDashed                  // "3-6-24"
	LayoutYearFirst               // "2024.6.3"
)

// layoutNames maps Layout values to their string names.
var layoutNames = [...]string{
	LayoutMonthName: "MonthName",
	LayoutDotted:    "Dotted",
	LayoutSlash:     "Slash",
	LayoutDashed:    "Dashed",
	LayoutYearFirst: "YearFirst",
}

// layoutFromName maps string names back to Layout values.
var layoutFromName = map[string]Layout{
	"MonthName": LayoutMonthName,
	"Dotted":    LayoutDotted,
	"Slash":     LayoutSlash,
	"Dashed":    LayoutDashed,
	"YearFirst": LayoutYearFirst,
}

// String returns the name of the layout.
func (l Layout) String() string {
	if int(l) >= 0 && int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// MarshalJSON encodes the layout as a JSON string (e.g. "Dotted").
func (l Layout) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Dotted") into a Layout.
func (l *Layout) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ll, ok := layoutFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return fmt.Errorf("datetime: unknown layout: %q", s)
	}
	*l = ll
	return nil
}

// Date is a calendar date as written in text.
type Date struct {
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	MonthText string `json:"month_text,omitempty"` // month name as written (LayoutMonthName only)
	Year      int    `json:"year,omitempty"`
	HasYear   bool   `json:"has_year,omitempty"` // a year was written, possibly 0
	Layout    Layout `json:"layout"`
}

// Spoken returns the date read aloud.
//
// Numeric month layouts read "<ordinal> i <month> [<year>]"; the month-name
// and year-first layouts omit the "i".
func (d Date) Spoken() string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(DayOrdinal(d.Day))
	b.WriteByte(' ')

	switch d.Layout {
	case LayoutMonthName:
		if d.MonthText != "" {
			b.WriteString(d.MonthText)
		} else {
			b.WriteString(spokenMonth(d.Month))
		}
	case LayoutYearFirst:
		b.WriteString(spokenMonth(d.Month))
	default:
		b.WriteString(wordIn)
		b.WriteByte(' ')
		b.WriteString(spokenMonth(d.Month))
	}

	if d.HasYear {
		b.WriteByte(' ')
		b.WriteString(numtext.ConvertYear(int64(d.Year)))
	}
	return b.String()
}

// String returns a debug representation, e.g. Dotted(3.6.2024).
func (d Date) String() string {
	if d.HasYear {
		return fmt.Sprintf("%s(%d.%d.%d)", d.Layout, d.Day, d.Month, d.Year)
	}
	return fmt.Sprintf("%s(%d.%d)", d.Layout, d.Day, d.Month)
}

// Clock is a time of day, optionally introduced by a keyword
// ("klokka", "klokken", "kl.").
type Clock struct {
	Keyword string `json:"keyword,omitempty"` // spoken keyword, original casing; "" for bare HH:MM
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
}

// Spoken returns the time read as "[<keyword> ]<hour> <minute>".
func (c Clock) Spoken() string {
	s := numtext.Convert(int64(c.Hour)) + " " + numtext.Convert(int64(c.Minute))
	if c.Keyword != "" {
		return c.Keyword + " " + s
	}
	return s
}

// String returns a debug representation, e.g. Clock(15:30).
func (c Clock) String() string {
	return fmt.Sprintf("Clock(%02d:%02d)", c.Hour, c.Minute)
}

// DayOrdinal returns the canonical ordinal word for a day of the month.
// Days 1–31 come from the ordinal table; other values are composed by
// numtext.ConvertOrdinal.
func DayOrdinal(day int) string {
	if day >= minDay && day <= maxDay {
		return dayOrdinals[day][0]
	}
	return numtext.ConvertOrdinal(int64(day))
}

// OrdinalForms returns every registered ordinal form for a day of the month,
// canonical form first. Returns nil outside 1–31.
func OrdinalForms(day int) []string {
	if day < minDay || day > maxDay {
		return nil
	}
	return append([]string(nil), dayOrdinals[day]...)
}

// MonthName returns the Norwegian name of month m (1–12).
// Any other value is returned as its decimal string.
func MonthName(m int) string {
	if m >= minMonth && m <= maxMonth {
		return monthNames[m]
	}
	return strconv.Itoa(m)
}

// spokenMonth is MonthName with the numeral fallback read as a cardinal.
func spokenMonth(m int) string {
	if m >= minMonth && m <= maxMonth {
		return monthNames[m]
	}
	return numtext.Convert(int64(m))
}

// MonthNumber returns the number of a month name, matched case-insensitively.
func MonthNumber(name string) (int, bool) {
	m, ok := monthByName[strings.ToLower(name)]
	return m, ok
}

// ExpandYear expands a year written with the given number of digits.
// Two-digit years up to 30 map to the 2000s and the rest to the 1900s;
// every other width is returned unchanged.
func ExpandYear(yy, digits int) int {
	if digits != 2 {
		return yy
	}
	if yy <= pivotYear {
		return 2000 + yy
	}
	return 1900 + yy
}

// Parse parses a single date expression in any supported layout.
// Surrounding whitespace is ignored; the rest of s must be the date.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("datetime: empty input")
	}
	if len(s) > maxInputBytes {
		return Date{}, fmt.Errorf("datetime: input exceeds %d bytes", maxInputBytes)
	}
	for _, l := range layoutOrder {
		if d, n, ok := MatchDate(s, l); ok && n == len(s) {
			return d, nil
		}
	}
	return Date{}, fmt.Errorf("datetime: unrecognized date %q", truncate(s))
}

// ParseClock parses a single clock expression such as "kl. 08:15" or "23:59".
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Clock{}, fmt.Errorf("datetime: empty input")
	}
	if len(s) > maxInputBytes {
		return Clock{}, fmt.Errorf("datetime: input exceeds %d bytes", maxInputBytes)
	}
	if c, n, ok := MatchClock(s); ok && n == len(s) {
		return c, nil
	}
	return Clock{}, fmt.Errorf("datetime: unrecognized time %q", truncate(s))
}

func truncate(s string) string {
	const maxErrLen = 50
	if len(s) > maxErrLen {
		return s[:maxErrLen] + "..."
	}
	return s
}
