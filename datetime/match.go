package datetime

import (
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	reMonthName = regexp.MustCompile(`^(\d{1,2})\.[ \t]*((?i:januar|februar|mars|april|mai|juni|juli|august|september|oktober|november|desember))(?:[ \t]+(\d{4}))?`)
	reDotted    = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})(?:\.(\d{4}))?`)
	reSlash     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?`)
	reDashed    = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4}|\d{2})`)
	reYearFirst = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})`)

	reClockWord = regexp.MustCompile(`^(?i:(klokka|klokken)[ \t]+|(kl)\.[ \t]*)(\d{1,2})[.:](\d{2})`)
	reClockBare = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
)

// layoutOrder is the order Parse tries layouts in.
var layoutOrder = [...]Layout{
	LayoutYearFirst,
	LayoutMonthName,
	LayoutDotted,
	LayoutSlash,
	LayoutDashed,
}

// MatchDate recognizes a date written in layout at the start of s.
// It returns the parsed date and the number of bytes it spans.
//
// Day and month are taken as written; values outside the calendar are read
// through the DayOrdinal and month fallbacks. Zero is never a day or a month,
// so "0.5" and "3.0" are left to the number rules. Two-digit years are
// expanded with ExpandYear. Trailing punctuation is never part of the match.
func MatchDate(s string, layout Layout) (Date, int, bool) {
	switch layout {
	case LayoutMonthName:
		return matchMonthName(s)
	case LayoutDotted:
		return matchNumeric(s, reDotted, layout, 1, 2, 3)
	case LayoutSlash:
		return matchNumeric(s, reSlash, layout, 1, 2, 3)
	case LayoutDashed:
		return matchNumeric(s, reDashed, layout, 1, 2, 3)
	case LayoutYearFirst:
		return matchNumeric(s, reYearFirst, layout, 3, 2, 1)
	}
	return Date{}, 0, false
}

// matchNumeric extracts a date whose capture groups at dayIdx, monthIdx and
// yearIdx (1-based) hold the numeric fields.
func matchNumeric(s string, re *regexp.Regexp, layout Layout, dayIdx, monthIdx, yearIdx int) (Date, int, bool) {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return Date{}, 0, false
	}

	day, month, ok := parseDayMonth(group(s, m, dayIdx), group(s, m, monthIdx))
	if !ok {
		return Date{}, 0, false
	}

	d := Date{Day: day, Month: month, Layout: layout}
	if ys := group(s, m, yearIdx); ys != "" {
		v, err := strconv.Atoi(ys)
		if err != nil {
			return Date{}, 0, false
		}
		d.Year, d.HasYear = ExpandYear(v, len(ys)), true
	}

	return d, m[1], true
}

func matchMonthName(s string) (Date, int, bool) {
	m := reMonthName.FindStringSubmatchIndex(s)
	if m == nil {
		return Date{}, 0, false
	}

	monthText := group(s, m, 2)
	month, ok := MonthNumber(monthText)
	if !ok {
		return Date{}, 0, false
	}
	day, _, ok := parseDayMonth(group(s, m, 1), "1")
	if !ok {
		return Date{}, 0, false
	}

	d := Date{Day: day, Month: month, MonthText: monthText, Layout: LayoutMonthName}
	end := m[1]

	// A longer digit run after the month is not a year; stop at the month.
	if ys := group(s, m, 3); ys != "" {
		if end < len(s) && isDigit(s[end]) {
			end = m[5]
		} else {
			d.Year, _ = strconv.Atoi(ys)
			d.HasYear = true
		}
	}

	// The month name must end at a word boundary.
	if monthEnd := m[5]; end == monthEnd && monthEnd < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[monthEnd:]); unicode.IsLetter(r) {
			return Date{}, 0, false
		}
	}

	return d, end, true
}

// MatchClock recognizes a clock time at the start of s: a keyword form
// ("klokka 15.30", "Klokken 08:00", "kl. 9.15") or a bare "HH:MM".
// It returns the parsed time and the number of bytes it spans.
//
// The keyword keeps its original casing; "kl." is spoken as "klokka".
// After a keyword the hour and minute are read as written ("klokka 24:00").
// A bare "HH:MM" needs an hour of 0–24 and a minute of 0–59, so scores and
// ratios like "31:45" stay numbers.
func MatchClock(s string) (Clock, int, bool) {
	if m := reClockWord.FindStringSubmatchIndex(s); m != nil {
		keyword := group(s, m, 1)
		if abbr := group(s, m, 2); abbr != "" {
			keyword = wordClock
			if abbr[0] == 'K' {
				keyword = "K" + wordClock[1:]
			}
		}
		hour, minute, ok := parseHourMinute(group(s, m, 3), group(s, m, 4))
		if !ok {
			return Clock{}, 0, false
		}
		return Clock{Keyword: keyword, Hour: hour, Minute: minute}, m[1], true
	}

	if m := reClockBare.FindStringSubmatchIndex(s); m != nil {
		hour, minute, ok := parseHourMinute(group(s, m, 1), group(s, m, 2))
		if !ok || hour > maxBareHour || minute > maxMinute {
			return Clock{}, 0, false
		}
		return Clock{Hour: hour, Minute: minute}, m[1], true
	}

	return Clock{}, 0, false
}

// parseDayMonth converts day and month strings. Zero is rejected for both.
func parseDayMonth(dayStr, monthStr string) (day, month int, ok bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < minDay {
		return 0, 0, false
	}
	month, err = strconv.Atoi(monthStr)
	if err != nil || month < minMonth {
		return 0, 0, false
	}
	return day, month, true
}

func parseHourMinute(hourStr, minStr string) (hour, minute int, ok bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(minStr)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// group returns capture group i of a FindStringSubmatchIndex result,
// or "" when the group did not participate.
func group(s string, m []int, i int) string {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
