package datetime

import (
	"strings"
	"testing"
)

func FuzzMatchDate(f *testing.F) {
	seeds := []string{
		"3. juni",
		"3. juni 2024",
		"17. Mai",
		"03.06.2024",
		"3/6/24",
		"24-12-2023",
		"2024.6.3",
		"klokka 15.30",
		"kl. 08:05",
		"23:59",
		"",
		"abc xyz",
		"32.13.2024",
		"25:99",
		"\xff\xfe",
		"\xC3",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for l := LayoutMonthName; l <= LayoutYearFirst; l++ {
			d, n, ok := MatchDate(s, l)
			if !ok {
				continue
			}
			if n <= 0 || n > len(s) {
				t.Errorf("MatchDate(%q, %s) n = %d, len = %d", s, l, n, len(s))
			}
			if d.Day < minDay || d.Month < minMonth {
				t.Errorf("MatchDate(%q, %s) = %+v, zero day or month", s, l, d)
			}
			if strings.ContainsAny(d.Spoken(), "0123456789") {
				t.Errorf("MatchDate(%q, %s).Spoken() = %q, contains a digit", s, l, d.Spoken())
			}
		}

		if c, n, ok := MatchClock(s); ok {
			if n <= 0 || n > len(s) {
				t.Errorf("MatchClock(%q) n = %d, len = %d", s, n, len(s))
			}
			if c.Keyword == "" && (c.Hour > maxBareHour || c.Minute > maxMinute) {
				t.Errorf("MatchClock(%q) = %+v, bare time out of range", s, c)
			}
			if strings.ContainsAny(c.Spoken(), ":0123456789") {
				t.Errorf("MatchClock(%q).Spoken() = %q, contains a digit or colon", s, c.Spoken())
			}
		}

		// Parse must not panic either.
		_, _ = Parse(s)
		_, _ = ParseClock(s)
	})
}

// TestOversizedInput verifies that inputs exceeding maxInputBytes are rejected.
func TestOversizedInput(t *testing.T) {
	huge := strings.Repeat("1", maxInputBytes+1)

	if _, err := Parse(huge); err == nil {
		t.Error("Parse: want error for oversized input, got nil")
	}
	if _, err := ParseClock(huge); err == nil {
		t.Error("ParseClock: want error for oversized input, got nil")
	}
}

// TestReDoSResistance verifies regex patterns complete quickly on adversarial input.
func TestReDoSResistance(t *testing.T) {
	inputs := []string{
		strings.Repeat("12.34.", 5000),
		strings.Repeat("12:34:", 5000),
		strings.Repeat("1-2-", 5000),
		"3." + strings.Repeat(" ", 10000) + "juni",
		strings.Repeat("klokka ", 5000),
	}

	for _, s := range inputs {
		for l := LayoutMonthName; l <= LayoutYearFirst; l++ {
			_, _, _ = MatchDate(s, l)
		}
		_, _, _ = MatchClock(s)
	}
}
