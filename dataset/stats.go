package dataset

import "unicode/utf8"

// Stats summarizes a normalization run.
type Stats struct {
	Total           int `json:"total"`
	Changed         int `json:"changed"`
	Unchanged       int `json:"unchanged"`
	Recovered       int `json:"recovered"`
	OriginalRunes   int `json:"original_runes"`
	NormalizedRunes int `json:"normalized_runes"`
}

// Summarize computes statistics over results.
func Summarize(results []Result) Stats {
	var s Stats
	s.Total = len(results)
	for _, r := range results {
		if r.Changed() {
			s.Changed++
		} else {
			s.Unchanged++
		}
		if r.Recovered {
			s.Recovered++
		}
		s.OriginalRunes += utf8.RuneCountInString(r.Text)
		s.NormalizedRunes += utf8.RuneCountInString(r.Normalized)
	}
	return s
}

// Ratio is the length expansion of the normalized text. Zero when the
// original text is empty.
func (s Stats) Ratio() float64 {
	if s.OriginalRunes == 0 {
		return 0
	}
	return float64(s.NormalizedRunes) / float64(s.OriginalRunes)
}

// ChangedPercent is the share of records normalization altered, 0–100.
func (s Stats) ChangedPercent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Changed) * 100 / float64(s.Total)
}

// Examples returns up to n changed results in input order.
func Examples(results []Result, n int) []Result {
	var out []Result
	for _, r := range results {
		if len(out) >= n {
			break
		}
		if r.Changed() {
			out = append(out, r)
		}
	}
	return out
}
