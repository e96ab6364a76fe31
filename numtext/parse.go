// Text-to-number parsing for Norwegian cardinal text.
package numtext

import (
	"fmt"
	"math"
	"strings"
)

// wordValues maps each Norwegian cardinal word to its numeric value.
var wordValues = map[string]int64{
	"null":      0,
	"en":        1,
	"én":        1,
	"ett":       1,
	"to":        2,
	"tre":       3,
	"fire":      4,
	"fem":       5,
	"seks":      6,
	"sju":       7,
	"syv":       7,
	"åtte":      8,
	"ni":        9,
	"ti":        10,
	"elleve":    11,
	"tolv":      12,
	"tretten":   13,
	"fjorten":   14,
	"femten":    15,
	"seksten":   16,
	"sytten":    17,
	"atten":     18,
	"nitten":    19,
	"tjue":      20,
	"tretti":    30,
	"førti":     40,
	"femti":     50,
	"seksti":    60,
	"sytti":     70,
	"åtti":      80,
	"nitti":     90,
	"hundre":    100,
	"tusen":     1_000,
	"million":   1_000_000,
	"millioner": 1_000_000,
}

// parse converts Norwegian cardinal number text to int64.
//
// Millions compose recursively in Convert ("tusen millioner"), so a million
// word multiplies everything accumulated before it rather than a single group.
func parse(s string) (int64, error) {
	tokens := strings.Fields(strings.ToLower(s))
	if len(tokens) == 0 {
		return 0, fmt.Errorf("numtext: empty input")
	}

	if len(tokens) == 1 && tokens[0] == wordZero {
		return 0, nil
	}

	var (
		total   int64 // value scaled by million words so far
		current int64 // resolved thousands since the last million word
		group   int64 // 0–999 accumulator for the group under construction
	)

	for _, tok := range tokens {
		if tok == wordAnd {
			continue
		}
		val, ok := wordValues[tok]
		if !ok {
			return 0, fmt.Errorf("numtext: unknown word %q", tok)
		}

		switch {
		case val == 0:
			return 0, fmt.Errorf("numtext: unexpected %q in compound", wordZero)

		case val < int64(hundred):
			group += val

		case val == int64(hundred):
			if group == 0 {
				group = 1
			}
			if group > math.MaxInt64/val {
				return 0, fmt.Errorf("numtext: out of range")
			}
			group *= val

		case val == int64(thousand):
			if group == 0 {
				group = 1
			}
			if group > (math.MaxInt64-current)/val {
				return 0, fmt.Errorf("numtext: out of range")
			}
			current += group * val
			group = 0

		default: // million, millioner
			sum := total + current + group
			if sum == 0 {
				sum = 1
			}
			if sum < 0 || sum > math.MaxInt64/val {
				return 0, fmt.Errorf("numtext: out of range")
			}
			total = sum * val
			current, group = 0, 0
		}
	}

	if total > math.MaxInt64-current-group {
		return 0, fmt.Errorf("numtext: out of range")
	}
	return total + current + group, nil
}
