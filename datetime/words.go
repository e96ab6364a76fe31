// Ordinal and month tables for Norwegian date reading.
package datetime

// dayOrdinals lists the registered ordinal forms for days 1–31.
// The first form of each entry is the canonical spoken form; the others are
// nynorsk and older bokmål variants kept for lookups.
var dayOrdinals = [...][]string{
	1:  {"første", "fyrste"},
	2:  {"andre"},
	3:  {"tredje"},
	4:  {"fjerde"},
	5:  {"femte"},
	6:  {"sjette"},
	7:  {"sjuende", "syvende"},
	8:  {"åttende", "åttande"},
	9:  {"niende", "niande"},
	10: {"tiende", "tiande"},
	11: {"ellevte"},
	12: {"tolvte"},
	13: {"trettende", "trettande"},
	14: {"fjortende", "fjortande"},
	15: {"femtende", "femtande"},
	16: {"sekstende", "sekstande"},
	17: {"syttende", "syttande"},
	18: {"attende", "attande"},
	19: {"nittende", "nittande"},
	20: {"tjuende", "tyvende", "tjuande"},
	21: {"tjueførste", "tjuefyrste", "énogtyvende", "énogtjuende"},
	22: {"tjueandre", "toogtyvende", "toogtjuende"},
	23: {"tjuetredje", "treogtyvende", "treogtjuende"},
	24: {"tjuefjerde", "fireogtyvende", "fireogtjuende"},
	25: {"tjuefemte", "femogtyvende", "femogtjuende"},
	26: {"tjuesjette", "seksogtyvende", "seksogtjuende"},
	27: {"tjuesjuende", "tjuesyvende", "syvogtyvende", "syvogtjuende"},
	28: {"tjueåttende", "tjueåttande", "åtteogtyvende", "åtteogtjuende"},
	29: {"tjueniende", "tjueniande", "niogtyvende", "niogtjuende"},
	30: {"trettiende", "trettiande"},
	31: {"trettiførste", "trettifyrste", "énogtrettiende"},
}

// monthNames is indexed by month number (1–12).
var monthNames = [...]string{
	1:  "januar",
	2:  "februar",
	3:  "mars",
	4:  "april",
	5:  "mai",
	6:  "juni",
	7:  "juli",
	8:  "august",
	9:  "september",
	10: "oktober",
	11: "november",
	12: "desember",
}

// monthByName maps a lowercase month name to its number.
var monthByName = func() map[string]int {
	m := make(map[string]int, len(monthNames))
	for i, name := range monthNames {
		if name != "" {
			m[name] = i
		}
	}
	return m
}()

const (
	minDay      = 1
	maxDay      = 31
	minMonth    = 1
	maxMonth    = 12
	maxBareHour = 24
	maxMinute   = 59

	// Two-digit years up to this value belong to the 2000s, the rest to the 1900s.
	pivotYear = 30

	wordIn    = "i"
	wordClock = "klokka"
)
