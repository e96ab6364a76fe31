// Word tables for Norwegian number-to-text conversion.
package numtext

const (
	million  uint64 = 1_000_000
	thousand uint64 = 1_000
	hundred  uint64 = 100

	wordZero       = "null"
	wordOneMillion = "en million"
	wordMillion    = "million"
	wordMillions   = "millioner"
	wordThousand   = "tusen"
	wordOneHundred = "ett hundre"
	wordHundred    = "hundre"
	wordAnd        = "og"
	wordComma      = "komma"
	wordHalf       = "en halv"
	wordYear2000   = "to tusen"
	wordNineteen   = "nitten"
	wordYearOne    = "én"
)

var ones = [10]string{
	"null",
	"en",
	"to",
	"tre",
	"fire",
	"fem",
	"seks",
	"sju",
	"åtte",
	"ni",
}

// teens is indexed by n-10 for n in [10, 19].
var teens = [10]string{
	"ti",
	"elleve",
	"tolv",
	"tretten",
	"fjorten",
	"femten",
	"seksten",
	"sytten",
	"atten",
	"nitten",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"tjue",
	"tretti",
	"førti",
	"femti",
	"seksti",
	"sytti",
	"åtti",
	"nitti",
}

// ordinalOnes holds the ordinal words for 0–19.
var ordinalOnes = [20]string{
	"nullte",
	"første",
	"andre",
	"tredje",
	"fjerde",
	"femte",
	"sjette",
	"sjuende",
	"åttende",
	"niende",
	"tiende",
	"ellevte",
	"tolvte",
	"trettende",
	"fjortende",
	"femtende",
	"sekstende",
	"syttende",
	"attende",
	"nittende",
}

// ordinalTens is indexed by tens digit (2–9).
var ordinalTens = [10]string{
	"",
	"",
	"tjuende",
	"trettiende",
	"førtiende",
	"femtiende",
	"sekstiende",
	"syttiende",
	"åttiende",
	"nittiende",
}
