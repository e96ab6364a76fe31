// Word tables for spoken fractions, scientific notation and number naming.
package normalize

const (
	wordTo       = "til"
	wordAnd      = "og"
	wordComma    = "komma"
	wordPercent  = "prosent"
	wordMinus    = "minus"
	wordTimesTen = "ganger ti opphøyd i"

	wordMilliard  = "milliard"
	wordMilliards = "milliarder"
	wordBillion   = "en billion"

	milliard uint64 = 1_000_000_000
	billion  uint64 = 1_000_000_000_000
)

// fractionGlyphs maps Unicode vulgar fraction characters to their reading.
var fractionGlyphs = map[rune]string{
	'¼': "en fjerdedel",
	'½': "en halv",
	'¾': "tre fjerdedeler",
	'⅐': "en sjuendedel",
	'⅑': "en niendedel",
	'⅒': "en tiendedel",
	'⅓': "en tredjedel",
	'⅔': "to tredjedeler",
	'⅕': "en femtedel",
	'⅖': "to femtedeler",
	'⅗': "tre femtedeler",
	'⅘': "fire femtedeler",
	'⅙': "en sjettedel",
	'⅚': "fem sjettedeler",
	'⅛': "en åttendedel",
	'⅜': "tre åttendedeler",
	'⅝': "fem åttendedeler",
	'⅞': "syv åttendedeler",
}

// fractionNames holds the singular and plural reading of the denominators
// mixed numbers spell out by name.
var fractionNames = map[uint64][2]string{
	2: {"en halv", "halvdeler"},
	3: {"en tredjedel", "tredjedeler"},
	4: {"en fjerdedel", "fjerdedeler"},
}

// superscripts maps superscript digits and signs to their ASCII forms.
var superscripts = map[rune]byte{
	'⁰': '0',
	'¹': '1',
	'²': '2',
	'³': '3',
	'⁴': '4',
	'⁵': '5',
	'⁶': '6',
	'⁷': '7',
	'⁸': '8',
	'⁹': '9',
	'⁻': '-',
}
