// Abbreviation table for Norwegian (bokmål and nynorsk).
package abbrev

// forward lists spelled-out forms and their abbreviations in registration
// order. When several spellings share an abbreviation, the first one
// registered is the expansion.
var forward = []Entry{
	{"blant annet", "bl.a."},
	{"blant anna", "bl.a."},
	{"cirka", "ca."},
	{"sirka", "ca."},
	{"centimeter", "cm"},
	{"det vil si", "dvs."},
	{"et cetera", "etc."},
	{"for eksempel", "f.eks."},
	{"fylkesvei", "fv."},
	{"kilobyte", "kB"},
	{"kilometer i timen", "km/t"},
	{"kilowattimer", "kWh"},
	{"klokka", "kl."},
	{"klokken", "kl."},
	{"mellom anna", "m.a."},
	{"megabyte", "MB"},
	{"millimeter", "mm"},
	{"og liknende", "o.l."},
	{"parts per million", "p.p.m"},
	{"riksvei", "rv."},
	{"til dømes", "t.d."},
	{"terrawattimer", "TWh"},
	{"jamfør", "jf."},
	{"det vil seie", "dvs."},
	{"fylkesveg", "fv."},
	{"jevnfør", "jf."},
	{"kilowattimar", "kWh"},
	{"og lignende", "o.l."},
	{"og liknande", "o.l."},
	{"riksveg", "rv."},
	{"terawattimar", "TWh"},
	{"terawattimer", "TWh"},
	{"dekar", "daa"},
	{"desibel", "dB"},
	{"desiliter", "dl"},
	{"desimeter", "dm"},
	{"eller liknende", "e.l."},
	{"eller lignende", "e.l."},
	{"eller liknande", "e.l."},
	{"fra og med", "f.o.m."},
	{"gigabyte", "GB"},
	{"gigawatt", "GW"},
	{"kilobit", "kb"},
	{"kilo", "kg"},
	{"kilogram", "kg"},
	{"kilometer", "km"},
	{"kilovolt", "kV"},
	{"kvadratmeter", "kvm"},
	{"kilowatt", "kW"},
	{"megabit", "Mb"},
	{"milliliter", "ml"},
	{"millivolt", "mV"},
	{"megavolt", "MV"},
	{"milliwatt", "mW"},
	{"megawatt", "MW"},
	{"og så bortetter", "osb."},
	{"og så vidare", "osv."},
	{"og så videre", "osv."},
	{"på grunn av", "pga."},
	{"petabyte", "PB"},
	{"petawatt", "PW"},
	{"terabyte", "TB"},
	{"terrabyte", "TB"},
	{"til og med", "t.o.m."},
	{"terawatt", "TW"},
	{"terrawatt", "TW"},
	{"til eksempel", "t.eks."},
}
