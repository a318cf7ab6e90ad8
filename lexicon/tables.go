package lexicon

// Folding of accented and foreign letters to ASCII. Targets may be German
// umlauts.
func defaultFolding() []Fold {
	return []Fold{
		{"àáâãåāăąǟǡǻȁȃȧ", "a"},
		{"æǣǽ", "ä"},
		{"çćĉċč", "c"},
		{"ďđ", "d"},
		{"èéêëēĕėęěȅȇȩε", "e"},
		{"ĝğġģǥǧǵ", "g"},
		{"ĥħȟ", "h"},
		{"ìíîïĩīĭįıȉȋ", "i"},
		{"ĵǰ", "j"},
		{"ķĸǩκ", "k"},
		{"ĺļľŀł", "l"},
		{"м", "m"},
		{"ñńņňŉŋǹ", "n"},
		{"òóôõōŏőǫǭȍȏðο", "o"},
		{"œøǿ", "ö"},
		{"ŕŗřȑȓ", "r"},
		{"śŝşšș", "s"},
		{"ţťŧț", "t"},
		{"ùúûũūŭůűųȕȗ", "u"},
		{"ŵ", "w"},
		{"ýÿŷ", "y"},
		{"źżžȥ", "z"},
	}
}

var letterNames = pairs(
	"A", "ah", "B", "beh", "C", "zee", "D", "deh", "E", "eh", "F", "eff",
	"G", "geh", "H", "hah", "I", "ih", "J", "jott", "K", "kah", "L", "ell",
	"M", "emm", "N", "enn", "O", "oh", "P", "peh", "Q", "kuh", "R", "err",
	"S", "ess", "T", "teh", "U", "uh", "V", "fau", "W", "weh", "X", "iks",
	"Y", "üpsilon", "Z", "zett", "Ä", "äh", "Ö", "öh", "Ü", "üh",
)

// Units: '_' marks a masked acronym, e.g. "KB" => "k_b".
var unitsInvariant = pairs(
	"mg", "milligramm",
	"kg", "kilogramm",
	"g", "gramm",
	"nm", "nanometer",
	"µm", "mikrometer",
	"mm", "millimeter",
	"mm^2", "quadratmillimeter",
	"mm²", "quadratmillimeter",
	"cm", "zentimeter",
	"cm^2", "quadratzentimeter",
	"cm²", "quadratzentimeter",
	"cm^3", "kubikzentimeter",
	"cm³", "kubikzentimeter",
	"dm", "dezimeter",
	"m", "meter",
	"m^2", "quadratmeter",
	"m²", "quadratmeter",
	"m^3", "kubikmeter",
	"m³", "kubikmeter",
	"km", "kilometer",
	"km^2", "quadratkilometer",
	"km²", "quadratkilometer",
	"ha", "hektar",
	"w", "watt",
	"j", "joule",
	"kj", "kilojoule",
	"k_b", "kilobyte",
	"m_b", "megabyte",
	"g_b", "gigabyte",
	"t_b", "terabyte",
	"p_b", "petabyte",
	"k_w", "kilowatt",
	"kb", "kilobyte",
	"mb", "megabyte",
	"gb", "gigabyte",
	"tb", "terabyte",
	"pb", "petabyte",
	"kw", "kilowatt",
	"m_w", "megawatt",
	"g_w", "gigawatt",
	"mw", "megawatt",
	"gw", "gigawatt",
	"°", "grad",
	"°c", "grad celsius",
	"°f", "grad fahrenheit",
)

var unitsSuffixN = pairs(
	"t", "tonnen",
	"kt", "kilotonnen",
	"mt", "megatonnen",
	"kwh", "kilowattstunden",
	"mwh", "megawattstunden",
	"gwh", "gigawattstunden",
	"kal", "kalorien",
	"cal", "kalorien",
	"mia", "milliarden",
	"mrd", "milliarden",
	"md", "milliarden",
	"brd", "billiarden",
	"ns", "nanosekunden",
	"µs", "mikrosekunden",
	"ms", "millisekunden",
	"s", "sekunden",
	"sek", "sekunden",
	"min", "minuten",
	"h", "stunden",
)

var unitsSuffixEn = pairs(
	"mio", "millionen",
	"mill", "millionen",
	"bill", "billionen",
)

var misc = pairs(
	"fr", "frau",
	"hr", "herr",
	"dr", "doktor",
	"prof", "professor",
	"jprof", "juniorprofessor",
	"jun.prof", "juniorprofessor",
	"mag", "magister",
	"bsc", "bachelor of science",
	"msc", "master of science",
	"st", "sankt",
	"skt", "sankt",
	"z.b", "zum beispiel",
	"bspw", "beispielsweise",
	"d.h", "das heißt",
	"abzgl", "abzüglich",
	"zzgl", "zuzüglich",
	"ust", "umsatzsteuer",
	"mwst", "mehrwertsteuer",
	"ca", "circa",
	"inkl", "inklusive",
	"incl", "inklusive",
	"exkl", "exklusive",
	"excl", "exklusive",
	"i.o", "in ordnung",
	"z.t", "zum teil",
	"pr", "pro",
	"ihv", "in höhe von",
	"i.h.v", "in höhe von",
	"vglw", "vergleichsweise",
)

// "so" is a common word, Sunday is only recognized as "so.".
var weekdays = pairs(
	"mo", "montag",
	"di", "dienstag",
	"mi", "mittwoch",
	"do", "donnerstag",
	"fr", "freitag",
	"sa", "samstag",
	"so.", "sonntag",
)

var months = pairs(
	"januar", "januar",
	"jänner", "jänner",
	"februar", "februar",
	"märz", "märz",
	"april", "april",
	"mai", "mai",
	"juni", "juni",
	"juli", "juli",
	"august", "august",
	"september", "september",
	"oktober", "oktober",
	"november", "november",
	"dezember", "dezember",
	"jan.", "januar",
	"jän", "jänner",
	"feb", "februar",
	"mrz", "märz",
	"mär", "märz",
	"apr", "april",
	"jun", "juni",
	"jul", "juli",
	"aug", "august",
	"sep", "september",
	"okt", "oktober",
	"nov", "november",
	"dez", "dezember",
)

var numberMonths = pairs(
	"1", "januar", "01", "januar",
	"2", "februar", "02", "februar",
	"3", "märz", "03", "märz",
	"4", "april", "04", "april",
	"5", "mai", "05", "mai",
	"6", "juni", "06", "juni",
	"7", "juli", "07", "juli",
	"8", "august", "08", "august",
	"9", "september", "09", "september",
	"10", "oktober",
	"11", "november",
	"12", "dezember",
)

// Currency symbols: '_' marks a masked acronym, e.g. "EUR" => "e_u_r".
var currencies = pairs(
	"g_b_p", "britische pfund",
	"£", "pfund",
	"$", "dollar",
	"e_u_r", "euro",
	"t_e_u_r_o", "tausend euro",
	"t_e_u_r", "tausend euro",
	"t€", "tausend euro",
	"€", "euro",
	"t_d_m", "tausend d-mark",
	"d_m", "d-mark",
	"d_k_k", "dänische kronen",
	"s_e_k", "schwedische kronen",
)

// Math symbols are tried in this order. Longer symbols precede their prefixes.
var mathSymbols = pairs(
	"+", " plus ",
	"-", " minus ",
	"−", " minus ",
	"/", " geteilt durch ",
	`\`, " modulo ",
	"**", " hoch ",
	"*", " mal ",
	"×", " mal ",
	"x", " mal ",
	"^", " hoch ",
	">=", " größer gleich ",
	"≥", " größer gleich ",
	"<=", " kleiner gleich ",
	"≤", " kleiner gleich ",
	"==", " äquivalent zu ",
	"=", " gleich ",
	"≍", " äquivalent zu ",
	">", " größer ",
	"<", " kleiner ",
)
