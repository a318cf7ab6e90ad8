package numerals

import "strings"

var lowWords = [20]string{
	"null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun",
	"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn", "siebzehn",
	"achtzehn", "neunzehn",
}

var tensWords = [10]string{
	"", "", "zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig",
}

// scale is a magnitude spoken as a separate noun.
type scale struct {
	value    uint64
	singular string
	plural   string
	stem     string // stem of the ordinal
}

var scales = []scale{
	{1e18, "trillion", "trillionen", "trillion"},
	{1e15, "billiarde", "billiarden", "billiard"},
	{1e12, "billion", "billionen", "billion"},
	{1e9, "milliarde", "milliarden", "milliard"},
	{1e6, "million", "millionen", "million"},
}

// Cardinal spells out n, e.g. 21 => "einundzwanzig", 2000000 => "zwei millionen".
func Cardinal(n int64) string {
	switch {
	case n == 0:
		return "null"
	case n < 0:
		return "minus " + spell(uint64(-(n + 1))+1)
	}
	return spell(uint64(n))
}

func spell(n uint64) string {
	var parts []string
	for _, sc := range scales {
		q := n / sc.value
		if q == 0 {
			continue
		}
		if q == 1 {
			parts = append(parts, "eine "+sc.singular)
		} else {
			parts = append(parts, chunk(q, false)+" "+sc.plural)
		}
		n %= sc.value
	}
	if n > 0 {
		var b strings.Builder
		if th := n / 1000; th > 0 {
			b.WriteString(chunk(th, false))
			b.WriteString("tausend")
		}
		if r := n % 1000; r > 0 {
			b.WriteString(chunk(r, true))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

// chunk spells 0 < n < 1000. A trailing one is "eins" only if final is set.
func chunk(n uint64, final bool) string {
	assert(n > 0 && n < 1000, "chunk out of range")
	var b strings.Builder
	if h := n / 100; h > 0 {
		b.WriteString(unit(h))
		b.WriteString("hundert")
	}
	r := n % 100
	switch {
	case r == 0:
	case r == 1 && final:
		b.WriteString("eins")
	case r < 20:
		b.WriteString(unit(r))
	default:
		if u := r % 10; u > 0 {
			b.WriteString(unit(u))
			b.WriteString("und")
		}
		b.WriteString(tensWords[r/10])
	}
	return b.String()
}

// unit spells 0 < n < 20 as a prefix: 1 is "ein".
func unit(n uint64) string {
	if n == 1 {
		return "ein"
	}
	return lowWords[n]
}

// Endings of cardinals and their ordinal stems. The first match wins.
var ordinalEndings = []struct{ cardinal, ordinal string }{
	{"eins", "ers"},
	{"drei", "drit"},
	{"acht", "ach"},
	{"sieben", "sieb"},
	{"ig", "igs"},
	{"ert", "erts"},
	{"end", "ends"},
	{"ion", "ions"},
	{"nen", "nens"},
	{"rde", "rds"},
	{"rden", "rds"},
}

// Ordinal spells out n as an ordinal in its basic form, e.g. 3 => "dritte".
func Ordinal(n int64) string {
	c := Cardinal(n)
	for _, sc := range scales {
		for _, w := range []string{sc.singular, sc.plural} {
			if head, ok := strings.CutSuffix(c, " "+w); ok {
				if head == "eine" {
					head = ""
				}
				return strings.ReplaceAll(head, " ", "") + sc.stem + "ste"
			}
		}
	}
	for _, e := range ordinalEndings {
		if stem, ok := strings.CutSuffix(c, e.cardinal); ok {
			c = stem + e.ordinal
			break
		}
	}
	c += "te"
	switch c {
	case "einhundertste", "eintausendste":
		return c[3:]
	}
	return c
}

// Year spells out n the way years are spoken: 1999 => "neunzehnhundertneunundneunzig".
// Years with a zero hundreds digit are spoken as cardinals: 2020 => "zweitausendzwanzig".
func Year(n int64) string {
	if n < 100 || (n/100)%10 == 0 {
		return Cardinal(n)
	}
	high, low := uint64(n/100), n%100
	var s string
	if high < 1000 {
		s = chunk(high, false)
	} else {
		s = spell(high)
	}
	s += "hundert"
	if low > 0 {
		s += Cardinal(low)
	}
	return s
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
