/*
Package numerals spells out numerals as German words.

Numerals follow German conventions: '.' groups thousands and ',' is the decimal
point. A numeral which cannot be interpreted is returned unchanged; callers
rely on this, as numerals are often glued to other characters and are resolved
later or not at all.

	German{}.Format("1.234,5", AsCardinal)  // "eintausendzweihundertvierunddreißig komma fünf"
	German{}.Format("3", AsOrdinal)         // "dritte"
	German{}.Format("1999", AsYear)         // "neunzehnhundertneunundneunzig"
*/
package numerals

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/shopspring/decimal"
)

// tracer writes to trace with key 'transliterate.numerals'
func tracer() tracing.Trace {
	return tracing.Select("transliterate.numerals")
}

// Mode selects the word form of a numeral.
type Mode int

const (
	AsCardinal Mode = iota // "drei"
	AsOrdinal              // "dritte"
	AsYear                 // "neunzehnhundertdrei"
)

func (m Mode) String() string {
	switch m {
	case AsOrdinal:
		return "ordinal"
	case AsYear:
		return "year"
	}
	return "cardinal"
}

// Formatter converts a numeral to its spoken form.
//
// Format must not fail: if numeral cannot be interpreted, it is returned
// unchanged.
type Formatter interface {
	Format(numeral string, mode Mode) string
}

// German is the Formatter for German numerals.
type German struct{}

var _ Formatter = German{}

// numerals at or beyond limit are not spelled; the integral part has to fit
// into an int64
var limit = decimal.New(9, 18)

// Format spells out numeral in the given mode.
func (German) Format(numeral string, mode Mode) string {
	normalized, ok := Normalize(numeral)
	if !ok {
		return numeral
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil || d.Abs().GreaterThanOrEqual(limit) {
		tracer().Debugf("numeral %q not spelled: %v", numeral, err)
		return numeral
	}
	n := d.Truncate(0).IntPart()
	switch mode {
	case AsOrdinal:
		if !d.IsInteger() || d.IsNegative() {
			return numeral
		}
		return Ordinal(n)
	case AsYear:
		if !d.IsInteger() || d.IsNegative() {
			return numeral
		}
		return Year(n)
	}
	if !strings.Contains(normalized, ".") {
		return Cardinal(n)
	}
	return spellDecimal(d)
}

// Normalize converts a German numeral to a plain decimal string with '.' as the
// decimal point and no grouping, e.g. "1.234,50" => "1234.50".
// It reports false if numeral is not well-formed.
//
// A single comma together with dots means the dots group thousands; a lone
// comma is the decimal point; lone dots group thousands.
func Normalize(numeral string) (string, bool) {
	s := strings.TrimPrefix(numeral, "+")
	commas, dots := strings.Count(s, ","), strings.Count(s, ".")
	switch {
	case commas > 1:
		return numeral, false
	case commas == 1:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dots >= 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	if !wellFormed(s) {
		return numeral, false
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if strings.HasPrefix(s, ".") || strings.HasPrefix(s, "-.") {
		s = strings.Replace(s, ".", "0.", 1)
	}
	return s, true
}

// wellFormed accepts [-]digits[.digits] with at least one digit.
func wellFormed(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, points := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

// spellDecimal spells a number with fraction digits: the integral part,
// "komma", then every fraction digit on its own. Trailing zeros are dropped,
// but at least one fraction digit is spoken.
func spellDecimal(d decimal.Decimal) string {
	var b strings.Builder
	if d.IsNegative() {
		b.WriteString("minus ")
		d = d.Neg()
	}
	b.WriteString(Cardinal(d.Truncate(0).IntPart()))
	b.WriteString(" komma")
	frac := "0"
	if s := d.String(); strings.Contains(s, ".") {
		frac = s[strings.IndexByte(s, '.')+1:]
	}
	for _, c := range frac {
		b.WriteByte(' ')
		b.WriteString(Cardinal(int64(c - '0')))
	}
	return b.String()
}
