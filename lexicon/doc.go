/*
Package lexicon holds the mapping tables used for transliterating German text.

All tables map a canonical short form to its spoken long form: abbreviations,
weekdays, months, currency symbols, units of measure, math symbols, letter
names for acronyms and unicode-to-ascii folding classes.

Tables are keyed in lowercase, with the exception of the acronym tables, which
are consulted before case folding.

Units are partitioned into three plural classes (see PluralClass). A key must
never be part of more than one class; Validate checks this.

A lexicon is immutable. Extending it with user-supplied entries returns a copy.
*/
package lexicon

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'transliterate.lexicon'
func tracer() tracing.Trace {
	return tracing.Select("transliterate.lexicon")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
