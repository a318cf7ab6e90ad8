/*
Package transliterate normalizes written German text into a spoken form.

The result is meant as input to a speech synthesis front end (grapheme to
phoneme conversion). Abbreviations, acronyms, accented and foreign letters,
currency amounts, dates, clock times, durations, ordinal and cardinal numbers,
units of measure and a couple of symbolic notations are resolved, producing a
single lowercase string with normalized whitespace:

	t, _ := transliterate.New()
	s, _ := t.Transliterate("Am 3.5.2020 kostete der ADAC-Kurs 3,50€.")
	// "am dritten mai zweitausendzwanzig kostete der ah deh ah zee kurs drei euro fünfzig."

Normalization is a fixed sequence of rewrite passes. Whole-text passes run
first, in an order fixed by the pipeline: acronyms, case folding, accent
folding, currency, date, timestamp, clock time. The text is then split into
words, and every word runs through the enabled word rules in the configured
order, followed by the replacement map, abbreviation expansion and
number/unit expansion. Word rules may consult (and amend) the word produced
just before, which is how "1 h" becomes "eine stunde".

Inside the pipeline, letters of an acronym and spoken delimiters are glued
together with a private-use marker rune. The marker is stripped from input and
resolved to the configured separator when the words are assembled, so it never
shows up in the output.

A Transliterator is immutable after construction and safe for concurrent use.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package transliterate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'transliterate'
func tracer() tracing.Trace {
	return tracing.Select("transliterate")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
