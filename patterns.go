package transliterate

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/transliterate/lexicon"
)

// marker glues together the parts of a protected span, e.g. the letters of an
// acronym. It is a private-use code point and is removed from the input.
const marker = '\uE000'

const markerString = string(marker)

// matchTimeout limits the runtime of a single match.
const matchTimeout = 2 * time.Second

// Character classes of the boundaries around acronyms and currency terms.
const (
	acronymBefore  = `[.!?;:\-\s,(\[{]`
	acronymAfter   = `[.!?;:\-\s,)\]}]`
	currencyBefore = `[.!?;:\-()\[\]\s]`
	currencyAfter  = `[.!?;:,\-()\[\]\s]`
)

// numeralPattern is atomic: a long digit run must not be matched against
// every split of itself.
const numeralPattern = `(?>[+\-]?\d+[\d.,]*)`

// magnitudePattern matches scale words inside currency terms, e.g. "5 mio. €".
const magnitudePattern = `\b(?:mia|mrd|md|brd|mio|mill|bill)(?:\.|\b)|\bmilliarden?\b|\bbilliarden?\b` +
	`|\bmillion(?:en)?\b|\bbillion(?:en)?\b|\btausend\b`

// special is a word-level rewrite: if detect matches, literal is replaced once
// by repl.
type special struct {
	detect  *regexp2.Regexp
	literal string
	repl    string
}

// patterns holds all compiled detectors. It is read-only after construction.
type patterns struct {
	acronym    *regexp2.Regexp
	weekday    *regexp2.Regexp
	month      *regexp2.Regexp
	timeOfDay  *regexp2.Regexp
	timestamp  *regexp2.Regexp
	date       *regexp2.Regexp
	ordinal    *regexp2.Regexp
	number     *regexp2.Regexp // anchored at the start of a word
	whitespace *regexp2.Regexp
	currency   *regexp2.Regexp
	specials   []special
}

// compiler compiles patterns and remembers the first error.
type compiler struct {
	err error
}

func (c *compiler) compile(expr string) *regexp2.Regexp {
	if c.err != nil {
		return nil
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		c.err = fmt.Errorf("cannot compile pattern %q: %w", expr, err)
		return nil
	}
	re.MatchTimeout = matchTimeout
	return re
}

// alternation joins the keys of a table to a regular expression alternation.
// Keys are ordered such that no key is shadowed by one of its prefixes. A
// masked boundary in a key matches the marker.
func alternation(t *lexicon.Table) string {
	entries := t.LongestFirst()
	alts := make([]string, len(entries))
	for i, e := range entries {
		alts[i] = strings.ReplaceAll(regexp2.Escape(e.Key), lexicon.MaskedBoundary, markerString)
	}
	return strings.Join(alts, "|")
}

func compilePatterns(lex *lexicon.Lexicon) (*patterns, error) {
	var c compiler
	months := alternation(lex.Months)
	symbols := alternation(lex.Currencies)
	p := &patterns{
		acronym: c.compile(`(?<=^|` + acronymBefore + `)(?:[A-ZÄÖÜ]{2,}|(?:[A-ZÄÖÜ]\.){2,})(?=$|` + acronymAfter + `)`),
		weekday: c.compile(`\b(?:` + alternation(lex.Weekdays) + `)(?:\b|(?<=\.))`),
		month:   c.compile(`\b(?:` + months + `)(?:\b|(?<=\.))`),
		timeOfDay: c.compile(`\b(?<hour>[01][0-9]|2[0-3]|[0-9])[.:](?<minute>[0-5][0-9]|[0-9])` +
			`(?:\s?(?:uhr|h)\b|\b)`),
		// a duration followed by "uhr" is a clock time
		timestamp: c.compile(`\b(?<hours>\d+)(?:h|std)?:(?<minutes>[0-5][0-9]|[0-9])(?:min|m)?` +
			`(?::(?<seconds>[0-5][0-9]|[0-9])(?:sek|sec|s)?)?\b(?!\s?(?:uhr|h)\b)`),
		date: c.compile(`(?<!\d)(?<day>0[1-9]|[12][0-9]|3[01]|[1-9])\.` +
			`(?:(?<mnum>0[1-9]|1[0-2]|[1-9])\.|\s?(?<mname>` + months + `)(?:\.|\b|(?<=\.)))` +
			`(?:\s?(?<year>\d{4}|\d{2})(?!\d))?`),
		ordinal:    c.compile(`^(?<open>[(\[]?)(?<digits>\d+)\.(?<close>[)\]]?)$`),
		number:     c.compile(`^` + numeralPattern),
		whitespace: c.compile(`\s+`),
		currency: c.compile(`(?<=^|` + currencyBefore + `)(?:` +
			`(?<num1>` + numeralPattern + `)\s*(?:(?<mag1>` + magnitudePattern + `)\s*)?(?<sym1>` + symbols + `)` +
			`|(?<sym2>` + symbols + `)\s*(?<num2>` + numeralPattern + `)(?:\s*(?<mag2>` + magnitudePattern + `))?` +
			`|(?<sym3>` + symbols + `))(?=$|` + currencyAfter + `)`),
	}
	for _, s := range specialRules() {
		p.specials = append(p.specials, special{detect: c.compile(s[0]), literal: s[1], repl: s[2]})
	}
	if c.err != nil {
		return nil, c.err
	}
	return p, nil
}

// specialRules lists pattern, literal and replacement of the special word
// rewrites, in order of application.
func specialRules() [][3]string {
	rules := [][3]string{
		{`\+/-`, "+/-", "plus minus"},
		{`&`, "&", " und "},
		// ranges: "10-12", "a-c"
		{`(?:^|(?<=[.!?;:\-\s]))(?:[a-z]?|\d+)\s?[^-]-\s?(?:\d+|[a-z]?)(?:$|(?=[.!?;:\-\s]))`, "-", " bis "},
		{`\b[02-9]+\s?/\s?\d+\b`, "/", " von "},
	}
	fractions := []struct{ denominator, glyph, name string }{
		{"10", "⅒", "ein zehntel"},
		{"9", "⅑", "ein neuntel"},
		{"8", "⅛", "ein achtel"},
		{"7", "⅐", "ein siebtel"},
		{"6", "⅙", "ein sechstel"},
		{"5", "⅕", "ein fünftel"},
		{"4", "¼", "ein viertel"},
		{"3", "⅓", "ein drittel"},
		{"2", "½", "ein halb"},
	}
	for _, f := range fractions {
		rules = append(rules,
			[3]string{`\b1/` + f.denominator + `\b`, "1/" + f.denominator, f.name},
			[3]string{`(?<!\w)` + f.glyph + `(?!\w)`, f.glyph, f.name})
	}
	return append(rules, [3]string{`\b1000\b`, "1000", "tausend"})
}

// eachMatch calls fn for all non-overlapping matches of re in s, from left to
// right.
func eachMatch(re *regexp2.Regexp, s string, fn func(m *regexp2.Match) error) error {
	m, err := re.FindStringMatch(s)
	for m != nil {
		if err = fn(m); err != nil {
			return err
		}
		m, err = re.FindNextMatch(m)
	}
	return err
}

// group returns the text captured by a named group, or "".
func group(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// firstGroup returns the first non-empty capture of the named groups.
func firstGroup(m *regexp2.Match, names ...string) string {
	for _, n := range names {
		if s := group(m, n); s != "" {
			return s
		}
	}
	return ""
}
