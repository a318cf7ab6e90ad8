package transliterate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/transliterate/lexicon"
	"github.com/npillmayer/transliterate/numerals"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// textPass is a transformation of the complete text.
type textPass struct {
	name string
	run  func(text string) (string, error)
}

// textPipeline returns the whole-text passes for the configuration of t, in
// their fixed order.
func (t *Transliterator) textPipeline() []textPass {
	acronyms := textPass{name: "acronym_mask", run: t.acronyms}
	if t.config.enabled(AcronymPhoneme) {
		acronyms.name = string(AcronymPhoneme)
	}
	passes := []textPass{acronyms}
	if t.config.Lowercase {
		passes = append(passes, textPass{name: "lowercase", run: lowercase})
	}
	optional := []textPass{
		{name: string(AccentPeculiarity), run: t.foldAccents},
		{name: string(AmountMoney), run: t.currencies},
		{name: string(Date), run: t.dates},
		{name: string(Timestamp), run: t.timestamps},
		{name: string(TimeOfDay), run: t.clockTimes},
	}
	for _, p := range optional {
		if t.config.enabled(Op(p.name)) {
			passes = append(passes, p)
		}
	}
	return passes
}

// edit replaces the runes [start, end) of a text.
type edit struct {
	start, end int
	repl       string
}

// applyEdits applies edits, which have to be sorted and must not overlap.
func applyEdits(text string, edits []edit) string {
	if len(edits) == 0 {
		return text
	}
	rs := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, e := range edits {
		assert(e.start >= last && e.end >= e.start, "overlapping text edits")
		b.WriteString(string(rs[last:e.start]))
		b.WriteString(e.repl)
		last = e.end
	}
	b.WriteString(string(rs[last:]))
	return b.String()
}

// rewrite replaces every match of re by the result of repl.
func rewrite(re *regexp2.Regexp, text string, repl func(m *regexp2.Match) (string, bool, error)) (string, error) {
	var edits []edit
	err := eachMatch(re, text, func(m *regexp2.Match) error {
		s, ok, err := repl(m)
		if ok {
			edits = append(edits, edit{start: m.Index, end: m.Index + m.Length, repl: s})
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return applyEdits(text, edits), nil
}

// --- Acronyms --------------------------------------------------------------

// acronyms glues the letters of every acronym together with the marker, so
// that neither case folding nor word splitting takes them apart. If acronym
// phonemes are enabled, letters are replaced by their spoken names ("ADAC" =>
// "ah deh ah zee"), except for acronyms naming a currency ("EUR") or a unit
// after a numeral ("10 KB"), which are resolved by later rules.
func (t *Transliterator) acronyms(text string) (string, error) {
	phonemes := t.config.enabled(AcronymPhoneme)
	rs := []rune(text)
	return rewrite(t.pat.acronym, text, func(m *regexp2.Match) (string, bool, error) {
		acronym := m.String()
		if t.lex.IsExcludedAcronym(acronym) {
			return "", false, nil
		}
		letters := strings.Split(strings.ReplaceAll(acronym, ".", ""), "")
		if !phonemes || t.namesCurrencyOrUnit(letters, followsNumeral(rs[:m.Index])) {
			return strings.Join(letters, markerString), true, nil
		}
		names := make([]string, len(letters))
		for i, l := range letters {
			name, ok := t.lex.LetterNames.Lookup(l)
			if !ok {
				return "", false, fmt.Errorf("no spoken name for letter %q of acronym %q", l, acronym)
			}
			names[i] = name
		}
		return strings.Join(names, markerString), true, nil
	})
}

// namesCurrencyOrUnit reports whether the letters spell a currency, or a unit
// if the acronym follows a numeral. "GB" alone is spelled "geh beh".
func (t *Transliterator) namesCurrencyOrUnit(letters []string, afterNumeral bool) bool {
	key := strings.ToLower(strings.Join(letters, lexicon.MaskedBoundary))
	if t.lex.Currencies.Contains(key) {
		return true
	}
	if !afterNumeral {
		return false
	}
	_, ok := t.lex.Unit(key)
	return ok
}

// followsNumeral reports whether the text before an acronym ends with a digit,
// optionally followed by blanks.
func followsNumeral(before []rune) bool {
	i := len(before) - 1
	for i >= 0 && unicode.IsSpace(before[i]) {
		i--
	}
	return i >= 0 && before[i] >= '0' && before[i] <= '9'
}

// --- Case and accent folding -----------------------------------------------

func lowercase(text string) (string, error) {
	// a Caser keeps state and must not be shared
	return cases.Lower(language.German).String(text), nil
}

func (t *Transliterator) foldAccents(text string) (string, error) {
	return t.folder.Fold(text), nil
}

// --- Currency ---------------------------------------------------------------

// currencies rewrites amounts of money to "<number> [<magnitude>] <currency>".
// Amounts with a decimal comma are spoken as "<units> <currency> <cents>":
// "3,50€" => "3 euro 50". Numerals are spelled later by the word rules.
func (t *Transliterator) currencies(text string) (string, error) {
	return rewrite(t.pat.currency, text, func(m *regexp2.Match) (string, bool, error) {
		num := firstGroup(m, "num1", "num2")
		mag := firstGroup(m, "mag1", "mag2")
		sym := firstGroup(m, "sym1", "sym2", "sym3")
		name, ok := t.lex.Currencies.Lookup(strings.ReplaceAll(sym, markerString, lexicon.MaskedBoundary))
		if !ok {
			return "", false, fmt.Errorf("currency symbol %q not in lexicon", sym)
		}
		if mag == "" {
			if units, cents, found := strings.Cut(num, ","); found {
				return units + " " + name + spokenCents(cents), true, nil
			}
		}
		return joinWords(num, mag, name), true, nil
	})
}

// spokenCents formats the fractional part of an amount. Zero cents are
// dropped, a single digit means tens of cents, digits beyond the second are
// spoken one by one.
func spokenCents(cents string) string {
	switch {
	case cents == "":
		return ""
	case !isDigits(cents):
		return " " + cents
	case strings.Trim(cents, "0") == "":
		return ""
	case len(cents) == 1:
		return " " + cents + "0"
	case len(cents) > 2:
		return " " + cents[:2] + " " + strings.Join(strings.Split(cents[2:], ""), " ")
	}
	return " " + cents
}

// --- Dates -------------------------------------------------------------------

// dates rewrites "3.5.2020" and "3. Mai 2020" to "dritte mai zweitausendzwanzig".
// After "am", "im", "vom", ... the day gets the dative suffix: "am dritten mai".
func (t *Transliterator) dates(text string) (string, error) {
	rs := []rune(text)
	return rewrite(t.pat.date, text, func(m *regexp2.Match) (string, bool, error) {
		day := t.numbers.Format(group(m, "day"), numerals.AsOrdinal)
		if m.Index >= 2 {
			if p := string(rs[m.Index-2 : m.Index]); p == "m " || p == "n " {
				day += "n"
			}
		}
		var month string
		var ok bool
		if name := group(m, "mname"); name != "" {
			month, ok = t.lex.Months.Lookup(name)
		} else {
			month, ok = t.lex.NumberMonths.Lookup(group(m, "mnum"))
		}
		if !ok {
			return "", false, fmt.Errorf("no month for date %q", m.String())
		}
		var year string
		if y := group(m, "year"); y != "" {
			year = t.numbers.Format(y, numerals.AsYear)
		}
		return joinWords(day, month, year), true, nil
	})
}

// --- Durations and clock times ---------------------------------------------

// timestamps rewrites durations "2:30" or "1h:05min:10s" to
// "2 stunden 30 minuten" and "eine stunde 05 minuten 10 sekunden".
func (t *Transliterator) timestamps(text string) (string, error) {
	return rewrite(t.pat.timestamp, text, func(m *regexp2.Match) (string, bool, error) {
		s := duration(group(m, "hours"), "stunde", "stunden") + " " +
			duration(group(m, "minutes"), "minute", "minuten")
		if sec := group(m, "seconds"); sec != "" {
			s += " " + duration(sec, "sekunde", "sekunden")
		}
		return s, true, nil
	})
}

func duration(n, singular, plural string) string {
	if isOne(n) {
		return "eine " + singular
	}
	return n + " " + plural
}

// clockTimes rewrites "14:30 Uhr" or "1.05h" to "14 uhr 30" and "ein uhr 05".
func (t *Transliterator) clockTimes(text string) (string, error) {
	return rewrite(t.pat.timeOfDay, text, func(m *regexp2.Match) (string, bool, error) {
		hour := group(m, "hour")
		if isOne(hour) {
			hour = "ein"
		}
		return hour + " uhr " + group(m, "minute"), true, nil
	})
}

// --- Helpers -----------------------------------------------------------------

// isOne reports whether a digit string has the value 1.
func isOne(digits string) bool {
	return strings.TrimLeft(digits, "0") == "1"
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// joinWords joins the non-empty words with a single space.
func joinWords(words ...string) string {
	nonEmpty := words[:0:0]
	for _, w := range words {
		if w != "" {
			nonEmpty = append(nonEmpty, w)
		}
	}
	return strings.Join(nonEmpty, " ")
}
