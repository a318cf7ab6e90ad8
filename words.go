package transliterate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/transliterate/lexicon"
	"github.com/npillmayer/transliterate/numerals"
)

// lookback gives word rules access to the words produced so far.
type lookback struct {
	out []string
}

// Prev returns the word produced last.
func (lb *lookback) Prev() (string, bool) {
	if len(lb.out) == 0 {
		return "", false
	}
	return lb.out[len(lb.out)-1], true
}

// Amend replaces the word produced last, e.g. for number agreement
// ("eins stunde" => "eine stunde").
func (lb *lookback) Amend(word string) {
	assert(len(lb.out) > 0, "no word to amend")
	lb.out[len(lb.out)-1] = word
}

func (lb *lookback) push(word string) {
	lb.out = append(lb.out, word)
}

// scan is the state of the word stage of a single call.
type scan struct {
	words []string
	at    int // index of the current word
	lookback
}

// newScan splits a text with normalized whitespace into words.
func newScan(text string) *scan {
	words := strings.Split(text, " ")
	s := &scan{words: words[:0]}
	for _, w := range words {
		if w != "" {
			s.words = append(s.words, w)
		}
	}
	s.out = make([]string, 0, len(s.words))
	return s
}

func (s *scan) isLast() bool {
	return s.at == len(s.words)-1
}

// next returns the unprocessed word following the current one.
func (s *scan) next() string {
	if s.at+1 < len(s.words) {
		return s.words[s.at+1]
	}
	return ""
}

// patchForward replaces the first occurrence of old in the first following
// word containing it.
func (s *scan) patchForward(old, new string) bool {
	for i := s.at + 1; i < len(s.words); i++ {
		if strings.Contains(s.words[i], old) {
			s.words[i] = strings.Replace(s.words[i], old, new, 1)
			return true
		}
	}
	return false
}

// wordRule is an optional per-word rule.
type wordRule struct {
	name  Op
	apply func(s *scan, word string) (string, error)
}

// wordPipeline returns the enabled word rules in configured order.
func (t *Transliterator) wordPipeline() []wordRule {
	var rules []wordRule
	for _, op := range t.config.Ops {
		if !op.isWordRule() {
			continue
		}
		r := wordRule{name: op}
		switch op {
		case Weekday:
			r.apply = t.weekday
		case Month:
			r.apply = t.month
		case Ordinal:
			r.apply = t.ordinal
		case Special:
			r.apply = t.special
		case MathSymbol:
			r.apply = t.mathSymbols
		case SpokenSymbol:
			r.apply = t.spokenSymbols
		}
		rules = append(rules, r)
	}
	return rules
}

// rewriteWords runs every word through the word rules, the replacement map,
// abbreviation expansion and number/unit expansion. stage is kept up to date
// with the name of the running rule.
func (t *Transliterator) rewriteWords(text string, stage *string) (string, error) {
	s := newScan(text)
	for ; s.at < len(s.words); s.at++ {
		word := s.words[s.at]
		var err error
		for _, r := range t.rules {
			*stage = string(r.name)
			if word, err = r.apply(s, word); err != nil {
				return "", err
			}
		}
		*stage = "replace"
		for _, r := range t.config.Replacements {
			word = strings.ReplaceAll(word, r.From, r.To)
		}
		*stage = "misc_abbreviation"
		word = t.miscAbbreviation(word)
		*stage = "number_unit"
		if word, err = t.numberUnit(s, word); err != nil {
			return "", err
		}
		s.push(word)
	}
	return strings.Join(s.out, " "), nil
}

// --- Weekdays and months ---------------------------------------------------

func (t *Transliterator) weekday(_ *scan, word string) (string, error) {
	return expandNames(t.pat.weekday, t.lex.Weekdays, word)
}

func (t *Transliterator) month(_ *scan, word string) (string, error) {
	return expandNames(t.pat.month, t.lex.Months, word)
}

// expandNames replaces abbreviated names inside word. If anything has been
// replaced, periods are removed from the word.
func expandNames(re *regexp2.Regexp, names *lexicon.Table, word string) (string, error) {
	out, err := rewrite(re, word, func(m *regexp2.Match) (string, bool, error) {
		long, ok := names.Lookup(m.String())
		if !ok {
			return "", false, fmt.Errorf("%q not in lexicon", m.String())
		}
		return long, true, nil
	})
	if err != nil || out == word {
		return word, err
	}
	return strings.ReplaceAll(out, ".", ""), nil
}

// --- Ordinals ------------------------------------------------------------

// ordinal spells "3." as "dritte". It does not fire for the last word, nor
// in front of a currency name. After a preposition ending in "m" the dative
// suffix is appended: "im 3. stock" => "im dritten stock".
func (t *Transliterator) ordinal(s *scan, word string) (string, error) {
	m, err := t.pat.ordinal.FindStringMatch(word)
	if err != nil || m == nil {
		return word, err
	}
	if s.isLast() || t.lex.Currencies.HasValue(s.next()) {
		return word, nil
	}
	spoken := t.numbers.Format(group(m, "digits"), numerals.AsOrdinal)
	if prev, ok := s.Prev(); ok && strings.HasSuffix(prev, "m") {
		spoken += "n"
	}
	return group(m, "open") + spoken + group(m, "close"), nil
}

// --- Special patterns --------------------------------------------------------

func (t *Transliterator) special(_ *scan, word string) (string, error) {
	for _, sp := range t.pat.specials {
		ok, err := sp.detect.MatchString(word)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		word = strings.Replace(word, sp.literal, sp.repl, 1)
		frags := strings.Split(word, " ")
		for i, f := range frags {
			isNum, err := t.pat.number.MatchString(f)
			if err != nil {
				return "", err
			}
			if isNum {
				frags[i] = t.numbers.Format(f, numerals.AsCardinal)
			}
		}
		word = strings.Join(frags, " ")
	}
	return word, nil
}

// --- Math symbols ------------------------------------------------------------

// mathSymbols replaces the first occurrence of every math symbol, in table
// order. "x" is a multiplication sign only after digits ("3x4"); "-" is a
// minus only between single characters ("a-b"), otherwise it is taken to be
// a hyphen.
func (t *Transliterator) mathSymbols(_ *scan, word string) (string, error) {
	for _, e := range t.math {
		i := strings.Index(word, e.Key)
		if i < 0 {
			continue
		}
		n := utf8.RuneCountInString(word)
		switch e.Key {
		case "x":
			if n > 1 && (i == 0 || !isDecimal(word[:i])) {
				continue
			}
		case "-":
			if word == "--" {
				continue
			}
			before := utf8.RuneCountInString(word[:i])
			after := utf8.RuneCountInString(word[i+1:])
			if n > 1 && (before > 1 || after > 1) {
				continue
			}
		}
		word = strings.Replace(word, e.Key, e.Value, 1)
	}
	return word, nil
}

func isDecimal(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// --- Spoken symbols ----------------------------------------------------------

// spokenSymbols speaks delimiter pairs: the opening delimiter is replaced by
// a phrase ("(" => "in klammern"), the closing delimiter by the marker. If the
// closing delimiter is not part of the word, it is patched in the first
// following word containing it.
func (t *Transliterator) spokenSymbols(s *scan, word string) (string, error) {
	for _, sym := range t.lex.SpokenSymbols {
		if !strings.Contains(word, sym.Open) {
			continue
		}
		var b strings.Builder
		rest := word
		for {
			i := strings.Index(rest, sym.Open)
			if i < 0 {
				b.WriteString(rest)
				break
			}
			b.WriteString(rest[:i])
			b.WriteString(markerString + sym.Phrase + markerString)
			rest = rest[i+len(sym.Open):]
			if j := strings.Index(rest, sym.Close); j >= 0 {
				b.WriteString(rest[:j])
				b.WriteString(markerString)
				rest = rest[j+len(sym.Close):]
			} else {
				s.patchForward(sym.Close, markerString)
			}
		}
		word = b.String()
	}
	return word, nil
}

// --- Abbreviations -----------------------------------------------------------

// miscAbbreviation expands a word which is an abbreviation, with or without a
// trailing period, unless it already contains the expansion.
func (t *Transliterator) miscAbbreviation(word string) string {
	long, ok := t.lex.Misc.Lookup(word)
	if !ok {
		long, ok = t.lex.Misc.Lookup(strings.TrimSuffix(word, "."))
	}
	if ok && !strings.Contains(word, long) {
		return long
	}
	return word
}

// --- Numbers and units -------------------------------------------------------

// oneForms are the spoken forms of the number one a unit may follow.
var oneForms = map[string]bool{
	"eins": true, "ein": true, "eine": true, "einer": true, "einen": true, "einem": true,
}

// numberUnit expands units standing on their own ("20 t") and numerals, with
// or without an attached unit ("20t"). A unit following the number one is
// singular, and the number is amended to agree with it ("1 h" => "eine
// stunde", "1 kg" => "ein kilogramm").
func (t *Transliterator) numberUnit(s *scan, word string) (string, error) {
	key := strings.ReplaceAll(strings.TrimSuffix(word, "."), markerString, lexicon.MaskedBoundary)
	if u, ok := t.lex.Unit(key); ok {
		word = u.Plural
		if prev, ok := s.Prev(); ok {
			switch {
			case u.Class == lexicon.Invariant && prev == "eins":
				s.Amend("ein")
			case u.Class != lexicon.Invariant && oneForms[prev]:
				word = u.Singular()
				s.Amend("eine")
			}
		}
		return word, nil
	}
	return t.expandNumerals(word)
}

// expandNumerals spells all numerals in the space- or marker-separated
// fragments of word.
func (t *Transliterator) expandNumerals(word string) (string, error) {
	if !strings.ContainsAny(word, " "+markerString) {
		return t.numeral(word)
	}
	var b strings.Builder
	start := 0
	for i, r := range word {
		if r != ' ' && r != marker {
			continue
		}
		frag, err := t.numeral(word[start:i])
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
		b.WriteRune(r)
		start = i + utf8.RuneLen(r)
	}
	frag, err := t.numeral(word[start:])
	if err != nil {
		return "", err
	}
	b.WriteString(frag)
	return b.String(), nil
}

// numeral spells a fragment starting with a numeral. The rest of the fragment
// may be a unit ("20t" => "zwanzig tonnen").
func (t *Transliterator) numeral(frag string) (string, error) {
	m, err := t.pat.number.FindStringMatch(frag)
	if err != nil || m == nil {
		return frag, err
	}
	num := strings.TrimRight(m.String(), ".,")
	tail := frag[len(num):]
	if u, ok := t.lex.Unit(strings.TrimSuffix(tail, ".")); ok {
		switch {
		case isOneNumeral(num) && u.Class == lexicon.Invariant:
			return "ein " + u.Plural, nil
		case isOneNumeral(num):
			return "eine " + u.Singular(), nil
		}
		return t.numbers.Format(num, numerals.AsCardinal) + " " + u.Plural, nil
	}
	spoken := t.numbers.Format(num, numerals.AsCardinal)
	if tail == "" || attachesDirectly(tail) {
		return spoken + tail, nil
	}
	return spoken + " " + tail, nil
}

// isOneNumeral reports whether num has the value one. A lone dot groups
// thousands, so "1.0" is not one.
func isOneNumeral(num string) bool {
	switch strings.TrimLeft(num, "+-") {
	case "1", "1,0", "1,00":
		return true
	}
	return false
}

// attachesDirectly reports whether the text following a numeral starts with
// punctuation, which stays attached to the spoken number.
func attachesDirectly(tail string) bool {
	r, _ := utf8.DecodeRuneInString(tail)
	return strings.ContainsRune(`.,;:!?)]}"'`+markerString, r)
}
