package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// MaskedBoundary marks the boundary between two letters of a masked acronym
// inside table keys, e.g. "e_u_r" matches the masked acronym "EUR".
const MaskedBoundary = "_"

// PluralClass tells how the plural of a unit is formed from its singular.
type PluralClass int

const (
	Invariant PluralClass = iota // singular equals plural: "meter"
	SuffixN                      // plural is singular + "n": "tonne(n)"
	SuffixEn                     // plural is singular + "en": "million(en)"
)

func (c PluralClass) String() string {
	switch c {
	case Invariant:
		return "invariant"
	case SuffixN:
		return "suffix-n"
	case SuffixEn:
		return "suffix-en"
	}
	return fmt.Sprintf("PluralClass(%d)", int(c))
}

// suffix returns the plural suffix of class c.
func (c PluralClass) suffix() string {
	switch c {
	case SuffixN:
		return "n"
	case SuffixEn:
		return "en"
	}
	return ""
}

// Unit is the spoken form of a unit of measure.
type Unit struct {
	Plural string
	Class  PluralClass
}

// Singular returns the singular form of the unit.
func (u Unit) Singular() string {
	return strings.TrimSuffix(u.Plural, u.Class.suffix())
}

// Fold maps every character of Chars to Target.
type Fold struct {
	Chars  string
	Target string
}

// SpokenSymbol is a pair of delimiters spoken as a phrase at the opening
// delimiter, e.g. "(" ... ")" => "in klammern".
type SpokenSymbol struct {
	Open   string
	Close  string
	Phrase string
}

// Lexicon is the immutable registry of all transliteration tables.
type Lexicon struct {
	Folding          []Fold
	LetterNames      *Table // uppercase letter => spoken letter name
	AcronymExclusion *Table // acronyms pronounced as ordinary words
	Misc             *Table
	Weekdays         *Table
	Months           *Table
	NumberMonths     *Table
	Currencies       *Table
	MathSymbols      *Table // order is significant
	SpokenSymbols    []SpokenSymbol
	units            [3]*Table // indexed by PluralClass
}

// ErrPartition is returned by Validate if the unit plural classes overlap.
var ErrPartition = errors.New("unit plural classes are not disjoint")

// Units returns the unit table for a plural class.
func (lex *Lexicon) Units(class PluralClass) *Table {
	return lex.units[class]
}

// Unit looks up a unit key in all plural classes.
func (lex *Lexicon) Unit(key string) (Unit, bool) {
	for c, t := range lex.units {
		if plural, ok := t.Lookup(key); ok {
			return Unit{Plural: plural, Class: PluralClass(c)}, true
		}
	}
	return Unit{}, false
}

// IsExcludedAcronym reports whether an all-caps word is pronounced as a word.
func (lex *Lexicon) IsExcludedAcronym(word string) bool {
	return lex.AcronymExclusion.Contains(word)
}

// Validate checks the invariants the transliteration rules rely on.
func (lex *Lexicon) Validate() error {
	seen := make(map[string]PluralClass)
	for c, t := range lex.units {
		class := PluralClass(c)
		for _, e := range t.Entries() {
			if other, dup := seen[e.Key]; dup {
				return fmt.Errorf("%w: unit %q is in class %s and %s", ErrPartition, e.Key, other, class)
			}
			seen[e.Key] = class
			if !strings.HasSuffix(e.Value, class.suffix()) {
				return fmt.Errorf("unit %q: plural %q lacks suffix of class %s", e.Key, e.Value, class)
			}
		}
	}
	for _, e := range lex.LetterNames.Entries() {
		if e.Value == "" {
			return fmt.Errorf("letter %q has no spoken name", e.Key)
		}
	}
	return nil
}

// WithAbbreviations returns a copy of lex with additional misc abbreviations.
func (lex *Lexicon) WithAbbreviations(entries ...Entry) *Lexicon {
	cp := *lex
	cp.Misc = lex.Misc.With(entries...)
	return &cp
}

// WithAcronymExclusions returns a copy of lex with additional acronyms which
// are pronounced as words.
func (lex *Lexicon) WithAcronymExclusions(acronyms ...string) *Lexicon {
	extra := make([]Entry, len(acronyms))
	for i, a := range acronyms {
		extra[i] = Entry{Key: a, Value: a}
	}
	cp := *lex
	cp.AcronymExclusion = lex.AcronymExclusion.With(extra...)
	return &cp
}

// WithUnits returns a copy of lex with additional units of a plural class.
// The result may violate the partition invariant; call Validate.
func (lex *Lexicon) WithUnits(class PluralClass, entries ...Entry) *Lexicon {
	cp := *lex
	cp.units[class] = lex.units[class].With(entries...)
	return &cp
}

// Default returns the built-in German lexicon.
func Default() *Lexicon {
	lex := &Lexicon{
		Folding:          defaultFolding(),
		LetterNames:      NewTable(letterNames...),
		AcronymExclusion: NewTable(pairs("DAX", "DAX", "NASDAQ", "NASDAQ", "TAZ", "TAZ", "WAZ", "WAZ")...),
		Misc:             NewTable(misc...),
		Weekdays:         NewTable(weekdays...),
		Months:           NewTable(months...),
		NumberMonths:     NewTable(numberMonths...),
		Currencies:       NewTable(currencies...),
		MathSymbols:      NewTable(mathSymbols...),
		SpokenSymbols: []SpokenSymbol{
			{Open: "(", Close: ")", Phrase: "in klammern"},
			{Open: "[", Close: "]", Phrase: "in klammern"},
			{Open: `"`, Close: `"`, Phrase: "in anführungszeichen"},
			{Open: "'", Close: "'", Phrase: "zitat"},
		},
	}
	lex.units[Invariant] = NewTable(unitsInvariant...)
	lex.units[SuffixN] = NewTable(unitsSuffixN...)
	lex.units[SuffixEn] = NewTable(unitsSuffixEn...)
	tracer().Debugf("default lexicon: %d abbreviations, %d units, %d currencies",
		lex.Misc.Len(), lex.units[0].Len()+lex.units[1].Len()+lex.units[2].Len(), lex.Currencies.Len())
	return lex
}
