/*
Package lexfile reads lexicon supplements from TeX-flavoured text files.

Entries are enclosed in named blocks:

	% abbreviations used in our documents
	\abbreviations{
	bzgl = bezüglich
	ggf = gegebenenfalls
	}
	\acronyms{
	NATO
	}
	\units-n{
	kcal = kilokalorien
	}

Available blocks are \abbreviations, \acronyms (all-caps words which are
pronounced as words), \units (plural equals singular), \units-n and
\units-en (plural is singular + "n" or "en"). Lines starting with '%' are
comments. Everything outside of blocks must be blank or a comment.
*/
package lexfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/transliterate/lexicon"
)

// tracer writes to trace with key 'transliterate.lexfile'
func tracer() tracing.Trace {
	return tracing.Select("transliterate.lexfile")
}

// ErrSyntax is wrapped by all errors caused by malformed input.
var ErrSyntax = errors.New("lexicon file syntax error")

// Section is the kind of block an entry has been read from.
type Section int

const (
	Abbreviations Section = iota
	Acronyms
	Units
	UnitsN
	UnitsEn
)

var sectionNames = [...]string{"abbreviations", "acronyms", "units", "units-n", "units-en"}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return "unknown"
	}
	return sectionNames[s]
}

// class returns the plural class of a unit section.
func (s Section) class() (lexicon.PluralClass, bool) {
	switch s {
	case Units:
		return lexicon.Invariant, true
	case UnitsN:
		return lexicon.SuffixN, true
	case UnitsEn:
		return lexicon.SuffixEn, true
	}
	return 0, false
}

// Entry is a single line of a block. For acronyms, Value equals Key.
type Entry struct {
	lexicon.Entry
	Section Section
	Line    int
}

// Reader streams entries from a lexicon file.
type Reader struct {
	scanner *bufio.Scanner
	section Section
	inBlock bool
	line    int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry. It returns io.EOF when exhausted.
func (r *Reader) Next() (Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if !r.inBlock {
			if err := r.open(line); err != nil {
				return Entry{}, err
			}
			continue
		}
		if line == "}" {
			r.inBlock = false
			continue
		}
		return r.decode(line)
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	if r.inBlock {
		return Entry{}, r.syntaxError("block \\%s is not closed", r.section)
	}
	return Entry{}, io.EOF
}

func (r *Reader) open(line string) error {
	name, ok := strings.CutPrefix(line, `\`)
	if ok {
		name, ok = strings.CutSuffix(name, "{")
	}
	if !ok {
		return r.syntaxError("expected start of block, found %q", line)
	}
	for i, n := range sectionNames {
		if n == strings.TrimSpace(name) {
			r.section, r.inBlock = Section(i), true
			return nil
		}
	}
	return r.syntaxError("unknown block \\%s", name)
}

func (r *Reader) decode(line string) (Entry, error) {
	e := Entry{Section: r.section, Line: r.line}
	if r.section == Acronyms {
		if strings.ContainsAny(line, " \t=") {
			return Entry{}, r.syntaxError("acronym %q must be a single word", line)
		}
		e.Key, e.Value = line, line
		return e, nil
	}
	key, value, found := strings.Cut(line, "=")
	// tables are keyed in lowercase, abbreviations without their period
	e.Key = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(key), "."))
	e.Value = strings.TrimSpace(value)
	if !found || e.Key == "" || e.Value == "" {
		return Entry{}, r.syntaxError("expected 'key = value', found %q", line)
	}
	return e, nil
}

func (r *Reader) syntaxError(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, r.line, fmt.Sprintf(format, args...))
}

// Load reads a lexicon file and returns base extended by its entries. If base
// is nil, the built-in lexicon is extended. The result is validated.
func Load(base *lexicon.Lexicon, reader io.Reader) (*lexicon.Lexicon, error) {
	if base == nil {
		base = lexicon.Default()
	}
	r := NewReader(reader)
	var abbrevs []lexicon.Entry
	var acronyms []string
	var units [3][]lexicon.Entry
	count := 0
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		count++
		switch e.Section {
		case Abbreviations:
			abbrevs = append(abbrevs, e.Entry)
		case Acronyms:
			acronyms = append(acronyms, e.Key)
		default:
			class, _ := e.Section.class()
			units[class] = append(units[class], e.Entry)
		}
	}
	lex := base
	if len(abbrevs) > 0 {
		lex = lex.WithAbbreviations(abbrevs...)
	}
	if len(acronyms) > 0 {
		lex = lex.WithAcronymExclusions(acronyms...)
	}
	for c, entries := range units {
		if len(entries) > 0 {
			lex = lex.WithUnits(lexicon.PluralClass(c), entries...)
		}
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("lexicon file: %d entries loaded", count)
	return lex, nil
}
