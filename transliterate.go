package transliterate

import (
	"fmt"
	"strings"

	"github.com/npillmayer/transliterate/lexicon"
	"github.com/npillmayer/transliterate/numerals"
	"github.com/npillmayer/transliterate/runemap"
	"golang.org/x/text/unicode/norm"
)

// Transliterator normalizes German text. Create one with New.
type Transliterator struct {
	config  Config
	lex     *lexicon.Lexicon
	numbers numerals.Formatter
	pat     *patterns
	folder  *runemap.Folder
	math    []lexicon.Entry // math symbols in table order
	passes  []textPass
	rules   []wordRule
}

// New creates a Transliterator. Without options, the default configuration,
// the built-in lexicon and the German number formatter are used.
//
// An invalid configuration results in an error wrapping ErrConfig.
func New(opts ...Option) (*Transliterator, error) {
	o := &options{
		config:    DefaultConfig(),
		lex:       lexicon.Default(),
		formatter: numerals.German{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	pat, err := compilePatterns(o.lex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	folder := runemap.NewFolder()
	for _, f := range o.lex.Folding {
		if err := folder.Add(f.Chars, f.Target); err != nil {
			return nil, fmt.Errorf("%w: folding to %q: %w", ErrConfig, f.Target, err)
		}
	}
	t := &Transliterator{
		config:  o.config.clone(),
		lex:     o.lex,
		numbers: o.formatter,
		pat:     pat,
		folder:  folder,
		math:    o.lex.MathSymbols.Entries(),
	}
	t.passes = t.textPipeline()
	t.rules = t.wordPipeline()
	tracer().Infof("transliterator: %d text passes, %d word rules, %d folding targets, %d currencies",
		len(t.passes), len(t.rules), folder.Len(), o.lex.Currencies.Len())
	return t, nil
}

// Config returns a copy of the configuration of t.
func (t *Transliterator) Config() Config {
	return t.config.clone()
}

// Lexicon returns the lexicon of t. Lexicons are immutable.
func (t *Transliterator) Lexicon() *lexicon.Lexicon {
	return t.lex
}

// Transliterate normalizes text into its spoken form.
//
// If a pass fails, a *PassError naming the pass is returned and no partial
// result.
func (t *Transliterator) Transliterate(text string) (result string, err error) {
	stage := "input"
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("transliteration pass %s panicked: %v", stage, r)
			result, err = "", &PassError{Pass: stage, Err: fmt.Errorf("%w: %v", ErrInternal, r)}
		}
	}()
	text = clean(text)
	for _, p := range t.passes {
		stage = p.name
		if text, err = p.run(text); err != nil {
			return "", t.failed(stage, err)
		}
		tracer().Debugf("%s: %q", stage, text)
	}
	stage = "split"
	if text, err = t.pat.whitespace.Replace(text, " ", -1, -1); err != nil {
		return "", t.failed(stage, err)
	}
	if text, err = t.rewriteWords(strings.TrimSpace(text), &stage); err != nil {
		return "", t.failed(stage, err)
	}
	tracer().Debugf("words: %q", text)
	stage = "assembly"
	if text, err = t.assemble(text); err != nil {
		return "", t.failed(stage, err)
	}
	return text, nil
}

func (t *Transliterator) failed(stage string, err error) error {
	tracer().Errorf("transliteration pass %s failed: %v", stage, err)
	return &PassError{Pass: stage, Err: err}
}

// clean composes the input to NFC and removes all markers.
func clean(text string) string {
	return strings.Map(func(r rune) rune {
		if r == marker {
			return -1
		}
		return r
	}, norm.NFC.String(text))
}

// assemble resolves markers to the separator and normalizes whitespace.
func (t *Transliterator) assemble(text string) (string, error) {
	text = strings.ReplaceAll(text, markerString, t.config.Separator)
	text, err := t.pat.whitespace.Replace(text, " ", -1, -1)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
