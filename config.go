package transliterate

import (
	"fmt"
	"strings"

	"github.com/npillmayer/transliterate/lexicon"
	"github.com/npillmayer/transliterate/numerals"
)

// Op is the name of an optional transliteration rule.
type Op string

// Whole-text rules. Their order of execution is fixed.
const (
	AcronymPhoneme    Op = "acronym_phoneme"
	AccentPeculiarity Op = "accent_peculiarity"
	AmountMoney       Op = "amount_money"
	Date              Op = "date"
	Timestamp         Op = "timestamp"
	TimeOfDay         Op = "time_of_day"
)

// Word rules. They are applied to every word in the configured order.
const (
	Ordinal      Op = "ordinal"
	Special      Op = "special"
	MathSymbol   Op = "math_symbol"
	SpokenSymbol Op = "spoken_symbol"
	Weekday      Op = "weekday"
	Month        Op = "month"
)

var allOps = []Op{
	AcronymPhoneme, AccentPeculiarity, AmountMoney, Date, Timestamp, TimeOfDay,
	Ordinal, Special, MathSymbol, SpokenSymbol, Weekday, Month,
}

// ParseOp converts a rule name to an Op.
func ParseOp(name string) (Op, error) {
	name = strings.TrimSpace(name)
	for _, op := range allOps {
		if string(op) == name {
			return op, nil
		}
	}
	return "", configError("unknown transliteration rule %q", name)
}

// ParseOps converts a list of rule names.
func ParseOps(names ...string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	for _, n := range names {
		op, err := ParseOp(n)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// DefaultOps returns the rules enabled by default.
func DefaultOps() []Op {
	return []Op{
		AcronymPhoneme, AccentPeculiarity, AmountMoney, Date, Timestamp, TimeOfDay,
		Ordinal, Special, SpokenSymbol,
	}
}

func (op Op) isWordRule() bool {
	switch op {
	case Ordinal, Special, MathSymbol, SpokenSymbol, Weekday, Month:
		return true
	}
	return false
}

// Replacement is a literal substring replacement, applied to every word after
// the word rules.
type Replacement struct {
	From string
	To   string
}

// DefaultReplacements returns the replacement map used by default: hyphens
// are spoken as word breaks.
func DefaultReplacements() []Replacement {
	return []Replacement{{From: "-", To: " "}}
}

// Config is the configuration of a Transliterator.
type Config struct {
	Ops          []Op          // enabled rules
	Replacements []Replacement // applied in order
	Separator    string        // replaces the letter boundaries of acronyms
	// Lowercase enables whole-text case folding. Most tables are keyed in
	// lowercase, so most rules will not fire on uppercase text when it is off.
	Lowercase bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Ops:          DefaultOps(),
		Replacements: DefaultReplacements(),
		Separator:    " ",
		Lowercase:    true,
	}
}

func (c Config) clone() Config {
	c.Ops = append([]Op(nil), c.Ops...)
	c.Replacements = append([]Replacement(nil), c.Replacements...)
	return c
}

func (c Config) enabled(op Op) bool {
	for _, o := range c.Ops {
		if o == op {
			return true
		}
	}
	return false
}

// options collects everything New needs.
type options struct {
	config    Config
	lex       *lexicon.Lexicon
	formatter numerals.Formatter
}

// Option configures a Transliterator.
type Option func(*options)

// WithOps sets the enabled rules. Word rules are applied in the given order.
func WithOps(ops ...Op) Option {
	return func(o *options) {
		o.config.Ops = append([]Op(nil), ops...)
	}
}

// WithReplacements sets the replacement map.
func WithReplacements(repl ...Replacement) Option {
	return func(o *options) {
		o.config.Replacements = append([]Replacement(nil), repl...)
	}
}

// WithSeparator sets the string used between the letters of an acronym.
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.config.Separator = sep
	}
}

// WithLowercase switches whole-text case folding on or off.
func WithLowercase(on bool) Option {
	return func(o *options) {
		o.config.Lowercase = on
	}
}

// WithConfig replaces the complete configuration.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c.clone()
	}
}

// WithLexicon replaces the built-in lexicon.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(o *options) {
		o.lex = lex
	}
}

// WithNumberFormatter replaces the German number formatter.
func WithNumberFormatter(f numerals.Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

func (o *options) validate() error {
	seen := make(map[Op]bool, len(o.config.Ops))
	for _, op := range o.config.Ops {
		if p, err := ParseOp(string(op)); err != nil {
			return err
		} else if p != op {
			return configError("malformed rule name %q", op)
		}
		if seen[op] {
			return configError("rule %q enabled twice", op)
		}
		seen[op] = true
	}
	for _, r := range o.config.Replacements {
		if r.From == "" {
			return configError("replacement of empty string with %q", r.To)
		}
	}
	if strings.ContainsRune(o.config.Separator, marker) {
		return configError("separator contains reserved marker %U", marker)
	}
	if o.lex == nil {
		return configError("no lexicon")
	}
	if err := o.lex.Validate(); err != nil {
		return fmt.Errorf("%w: lexicon: %w", ErrConfig, err)
	}
	if o.formatter == nil {
		return configError("no number formatter")
	}
	return nil
}
