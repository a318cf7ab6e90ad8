// Package config loads the configuration of the transliterate command from a
// YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/npillmayer/transliterate"
	"github.com/npillmayer/transliterate/lexfile"
)

// Config is the configuration of the command line tool.
//
// Empty Ops or Replace select the defaults of the transliterate package.
type Config struct {
	Ops       []string      `yaml:"ops"                    env:"TRANSLITERATE_OPS"       env-separator:","`
	Replace   []Replacement `yaml:"replace"`
	Separator string        `yaml:"abbreviation_separator" env:"TRANSLITERATE_SEPARATOR" env-default:" "`
	KeepCase  bool          `yaml:"keep_case"              env:"TRANSLITERATE_KEEP_CASE"`
	Lexicon   string        `yaml:"lexicon"                env:"TRANSLITERATE_LEXICON"`
	Log       LogConfig     `yaml:"log"`
}

// Replacement is a literal substring replacement.
type Replacement struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	JSON  bool   `yaml:"json"  env:"LOG_JSON"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// If path is empty, CONFIG_PATH is consulted. Without any path, configuration
// is loaded from ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks rule names, replacements and the log level.
func (c *Config) Validate() error {
	if _, err := c.ops(); err != nil {
		return fmt.Errorf("ops: %w", err)
	}
	for i, r := range c.Replace {
		if r.From == "" {
			return fmt.Errorf("replace[%d]: empty 'from'", i)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (charmlog.Level, error) {
	return charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(c.Log.Level)))
}

func (c *Config) ops() ([]transliterate.Op, error) {
	if len(c.Ops) == 0 {
		return transliterate.DefaultOps(), nil
	}
	return transliterate.ParseOps(c.Ops...)
}

// Options converts the configuration to options for transliterate.New. If a
// lexicon file is configured, it is loaded on top of the built-in lexicon.
func (c *Config) Options() ([]transliterate.Option, error) {
	ops, err := c.ops()
	if err != nil {
		return nil, err
	}
	opts := []transliterate.Option{
		transliterate.WithOps(ops...),
		transliterate.WithSeparator(c.Separator),
		transliterate.WithLowercase(!c.KeepCase),
	}
	if len(c.Replace) > 0 {
		repl := make([]transliterate.Replacement, len(c.Replace))
		for i, r := range c.Replace {
			repl[i] = transliterate.Replacement{From: r.From, To: r.To}
		}
		opts = append(opts, transliterate.WithReplacements(repl...))
	}
	if c.Lexicon != "" {
		f, err := os.Open(c.Lexicon)
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}
		defer f.Close()
		lex, err := lexfile.Load(nil, f)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: %w", c.Lexicon, err)
		}
		opts = append(opts, transliterate.WithLexicon(lex))
	}
	return opts, nil
}
