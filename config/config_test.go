package config

import (
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/npillmayer/transliterate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
ops: [acronym_phoneme, date, ordinal]
replace:
  - from: "&"
    to: " und "
abbreviation_separator: "-"
keep_case: true
log:
  level: debug
  json: true
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Ops)
	assert.Equal(t, " ", cfg.Separator)
	assert.False(t, cfg.KeepCase)
	assert.Equal(t, "info", cfg.Log.Level)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, charmlog.InfoLevel, level)
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", validYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"acronym_phoneme", "date", "ordinal"}, cfg.Ops)
	assert.Equal(t, []Replacement{{From: "&", To: " und "}}, cfg.Replace)
	assert.Equal(t, "-", cfg.Separator)
	assert.True(t, cfg.KeepCase)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TRANSLITERATE_OPS", "date,month")
	t.Setenv("TRANSLITERATE_SEPARATOR", "_")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "month"}, cfg.Ops)
	assert.Equal(t, "_", cfg.Separator)
	assert.True(t, cfg.KeepCase)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", Config{Log: LogConfig{Level: "info"}}, true},
		{"known ops", Config{Ops: []string{"date", "month"}, Log: LogConfig{Level: "warn"}}, true},
		{"unknown op", Config{Ops: []string{"date", "bogus"}, Log: LogConfig{Level: "info"}}, false},
		{"empty from", Config{Replace: []Replacement{{From: "", To: "x"}}, Log: LogConfig{Level: "info"}}, false},
		{"bad level", Config{Log: LogConfig{Level: "chatty"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_UnknownOpIsConfigError(t *testing.T) {
	cfg := Config{Ops: []string{"bogus"}, Log: LogConfig{Level: "info"}}
	assert.ErrorIs(t, cfg.Validate(), transliterate.ErrConfig)
}

func TestOptions(t *testing.T) {
	lexPath := writeFile(t, "office.lex", "\\abbreviations{\nbzgl = bezüglich\n}\n")
	cfg := Config{
		Ops:       []string{"acronym_phoneme"},
		Replace:   []Replacement{{From: "&", To: " und "}},
		Separator: "-",
		Lexicon:   lexPath,
		Log:       LogConfig{Level: "info"},
	}
	opts, err := cfg.Options()
	require.NoError(t, err)

	tr, err := transliterate.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, []transliterate.Op{transliterate.AcronymPhoneme}, tr.Config().Ops)

	out, err := tr.Transliterate("ADAC & Co bzgl. Mai")
	require.NoError(t, err)
	assert.Equal(t, "ah-deh-ah-zee und co bezüglich mai", out)
}

func TestOptions_MissingLexicon(t *testing.T) {
	cfg := Config{Lexicon: filepath.Join(t.TempDir(), "none.lex"), Log: LogConfig{Level: "info"}}
	_, err := cfg.Options()
	require.Error(t, err)
}
