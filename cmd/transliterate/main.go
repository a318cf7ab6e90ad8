// Command transliterate prints the spoken form of a German text.
//
//	transliterate "Am 3.5.2020 kostete der ADAC-Kurs 3,50€."
//	am dritten mai zweitausendzwanzig kostete der ah deh ah zee kurs drei euro fünfzig.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/npillmayer/transliterate"
	"github.com/npillmayer/transliterate/config"
	"github.com/spf13/cobra"
)

type flags struct {
	config   string
	ops      []string
	sep      string
	keepCase bool
	replace  []string
	lexicon  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "transliterate [flags] TEXT",
		Short:        "Convert German text to its spoken form",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &f, args[0])
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "path to YAML configuration file (env CONFIG_PATH)")
	fs.StringSliceVar(&f.ops, "ops", nil, "comma separated list of enabled rules")
	fs.StringVar(&f.sep, "sep", " ", "separator between the letters of acronyms")
	fs.BoolVar(&f.keepCase, "keep-case", false, "do not lowercase the text")
	fs.StringArrayVar(&f.replace, "replace", nil, "replacement 'from=to', may be repeated")
	fs.StringVar(&f.lexicon, "lexicon", "", "lexicon file with additional entries")
	return cmd
}

func run(cmd *cobra.Command, f *flags, text string) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if err := f.override(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		logger.Error("cannot configure transliteration", "err", err)
		return err
	}
	t, err := transliterate.New(opts...)
	if err != nil {
		logger.Error("cannot configure transliteration", "err", err)
		return err
	}
	logger.Debug("configured", "ops", t.Config().Ops, "separator", cfg.Separator, "lexicon", cfg.Lexicon)
	out, err := t.Transliterate(text)
	if err != nil {
		logger.Error("transliteration failed", "err", err)
		return err
	}
	logger.Debug("transliterated", "input", text, "output", out)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// override applies flags given on the command line to cfg.
func (f *flags) override(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("ops") {
		cfg.Ops = f.ops
	}
	if fs.Changed("sep") {
		cfg.Separator = f.sep
	}
	if fs.Changed("keep-case") {
		cfg.KeepCase = f.keepCase
	}
	if fs.Changed("lexicon") {
		cfg.Lexicon = f.lexicon
	}
	if fs.Changed("replace") {
		cfg.Replace = cfg.Replace[:0:0]
		for _, r := range f.replace {
			from, to, ok := strings.Cut(r, "=")
			if !ok {
				return fmt.Errorf("--replace %q: expected 'from=to'", r)
			}
			cfg.Replace = append(cfg.Replace, config.Replacement{From: from, To: to})
		}
	}
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) (*charmlog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "transliterate",
	})
	if cfg.Log.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	}
	return logger, nil
}
