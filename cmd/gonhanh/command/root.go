package command

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gonhanh/internal/config"
	"gonhanh/internal/engine"
	"gonhanh/internal/log"
	"gonhanh/internal/types"
)

var (
	configPath string
	methodName string
	toneStyle  string
	spellCheck bool
	disabled   bool

	settings config.Config
	logger   *slog.Logger

	Root = &cobra.Command{
		Use:   "gonhanh",
		Short: "gonhanh converts Telex and VNI keystrokes into Vietnamese text.",
		Long: "`gonhanh` runs the Vietnamese transliteration engine outside an input method framework.\n\n" +
			"It converts lines of keystrokes, serves conversions over a unix socket and offers an interactive typing mode.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadSettings,
	}
)

func init() {
	flags := Root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to gonhanh.ini (default ./gonhanh.ini)")
	flags.StringVar(&methodName, "method", "", "input method: telex or vni")
	flags.StringVar(&toneStyle, "tone-style", "", "tone placement on oa, oe, uy: new or old")
	flags.BoolVar(&spellCheck, "spell-check", false, "only place marks on syllables with a Vietnamese onset and coda")
	flags.BoolVar(&disabled, "disabled", false, "pass every key through unchanged")
	log.RegisterFlags(flags)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.ResolveConfig(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("method") {
		if cfg.Method, err = types.ParseInputMethod(methodName); err != nil {
			return err
		}
	}
	if flags.Changed("tone-style") {
		if cfg.ToneStyle, err = types.ParseToneStyle(toneStyle); err != nil {
			return err
		}
	}
	if flags.Changed("spell-check") {
		cfg.SpellCheck = spellCheck
	}
	if flags.Changed("disabled") {
		cfg.Enabled = !disabled
	}

	l, err := log.Init(flags, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	settings = cfg
	logger = l
	logger.Debug("settings loaded", "method", cfg.Method.String(), "tone_style", cfg.ToneStyle.String(),
		"spell_check", cfg.SpellCheck, "enabled", cfg.Enabled)
	return nil
}

func engineOptions() engine.Options {
	return engine.Options{
		Method:     settings.Method,
		ToneStyle:  settings.ToneStyle,
		SpellCheck: settings.SpellCheck,
		Disabled:   !settings.Enabled,
		Logger:     logger,
	}
}
