package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/vista/internal/config"
	"github.com/jackzampolin/vista/internal/export"
	"github.com/jackzampolin/vista/internal/ocrprompt"
	"github.com/jackzampolin/vista/internal/output"
	"github.com/jackzampolin/vista/internal/prompts"
	"github.com/jackzampolin/vista/internal/ui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the OCR system prompt",
	Long: `Print the OCR system prompt for the configured options.

Flags override config.yaml and VISTA_* environment variables. Options that
are accepted but probably unintended (for example pretty and original
formatting together) are reported on stderr; the prompt is still printed.

If custom mode is enabled in config, custom.system_prompt is printed
instead, exactly as written. With custom.template set it is rendered as a
Go template with {{.Generated}}, {{.Format}}, {{.TargetLanguage}} and
{{.Options}} available.

Examples:
  vista prompt                                    # Defaults
  vista prompt --format json --pretty --original=false
  vista prompt --detect-language --target-language French
  vista prompt --emit openai --model gpt-4o       # Chat request body
  vista prompt --explain -o json                  # Section breakdown
  vista prompt --watch                            # Re-print on config change`,
	Args: cobra.NoArgs,
	RunE: runPrompt,
}

var (
	promptEmit    string
	promptModel   string
	promptExplain bool
	promptWatch   bool
	promptNoLint  bool
)

// promptFlag binds a bool flag to an Options field.
type promptFlag struct {
	name  string
	usage string
	set   func(*ocrprompt.Options, bool)
}

var promptBoolFlags = []promptFlag{
	{"pretty", "reflow text for readability", func(o *ocrprompt.Options, v bool) { o.PrettyFormatting = v }},
	{"original", "preserve the source layout exactly", func(o *ocrprompt.Options, v bool) { o.OriginalFormatting = v }},
	{"detect-language", "detect the text's language", func(o *ocrprompt.Options, v bool) { o.LanguageDetection = v }},
	{"latex-math", "convert math to LaTeX", func(o *ocrprompt.Options, v bool) { o.LatexMath = v }},
	{"error-correction", "correct recognition mistakes", func(o *ocrprompt.Options, v bool) { o.ErrorCorrection = v }},
	{"highlight", "mark low-confidence text with [?]", func(o *ocrprompt.Options, v bool) { o.LowConfidenceHighlighting = v }},
	{"group", "group related content", func(o *ocrprompt.Options, v bool) { o.ContextualGrouping = v }},
	{"alt-text", "generate alt text for images", func(o *ocrprompt.Options, v bool) { o.AccessibilityAltText = v }},
	{"smart-context", "extract annotations and spatial clues", func(o *ocrprompt.Options, v bool) { o.SmartContext = v }},
}

func init() {
	addPromptOptionFlags(promptCmd)

	f := promptCmd.Flags()
	f.StringVar(&promptEmit, "emit", string(export.TargetText), "emit as: text or openai")
	f.StringVar(&promptModel, "model", "", "model name for --emit openai (default: export.model)")
	f.BoolVar(&promptExplain, "explain", false, "print the prompt broken into sections with lint warnings")
	f.BoolVar(&promptWatch, "watch", false, "re-print whenever the config file changes")
	f.BoolVar(&promptNoLint, "no-lint", false, "do not report option warnings")

	rootCmd.AddCommand(promptCmd)
}

// addPromptOptionFlags registers one flag per ocrprompt.Options field.
func addPromptOptionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("format", "", "output format: plain_text, html, json, rtf, xml, latex")
	f.String("target-language", "", "translate into this language (with --detect-language)")
	for _, pf := range promptBoolFlags {
		f.Bool(pf.name, false, pf.usage)
	}
}

// applyPromptFlags overlays flags the user set explicitly onto opts.
func applyPromptFlags(cmd *cobra.Command, opts *ocrprompt.Options) error {
	flags := cmd.Flags()

	if flags.Changed("format") {
		s, err := flags.GetString("format")
		if err != nil {
			return err
		}
		// Unknown formats are passed through; Build degrades to a placeholder
		opts.Format, _ = ocrprompt.ParseFormat(s)
	}
	if flags.Changed("target-language") {
		s, err := flags.GetString("target-language")
		if err != nil {
			return err
		}
		opts.TargetLanguage = s
	}

	for _, pf := range promptBoolFlags {
		if !flags.Changed(pf.name) {
			continue
		}
		v, err := flags.GetBool(pf.name)
		if err != nil {
			return err
		}
		pf.set(opts, v)
	}
	return nil
}

// explanation is the --explain payload.
type explanation struct {
	Options  ocrprompt.Options       `json:"options" yaml:"options"`
	Sections []ocrprompt.Section     `json:"sections" yaml:"sections"`
	Warnings []ocrprompt.Warning     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Resolved *prompts.ResolvedPrompt `json:"resolved" yaml:"resolved"`
}

func runPrompt(cmd *cobra.Command, args []string) error {
	target, err := export.ParseTarget(promptEmit)
	if err != nil {
		return err
	}

	mgr, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := mgr.Get()
	logger := cfg.Log.NewLogger(cmd.ErrOrStderr())

	resolver := prompts.NewResolver(logger)
	resolver.SetOverride(cfg.Override())

	opts := cfg.PromptOptions()
	if err := applyPromptFlags(cmd, &opts); err != nil {
		return err
	}

	model := promptModel
	if model == "" {
		model = cfg.Export.Model
	}

	render := func(opts ocrprompt.Options) error {
		return renderPrompt(cmd, logger, resolver, opts, target, model)
	}

	if !promptWatch {
		return render(opts)
	}

	if mgr.ConfigFileUsed() == "" {
		return fmt.Errorf("--watch needs a config file; run 'vista config init' or pass --config")
	}
	if err := render(opts); err != nil {
		return err
	}

	updates := make(chan *config.Config, 1)
	mgr.OnChange(func(c *config.Config) {
		// Keep only the latest config if the reader is behind
		select {
		case <-updates:
		default:
		}
		updates <- c
	})
	mgr.WatchConfig()
	logger.Info("watching config", "path", mgr.ConfigFileUsed())

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-updates:
			resolver.SetOverride(c.Override())
			opts := c.PromptOptions()
			if err := applyPromptFlags(cmd, &opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			if err := render(opts); err != nil {
				// A bad edit should not end the watch
				logger.Error("failed to render prompt", "error", err)
			}
		}
	}
}

func renderPrompt(cmd *cobra.Command, logger *slog.Logger, resolver *prompts.Resolver, opts ocrprompt.Options, target export.Target, model string) error {
	warnings := ocrprompt.Lint(opts)
	if !promptNoLint && !promptExplain {
		ui.PrintWarnings(cmd.ErrOrStderr(), warnings)
	}

	p, err := resolver.Resolve(opts)
	if err != nil {
		return err
	}
	logger.Debug("resolved prompt", "key", p.Key, "hash", p.Hash, "override", p.IsOverride, "format", opts.Format)

	if promptExplain {
		return output.To(cmd.OutOrStdout(), outFormat, explanation{
			Options:  opts,
			Sections: ocrprompt.Sections(opts),
			Warnings: warnings,
			Resolved: p,
		})
	}
	return export.Write(cmd.OutOrStdout(), target, p, model)
}
