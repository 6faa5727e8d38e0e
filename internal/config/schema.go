package config

import (
	"github.com/jackzampolin/vista/internal/ocrprompt"
	"github.com/jackzampolin/vista/internal/prompts"
)

// Config holds vista configuration.
// Stored at: ./config.yaml or {home}/config.yaml
type Config struct {
	Prompt PromptCfg `mapstructure:"prompt" json:"prompt" yaml:"prompt"`
	Custom CustomCfg `mapstructure:"custom" json:"custom" yaml:"custom"`
	Log    LogCfg    `mapstructure:"log" json:"log" yaml:"log"`
	Export ExportCfg `mapstructure:"export" json:"export" yaml:"export"`
}

// PromptCfg mirrors ocrprompt.Options.
type PromptCfg struct {
	FormatType                string `mapstructure:"format_type" json:"format_type" yaml:"format_type"` // plain_text, html, json, rtf, xml, latex
	PrettyFormatting          bool   `mapstructure:"pretty_formatting" json:"pretty_formatting" yaml:"pretty_formatting"`
	OriginalFormatting        bool   `mapstructure:"original_formatting" json:"original_formatting" yaml:"original_formatting"`
	LanguageDetection         bool   `mapstructure:"language_detection" json:"language_detection" yaml:"language_detection"`
	TargetLanguage            string `mapstructure:"target_language" json:"target_language" yaml:"target_language"` // Only used with language_detection
	LatexMath                 bool   `mapstructure:"latex_math" json:"latex_math" yaml:"latex_math"`
	ErrorCorrection           bool   `mapstructure:"error_correction" json:"error_correction" yaml:"error_correction"`
	LowConfidenceHighlighting bool   `mapstructure:"low_confidence_highlighting" json:"low_confidence_highlighting" yaml:"low_confidence_highlighting"`
	ContextualGrouping        bool   `mapstructure:"contextual_grouping" json:"contextual_grouping" yaml:"contextual_grouping"`
	AccessibilityAltText      bool   `mapstructure:"accessibility_alt_text" json:"accessibility_alt_text" yaml:"accessibility_alt_text"`
	SmartContext              bool   `mapstructure:"smart_context" json:"smart_context" yaml:"smart_context"`
}

// CustomCfg replaces the generated prompt with a user-written one.
type CustomCfg struct {
	Enabled      bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	SystemPrompt string `mapstructure:"system_prompt" json:"system_prompt" yaml:"system_prompt"`
	// Template renders SystemPrompt as a Go template; see prompts.TemplateData.
	Template bool `mapstructure:"template" json:"template" yaml:"template"`
}

// LogCfg configures the CLI logger.
type LogCfg struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" json:"format" yaml:"format"` // text, json
}

// ExportCfg configures request bodies built for downstream models.
type ExportCfg struct {
	Model string `mapstructure:"model" json:"model" yaml:"model"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	opts := ocrprompt.DefaultOptions()
	return &Config{
		Prompt: PromptCfg{
			FormatType:                string(opts.Format),
			PrettyFormatting:          opts.PrettyFormatting,
			OriginalFormatting:        opts.OriginalFormatting,
			LanguageDetection:         opts.LanguageDetection,
			TargetLanguage:            opts.TargetLanguage,
			LatexMath:                 opts.LatexMath,
			ErrorCorrection:           opts.ErrorCorrection,
			LowConfidenceHighlighting: opts.LowConfidenceHighlighting,
			ContextualGrouping:        opts.ContextualGrouping,
			AccessibilityAltText:      opts.AccessibilityAltText,
			SmartContext:              opts.SmartContext,
		},
		Custom: CustomCfg{
			Enabled: false,
		},
		Log: LogCfg{
			Level:  "info",
			Format: "text",
		},
		Export: ExportCfg{
			Model: "gpt-4o",
		},
	}
}

// PromptOptions converts the prompt section to builder options.
// Format names are normalized; unknown names pass through unchanged.
func (c *Config) PromptOptions() ocrprompt.Options {
	format, _ := ocrprompt.ParseFormat(c.Prompt.FormatType)
	return ocrprompt.Options{
		Format:                    format,
		PrettyFormatting:          c.Prompt.PrettyFormatting,
		OriginalFormatting:        c.Prompt.OriginalFormatting,
		LanguageDetection:         c.Prompt.LanguageDetection,
		TargetLanguage:            c.Prompt.TargetLanguage,
		LatexMath:                 c.Prompt.LatexMath,
		ErrorCorrection:           c.Prompt.ErrorCorrection,
		LowConfidenceHighlighting: c.Prompt.LowConfidenceHighlighting,
		ContextualGrouping:        c.Prompt.ContextualGrouping,
		AccessibilityAltText:      c.Prompt.AccessibilityAltText,
		SmartContext:              c.Prompt.SmartContext,
	}
}

// Override returns the custom prompt, or a zero Override when custom mode is off.
func (c *Config) Override() prompts.Override {
	if !c.Custom.Enabled {
		return prompts.Override{}
	}
	return prompts.Override{
		Text:     c.Custom.SystemPrompt,
		Template: c.Custom.Template,
	}
}
