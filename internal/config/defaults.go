package config

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrNoDefault is returned when no default value exists for a config key.
var ErrNoDefault = errors.New("no default exists")

// ErrInvalidKey is returned when a config key contains invalid characters.
var ErrInvalidKey = errors.New("invalid config key")

// Entry represents a single configuration key with its default.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DefaultEntries returns every configuration key with its default value.
// The Manager registers these with viper so that each key can be overridden
// from the environment.
func DefaultEntries() []Entry {
	d := DefaultConfig()
	return []Entry{
		// ===================
		// Prompt
		// ===================
		{
			Key:         "prompt.format_type",
			Value:       d.Prompt.FormatType,
			Description: "Output format: plain_text, html, json, rtf, xml or latex",
		},
		{
			Key:         "prompt.pretty_formatting",
			Value:       d.Prompt.PrettyFormatting,
			Description: "Reflow text for readability (conflicts with original_formatting)",
		},
		{
			Key:         "prompt.original_formatting",
			Value:       d.Prompt.OriginalFormatting,
			Description: "Preserve the source layout exactly (conflicts with pretty_formatting)",
		},
		{
			Key:         "prompt.language_detection",
			Value:       d.Prompt.LanguageDetection,
			Description: "Ask the model to detect the text's language",
		},
		{
			Key:         "prompt.target_language",
			Value:       d.Prompt.TargetLanguage,
			Description: "Translate into this language (requires language_detection)",
		},
		{
			Key:         "prompt.latex_math",
			Value:       d.Prompt.LatexMath,
			Description: "Convert math equations to LaTeX",
		},
		{
			Key:         "prompt.error_correction",
			Value:       d.Prompt.ErrorCorrection,
			Description: "Correct recognition mistakes and improve grammar",
		},
		{
			Key:         "prompt.low_confidence_highlighting",
			Value:       d.Prompt.LowConfidenceHighlighting,
			Description: "Mark low-confidence text with [?]",
		},
		{
			Key:         "prompt.contextual_grouping",
			Value:       d.Prompt.ContextualGrouping,
			Description: "Group captions with their charts and diagrams",
		},
		{
			Key:         "prompt.accessibility_alt_text",
			Value:       d.Prompt.AccessibilityAltText,
			Description: "Generate alt text for images",
		},
		{
			Key:         "prompt.smart_context",
			Value:       d.Prompt.SmartContext,
			Description: "Extract annotations and spatial clues",
		},

		// ===================
		// Custom mode
		// ===================
		{
			Key:         "custom.enabled",
			Value:       d.Custom.Enabled,
			Description: "Use custom.system_prompt instead of the generated prompt",
		},
		{
			Key:         "custom.system_prompt",
			Value:       d.Custom.SystemPrompt,
			Description: "Custom system prompt, sent as written",
		},
		{
			Key:         "custom.template",
			Value:       d.Custom.Template,
			Description: "Render custom.system_prompt as a Go template ({{.Generated}}, {{.Format}}, {{.TargetLanguage}})",
		},

		// ===================
		// Logging
		// ===================
		{
			Key:         "log.level",
			Value:       d.Log.Level,
			Description: "Log level: debug, info, warn or error",
		},
		{
			Key:         "log.format",
			Value:       d.Log.Format,
			Description: "Log format: text or json",
		},

		// ===================
		// Export
		// ===================
		{
			Key:         "export.model",
			Value:       d.Export.Model,
			Description: "Model name written into exported chat requests",
		},
	}
}

// GetDefault returns the default value for a config key.
// Returns nil if no default exists for the key.
func GetDefault(key string) *Entry {
	for _, entry := range DefaultEntries() {
		if entry.Key == key {
			return &entry
		}
	}
	return nil
}

// LookupDefault is GetDefault with key validation and a typed error.
func LookupDefault(key string) (Entry, error) {
	if err := ValidateKey(key); err != nil {
		return Entry{}, err
	}
	def := GetDefault(key)
	if def == nil {
		return Entry{}, fmt.Errorf("%w for key %q", ErrNoDefault, key)
	}
	return *def, nil
}

// ValidateKey checks if a config key contains only allowed characters.
// Valid keys contain: letters, digits, dots, underscores, and hyphens.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	for i, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' && r != '-' {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidKey, r, i)
		}
	}
	// Don't allow keys starting or ending with dots
	if key[0] == '.' || key[len(key)-1] == '.' {
		return fmt.Errorf("%w: key cannot start or end with a dot", ErrInvalidKey)
	}
	return nil
}
