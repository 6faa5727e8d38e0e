// Package ocrprompt assembles system prompts for vision-language OCR models.
//
// A prompt is a fixed preamble, one format block, the instruction blocks enabled in
// Options, and a closing sentence. Block order is part of the contract: the
// downstream model reads earlier instructions as higher priority.
package ocrprompt

// Options configures a single Build call.
//
// The zero value is not the default configuration; use DefaultOptions.
type Options struct {
	Format Format `json:"format_type" yaml:"format_type"`

	// PrettyFormatting and OriginalFormatting are meant to be mutually exclusive
	// but Build does not enforce it. See Lint.
	PrettyFormatting   bool `json:"pretty_formatting" yaml:"pretty_formatting"`
	OriginalFormatting bool `json:"original_formatting" yaml:"original_formatting"`

	LanguageDetection bool `json:"language_detection" yaml:"language_detection"`
	// TargetLanguage is only read when LanguageDetection is set. Empty means none.
	TargetLanguage string `json:"target_language,omitempty" yaml:"target_language,omitempty"`

	LatexMath                 bool `json:"latex_math" yaml:"latex_math"`
	ErrorCorrection           bool `json:"error_correction" yaml:"error_correction"`
	LowConfidenceHighlighting bool `json:"low_confidence_highlighting" yaml:"low_confidence_highlighting"`
	ContextualGrouping        bool `json:"contextual_grouping" yaml:"contextual_grouping"`
	AccessibilityAltText      bool `json:"accessibility_alt_text" yaml:"accessibility_alt_text"`
	SmartContext              bool `json:"smart_context" yaml:"smart_context"`
}

// DefaultOptions returns plain text output with original layout and LaTeX math.
func DefaultOptions() Options {
	return Options{
		Format:             FormatPlainText,
		OriginalFormatting: true,
		LatexMath:          true,
	}
}
