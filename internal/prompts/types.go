// Package prompts resolves the system prompt sent to the OCR model.
//
// The package supports two sources:
//   - The generated prompt assembled by ocrprompt.Build from the configured options
//   - A user override ("custom mode"), sent as written unless it is marked
//     as a Go template
//
// Resolution order:
//  1. Override, if one is set
//  2. Generated prompt
//
// Every resolved prompt carries a SHA256 hash of its text so that downstream
// calls can be traced back to the exact instructions they were given.
package prompts

import "github.com/jackzampolin/vista/internal/ocrprompt"

// SystemPromptKey identifies the OCR system prompt.
const SystemPromptKey = "ocr.system"

// ResolvedPrompt is the result of resolving the system prompt for a set of options.
type ResolvedPrompt struct {
	Key        string   `json:"key" yaml:"key"`
	Text       string   `json:"text" yaml:"text"`
	Variables  []string `json:"variables,omitempty" yaml:"variables,omitempty"`
	IsOverride bool     `json:"is_override" yaml:"is_override"` // true if from custom mode
	Hash       string   `json:"hash" yaml:"hash"`
}

// Override is a user-written system prompt.
// Text is used verbatim unless Template is set, in which case it is rendered
// against TemplateData.
type Override struct {
	Text     string `json:"text" yaml:"text"`
	Template bool   `json:"template" yaml:"template"`
}

// TemplateData is passed to override templates.
type TemplateData struct {
	Format         ocrprompt.Format
	TargetLanguage string
	Generated      string // What Build would have produced
	Options        ocrprompt.Options
}
