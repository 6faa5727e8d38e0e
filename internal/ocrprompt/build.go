package ocrprompt

import (
	"fmt"
	"strings"
)

// Section names, in assembly order.
const (
	SectionPreamble                  = "preamble"
	SectionFormat                    = "format"
	SectionPrettyFormatting          = "pretty_formatting"
	SectionOriginalFormatting        = "original_formatting"
	SectionLanguage                  = "language"
	SectionLatexMath                 = "latex_math"
	SectionErrorCorrection           = "error_correction"
	SectionLowConfidenceHighlighting = "low_confidence_highlighting"
	SectionContextualGrouping        = "contextual_grouping"
	SectionAccessibilityAltText      = "accessibility_alt_text"
	SectionSmartContext              = "smart_context"
	SectionClosing                   = "closing"
)

// LowConfidenceMarker flags uncertain OCR output.
const LowConfidenceMarker = "[?]"

const (
	PreambleText = "Process the provided content in the image. Follow these instructions:"

	PrettyFormattingText = "Reconstruct the text to improve readability. Remove unnecessary line breaks, " +
		"adjust paragraphing, and ensure the output is polished and easy to read."
	OriginalFormattingText = "Preserve the source document's layout exactly as it appears. " +
		"Retain all original line breaks, indentation, spacing, and alignment."

	DetectLanguageText   = "Detect the text's language and retain it unless a target language is specified."
	translateTextPattern = "Detect the text's language and translate it into %s."

	LatexMathText = "Convert math equations into LaTeX; For inline formulas, enclose the formula in $…$. " +
		"For displayed formulas, use $$…$$."
	ErrorCorrectionText = "Refine the OCR output by correcting recognition mistakes, fixing typographical errors, " +
		"and improving grammar and context."
	LowConfidenceHighlightingText = "Highlight eleements with low OCR confidence using the marker '" +
		LowConfidenceMarker + "' to flag them for review."
	ContextualGroupingText = "Group related content intelligently. For example, combine captions with " +
		"corresponding charts or diagrams to present cohesive blocks of information."
	AccessibilityAltTextText = "Generate descriptive alternative text (alt text) for images or graphical elements."
	SmartContextText         = "Extract annotations, side notes, or comments. Include spatial clues to describe " +
		"relationships, such as 'This caption appears below the image.'"

	ClosingText = "Extract the content from the image, adhering to the instructions above. " +
		"If any ambiguity arises, prioritize accuracy and mark uncertain sections for review."
)

// blockSeparator ends every block except the closing one.
const blockSeparator = "\n\n"

// Section is one block of an assembled prompt.
type Section struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// TranslateText returns the language block for a translation target.
func TranslateText(language string) string {
	return fmt.Sprintf(translateTextPattern, language)
}

// Sections returns the blocks Build joins, in order. Disabled blocks are omitted.
func Sections(opts Options) []Section {
	sections := make([]Section, 0, 12)
	add := func(name, text string) {
		sections = append(sections, Section{Name: name, Text: text})
	}

	add(SectionPreamble, PreambleText)

	formatText, ok := Instruction(opts.Format)
	if !ok {
		formatText = InvalidFormatText
	}
	add(SectionFormat, formatText)

	if opts.PrettyFormatting {
		add(SectionPrettyFormatting, PrettyFormattingText)
	}
	if opts.OriginalFormatting {
		add(SectionOriginalFormatting, OriginalFormattingText)
	}

	if opts.LanguageDetection {
		if opts.TargetLanguage != "" {
			add(SectionLanguage, TranslateText(opts.TargetLanguage))
		} else {
			add(SectionLanguage, DetectLanguageText)
		}
	}

	if opts.LatexMath {
		add(SectionLatexMath, LatexMathText)
	}
	if opts.ErrorCorrection {
		add(SectionErrorCorrection, ErrorCorrectionText)
	}
	if opts.LowConfidenceHighlighting {
		add(SectionLowConfidenceHighlighting, LowConfidenceHighlightingText)
	}
	if opts.ContextualGrouping {
		add(SectionContextualGrouping, ContextualGroupingText)
	}
	if opts.AccessibilityAltText {
		add(SectionAccessibilityAltText, AccessibilityAltTextText)
	}
	if opts.SmartContext {
		add(SectionSmartContext, SmartContextText)
	}

	add(SectionClosing, ClosingText)
	return sections
}

// Build assembles the system prompt for opts. It never fails: an unknown format
// yields InvalidFormatText in place of the format block.
func Build(opts Options) string {
	sections := Sections(opts)

	var sb strings.Builder
	for i, s := range sections {
		sb.WriteString(s.Text)
		if i < len(sections)-1 {
			sb.WriteString(blockSeparator)
		}
	}
	return sb.String()
}
