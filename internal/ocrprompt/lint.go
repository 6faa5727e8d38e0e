package ocrprompt

import (
	"fmt"
	"strings"
)

// Lint warning codes.
const (
	WarnUnknownFormat         = "unknown-format"
	WarnPrettyAndOriginal     = "pretty-and-original"
	WarnTargetLanguageIgnored = "target-language-ignored"
	WarnBlankTargetLanguage   = "blank-target-language"
	WarnLatexMathRedundant    = "latex-math-redundant"
)

// Warning describes an Options combination that Build accepts but that is
// probably not what the caller meant.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// Lint inspects opts without changing how Build treats them.
func Lint(opts Options) []Warning {
	var warnings []Warning

	if !opts.Format.Known() {
		warnings = append(warnings, Warning{
			Code:    WarnUnknownFormat,
			Message: fmt.Sprintf("format %q is not supported; the prompt will contain %q", opts.Format, InvalidFormatText),
		})
	}

	if opts.PrettyFormatting && opts.OriginalFormatting {
		warnings = append(warnings, Warning{
			Code:    WarnPrettyAndOriginal,
			Message: "pretty formatting and original formatting are both enabled and give conflicting layout instructions",
		})
	}

	if opts.TargetLanguage != "" {
		if !opts.LanguageDetection {
			warnings = append(warnings, Warning{
				Code:    WarnTargetLanguageIgnored,
				Message: fmt.Sprintf("target language %q has no effect without language detection", opts.TargetLanguage),
			})
		} else if strings.TrimSpace(opts.TargetLanguage) == "" {
			warnings = append(warnings, Warning{
				Code:    WarnBlankTargetLanguage,
				Message: "target language is blank and will be inserted verbatim into the translation instruction",
			})
		}
	}

	if opts.LatexMath && opts.Format == FormatLaTeX {
		warnings = append(warnings, Warning{
			Code:    WarnLatexMathRedundant,
			Message: "latex math conversion is redundant with the latex output format",
		})
	}

	return warnings
}
