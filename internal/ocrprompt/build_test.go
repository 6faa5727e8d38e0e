package ocrprompt

import (
	"strings"
	"sync"
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	got := Build(DefaultOptions())

	want := strings.Join([]string{
		PreambleText,
		formatInstructions[FormatPlainText],
		OriginalFormattingText,
		LatexMathText,
		ClosingText,
	}, "\n\n")

	if got != want {
		t.Errorf("Build(DefaultOptions()) mismatch\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestBuildFormats(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Format = f
			got := Build(opts)

			text, ok := Instruction(f)
			if !ok {
				t.Fatalf("Instruction(%q) not found", f)
			}
			if !strings.Contains(got, text) {
				t.Errorf("prompt missing format block for %s", f)
			}
			if strings.Contains(got, InvalidFormatText) {
				t.Errorf("prompt for %s contains fallback text", f)
			}
		})
	}
}

func TestBuildUnknownFormat(t *testing.T) {
	tests := []Format{"", "markdown", "PDF", "plain text", "JSON"}

	for _, f := range tests {
		t.Run(string(f), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Format = f
			got := Build(opts)

			if strings.Count(got, InvalidFormatText) != 1 {
				t.Errorf("expected exactly one fallback block, got:\n%s", got)
			}
			want := PreambleText + "\n\n" + InvalidFormatText + "\n\n"
			if !strings.HasPrefix(got, want) {
				t.Errorf("fallback block not in format position:\n%s", got)
			}
			for _, known := range Formats() {
				text, _ := Instruction(known)
				if strings.Contains(got, text) {
					t.Errorf("prompt unexpectedly contains %s block", known)
				}
			}
		})
	}
}

// flagCase binds an Options field to the text it controls.
type flagCase struct {
	name string
	set  func(*Options, bool)
	text string
}

var flagCases = []flagCase{
	{"pretty_formatting", func(o *Options, v bool) { o.PrettyFormatting = v }, PrettyFormattingText},
	{"original_formatting", func(o *Options, v bool) { o.OriginalFormatting = v }, OriginalFormattingText},
	{"language_detection", func(o *Options, v bool) { o.LanguageDetection = v }, DetectLanguageText},
	{"latex_math", func(o *Options, v bool) { o.LatexMath = v }, LatexMathText},
	{"error_correction", func(o *Options, v bool) { o.ErrorCorrection = v }, ErrorCorrectionText},
	{"low_confidence_highlighting", func(o *Options, v bool) { o.LowConfidenceHighlighting = v }, LowConfidenceHighlightingText},
	{"contextual_grouping", func(o *Options, v bool) { o.ContextualGrouping = v }, ContextualGroupingText},
	{"accessibility_alt_text", func(o *Options, v bool) { o.AccessibilityAltText = v }, AccessibilityAltTextText},
	{"smart_context", func(o *Options, v bool) { o.SmartContext = v }, SmartContextText},
}

func TestBuildAllFlagCombinations(t *testing.T) {
	for mask := 0; mask < 1<<len(flagCases); mask++ {
		opts := Options{Format: FormatJSON}
		for i, fc := range flagCases {
			fc.set(&opts, mask&(1<<i) != 0)
		}
		got := Build(opts)

		if !strings.HasPrefix(got, PreambleText+"\n\n") {
			t.Fatalf("mask %09b: missing preamble", mask)
		}
		if !strings.HasSuffix(got, ClosingText) || strings.HasSuffix(got, "\n") {
			t.Fatalf("mask %09b: closing sentence not last", mask)
		}

		for i, fc := range flagCases {
			on := mask&(1<<i) != 0
			if has := strings.Contains(got, fc.text); has != on {
				t.Errorf("mask %09b: %s enabled=%v but text present=%v", mask, fc.name, on, has)
			}
		}

		if n := strings.Count(got, "\n\n"); n != len(Sections(opts))-1 {
			t.Errorf("mask %09b: expected %d separators, got %d", mask, len(Sections(opts))-1, n)
		}
	}
}

func TestBuildLanguage(t *testing.T) {
	tests := []struct {
		name       string
		detect     bool
		target     string
		wantDetect bool
		wantTarget string
	}{
		{name: "translate to French", detect: true, target: "French", wantTarget: "French"},
		{name: "translate to Brazilian Portuguese", detect: true, target: "Brazilian Portuguese", wantTarget: "Brazilian Portuguese"},
		{name: "whitespace target kept verbatim", detect: true, target: "  ", wantTarget: "  "},
		{name: "detect only", detect: true, wantDetect: true},
		{name: "disabled with target", detect: false, target: "French"},
		{name: "disabled", detect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.LanguageDetection = tt.detect
			opts.TargetLanguage = tt.target
			got := Build(opts)

			if has := strings.Contains(got, DetectLanguageText); has != tt.wantDetect {
				t.Errorf("detect-only sentence present=%v, want %v", has, tt.wantDetect)
			}

			if tt.wantTarget != "" {
				want := TranslateText(tt.wantTarget)
				if !strings.Contains(got, want) {
					t.Errorf("missing translation sentence %q in:\n%s", want, got)
				}
			} else if strings.Contains(got, "translate it into") {
				t.Errorf("unexpected translation sentence in:\n%s", got)
			}

			if !tt.detect && strings.Contains(got, "Detect the text's language") {
				t.Errorf("language block present with detection disabled")
			}
		})
	}
}

func TestBuildExample(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.PrettyFormatting = true
	opts.OriginalFormatting = false
	opts.LanguageDetection = true
	opts.TargetLanguage = "Spanish"
	opts.ErrorCorrection = true

	got := Build(opts)

	want := strings.Join([]string{
		PreambleText,
		formatInstructions[FormatJSON],
		PrettyFormattingText,
		"Detect the text's language and translate it into Spanish.",
		LatexMathText,
		ErrorCorrectionText,
		ClosingText,
	}, "\n\n")

	if got != want {
		t.Errorf("Build() mismatch\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

// Every block enabled, compared byte for byte with the legacy generator.
func TestBuildAllFlagsLegacyText(t *testing.T) {
	opts := Options{
		Format:                    FormatHTML,
		PrettyFormatting:          true,
		OriginalFormatting:        true,
		LanguageDetection:         true,
		TargetLanguage:            "German",
		LatexMath:                 true,
		ErrorCorrection:           true,
		LowConfidenceHighlighting: true,
		ContextualGrouping:        true,
		AccessibilityAltText:      true,
		SmartContext:              true,
	}

	want := "Process the provided content in the image. Follow these instructions:\n\n" +
		"Output the content as valid, well-structured HTML. Use semantic tags " +
		"to represent elements: <h1>, <h2>, etc., for headings; <p> for paragraphs; " +
		"<ul> and <li> for bullet points; <table>, <tr>, and <td> for tables. " +
		"Ensure proper nesting and closing of tags.\n\n" +
		"Reconstruct the text to improve readability. Remove unnecessary line breaks, adjust paragraphing, " +
		"and ensure the output is polished and easy to read.\n\n" +
		"Preserve the source document's layout exactly as it appears. Retain all original line breaks, " +
		"indentation, spacing, and alignment.\n\n" +
		"Detect the text's language and translate it into German.\n\n" +
		"Convert math equations into LaTeX; For inline formulas, enclose the formula in $…$. " +
		"For displayed formulas, use $$…$$.\n\n" +
		"Refine the OCR output by correcting recognition mistakes, fixing typographical errors, " +
		"and improving grammar and context.\n\n" +
		"Highlight eleements with low OCR confidence using the marker '[?]' to flag them for review.\n\n" +
		"Group related content intelligently. For example, combine captions with corresponding charts " +
		"or diagrams to present cohesive blocks of information.\n\n" +
		"Generate descriptive alternative text (alt text) for images or graphical elements.\n\n" +
		"Extract annotations, side notes, or comments. Include spatial clues to describe relationships, " +
		"such as 'This caption appears below the image.'\n\n" +
		"Extract the content from the image, adhering to the instructions above. " +
		"If any ambiguity arises, prioritize accuracy and mark uncertain sections for review."

	if got := Build(opts); got != want {
		t.Errorf("Build() mismatch\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestBuildOrder(t *testing.T) {
	opts := Options{
		Format:                    FormatHTML,
		PrettyFormatting:          true,
		OriginalFormatting:        true,
		LanguageDetection:         true,
		TargetLanguage:            "German",
		LatexMath:                 true,
		ErrorCorrection:           true,
		LowConfidenceHighlighting: true,
		ContextualGrouping:        true,
		AccessibilityAltText:      true,
		SmartContext:              true,
	}

	wantNames := []string{
		SectionPreamble,
		SectionFormat,
		SectionPrettyFormatting,
		SectionOriginalFormatting,
		SectionLanguage,
		SectionLatexMath,
		SectionErrorCorrection,
		SectionLowConfidenceHighlighting,
		SectionContextualGrouping,
		SectionAccessibilityAltText,
		SectionSmartContext,
		SectionClosing,
	}

	sections := Sections(opts)
	if len(sections) != len(wantNames) {
		t.Fatalf("expected %d sections, got %d", len(wantNames), len(sections))
	}
	for i, s := range sections {
		if s.Name != wantNames[i] {
			t.Errorf("section %d: expected %s, got %s", i, wantNames[i], s.Name)
		}
	}

	got := Build(opts)
	last := -1
	for _, s := range sections {
		idx := strings.Index(got, s.Text)
		if idx <= last {
			t.Errorf("section %s out of order (index %d after %d)", s.Name, idx, last)
		}
		last = idx
	}
}

func TestBuildHighlightMarker(t *testing.T) {
	opts := DefaultOptions()
	opts.LowConfidenceHighlighting = true

	if !strings.Contains(Build(opts), "'[?]'") {
		t.Error("expected low-confidence marker [?] in prompt")
	}
}

func TestBuildDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatXML
	opts.LanguageDetection = true
	opts.TargetLanguage = "Japanese"
	opts.SmartContext = true

	first := Build(opts)
	if second := Build(opts); first != second {
		t.Error("Build() not deterministic")
	}

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Build(opts)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != first {
			t.Errorf("concurrent Build() %d differs", i)
		}
	}
}

func TestZeroOptions(t *testing.T) {
	got := Build(Options{})

	want := PreambleText + "\n\n" + InvalidFormatText + "\n\n" + ClosingText
	if got != want {
		t.Errorf("Build(Options{}) mismatch\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}
