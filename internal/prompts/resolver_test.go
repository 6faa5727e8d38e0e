package prompts

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/jackzampolin/vista/internal/ocrprompt"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"no vars here", nil},
		{"Translate into {{.TargetLanguage}}", []string{"TargetLanguage"}},
		{"{{ .Generated }}\n\nAlso {{.Format}} and {{.Format}}", []string{"Format", "Generated"}},
		{"{{.Options.LatexMath}}", []string{"Options.LatexMath"}},
	}

	for _, tt := range tests {
		got := ExtractVariables(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExtractVariables(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestHashText(t *testing.T) {
	a := HashText("hello")
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a != HashText("hello") {
		t.Error("hash not stable")
	}
	if a == HashText("hello!") {
		t.Error("different text produced same hash")
	}
}

func TestResolver_Generated(t *testing.T) {
	r := NewResolver(nil)
	opts := ocrprompt.DefaultOptions()

	got, err := r.Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if got.IsOverride {
		t.Error("expected generated prompt")
	}
	if got.Key != SystemPromptKey {
		t.Errorf("expected key %s, got %s", SystemPromptKey, got.Key)
	}
	if got.Text != ocrprompt.Build(opts) {
		t.Error("expected text to equal Build() output")
	}
	if got.Hash != HashText(got.Text) {
		t.Error("hash does not match text")
	}
}

func TestResolver_TemplateOverride(t *testing.T) {
	r := NewResolver(nil)
	r.SetOverride(Override{
		Text:     "Custom OCR for {{.Format}} into {{.TargetLanguage}}.\n\n{{.Generated}}",
		Template: true,
	})

	opts := ocrprompt.DefaultOptions()
	opts.Format = ocrprompt.FormatXML
	opts.LanguageDetection = true
	opts.TargetLanguage = "Italian"

	got, err := r.Resolve(opts)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if !got.IsOverride {
		t.Error("expected override")
	}
	if !strings.HasPrefix(got.Text, "Custom OCR for xml into Italian.") {
		t.Errorf("unexpected text:\n%s", got.Text)
	}
	if !strings.HasSuffix(got.Text, ocrprompt.Build(opts)) {
		t.Error("expected generated prompt to be embedded")
	}
	if !reflect.DeepEqual(got.Variables, []string{"Format", "Generated", "TargetLanguage"}) {
		t.Errorf("unexpected variables %v", got.Variables)
	}
}

func TestResolver_VerbatimOverride(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", "Transcribe the receipt line by line."},
		{"literal braces", "Return rows as {{ cell }} pairs."},
		{"template syntax", "Keep {{.Generated}} and {{.Format as written."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(nil)
			r.SetOverride(Override{Text: tt.text})

			got, err := r.Resolve(ocrprompt.DefaultOptions())
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if !got.IsOverride {
				t.Error("expected override")
			}
			if got.Text != tt.text {
				t.Errorf("Text = %q, want %q", got.Text, tt.text)
			}
			if got.Variables != nil {
				t.Errorf("expected no variables, got %v", got.Variables)
			}
			if got.Hash != HashText(tt.text) {
				t.Error("hash does not match text")
			}
		})
	}
}

func TestResolver_ClearOverride(t *testing.T) {
	r := NewResolver(nil)
	r.SetOverride(Override{Text: "static prompt"})

	if _, ok := r.Override(); !ok {
		t.Fatal("expected override to be set")
	}

	r.SetOverride(Override{})
	got, err := r.Resolve(ocrprompt.DefaultOptions())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got.IsOverride {
		t.Error("expected override to be cleared")
	}
}

func TestResolver_BrokenOverride(t *testing.T) {
	tests := []struct {
		name     string
		override string
	}{
		{"parse error", "{{.Format"},
		{"unknown field", "{{.Nope}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(nil)
			r.SetOverride(Override{Text: tt.override, Template: true})

			if _, err := r.Resolve(ocrprompt.DefaultOptions()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResolver_Concurrent(t *testing.T) {
	r := NewResolver(nil)
	opts := ocrprompt.DefaultOptions()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.SetOverride(Override{Text: "{{.Generated}}", Template: true})
		}()
		go func() {
			defer wg.Done()
			got, err := r.Resolve(opts)
			if err != nil {
				t.Errorf("Resolve() error: %v", err)
				return
			}
			if got.Text != ocrprompt.Build(opts) {
				t.Error("unexpected text")
			}
		}()
	}
	wg.Wait()
}
