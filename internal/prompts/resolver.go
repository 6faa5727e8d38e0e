package prompts

import (
	"log/slog"
	"sync"

	"github.com/jackzampolin/vista/internal/ocrprompt"
)

// Resolver resolves the system prompt with an optional custom-mode override.
// Resolution order: override > generated
type Resolver struct {
	override Override
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewResolver creates a new prompt resolver.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// SetOverride installs a custom prompt. An empty Text clears it.
// Safe to call while other goroutines resolve, e.g. from a config reload.
func (r *Resolver) SetOverride(o Override) {
	r.mu.Lock()
	changed := r.override != o
	r.override = o
	r.mu.Unlock()

	if changed {
		attrs := []any{"key", SystemPromptKey, "enabled", o.Text != "", "template", o.Template}
		if o.Template {
			attrs = append(attrs, "vars", ExtractVariables(o.Text))
		}
		r.logger.Debug("prompt override updated", attrs...)
	}
}

// Override returns the current override, if any.
func (r *Resolver) Override() (Override, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.override, r.override.Text != ""
}

// Resolve returns the system prompt for opts.
// Only a broken override template can make it fail.
func (r *Resolver) Resolve(opts ocrprompt.Options) (*ResolvedPrompt, error) {
	generated := ocrprompt.Build(opts)

	override, ok := r.Override()
	if !ok {
		return &ResolvedPrompt{
			Key:  SystemPromptKey,
			Text: generated,
			Hash: HashText(generated),
		}, nil
	}

	if !override.Template {
		return &ResolvedPrompt{
			Key:        SystemPromptKey,
			Text:       override.Text,
			IsOverride: true,
			Hash:       HashText(override.Text),
		}, nil
	}

	text, err := Render(override.Text, TemplateData{
		Format:         opts.Format,
		TargetLanguage: opts.TargetLanguage,
		Generated:      generated,
		Options:        opts,
	})
	if err != nil {
		r.logger.Warn("failed to render prompt override", "key", SystemPromptKey, "error", err)
		return nil, err
	}

	return &ResolvedPrompt{
		Key:        SystemPromptKey,
		Text:       text,
		Variables:  ExtractVariables(override.Text),
		IsOverride: true,
		Hash:       HashText(text),
	}, nil
}
