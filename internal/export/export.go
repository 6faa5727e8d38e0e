// Package export shapes a resolved system prompt into request bodies for
// downstream vision models. Nothing here opens a connection.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	openai "github.com/openai/openai-go/v3"

	"github.com/jackzampolin/vista/internal/prompts"
)

// Target names a request body shape.
type Target string

const (
	TargetText   Target = "text"
	TargetOpenAI Target = "openai"
)

// ParseTarget validates a --emit value.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetText, TargetOpenAI:
		return Target(s), nil
	default:
		return "", fmt.Errorf("unknown export target %q (want %s or %s)", s, TargetText, TargetOpenAI)
	}
}

// OpenAIChatRequest builds chat-completions params carrying the prompt as the
// system message. The image is left for the caller to append.
func OpenAIChatRequest(p *prompts.ResolvedPrompt, model string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.Text),
		},
	}
}

// Write renders p for target. Text output is the bare prompt with a trailing newline.
func Write(w io.Writer, target Target, p *prompts.ResolvedPrompt, model string) error {
	switch target {
	case TargetText:
		_, err := fmt.Fprintln(w, p.Text)
		return err
	case TargetOpenAI:
		data, err := json.MarshalIndent(OpenAIChatRequest(p, model), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal openai request: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown export target %q", target)
	}
}
