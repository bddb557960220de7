package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/templates"
)

// llmExecutor renders the skill's prompts against the data store and asks the
// sidecar for a structured object conforming to produces ∪ optional_produces.
type llmExecutor struct {
	client       llm.Client
	defaultModel string
}

func (e *llmExecutor) Execute(ctx context.Context, inv *Invocation) (*Result, error) {
	s := inv.Skill

	prompt, err := templates.Compile(s.Prompt).Render(inv.DataStore)
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("rendering prompt: %w", err))
	}
	system, err := templates.Compile(s.SystemPrompt).Render(inv.DataStore)
	if err != nil {
		return nil, execError(s.Name, "", fmt.Errorf("rendering system prompt: %w", err))
	}

	model := e.defaultModel
	if inv.Run.ModelOverride != "" {
		model = inv.Run.ModelOverride
	}

	outputs, err := e.client.GenerateStructured(ctx, &llm.Request{
		ThreadID:     inv.Run.ThreadID,
		SystemPrompt: system,
		Prompt:       prompt,
		Model:        model,
		Schema:       llm.ObjectSchema(s.Produces, s.OptionalProduces),
	})
	if err != nil {
		if errors.Is(err, llm.ErrInvalidOutput) {
			return nil, execError(s.Name, InnerLLMOutputInvalid, err)
		}
		return nil, execError(s.Name, "", err)
	}
	return &Result{Outputs: outputs}, nil
}
