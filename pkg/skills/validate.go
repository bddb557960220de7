package skills

import (
	"fmt"

	"github.com/weftworks/weft/pkg/engine/pipeline"
	"github.com/weftworks/weft/pkg/paths"
)

// Validate checks a parsed skill definition. It is called once at load time;
// a skill that fails validation is excluded from the registry and surfaced
// through the load diagnostics.
func (s *Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("skill name is empty")
	}

	switch s.Executor {
	case ExecutorLLM:
		if s.Prompt == "" {
			return fmt.Errorf("llm skill %q requires a prompt", s.Name)
		}
	case ExecutorREST:
		if s.Rest == nil {
			return fmt.Errorf("rest skill %q requires rest_config", s.Name)
		}
		if s.Rest.URLTemplate == "" {
			return fmt.Errorf("rest skill %q: rest_config.url_template is required", s.Name)
		}
	case ExecutorAction:
		if s.Action == nil {
			return fmt.Errorf("action skill %q requires action_config", s.Name)
		}
	default:
		return fmt.Errorf("skill %q: unknown executor %q", s.Name, s.Executor)
	}

	if s.Rest != nil && s.Action != nil {
		return fmt.Errorf("skill %q: rest_config and action_config are mutually exclusive", s.Name)
	}

	// Read paths may index into lists; write paths may not.
	for _, p := range s.Requires {
		if err := paths.Validate(p, false); err != nil {
			return fmt.Errorf("skill %q: requires: %w", s.Name, err)
		}
	}
	for _, p := range s.Produces {
		if err := paths.Validate(p, true); err != nil {
			return fmt.Errorf("skill %q: produces: %w", s.Name, err)
		}
	}
	for _, p := range s.OptionalProduces {
		if err := paths.Validate(p, true); err != nil {
			return fmt.Errorf("skill %q: optional_produces: %w", s.Name, err)
		}
	}

	produced := make(map[string]bool, len(s.Produces))
	for _, p := range s.Produces {
		produced[p] = true
	}
	for _, r := range s.Requires {
		if produced[r] {
			return fmt.Errorf("skill %q: path %q appears in both requires and produces", s.Name, r)
		}
	}
	for _, o := range s.OptionalProduces {
		if produced[o] {
			return fmt.Errorf("skill %q: path %q appears in both produces and optional_produces", s.Name, o)
		}
	}

	if s.Action != nil {
		if err := s.validateAction(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Skill) validateAction() error {
	a := s.Action
	switch a.Type {
	case ActionPythonFunction:
		if a.Function == "" {
			return fmt.Errorf("skill %q: python_function requires function", s.Name)
		}
	case ActionDataQuery:
		if a.CredentialRef == "" || a.Source == "" || a.Query == "" {
			return fmt.Errorf("skill %q: data_query requires credential_ref, source and query", s.Name)
		}
	case ActionHTTPCall:
		if a.URLTemplate == "" {
			return fmt.Errorf("skill %q: http_call requires url_template", s.Name)
		}
	case ActionScript:
		if a.Script == "" {
			return fmt.Errorf("skill %q: script requires script", s.Name)
		}
	case ActionDataPipeline:
		compiled, err := pipeline.Parse(a.Steps)
		if err != nil {
			return fmt.Errorf("skill %q: data_pipeline: %w", s.Name, err)
		}
		a.compiled = compiled
	default:
		return fmt.Errorf("skill %q: unknown action type %q", s.Name, a.Type)
	}
	return nil
}
