// Package skills defines the skill model and the registry that loads skills
// from a filesystem tree and from the database, indexes them by name, and
// swaps the in-memory view atomically on reload.
package skills

import (
	"github.com/weftworks/weft/pkg/engine/pipeline"
)

// ExecutorType selects the execution strategy for a skill.
type ExecutorType string

// Executor types.
const (
	ExecutorLLM    ExecutorType = "llm"
	ExecutorREST   ExecutorType = "rest"
	ExecutorAction ExecutorType = "action"
)

// ActionType discriminates action_config sub-handlers.
type ActionType string

// Action types.
const (
	ActionPythonFunction ActionType = "python_function"
	ActionDataQuery      ActionType = "data_query"
	ActionDataPipeline   ActionType = "data_pipeline"
	ActionHTTPCall       ActionType = "http_call"
	ActionScript         ActionType = "script"
)

// SourceKind identifies where a skill definition was loaded from.
type SourceKind string

// Source kinds.
const (
	SourceFilesystem SourceKind = "filesystem"
	SourceDatabase   SourceKind = "database"
)

// RestConfig configures the async REST executor.
type RestConfig struct {
	URLTemplate string            `yaml:"url_template"`
	Method      string            `yaml:"method"`
	TimeoutMS   int               `yaml:"timeout_ms"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	Body        string            `yaml:"body,omitempty"`
}

// ActionConfig configures the synchronous action executor. Only the fields
// relevant to Type are consulted; Validate enforces presence.
type ActionConfig struct {
	Type      ActionType `yaml:"type"`
	TimeoutMS int        `yaml:"timeout_ms,omitempty"`

	// python_function
	Module   string `yaml:"module,omitempty"`
	Function string `yaml:"function,omitempty"`

	// data_query
	CredentialRef string `yaml:"credential_ref,omitempty"`
	Source        string `yaml:"source,omitempty"`
	Query         string `yaml:"query,omitempty"`
	Collection    string `yaml:"collection,omitempty"`

	// http_call
	URLTemplate string            `yaml:"url_template,omitempty"`
	Method      string            `yaml:"method,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	Body        string            `yaml:"body,omitempty"`

	// script
	Interpreter string   `yaml:"interpreter,omitempty"`
	Script      string   `yaml:"script,omitempty"`
	Args        []string `yaml:"args,omitempty"`

	// data_pipeline
	Steps []*pipeline.Step `yaml:"steps,omitempty"`

	compiled *pipeline.Pipeline
}

// Source records where a skill came from.
type Source struct {
	Kind        SourceKind
	ID          string
	WorkspaceID string
	IsPublic    bool
	Dir         string // filesystem skills: the skill's directory (script cwd)
}

// Skill is an immutable declarative unit of work. Instances are shared
// across runs after load; nothing mutates them.
type Skill struct {
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description,omitempty"`
	Requires         []string `yaml:"requires,omitempty"`
	Produces         []string `yaml:"produces,omitempty"`
	OptionalProduces []string `yaml:"optional_produces,omitempty"`

	Executor    ExecutorType `yaml:"executor"`
	HITLEnabled bool         `yaml:"hitl_enabled,omitempty"`

	Prompt       string `yaml:"prompt,omitempty"`
	SystemPrompt string `yaml:"system_prompt,omitempty"`

	Rest   *RestConfig   `yaml:"rest_config,omitempty"`
	Action *ActionConfig `yaml:"action_config,omitempty"`

	Source Source `yaml:"-"`
}

// Pipeline returns the compiled pipeline AST for data_pipeline skills,
// populated by Validate. Nil for every other skill.
func (s *Skill) Pipeline() *pipeline.Pipeline {
	if s.Action == nil {
		return nil
	}
	return s.Action.compiled
}
