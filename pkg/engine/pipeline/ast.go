// Package pipeline implements the data-pipeline sub-engine: a tree of typed
// steps (query, transform, skill, merge, parallel, conditional, pipeline)
// evaluated against a local context seeded from the parent skill's inputs.
package pipeline

import (
	"fmt"
)

// StepType discriminates pipeline step kinds.
type StepType string

// Step kinds.
const (
	StepQuery       StepType = "query"
	StepTransform   StepType = "transform"
	StepSkill       StepType = "skill"
	StepMerge       StepType = "merge"
	StepParallel    StepType = "parallel"
	StepConditional StepType = "conditional"
	StepPipeline    StepType = "pipeline"
)

var validStepTypes = map[StepType]bool{
	StepQuery:       true,
	StepTransform:   true,
	StepSkill:       true,
	StepMerge:       true,
	StepParallel:    true,
	StepConditional: true,
	StepPipeline:    true,
}

// Condition guards a step (run_if/skip_if) or selects a conditional branch.
// Field is a dotted path into the local pipeline context.
type Condition struct {
	Field    string `yaml:"field" json:"field"`
	Operator string `yaml:"operator" json:"operator"`
	Value    any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Step is one node of the pipeline tree. Exactly the fields relevant to its
// Type are consulted; Parse rejects structurally invalid nodes up front so
// the runner never sees a malformed tree.
type Step struct {
	Type   StepType   `yaml:"type" json:"type"`
	Name   string     `yaml:"name,omitempty" json:"name,omitempty"`
	RunIf  *Condition `yaml:"run_if,omitempty" json:"run_if,omitempty"`
	SkipIf *Condition `yaml:"skip_if,omitempty" json:"skip_if,omitempty"`

	// query
	CredentialRef string `yaml:"credential_ref,omitempty" json:"credential_ref,omitempty"`
	Source        string `yaml:"source,omitempty" json:"source,omitempty"`
	Query         string `yaml:"query,omitempty" json:"query,omitempty"`
	Collection    string `yaml:"collection,omitempty" json:"collection,omitempty"`

	// transform
	Function string   `yaml:"function,omitempty" json:"function,omitempty"`
	Inputs   []string `yaml:"inputs,omitempty" json:"inputs,omitempty"`

	// query, transform, merge: destination key in the local context
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// skill
	Skill string `yaml:"skill,omitempty" json:"skill,omitempty"`

	// parallel, pipeline
	Steps []*Step `yaml:"steps,omitempty" json:"steps,omitempty"`

	// pipeline: keys of the parent context seeding the child context
	Context []string `yaml:"context,omitempty" json:"context,omitempty"`

	// conditional
	If   *Condition `yaml:"if,omitempty" json:"if,omitempty"`
	Then []*Step    `yaml:"then,omitempty" json:"then,omitempty"`
	Else []*Step    `yaml:"else,omitempty" json:"else,omitempty"`
}

// Pipeline is a parsed, validated step list.
type Pipeline struct {
	Steps []*Step
}

// Parse validates a step list recursively and returns the pipeline AST.
// Unknown step types and missing per-type required fields are fatal.
func Parse(steps []*Step) (*Pipeline, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("pipeline has no steps")
	}
	for i, s := range steps {
		if err := validateStep(s, fmt.Sprintf("steps[%d]", i)); err != nil {
			return nil, err
		}
	}
	return &Pipeline{Steps: steps}, nil
}

func validateStep(s *Step, at string) error {
	if s == nil {
		return fmt.Errorf("%s: nil step", at)
	}
	if !validStepTypes[s.Type] {
		return fmt.Errorf("%s: unknown step type %q", at, s.Type)
	}
	for _, c := range []struct {
		cond *Condition
		name string
	}{{s.RunIf, "run_if"}, {s.SkipIf, "skip_if"}} {
		if c.cond != nil {
			if err := validateCondition(c.cond); err != nil {
				return fmt.Errorf("%s: %s: %w", at, c.name, err)
			}
		}
	}

	switch s.Type {
	case StepQuery:
		if s.CredentialRef == "" || s.Source == "" || s.Query == "" {
			return fmt.Errorf("%s: query step requires credential_ref, source and query", at)
		}
		if s.Output == "" {
			return fmt.Errorf("%s: query step requires output", at)
		}
	case StepTransform:
		if s.Function == "" || s.Output == "" {
			return fmt.Errorf("%s: transform step requires function and output", at)
		}
	case StepSkill:
		if s.Skill == "" {
			return fmt.Errorf("%s: skill step requires skill", at)
		}
	case StepMerge:
		if len(s.Inputs) == 0 || s.Output == "" {
			return fmt.Errorf("%s: merge step requires inputs and output", at)
		}
	case StepParallel:
		if len(s.Steps) == 0 {
			return fmt.Errorf("%s: parallel step requires steps", at)
		}
		for i, sub := range s.Steps {
			if err := validateStep(sub, fmt.Sprintf("%s.steps[%d]", at, i)); err != nil {
				return err
			}
		}
	case StepConditional:
		if s.If == nil {
			return fmt.Errorf("%s: conditional step requires if", at)
		}
		if err := validateCondition(s.If); err != nil {
			return fmt.Errorf("%s: if: %w", at, err)
		}
		if len(s.Then) == 0 {
			return fmt.Errorf("%s: conditional step requires then", at)
		}
		for i, sub := range s.Then {
			if err := validateStep(sub, fmt.Sprintf("%s.then[%d]", at, i)); err != nil {
				return err
			}
		}
		for i, sub := range s.Else {
			if err := validateStep(sub, fmt.Sprintf("%s.else[%d]", at, i)); err != nil {
				return err
			}
		}
	case StepPipeline:
		if len(s.Steps) == 0 {
			return fmt.Errorf("%s: pipeline step requires steps", at)
		}
		for i, sub := range s.Steps {
			if err := validateStep(sub, fmt.Sprintf("%s.steps[%d]", at, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCondition(c *Condition) error {
	if c.Field == "" {
		return fmt.Errorf("condition requires field")
	}
	if !knownOperator(c.Operator) {
		return fmt.Errorf("unknown operator %q", c.Operator)
	}
	return nil
}

// label returns a human-readable identifier for logging and errors.
func (s *Step) label() string {
	if s.Name != "" {
		return s.Name
	}
	return string(s.Type)
}
