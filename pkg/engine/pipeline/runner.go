package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// QueryRunner executes a data-source query for query steps. Implemented by
// the engine's data-query layer.
type QueryRunner interface {
	RunQuery(ctx context.Context, credentialRef, source, collection, query string, inputs map[string]any) (map[string]any, error)
}

// TransformFunc is a registered transform function. inputs holds the values
// of the step's declared context keys, in declaration order.
type TransformFunc func(ctx context.Context, inputs map[string]any) (any, error)

// SkillInvoker recursively executes another skill by name and returns its
// mapped outputs. Implemented by the engine so nested skills go through the
// full executor path including output mapping.
type SkillInvoker interface {
	InvokeSkill(ctx context.Context, name string, localCtx map[string]any) (map[string]any, error)
}

// Env bundles the collaborators a pipeline run needs.
type Env struct {
	Queries   QueryRunner
	Functions map[string]TransformFunc
	Skills    SkillInvoker
	Logger    *slog.Logger
}

// StepError wraps a step failure with the step's label so callers can build
// the pipeline_step_failed diagnostic.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("step %q failed: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Runner evaluates a pipeline AST.
type Runner struct {
	env *Env
}

// NewRunner creates a pipeline runner.
func NewRunner(env *Env) *Runner {
	if env.Logger == nil {
		env.Logger = slog.Default()
	}
	return &Runner{env: env}
}

// Run executes the pipeline with a local context seeded from seed and
// returns the final local context. The seed map is never mutated.
func (r *Runner) Run(ctx context.Context, p *Pipeline, seed map[string]any) (map[string]any, error) {
	local := make(map[string]any, len(seed))
	for k, v := range seed {
		local[k] = v
	}
	if err := r.runSteps(ctx, p.Steps, local); err != nil {
		return nil, err
	}
	return local, nil
}

// runSteps executes steps sequentially against local. Each step observes all
// writes from prior steps.
func (r *Runner) runSteps(ctx context.Context, steps []*Step, local map[string]any) error {
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		run, err := r.guardsPass(s, local)
		if err != nil {
			return &StepError{Step: s.label(), Err: err}
		}
		if !run {
			continue
		}
		if err := r.runStep(ctx, s, local); err != nil {
			return err
		}
	}
	return nil
}

// guardsPass evaluates run_if/skip_if. Evaluation errors are step failures,
// never silent skips.
func (r *Runner) guardsPass(s *Step, local map[string]any) (bool, error) {
	if s.RunIf != nil {
		ok, err := Evaluate(s.RunIf, local)
		if err != nil {
			return false, fmt.Errorf("run_if: %w", err)
		}
		if !ok {
			return false, nil
		}
	}
	if s.SkipIf != nil {
		skip, err := Evaluate(s.SkipIf, local)
		if err != nil {
			return false, fmt.Errorf("skip_if: %w", err)
		}
		if skip {
			return false, nil
		}
	}
	return true, nil
}

func (r *Runner) runStep(ctx context.Context, s *Step, local map[string]any) error {
	switch s.Type {
	case StepQuery:
		return r.runQuery(ctx, s, local)
	case StepTransform:
		return r.runTransform(ctx, s, local)
	case StepSkill:
		return r.runSkill(ctx, s, local)
	case StepMerge:
		return r.runMerge(s, local)
	case StepParallel:
		return r.runParallel(ctx, s, local)
	case StepConditional:
		return r.runConditional(ctx, s, local)
	case StepPipeline:
		return r.runNested(ctx, s, local)
	default:
		return &StepError{Step: s.label(), Err: fmt.Errorf("unknown step type %q", s.Type)}
	}
}

func (r *Runner) runQuery(ctx context.Context, s *Step, local map[string]any) error {
	result, err := r.env.Queries.RunQuery(ctx, s.CredentialRef, s.Source, s.Collection, s.Query, local)
	if err != nil {
		return &StepError{Step: s.label(), Err: err}
	}
	local[s.Output] = result
	return nil
}

func (r *Runner) runTransform(ctx context.Context, s *Step, local map[string]any) error {
	fn, ok := r.env.Functions[s.Function]
	if !ok {
		return &StepError{Step: s.label(), Err: fmt.Errorf("transform function %q not registered", s.Function)}
	}
	inputs := make(map[string]any, len(s.Inputs))
	for _, key := range s.Inputs {
		inputs[key] = local[key]
	}
	out, err := fn(ctx, inputs)
	if err != nil {
		return &StepError{Step: s.label(), Err: err}
	}
	local[s.Output] = out
	return nil
}

func (r *Runner) runSkill(ctx context.Context, s *Step, local map[string]any) error {
	outputs, err := r.env.Skills.InvokeSkill(ctx, s.Skill, local)
	if err != nil {
		return &StepError{Step: s.label(), Err: err}
	}
	// Nested skill outputs merge into the local context at the top level.
	for k, v := range outputs {
		local[k] = v
	}
	return nil
}

// runMerge combines the listed context keys into one composite object,
// nesting each input under its own name so later inputs never clobber
// earlier ones' keys.
func (r *Runner) runMerge(s *Step, local map[string]any) error {
	composite := make(map[string]any, len(s.Inputs))
	for _, key := range s.Inputs {
		if v, ok := local[key]; ok {
			composite[key] = v
		}
	}
	local[s.Output] = composite
	return nil
}

// runParallel fans sub-steps out concurrently. Every sub-step executes
// against its own snapshot of the local context and writes into a private
// staging map; staged outputs are merged at group end in completion order.
// Sibling writes are invisible until the merge.
func (r *Runner) runParallel(ctx context.Context, s *Step, local map[string]any) error {
	type staged struct {
		label string
		out   map[string]any
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make(chan staged, len(s.Steps))

	for _, sub := range s.Steps {
		g.Go(func() error {
			snapshot := snapshotContext(local)
			if err := r.runSteps(gctx, []*Step{sub}, snapshot); err != nil {
				return err
			}
			results <- staged{label: sub.label(), out: diffContext(local, snapshot)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	close(results)

	written := make(map[string]string)
	for st := range results {
		for k, v := range st.out {
			if prev, dup := written[k]; dup {
				r.env.Logger.Warn("parallel sub-steps wrote the same key; last completion wins",
					"key", k, "first", prev, "second", st.label)
			}
			written[k] = st.label
			local[k] = v
		}
	}
	return nil
}

func (r *Runner) runConditional(ctx context.Context, s *Step, local map[string]any) error {
	ok, err := Evaluate(s.If, local)
	if err != nil {
		return &StepError{Step: s.label(), Err: fmt.Errorf("if: %w", err)}
	}
	if ok {
		return r.runSteps(ctx, s.Then, local)
	}
	return r.runSteps(ctx, s.Else, local)
}

// runNested executes a sub-pipeline with its own local context seeded from
// the selected subset of the parent context (all keys when none listed).
// The child's final context lands under the step's output key, or merges at
// the top level when no output is named.
func (r *Runner) runNested(ctx context.Context, s *Step, local map[string]any) error {
	child := make(map[string]any)
	if len(s.Context) == 0 {
		for k, v := range local {
			child[k] = v
		}
	} else {
		for _, key := range s.Context {
			if v, ok := local[key]; ok {
				child[key] = v
			}
		}
	}
	if err := r.runSteps(ctx, s.Steps, child); err != nil {
		return err
	}
	if s.Output != "" {
		local[s.Output] = child
		return nil
	}
	for k, v := range child {
		local[k] = v
	}
	return nil
}

// snapshotContext is a shallow copy: sub-steps replace keys rather than
// mutating shared nested structures.
func snapshotContext(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// diffContext returns keys of after that are new or replaced relative to base.
func diffContext(base, after map[string]any) map[string]any {
	out := make(map[string]any)
	for k, v := range after {
		if bv, ok := base[k]; !ok || !sameRef(bv, v) {
			out[k] = v
		}
	}
	return out
}

// sameRef reports whether two context values are the identical stored value.
// Pointer-free comparison is intentionally shallow: a sub-step that rebinds a
// key counts as a write even if the value is deep-equal.
func sameRef(a, b any) bool {
	switch a.(type) {
	case map[string]any, []any:
		// Compare by identity through interface data pointer semantics.
		return fmt.Sprintf("%p", a) == fmt.Sprintf("%p", b)
	default:
		return a == b
	}
}
