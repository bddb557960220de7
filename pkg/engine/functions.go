package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/weftworks/weft/pkg/engine/pipeline"
)

// ActionFunc is a registered native function invokable by python_function
// actions. It receives the skill's resolved inputs and must return an object.
type ActionFunc func(ctx context.Context, inputs map[string]any, rc *RunContext) (map[string]any, error)

// FunctionTable is the process-wide registry of trusted native functions.
// Actions look functions up as "module.function", or by bare function name
// when the action omits module. Pipeline transform steps have their own
// namespace with the narrower transform signature.
//
// Registration happens at engine init from trusted code; there is no dynamic
// evaluation path.
type FunctionTable struct {
	mu         sync.RWMutex
	actions    map[string]ActionFunc
	transforms map[string]pipeline.TransformFunc
}

// NewFunctionTable creates an empty table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{
		actions:    make(map[string]ActionFunc),
		transforms: make(map[string]pipeline.TransformFunc),
	}
}

// Register adds an action function under name ("module.function" or bare).
// Re-registering a name replaces it.
func (t *FunctionTable) Register(name string, fn ActionFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.actions[name] = fn
}

// RegisterTransform adds a pipeline transform function.
func (t *FunctionTable) RegisterTransform(name string, fn pipeline.TransformFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.transforms[name] = fn
}

// Action resolves an action function for the given module and function name.
func (t *FunctionTable) Action(module, function string) (ActionFunc, error) {
	key := function
	if module != "" {
		key = module + "." + function
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.actions[key]
	if !ok {
		return nil, fmt.Errorf("function %q not registered", key)
	}
	return fn, nil
}

// Transforms returns the transform namespace for a pipeline environment.
func (t *FunctionTable) Transforms() map[string]pipeline.TransformFunc {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]pipeline.TransformFunc, len(t.transforms))
	for name, fn := range t.transforms {
		out[name] = fn
	}
	return out
}
