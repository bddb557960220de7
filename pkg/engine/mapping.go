package engine

import (
	"github.com/weftworks/weft/pkg/skills"
)

// MapOutputs projects an executor's raw output onto the skill's declared
// contract.
//
// With an empty produces set every non-reserved key is copied through
// verbatim. A single-element produces set on a non-pipeline action wraps the
// whole output under that key; every other shape key-extracts: each produces
// key must be present in the raw output, and each optional_produces key is
// copied when present and non-null, never overwriting a produces key.
func MapOutputs(s *skills.Skill, raw any) (map[string]any, error) {
	outputs, ok := raw.(map[string]any)
	if !ok {
		return nil, newError(KindNonDictResult, s.Name, "executor returned %T, expected an object", raw)
	}

	if wrapsOutput(s) {
		return map[string]any{s.Produces[0]: outputs}, nil
	}

	mapped := make(map[string]any)
	if len(s.Produces) == 0 {
		// Skills may not write reserved keys, so the passthrough drops any
		// underscore-prefixed key rather than let an executor smuggle one in.
		for k, v := range outputs {
			if reservedKey(k) {
				continue
			}
			mapped[k] = v
		}
		return mapped, nil
	}

	for _, k := range s.Produces {
		v, present := outputs[k]
		if !present {
			return nil, newError(KindMissingRequiredOutput, s.Name, "output %q missing from executor result", k)
		}
		mapped[k] = v
	}
	for _, k := range s.OptionalProduces {
		if _, taken := mapped[k]; taken {
			continue
		}
		if v, present := outputs[k]; present && v != nil {
			mapped[k] = v
		}
	}
	return mapped, nil
}

// wrapsOutput reports whether the whole output dict is stored under the
// single produces key. Pipeline actions key-extract even with one produces
// entry: their final local context is much wider than the contract.
func wrapsOutput(s *skills.Skill) bool {
	if s.Executor != skills.ExecutorAction || len(s.Produces) != 1 {
		return false
	}
	return s.Action == nil || s.Action.Type != skills.ActionDataPipeline
}
