package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/weftworks/weft/pkg/llm"
	"github.com/weftworks/weft/pkg/paths"
	"github.com/weftworks/weft/pkg/skills"
)

const plannerSystemPrompt = `You select the next skill for a running workflow.
You are given the operator's instruction, the workflow history, the current
data, and the skills whose inputs are satisfied. Choose exactly one skill
name, or END when the instruction is fulfilled or no skill applies.`

// plan decides the next skill, or SkillEnd. The candidate set is computed
// locally; the model only ever picks from it, enforced by a closed enum
// schema.
func (o *Orchestrator) plan(ctx context.Context, rc *RunContext, st *State, snap *skills.Snapshot) (string, *WorkflowError) {
	eligible := eligibleSkills(st, snap.List(rc.WorkspaceID))
	if len(eligible) == 0 {
		return SkillEnd, nil
	}

	choices := make([]string, 0, len(eligible)+1)
	for _, s := range eligible {
		choices = append(choices, s.Name)
	}
	choices = append(choices, SkillEnd)

	out, err := o.llm.GenerateStructured(ctx, &llm.Request{
		ThreadID:     rc.ThreadID,
		SystemPrompt: plannerSystemPrompt,
		Prompt:       plannerPrompt(rc, st, eligible),
		Model:        o.modelFor(rc),
		Schema:       llm.EnumSchema("next_skill", choices),
	})
	if err != nil {
		return "", &WorkflowError{Kind: KindPlannerNoChoice, Message: err.Error(), cause: err}
	}

	choice, _ := out["next_skill"].(string)
	if choice != SkillEnd {
		if _, ok := snap.Get(choice, rc.WorkspaceID); !ok {
			return "", newError(KindPlannerNoChoice, "", "planner chose unknown skill %q", choice)
		}
		eligibleSet := false
		for _, s := range eligible {
			if s.Name == choice {
				eligibleSet = true
				break
			}
		}
		if !eligibleSet {
			return "", newError(KindPlannerNoChoice, "", "planner chose ineligible skill %q", choice)
		}
	}
	return choice, nil
}

// eligibleSkills filters the visible skills down to the planner's candidate
// set: every requires path resolvable, successful runs removed, failed runs
// re-admitted only when their resolved inputs have since changed.
func eligibleSkills(st *State, visible []*skills.Skill) []*skills.Skill {
	var eligible []*skills.Skill
	for _, s := range visible {
		satisfied := true
		for _, path := range s.Requires {
			if !paths.Has(st.DataStore, path) {
				satisfied = false
				break
			}
		}
		if !satisfied {
			continue
		}
		if run, executed := st.SkillRuns[s.Name]; executed {
			if run.Status == SkillRunSucceeded {
				continue
			}
			resolved, _ := resolveRequires(s, st.DataStore)
			if HashInputs(resolved) == run.InputsHash {
				continue
			}
		}
		eligible = append(eligible, s)
	}
	return eligible
}

func plannerPrompt(rc *RunContext, st *State, eligible []*skills.Skill) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Instruction:\n%s\n\n", rc.SOP)

	b.WriteString("History:\n")
	if len(st.History) == 0 {
		b.WriteString("(none)\n")
	}
	for _, entry := range st.History {
		fmt.Fprintf(&b, "- %s\n", entry)
	}

	b.WriteString("\nCurrent data keys:\n")
	keys := visibleKeys(st.DataStore)
	if len(keys) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s\n", k)
	}

	b.WriteString("\nAvailable skills:\n")
	for _, s := range eligible {
		fmt.Fprintf(&b, "- %s: %s (produces %s)\n", s.Name, s.Description, strings.Join(s.Produces, ", "))
	}
	b.WriteString("\nReply with the next skill name, or END.")
	return b.String()
}

// visibleKeys lists top-level data store keys outside the reserved
// namespace, with scalar values inlined for planner context.
func visibleKeys(store map[string]any) []string {
	keys := make([]string, 0, len(store))
	for k, v := range store {
		if reservedKey(k) {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			keys = append(keys, k)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				keys = append(keys, k)
				continue
			}
			keys = append(keys, fmt.Sprintf("%s = %s", k, raw))
		}
	}
	sort.Strings(keys)
	return keys
}
