package pipeline

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/weftworks/weft/pkg/paths"
)

// Operator names accepted in conditions.
const (
	OpEquals      = "equals"
	OpNotEquals   = "not_equals"
	OpContains    = "contains"
	OpNotContains = "not_contains"
	OpIn          = "in"
	OpNotIn       = "not_in"
	OpGT          = "gt"
	OpGTE         = "gte"
	OpLT          = "lt"
	OpLTE         = "lte"
	OpIsEmpty     = "is_empty"
	OpIsNotEmpty  = "is_not_empty"
)

var operators = map[string]bool{
	OpEquals: true, OpNotEquals: true,
	OpContains: true, OpNotContains: true,
	OpIn: true, OpNotIn: true,
	OpGT: true, OpGTE: true, OpLT: true, OpLTE: true,
	OpIsEmpty: true, OpIsNotEmpty: true,
}

func knownOperator(op string) bool { return operators[op] }

// Evaluate resolves the condition's field against the local context and
// applies its operator. A structurally malformed condition or unknown
// operator is an error, not a silent false; guard failures must surface
// as step failures rather than fall through.
func Evaluate(c *Condition, localCtx map[string]any) (bool, error) {
	if c == nil {
		return true, nil
	}
	if c.Field == "" {
		return false, fmt.Errorf("condition missing field")
	}
	actual := paths.Get(localCtx, c.Field)
	if paths.IsMissing(actual) {
		actual = nil
	}

	switch c.Operator {
	case OpEquals:
		return looseEqual(actual, c.Value), nil
	case OpNotEquals:
		return !looseEqual(actual, c.Value), nil
	case OpContains:
		return containsFold(actual, c.Value), nil
	case OpNotContains:
		return !containsFold(actual, c.Value), nil
	case OpIn:
		return member(actual, c.Value), nil
	case OpNotIn:
		return !member(actual, c.Value), nil
	case OpGT, OpGTE, OpLT, OpLTE:
		return compareNumeric(c.Operator, actual, c.Value), nil
	case OpIsEmpty:
		return isEmpty(actual), nil
	case OpIsNotEmpty:
		return !isEmpty(actual), nil
	default:
		return false, fmt.Errorf("unknown operator %q", c.Operator)
	}
}

// looseEqual compares case-sensitively but tolerates numeric type drift
// (JSON decoding yields float64, YAML yields int).
func looseEqual(a, b any) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

// containsFold implements case-insensitive containment over strings and
// slices. When the expected value is itself a list, ANY element matching
// satisfies the condition.
func containsFold(actual, expected any) bool {
	if list, ok := expected.([]any); ok {
		for _, e := range list {
			if containsFold(actual, e) {
				return true
			}
		}
		return false
	}

	needle := strings.ToLower(stringified(expected))
	switch a := actual.(type) {
	case string:
		return strings.Contains(strings.ToLower(a), needle)
	case []any:
		for _, item := range a {
			if strings.ToLower(stringified(item)) == needle {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// member implements case-sensitive membership of actual in the expected array.
func member(actual, expected any) bool {
	list, ok := expected.([]any)
	if !ok {
		// The array may also live in the context (actual) with a scalar
		// expected value.
		if alist, aok := actual.([]any); aok {
			for _, item := range alist {
				if looseEqual(item, expected) {
					return true
				}
			}
		}
		return false
	}
	for _, item := range list {
		if looseEqual(actual, item) {
			return true
		}
	}
	return false
}

// compareNumeric coerces both sides to float64 (including numeric strings);
// any coercion failure yields false.
func compareNumeric(op string, a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return false
	}
	switch op {
	case OpGT:
		return af > bf
	case OpGTE:
		return af >= bf
	case OpLT:
		return af < bf
	case OpLTE:
		return af <= bf
	}
	return false
}

// isEmpty treats nil, "", empty slices/maps, 0 and false as empty.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	default:
		if f, ok := toFloat(v); ok {
			return f == 0
		}
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func stringified(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
