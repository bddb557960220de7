// Package templates renders text templates containing {dotted.path}
// placeholders against the workflow data store. Templates are parsed once
// and rendered many times; missing paths are reported per render.
package templates

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/weftworks/weft/pkg/paths"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_\-]+(?:\.[a-zA-Z0-9_\-]+)*)\}`)

// Template is a precompiled template. Literal segments and placeholder paths
// alternate; rendering walks them in order.
type Template struct {
	raw      string
	literals []string // len(literals) == len(placeholders)+1
	pholders []string // dotted paths
}

// Compile parses raw into a Template. Placeholders use {a.b.c} syntax;
// anything that does not match the placeholder grammar is left literal.
func Compile(raw string) *Template {
	t := &Template{raw: raw}
	last := 0
	for _, m := range placeholderRe.FindAllStringSubmatchIndex(raw, -1) {
		t.literals = append(t.literals, raw[last:m[0]])
		t.pholders = append(t.pholders, raw[m[2]:m[3]])
		last = m[1]
	}
	t.literals = append(t.literals, raw[last:])
	return t
}

// Paths returns the distinct placeholder paths referenced by the template.
func (t *Template) Paths() []string {
	seen := make(map[string]bool, len(t.pholders))
	var out []string
	for _, p := range t.pholders {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// Render substitutes each placeholder with the value at its path in root.
// Scalar values render as plain text; maps and slices are JSON-encoded.
// A placeholder whose path is missing fails the whole render.
func (t *Template) Render(root map[string]any) (string, error) {
	if len(t.pholders) == 0 {
		return t.raw, nil
	}
	var b strings.Builder
	for i, ph := range t.pholders {
		b.WriteString(t.literals[i])
		v := paths.Get(root, ph)
		if paths.IsMissing(v) {
			return "", fmt.Errorf("template references missing path %q", ph)
		}
		b.WriteString(stringify(v))
	}
	b.WriteString(t.literals[len(t.literals)-1])
	return b.String(), nil
}

// stringify converts a data-store value to its textual template form.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		enc, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(enc)
	}
}
