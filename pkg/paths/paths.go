// Package paths reads and writes nested values in the workflow data store
// via dotted paths ("a.b.0.c"). Integer tokens index slices, string tokens
// index maps.
package paths

import (
	"fmt"
	"strconv"
	"strings"
)

// missing is the unexported type behind the Missing sentinel.
type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing is returned by Get when any segment of the path does not resolve.
// It is distinct from a stored nil value.
var Missing = missing{}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// Validate checks that a dotted path is syntactically valid: non-empty and
// composed of non-empty dot-separated tokens. When forWrite is true, integer
// tokens are rejected: the resolver refuses to auto-create sparse slices,
// so write paths must address maps only (appends go through existing slices).
func Validate(path string, forWrite bool) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	for _, tok := range strings.Split(path, ".") {
		if tok == "" {
			return fmt.Errorf("path %q contains an empty segment", path)
		}
		if forWrite {
			if _, err := strconv.Atoi(tok); err == nil {
				return fmt.Errorf("path %q: integer segment %q not allowed in write paths", path, tok)
			}
		}
	}
	return nil
}

// Get resolves path against root and returns the value, or Missing if any
// prefix does not exist. root is typically the run's data store.
func Get(root map[string]any, path string) any {
	var cur any = root
	for _, tok := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[tok]
			if !ok {
				return Missing
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(node) {
				return Missing
			}
			cur = node[idx]
		default:
			return Missing
		}
	}
	return cur
}

// Has reports whether every prefix of path exists under root.
func Has(root map[string]any, path string) bool {
	return !IsMissing(Get(root, path))
}

// Set writes value at path, mutating root in place and auto-creating
// intermediate maps. Integer tokens are honored only when the parent is
// already a slice and the index is within bounds or equals the length
// (append); sparse slices are never created.
func Set(root map[string]any, path string, value any) error {
	tokens := strings.Split(path, ".")
	if len(tokens) == 0 || tokens[0] == "" {
		return fmt.Errorf("invalid path %q", path)
	}

	// The owner of the current node is tracked so an append, which may
	// reallocate the slice, can be written back through its container.
	var (
		cur      any = root
		ownerMap map[string]any
		ownerKey string
		ownerSl  []any
		ownerIdx int
	)
	for i, tok := range tokens {
		last := i == len(tokens)-1

		switch node := cur.(type) {
		case map[string]any:
			if last {
				node[tok] = value
				return nil
			}
			next, ok := node[tok]
			if !ok {
				created := map[string]any{}
				node[tok] = created
				next = created
			}
			ownerMap, ownerKey, ownerSl = node, tok, nil
			cur = next

		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("path %q: segment %q indexes a slice but is not an integer", path, tok)
			}
			if idx < 0 || idx > len(node) {
				return fmt.Errorf("path %q: index %d out of range for slice of length %d", path, idx, len(node))
			}
			if idx == len(node) {
				var elem any = value
				if !last {
					elem = map[string]any{}
				}
				grown := append(node, elem)
				if ownerSl != nil {
					ownerSl[ownerIdx] = grown
				} else {
					ownerMap[ownerKey] = grown
				}
				if last {
					return nil
				}
				ownerMap, ownerSl, ownerIdx = nil, grown, idx
				cur = elem
				continue
			}
			if last {
				node[idx] = value
				return nil
			}
			ownerMap, ownerSl, ownerIdx = nil, node, idx
			cur = node[idx]

		default:
			return fmt.Errorf("path %q: segment %q traverses a scalar", path, tok)
		}
	}
	return nil
}
