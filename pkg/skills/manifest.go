package skills

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestFilename is the manifest each filesystem skill directory carries.
// YAML front-matter between "---" markers holds the contract; the prose that
// follows is documentation and is not part of the contract.
const ManifestFilename = "SKILL.md"

var frontMatterDelim = []byte("---")

// ParseManifest decodes a skill manifest: YAML front-matter followed by
// optional prose. A manifest that is pure YAML (no markers) is also accepted,
// which is the form database-sourced skills use.
func ParseManifest(raw []byte) (*Skill, error) {
	frontMatter, err := extractFrontMatter(raw)
	if err != nil {
		return nil, err
	}

	var skill Skill
	dec := yaml.NewDecoder(bytes.NewReader(frontMatter))
	dec.KnownFields(true)
	if err := dec.Decode(&skill); err != nil {
		return nil, fmt.Errorf("invalid manifest YAML: %w", err)
	}
	if err := skill.Validate(); err != nil {
		return nil, err
	}
	return &skill, nil
}

// extractFrontMatter returns the YAML between the leading "---" markers, or
// the whole document when no markers are present.
func extractFrontMatter(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return raw, nil
	}
	rest := trimmed[len(frontMatterDelim):]
	// The opening marker must be alone on its line.
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return raw, nil
	}
	rest = rest[nl+1:]

	for off := 0; off < len(rest); {
		lineEnd := bytes.IndexByte(rest[off:], '\n')
		var line []byte
		if lineEnd < 0 {
			line = rest[off:]
			lineEnd = len(rest) - off
		} else {
			line = rest[off : off+lineEnd]
		}
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelim) {
			return rest[:off], nil
		}
		off += lineEnd + 1
	}
	return nil, fmt.Errorf("unterminated front-matter: missing closing ---")
}
