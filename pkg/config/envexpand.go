package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables into raw YAML using Go
// template syntax: {{.DB_HOST}} becomes the value of DB_HOST. The {{.VAR}}
// form is deliberate; plain $VAR expansion would mangle literal dollar
// signs that show up in skill manifests and credentials, e.g. regex
// anchors ("^secret.*$"), passwords ("p@ss$word"), or shell fragments
// ("${ARRAY[0]}"), all of which must survive loading untouched.
//
// An unset variable renders as the empty string; section validation is
// responsible for rejecting required fields left empty. Content that fails
// to parse or execute as a template is returned unchanged, so files with
// no template syntax pass straight through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		// Split on the first = only; values may contain = themselves.
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
