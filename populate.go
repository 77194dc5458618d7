package kanoclient

import (
	"encoding/json"
	"strings"
)

// resolvePopulate evaluates a populate spec against the response data. Each
// spec value is a dot-separated path ("user.id"); paths that do not resolve
// are simply left out of the result rather than failing the call.
func resolvePopulate(data json.RawMessage, spec map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(spec))
	if len(spec) == 0 {
		return out, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	for field, path := range spec {
		if value, ok := lookupPath(doc, path); ok {
			out[field] = value
		}
	}
	return out, nil
}

// lookupPath walks doc along the dot-separated path, descending through JSON
// objects only.
func lookupPath(doc any, path string) (any, bool) {
	current := doc
	for _, part := range strings.Split(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = object[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
