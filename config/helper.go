// FILE: bouquet/config/helper.go
package config

import "strings"

// setNestedValue sets a value in a nested map using a dot-notation path.
// It creates intermediate maps if they don't exist.
// If a segment exists but is not a map, it will be overwritten by a new map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		if next, isMap := current[segment].(map[string]any); isMap {
			current = next
			continue
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	last := segments[len(segments)-1]
	if _, isMap := current[last].(map[string]any); isMap {
		// "a.b" already populated a map at "a"; keep the deeper keys
		return
	}
	current[last] = value
}

// nestDotted turns flat dotted keys into nested maps, e.g. "server.port" -> {server: {port: ...}}.
func nestDotted(flat map[string]string) map[string]any {
	nested := make(map[string]any, len(flat))
	for key, value := range flat {
		setNestedValue(nested, key, value)
	}
	return nested
}
