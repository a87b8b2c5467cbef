// FILE: bouquet/config/properties.go
package config

import (
	"strings"

	"github.com/magiconair/properties"
)

const formatProperties = "properties"

// ParseProperties decodes text in the classical properties format:
// "key=value", "key:value" or "key value" lines, "#" and "!" comments,
// trailing backslash continuation and \uXXXX escapes.
// ${key} references are left as written.
func ParseProperties(text string) (*properties.Properties, error) {
	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := loader.LoadBytes([]byte(text))
	if err != nil {
		return nil, &ParseError{Format: formatProperties, Err: err}
	}
	return p, nil
}

// FormatProperties renders p in the properties format, one "key = value" line
// per key in insertion order, preceded by the key's comments.
// Characters the loader would otherwise consume are escaped: separators,
// comment markers, backslashes, line breaks, every space in a key and leading
// spaces in a value. ParseProperties reads the output back to the same keys and values.
func FormatProperties(p *properties.Properties) (string, error) {
	values := p.Map()

	var sb strings.Builder
	for _, key := range p.Keys() {
		for _, comment := range p.GetComments(key) {
			sb.WriteString("# ")
			sb.WriteString(comment)
			sb.WriteByte('\n')
		}
		sb.WriteString(escapeProperty(key, true))
		sb.WriteString(" = ")
		sb.WriteString(escapeProperty(values[key], false))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// escapeProperty escapes s for use as a key or a value.
func escapeProperty(s string, isKey bool) string {
	var sb strings.Builder
	leading := true
	for _, r := range s {
		switch r {
		case ' ':
			if isKey || leading {
				sb.WriteString(`\ `)
			} else {
				sb.WriteByte(' ')
			}
			continue
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\f':
			sb.WriteString(`\f`)
		case '\\', '=', ':', '#', '!':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
		leading = false
	}
	return sb.String()
}
