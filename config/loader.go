// FILE: bouquet/config/loader.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Scan locates filename and decodes it into target, choosing the format from
// the file extension (.yaml/.yml, .json, .toml, .properties) and falling back
// to content detection. Dotted properties keys are nested ("server.port" binds
// to Server.Port).
func (f *Finder) Scan(filename string, target any) error {
	content, err := f.Raw(filename)
	if err != nil {
		return err
	}

	format := detectFileFormat(filename)
	if format == "" {
		format = detectFormatFromContent([]byte(content))
	}

	if err := decodeFormat(format, content, target); err != nil {
		return withSource(err, filename)
	}
	return nil
}

// decodeFormat parses content in the given format and binds it to target.
func decodeFormat(format, content string, target any) error {
	switch format {
	case "json":
		var generic any
		decoder := json.NewDecoder(strings.NewReader(content))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&generic); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &ParseError{Format: "JSON", Err: err}
		}
		if err := bind(generic, target, "json"); err != nil {
			return &ParseError{Format: "JSON", Err: err}
		}
		return nil

	case "toml":
		generic := make(map[string]any)
		if err := toml.Unmarshal([]byte(content), &generic); err != nil {
			return &ParseError{Format: "TOML", Err: err}
		}
		if err := bind(generic, target, "toml"); err != nil {
			return &ParseError{Format: "TOML", Err: err}
		}
		return nil

	case formatProperties:
		p, err := ParseProperties(content)
		if err != nil {
			return err
		}
		if err := bind(nestDotted(p.Map()), target, formatProperties); err != nil {
			return &ParseError{Format: formatProperties, Err: err}
		}
		return nil

	default:
		dec := yaml.NewDecoder(strings.NewReader(content))
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &ParseError{Format: formatYAML, Err: err}
		}
		return bindNode(&doc, target)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml", ".tml":
		return "toml"
	case ".properties":
		return formatProperties
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
// YAML accepts nearly any text, so it is the fallback rather than a probe.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		if _, isObject := jsonTest.(map[string]any); isObject {
			return "json"
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 {
		var tomlTest map[string]any
		if err := toml.Unmarshal(data, &tomlTest); err == nil && len(tomlTest) > 0 {
			return "toml"
		}
	}

	return "yaml"
}
