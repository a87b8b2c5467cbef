// FILE: bouquet/config/yaml.go
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const formatYAML = "YAML"

// ParseYAML binds the first document of text to a value of type T.
// An empty document yields the zero value of T and no error.
func ParseYAML[T any](text string) (T, error) {
	var result T

	dec := yaml.NewDecoder(strings.NewReader(text))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		return result, &ParseError{Format: formatYAML, Err: err}
	}

	if err := bindNode(&doc, &result); err != nil {
		return result, err
	}
	return result, nil
}

// ParseYAMLAll binds every "---" delimited document of text, in order.
// Empty documents yield zero values.
func ParseYAMLAll[T any](text string) ([]T, error) {
	var results []T

	dec := yaml.NewDecoder(strings.NewReader(text))
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return results, nil
			}
			return nil, &ParseError{Format: formatYAML, Err: err}
		}

		var result T
		if err := bindNode(&doc, &result); err != nil {
			return nil, fmt.Errorf("document %d: %w", len(results)+1, err)
		}
		results = append(results, result)
	}
}

// ParseYAMLMap returns the top-level mapping of the first document of text
// with every key and value coerced to its text form. Key order follows the document.
// Integers and booleans are canonicalized (0x10 -> "16", yes stays a string);
// floats keep their source spelling, so "version: 1.10" reads back as "1.10".
func ParseYAMLMap(text string) (*OrderedMap, error) {
	m := NewOrderedMap()

	dec := yaml.NewDecoder(strings.NewReader(text))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, &ParseError{Format: formatYAML, Err: err}
	}

	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return m, nil
		}
		root = resolveAlias(root.Content[0])
	}
	if isNull(root) {
		return m, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Format: formatYAML,
			Err: fmt.Errorf("line %d: top-level node is not a mapping", root.Line)}
	}

	if err := collectMapping(m, root); err != nil {
		return nil, &ParseError{Format: formatYAML, Err: err}
	}
	return m, nil
}

// bindNode decodes a document node generically, then binds it to target.
func bindNode(doc *yaml.Node, target any) error {
	var generic any
	if err := doc.Decode(&generic); err != nil {
		return &ParseError{Format: formatYAML, Err: err}
	}
	if generic == nil {
		return nil
	}
	if err := bind(generic, target, "yaml"); err != nil {
		return &ParseError{Format: formatYAML, Err: err}
	}
	return nil
}

// collectMapping copies the entries of a mapping node into m.
// Merge keys ("<<") contribute entries that are not set explicitly.
func collectMapping(m *OrderedMap, node *yaml.Node) error {
	var merges []*yaml.Node

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveAlias(node.Content[i])
		valueNode := resolveAlias(node.Content[i+1])

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			merges = append(merges, valueNode)
			continue
		}

		key, err := nodeText(keyNode)
		if err != nil {
			return err
		}
		value, err := nodeText(valueNode)
		if err != nil {
			return err
		}
		m.Set(key, value)
	}

	for _, merge := range merges {
		sources := []*yaml.Node{merge}
		if merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}
		for _, source := range sources {
			source = resolveAlias(source)
			if source.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: merge value is not a mapping", source.Line)
			}
			merged := NewOrderedMap()
			if err := collectMapping(merged, source); err != nil {
				return err
			}
			for _, key := range merged.Keys() {
				if !m.Has(key) {
					value, _ := merged.Get(key)
					m.Set(key, value)
				}
			}
		}
	}
	return nil
}

// nodeText renders a node as text. Scalars use their canonical form
// (1 -> "1", 0x10 -> "16", true -> "true", null -> ""), except floats, which keep
// their source text so that "1.10" stays "1.10". Collections are rendered back to YAML.
func nodeText(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		bare := *node
		bare.Anchor = ""
		out, err := yaml.Marshal(&bare)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", node.Line, err)
		}
		return strings.TrimSpace(string(out)), nil
	}

	if isNull(node) {
		return "", nil
	}
	if node.ShortTag() == "!!float" {
		return node.Value, nil
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return "", fmt.Errorf("line %d: %w", node.Line, err)
	}
	if s, err := cast.ToStringE(value); err == nil {
		return s, nil
	}
	return node.Value, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
