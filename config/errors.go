// FILE: bouquet/config/errors.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by every error reporting that a configuration
	// file could not be resolved from any search location.
	ErrNotFound = errors.New("configuration not found")

	// ErrParse is matched by every YAML, JSON, TOML or properties decoding failure.
	ErrParse = errors.New("configuration parse error")

	// ErrUnknownCharset is returned by the builder for an unresolvable charset name.
	ErrUnknownCharset = errors.New("unknown charset")
)

// NotFoundError reports a filename that no search location resolved.
type NotFoundError struct {
	Filename  string
	Locations []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find the %s file in any location, locations checked: [%s]",
		e.Filename, strings.Join(e.Locations, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ParseError wraps a decoder diagnostic.
// Source names what was being decoded, usually the requested filename.
type ParseError struct {
	Format string
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("failed to parse %s '%s': %v", e.Format, e.Source, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// withSource fills in the source name of a ParseError produced below the finder.
func withSource(err error, source string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Source == "" {
		return &ParseError{Format: pe.Format, Source: source, Err: pe.Err}
	}
	return err
}
