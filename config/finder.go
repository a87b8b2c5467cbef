// FILE: bouquet/config/finder.go
package config

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/afero"
)

// Finder locates configuration files by name over an ordered search list.
// A Finder holds no open handles and caches nothing; it is immutable after
// construction and safe for concurrent use.
type Finder struct {
	paths   []string
	locator *Locator
}

// NewFinder creates a finder with the given extra search templates, using
// the eds.config value of the running process and the built-in defaults.
func NewFinder(paths ...string) *Finder {
	return NewBuilder().WithPaths(paths...).MustBuild()
}

// NewFinderWithOptions creates a finder from opts.
func NewFinderWithOptions(opts Options) (*Finder, error) {
	locator, err := NewLocator(opts)
	if err != nil {
		return nil, err
	}
	return &Finder{
		paths:   composePaths(opts.ProcessConfig, opts.Paths),
		locator: locator,
	}, nil
}

// Paths returns a copy of the effective search list.
func (f *Finder) Paths() []string {
	return slices.Clone(f.paths)
}

// Locator returns the locator used by the finder.
func (f *Finder) Locator() *Locator {
	return f.locator
}

// Raw returns the content of the first location holding filename.
// The error is a *NotFoundError when no location matched.
func (f *Finder) Raw(filename string) (string, error) {
	return f.RawContext(context.Background(), filename)
}

// RawContext is Raw with a caller supplied context for URL fetches.
func (f *Finder) RawContext(ctx context.Context, filename string) (string, error) {
	content, _, err := f.find(ctx, filename)
	return content, err
}

func (f *Finder) find(ctx context.Context, filename string) (string, string, error) {
	content, location, ok := f.locator.FindAsText(ctx, filename, f.paths)
	if !ok {
		return "", "", &NotFoundError{Filename: filename, Locations: f.Paths()}
	}
	return content, location, nil
}

// AsMap decodes filename as a YAML mapping with every value coerced to text.
func (f *Finder) AsMap(filename string) (*OrderedMap, error) {
	content, err := f.Raw(filename)
	if err != nil {
		return nil, err
	}
	m, err := ParseYAMLMap(content)
	if err != nil {
		return nil, withSource(err, filename)
	}
	return m, nil
}

// AsProperties decodes filename in the classical properties format.
func (f *Finder) AsProperties(filename string) (*properties.Properties, error) {
	content, err := f.Raw(filename)
	if err != nil {
		return nil, err
	}
	p, err := ParseProperties(content)
	if err != nil {
		return nil, withSource(err, filename)
	}
	return p, nil
}

// Locate returns the absolute filesystem path of the first template that
// exists for filename. URL and classpath templates are skipped.
// It is diagnostic only: reads must go through Raw so every location kind is honored.
func (f *Finder) Locate(filename string) (string, bool) {
	for _, template := range f.paths {
		location := substitute(template, filename)
		if location == "" || strings.HasPrefix(location, ClasspathPrefix) {
			continue
		}
		if _, isURL := parseLocationURL(location); isURL {
			continue
		}
		if ok, _ := afero.Exists(f.locator.fs, location); !ok {
			continue
		}
		if abs, err := filepath.Abs(location); err == nil {
			return abs, true
		}
		return location, true
	}
	return "", false
}
