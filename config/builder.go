// FILE: bouquet/config/builder.go
package config

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options configures a Finder and its Locator.
type Options struct {
	// ProcessConfig is the eds.config value: comma-separated templates placed
	// ahead of every other location. DefaultOptions reads it from the process.
	ProcessConfig string

	// Paths are caller supplied templates, searched after ProcessConfig and
	// before the built-in defaults.
	Paths []string

	// Resources is the embedded resource namespace. Default: Resources().
	Resources fs.FS

	// Fs is the filesystem used for path lookups and file:// URLs. Default: the OS filesystem.
	Fs afero.Fs

	// Charset names the encoding of resource bytes. Default: UTF-8.
	Charset string

	// Timeout bounds a single URL fetch. Default: DefaultFetchTimeout.
	Timeout time.Duration

	// Logger receives one info entry per attempted location. Default: no-op.
	Logger *zap.Logger
}

// DefaultOptions returns options with the eds.config value of the running process.
func DefaultOptions() Options {
	return Options{
		ProcessConfig: ProcessConfig(),
		Charset:       "UTF-8",
		Timeout:       DefaultFetchTimeout,
	}
}

// Builder provides a fluent interface for building finders
type Builder struct {
	opts Options
}

// NewBuilder creates a builder starting from DefaultOptions
func NewBuilder() *Builder {
	return &Builder{opts: DefaultOptions()}
}

// WithPaths appends caller supplied search templates
func (b *Builder) WithPaths(paths ...string) *Builder {
	b.opts.Paths = append(b.opts.Paths, paths...)
	return b
}

// WithProcessConfig replaces the eds.config value read from the process
func (b *Builder) WithProcessConfig(value string) *Builder {
	b.opts.ProcessConfig = value
	return b
}

// WithResources sets the embedded resource namespace
func (b *Builder) WithResources(fsys fs.FS) *Builder {
	b.opts.Resources = fsys
	return b
}

// WithFs sets the filesystem used for path lookups
func (b *Builder) WithFs(fsys afero.Fs) *Builder {
	b.opts.Fs = fsys
	return b
}

// WithCharset sets the charset used to decode resource bytes
func (b *Builder) WithCharset(name string) *Builder {
	b.opts.Charset = name
	return b
}

// WithTimeout sets the URL fetch deadline
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.opts.Timeout = timeout
	return b
}

// WithLogger sets the logger for location attempts
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// Build creates the Finder
func (b *Builder) Build() (*Finder, error) {
	return NewFinderWithOptions(b.opts)
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Finder {
	f, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("finder build failed: %v", err))
	}
	return f
}
