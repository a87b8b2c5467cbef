// FILE: bouquet/config/locator.go
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Locator loads a single location as text. The lookup order is:
//  1. URL (http, https, file, ftp)
//  2. "classpath:" prefixed location, from the embedded resource namespace
//  3. filesystem path
//  4. bare location, from the embedded resource namespace
//
// A Locator is immutable and safe for concurrent use.
type Locator struct {
	fs        afero.Fs
	resources fs.FS
	client    *http.Client
	timeout   time.Duration
	charset   encoding.Encoding // nil means UTF-8 passthrough
	logger    *zap.Logger
}

// NewLocator creates a locator from opts. Zero fields take their defaults.
func NewLocator(opts Options) (*Locator, error) {
	charset, err := lookupCharset(opts.Charset)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	} else if timeout < MinFetchTimeout {
		timeout = MinFetchTimeout
	}

	l := &Locator{
		fs:        opts.Fs,
		resources: opts.Resources,
		timeout:   timeout,
		charset:   charset,
		logger:    opts.Logger,
	}
	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	if l.resources == nil {
		l.resources = Resources()
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	l.client = newHTTPClient(timeout)

	return l, nil
}

// GetAsText returns the content of location decoded as text.
// The boolean is false when the location could not be read. IO errors are
// logged and reported as not found, they are never returned.
func (l *Locator) GetAsText(ctx context.Context, location string) (string, bool) {
	data, ok := l.get(ctx, location)
	if !ok {
		return "", false
	}

	text, err := l.decode(data)
	if err != nil {
		l.logger.Warn("Failed to decode resource",
			zap.String("location", location), zap.Error(err))
		return "", false
	}
	return text, true
}

// FindAsText tries each template in order, substituting arg for "%s", and
// returns the first readable content together with the location it came from.
func (l *Locator) FindAsText(ctx context.Context, arg string, templates []string) (string, string, bool) {
	for _, template := range templates {
		location := substitute(template, arg)
		content, ok := l.GetAsText(ctx, location)

		result := "FAILED"
		if ok {
			result = "PASS"
		}
		l.logger.Info("Checking location for configuration file",
			zap.String("location", location), zap.String("result", result))

		if ok {
			return content, location, true
		}
	}
	return "", "", false
}

func (l *Locator) get(ctx context.Context, location string) ([]byte, bool) {
	if location == "" {
		return nil, false
	}

	if u, ok := parseLocationURL(location); ok {
		data, err := l.fetchURL(ctx, u)
		if err != nil {
			l.logger.Warn("Failed to fetch URL resource",
				zap.String("location", location), zap.Error(err))
			return nil, false
		}
		return data, true
	}

	if strings.HasPrefix(location, ClasspathPrefix) {
		return l.readResource(strings.TrimPrefix(location, ClasspathPrefix))
	}

	if exists, err := l.fileExists(location); exists {
		data, err := afero.ReadFile(l.fs, location)
		if err != nil {
			l.logger.Warn("Failed to read file resource",
				zap.String("location", location), zap.Error(err))
			return nil, false
		}
		return data, true
	} else if err != nil {
		l.logger.Warn("Failed to check file resource",
			zap.String("location", location), zap.Error(err))
	}

	return l.readResource(location)
}

// readResource loads name from the embedded resource namespace.
func (l *Locator) readResource(name string) ([]byte, bool) {
	name, ok := resourceName(name)
	if !ok {
		return nil, false
	}

	data, err := fs.ReadFile(l.resources, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to read embedded resource",
				zap.String("resource", name), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// fileExists reports whether path names a regular file on the locator's filesystem.
func (l *Locator) fileExists(path string) (bool, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (l *Locator) decode(data []byte) (string, error) {
	if l.charset == nil {
		return string(data), nil
	}
	out, err := l.charset.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// substitute replaces the "%s" placeholder of template with arg.
// Templates without a placeholder are returned verbatim.
func substitute(template, arg string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return strings.ReplaceAll(template, "%s", arg)
}

// lookupCharset resolves an IANA charset name. UTF-8 and the empty name need no decoder.
func lookupCharset(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownCharset, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %s is not supported", ErrUnknownCharset, name)
	}
	return enc, nil
}
