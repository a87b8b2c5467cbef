// FILE: bouquet/config/fetch.go
package config

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/jlaffaye/ftp"
	"github.com/spf13/afero"
)

// urlSchemes lists the schemes treated as URLs. Anything else, "classpath:" and
// Windows drive letters included, falls through to the other lookup steps.
var urlSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"file":  true,
	"ftp":   true,
}

// parseLocationURL returns the parsed URL when location uses a recognized scheme.
func parseLocationURL(location string) (*url.URL, bool) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if !urlSchemes[strings.ToLower(u.Scheme)] {
		return nil, false
	}
	return u, true
}

// newHTTPClient returns a non-shared client so finders never mutate global transport state.
func newHTTPClient(timeout time.Duration) *http.Client {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	return client
}

// fetchURL loads the body behind u.
func (l *Locator) fetchURL(ctx context.Context, u *url.URL) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l.fetchHTTP(ctx, u)
	case "file":
		return l.fetchFile(u)
	case "ftp":
		return l.fetchFTP(ctx, u)
	default:
		return nil, fmt.Errorf("unsupported URL scheme '%s'", u.Scheme)
	}
}

func (l *Locator) fetchHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for '%s': %w", u.Redacted(), err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch '%s': %w", u.Redacted(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch '%s': unexpected status %s", u.Redacted(), resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of '%s': %w", u.Redacted(), err)
	}
	return data, nil
}

func (l *Locator) fetchFile(u *url.URL) ([]byte, error) {
	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	data, err := afero.ReadFile(l.fs, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", u.String(), err)
	}
	return data, nil
}

func (l *Locator) fetchFTP(ctx context.Context, u *url.URL) ([]byte, error) {
	addr := u.Host
	if u.Port() == "" {
		addr = net.JoinHostPort(u.Hostname(), "21")
	}

	conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(l.timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to '%s': %w", addr, err)
	}
	defer conn.Quit()

	user, pass := "anonymous", "anonymous"
	if u.User != nil {
		user = u.User.Username()
		if p, ok := u.User.Password(); ok {
			pass = p
		}
	}
	if err := conn.Login(user, pass); err != nil {
		return nil, fmt.Errorf("failed to log in to '%s': %w", addr, err)
	}

	resp, err := conn.Retr(u.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve '%s': %w", u.Redacted(), err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", u.Redacted(), err)
	}
	return data, nil
}
