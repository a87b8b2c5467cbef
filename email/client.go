// FILE: bouquet/email/client.go
package email

import (
	"context"
	"errors"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/lixenwraith/bouquet/config"
)

// DefaultTimeout bounds dialing and each SMTP exchange.
const DefaultTimeout = 30 * time.Second

// Client sends email through a single SMTP relay. Each Send opens and
// closes its own connection, so a Client is safe for concurrent use.
type Client struct {
	settings Settings
	timeout  time.Duration
	debug    bool
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for send events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDebug enables logging of the SMTP conversation.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient validates settings and returns a client for them.
func NewClient(settings Settings, opts ...Option) (*Client, error) {
	if err := settings.normalize(); err != nil {
		return nil, err
	}

	c := &Client{
		settings: settings,
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ConfiguredClient reads SettingsFile through f and returns a client for it.
func ConfiguredClient(f *config.Finder, opts ...Option) (*Client, error) {
	settings, err := config.AsStruct[Settings](f, SettingsFile)
	if err != nil {
		return nil, err
	}
	return NewClient(settings, opts...)
}

// NewConfiguredClient is ConfiguredClient over a finder with the default search list.
func NewConfiguredClient(opts ...Option) (*Client, error) {
	f, err := config.NewBuilder().Build()
	if err != nil {
		return nil, err
	}
	return ConfiguredClient(f, opts...)
}

// Settings returns the normalized settings.
func (c *Client) Settings() Settings {
	return c.settings
}

// AuthEnabled reports whether sends authenticate.
func (c *Client) AuthEnabled() bool {
	return c.settings.AuthEnabled()
}

// Send composes e and delivers it to every To and Bcc recipient over a fresh connection.
func (c *Client) Send(ctx context.Context, e Email) error {
	if len(e.Recipients()) == 0 {
		return &SendError{Op: "compose", Err: errors.New("no recipients")}
	}

	msg, err := BuildMessage(e)
	if err != nil {
		return err
	}

	smtp, err := mail.NewClient(c.settings.Host, c.clientOptions()...)
	if err != nil {
		return &SendError{Op: "connect", Err: err}
	}

	start := time.Now()
	if err := smtp.DialAndSendWithContext(ctx, msg); err != nil {
		c.logger.Warn("Email delivery failed",
			zap.String("relay", c.settings.Address()),
			zap.String("subject", e.Subject),
			zap.Error(err))
		return &SendError{Op: "deliver", Err: err}
	}

	c.logger.Info("Email sent",
		zap.String("relay", c.settings.Address()),
		zap.String("subject", e.Subject),
		zap.Int("recipients", len(e.Recipients())),
		zap.Int("attachments", len(e.Attachments)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (c *Client) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(c.settings.Port),
		mail.WithTimeout(c.timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if c.settings.AuthEnabled() {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.settings.User),
			mail.WithPassword(c.settings.Pass),
		)
	}
	if c.debug {
		opts = append(opts, mail.WithDebugLog())
	}
	return opts
}
