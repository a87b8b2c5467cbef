// FILE: bouquet/email/settings.go
package email

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"

	"github.com/lixenwraith/bouquet/text"
)

// SettingsFile is the configuration file the SMTP settings are read from.
const SettingsFile = "email-client.yaml"

// DefaultPort is used when smtp-port is absent.
const DefaultPort = 25

// Settings holds the SMTP relay parameters.
type Settings struct {
	Host string `yaml:"smtp-host" mod:"trim" validate:"required,hostname_rfc1123|ip"`
	Port int    `yaml:"smtp-port" mod:"default=25" validate:"min=1,max=65535"`
	User string `yaml:"smtp-user" mod:"trim"`
	Pass string `yaml:"smtp-pass"`
}

var (
	conform  = modifiers.New()
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// normalize trims and defaults fields, then validates the result.
func (s *Settings) normalize() error {
	if err := conform.Struct(context.Background(), s); err != nil {
		return fmt.Errorf("%w: %w", ErrSettings, err)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrSettings, err)
	}
	return nil
}

// AuthEnabled reports whether a user name is configured.
func (s Settings) AuthEnabled() bool {
	return !text.IsEmpty(s.User)
}

// Address returns host:port.
func (s Settings) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}
