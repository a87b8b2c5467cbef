// FILE: bouquet/email/errors.go
package email

import (
	"errors"
	"fmt"
)

var (
	// ErrSend is matched by every failure to compose or deliver a message.
	ErrSend = errors.New("email send failed")

	// ErrSettings reports SMTP settings that fail validation.
	ErrSettings = errors.New("invalid smtp settings")
)

// SendError records the step of composition or delivery that failed.
type SendError struct {
	Op  string
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("email %s: %v", e.Op, e.Err)
}

func (e *SendError) Unwrap() []error {
	return []error{ErrSend, e.Err}
}
