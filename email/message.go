// FILE: bouquet/email/message.go
package email

import (
	"bytes"

	"github.com/wneessen/go-mail"
)

// Attachment is a named binary part of a message.
type Attachment struct {
	Filename string
	MimeType string
	Data     []byte
}

// Email is an HTML message with optional attachments.
type Email struct {
	From        string
	To          []string
	Bcc         []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Recipients returns To followed by Bcc.
func (e Email) Recipients() []string {
	rcpts := make([]string, 0, len(e.To)+len(e.Bcc))
	rcpts = append(rcpts, e.To...)
	return append(rcpts, e.Bcc...)
}

// BuildMessage composes e as a MIME message. The HTML body comes first,
// followed by one part per attachment. To and Bcc headers are omitted when
// their lists are empty.
//
// The multipart/mixed container is only produced when there is at least one
// attachment; a message without attachments is a single text/html body.
func BuildMessage(e Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.From(e.From); err != nil {
		return nil, &SendError{Op: "compose from", Err: err}
	}
	if len(e.To) > 0 {
		if err := msg.To(e.To...); err != nil {
			return nil, &SendError{Op: "compose to", Err: err}
		}
	}
	if len(e.Bcc) > 0 {
		if err := msg.Bcc(e.Bcc...); err != nil {
			return nil, &SendError{Op: "compose bcc", Err: err}
		}
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextHTML, e.HTML)

	for _, a := range e.Attachments {
		opts := []mail.FileOption{}
		if a.MimeType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.MimeType)))
		}
		msg.AttachReadSeeker(a.Filename, bytes.NewReader(a.Data), opts...)
	}

	return msg, nil
}
