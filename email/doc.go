// FILE: bouquet/email/doc.go

// Package email composes HTML messages with attachments and delivers them
// through an SMTP relay.
//
// Relay settings are read from email-client.yaml through a config.Finder:
//
//	smtp-host: mail.example.com
//	smtp-port: 587
//	smtp-user: reports
//	smtp-pass: secret
//
// smtp-port defaults to 25. Authentication is used only when smtp-user is set.
//
//	client, err := email.NewConfiguredClient(email.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	err = client.Send(ctx, email.Email{
//	    From:    "reports@example.com",
//	    To:      []string{"team@example.com"},
//	    Subject: "Daily report",
//	    HTML:    "<p>Attached.</p>",
//	    Attachments: []email.Attachment{
//	        {Filename: "report.csv", MimeType: "text/csv", Data: csv},
//	    },
//	})
//
// Every Send opens a new connection and closes it before returning. Failures
// are reported as *SendError and match ErrSend.
package email
