package mailer

import (
	"context"
	"fmt"
)

// EmailMessage is one outbound email. HTML takes precedence over Text when
// both are set.
type EmailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer is the outbound email port.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// PasswordResetEmail composes the password reset code email.
func PasswordResetEmail(to, code, subject string) EmailMessage {
	if subject == "" {
		subject = "Password Reset Code"
	}

	text := fmt.Sprintf(`Hello,

We received a request to reset your password.

Your verification code: %s

Use this code to set a new password.

Note: this code is valid for 10 minutes.

For your security, do not share this code with anyone.

Best regards,
Tuning App Admin Panel
`, code)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Password Reset</h2>
  <p>Hello,</p>
  <p>We received a request to reset your password.</p>
  <div style="background-color: #f5f5f5; padding: 20px; text-align: center; margin: 20px 0;">
    <h1 style="color: #007bff; font-size: 32px; margin: 0;">%s</h1>
  </div>
  <p>Use this code to set a new password.</p>
  <p><strong>Note:</strong> this code is valid for 10 minutes.</p>
  <p>For your security, do not share this code with anyone.</p>
  <hr style="margin: 20px 0;">
  <p style="color: #666; font-size: 12px;">Best regards,<br>Tuning App Admin Panel</p>
</div>`, code)

	return EmailMessage{To: to, Subject: subject, Text: text, HTML: html}
}

// TestEmail composes the connectivity test email.
func TestEmail(to string) EmailMessage {
	return EmailMessage{
		To:      to,
		Subject: "Test Email",
		Text:    "This is a test email.",
		HTML:    "<h1>Test Email</h1><p>This is a test email.</p>",
	}
}
