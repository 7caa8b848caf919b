package utils

import (
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends password-reset codes over SMTP.
type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
}

// SendResetCode mails the reset code to the given address.
func (m *SMTPMailer) SendResetCode(email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password Reset Code")
	msg.SetBody("text/plain", "Your password reset code is: "+code)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Password Reset Code</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			.code {
				font-weight: bold;
				color: #007bff;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Password Reset Code</h1>
			<p>Your password reset code is:</p>
			<p class="code">` + code + `</p>
			<p>If you did not request a password reset, please ignore this email.</p>
		</div>
	</body>
	</html>
	`
	msg.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	if err := d.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send reset code email")
	}
	return nil
}
