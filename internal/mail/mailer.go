// Package mail sends interview confirmation emails over SMTP. Sending is
// best effort: a failed or unconfigured send reports false, it never fails
// the scheduling flow that triggered it.
package mail

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"github.com/jonathan/hr-agent/internal/retry"
)

// Mailer delivers an HTML email to a single recipient. The boolean result
// reports delivery; callers record it, they do not branch their control
// flow on it.
type Mailer interface {
	Send(to, subject, htmlBody string) bool
}

// SMTPMailer is the live Mailer, using STARTTLS plain authentication.
// Transient delivery failures are retried with the shared outbound-call
// policy before the send is reported as failed.
type SMTPMailer struct {
	server   string
	port     int
	address  string
	password string
	retry    retry.Policy
	sendMail func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a Mailer for the given SMTP account. Empty
// credentials are allowed; Send then reports false without attempting a
// connection.
func NewSMTPMailer(server string, port int, address, password string) *SMTPMailer {
	return &SMTPMailer{
		server:   server,
		port:     port,
		address:  address,
		password: password,
		retry:    retry.DefaultPolicy(),
		sendMail: smtp.SendMail,
	}
}

// Send delivers the message and reports whether it was accepted by the
// SMTP server.
func (m *SMTPMailer) Send(to, subject, htmlBody string) bool {
	if m.address == "" || m.password == "" {
		log.Printf("Email credentials not configured, email to %s not sent", to)
		return false
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.address, to, subject, htmlBody)

	auth := smtp.PlainAuth("", m.address, m.password, m.server)
	addr := fmt.Sprintf("%s:%d", m.server, m.port)
	err := m.retry.Do(context.Background(), func() error {
		return m.sendMail(addr, auth, m.address, []string{to}, []byte(msg))
	})
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return false
	}

	log.Printf("Interview confirmation email sent to %s", to)
	return true
}
