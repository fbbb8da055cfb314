package mail

import (
	"log"
	"sync"
)

// SentMessage records one delivery made through the stub mailer.
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// StubMailer is an in-memory Mailer for development mode and tests.
type StubMailer struct {
	mu   sync.Mutex
	sent []SentMessage
}

// NewStubMailer creates a stub mailer that reports every send as delivered.
func NewStubMailer() *StubMailer {
	return &StubMailer{}
}

// Send records the message and reports success.
func (m *StubMailer) Send(to, subject, htmlBody string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMessage{To: to, Subject: subject, Body: htmlBody})
	log.Printf("[DEV] Would send email to %s: %s", to, subject)
	return true
}

// Sent returns a copy of every message sent so far.
func (m *StubMailer) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentMessage(nil), m.sent...)
}
