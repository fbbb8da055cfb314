// Package calendar talks to the interview calendar: querying busy times,
// finding open interview slots within business hours, and creating events
// with a Google Meet conference attached.
package calendar

import (
	"context"
	"time"
)

// Event is an existing calendar event within a queried window.
type Event struct {
	ID        string
	Summary   string
	Start     time.Time
	End       time.Time
	Attendees []string
	Status    string
}

// EventRequest describes an event to create. StartTime and EndTime are
// RFC 3339 timestamps as received from the scheduling API.
type EventRequest struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Attendees   []string
}

// CreatedEvent is the backend's answer to a successful event creation.
// MeetingLink is "TBD" when the backend did not attach a conference.
type CreatedEvent struct {
	EventID     string `json:"event_id"`
	EventLink   string `json:"event_link"`
	MeetingLink string `json:"meeting_link"`
}

// Client is the calendar backend. GoogleClient is the live implementation;
// StubClient serves development mode and tests.
type Client interface {
	// ListEvents returns the events overlapping [timeMin, timeMax).
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error)
	// CreateEvent creates an event with a Meet conference request attached.
	CreateEvent(ctx context.Context, req EventRequest) (*CreatedEvent, error)
	// EmbedURL returns the public embed URL for the calendar, or an empty
	// string when it cannot be determined.
	EmbedURL(ctx context.Context) (string, error)
}
