package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StubClient is an in-memory Client for development mode and tests. Created
// events become visible to subsequent availability queries.
type StubClient struct {
	mu     sync.Mutex
	events []Event
}

// NewStubClient creates an empty in-memory calendar.
func NewStubClient() *StubClient {
	return &StubClient{}
}

// ListEvents returns the stored events overlapping [timeMin, timeMax).
func (c *StubClient) ListEvents(_ context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var overlapping []Event
	for _, event := range c.events {
		if event.Start.Before(timeMax) && event.End.After(timeMin) {
			overlapping = append(overlapping, event)
		}
	}
	return overlapping, nil
}

// CreateEvent stores the event and fabricates a Meet-style link.
func (c *StubClient) CreateEvent(_ context.Context, req EventRequest) (*CreatedEvent, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid event start time %q: %w", req.StartTime, err)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid event end time %q: %w", req.EndTime, err)
	}

	id := uuid.NewString()
	c.mu.Lock()
	c.events = append(c.events, Event{
		ID:        id,
		Summary:   req.Title,
		Start:     start,
		End:       end,
		Attendees: req.Attendees,
		Status:    "confirmed",
	})
	c.mu.Unlock()

	return &CreatedEvent{
		EventID:     id,
		EventLink:   fmt.Sprintf("https://calendar.example.com/event/%s", id),
		MeetingLink: fmt.Sprintf("https://meet.example.com/%s", id),
	}, nil
}

// EmbedURL returns a fixed development-mode URL.
func (c *StubClient) EmbedURL(_ context.Context) (string, error) {
	return "https://calendar.google.com/calendar/embed?src=dev-mode", nil
}

// Seed inserts an event directly, for tests that need a busy calendar.
func (c *StubClient) Seed(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}
