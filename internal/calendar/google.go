package calendar

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/jonathan/hr-agent/internal/retry"
)

// Reminder lead times for created interview events.
const (
	reminderEmailMinutes = 24 * 60
	reminderPopupMinutes = 30
)

// GoogleClient is the live Client backed by the Google Calendar API.
type GoogleClient struct {
	service    *gcal.Service
	calendarID string
	timezone   string
	retry      retry.Policy
}

// NewGoogleClient builds a calendar service from a service-account
// credentials file. Events are created in the given IANA timezone.
func NewGoogleClient(ctx context.Context, credentialsPath, calendarID, timezone string) (*GoogleClient, error) {
	service, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleClient{
		service:    service,
		calendarID: calendarID,
		timezone:   timezone,
		retry:      retry.DefaultPolicy(),
	}, nil
}

// ListEvents returns the events overlapping [timeMin, timeMax).
func (c *GoogleClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	var result *gcal.Events
	err := c.retry.Do(ctx, func() error {
		var callErr error
		result, callErr = c.service.Events.List(c.calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx).
			Do()
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, Event{
			ID:        item.Id,
			Summary:   item.Summary,
			Start:     parseEventTime(item.Start),
			End:       parseEventTime(item.End),
			Attendees: attendeeEmails(item.Attendees),
			Status:    item.Status,
		})
	}
	return events, nil
}

// CreateEvent creates the event with a Meet conference request and the
// standard interview reminders (email a day ahead, popup 30 minutes ahead).
func (c *GoogleClient) CreateEvent(ctx context.Context, req EventRequest) (*CreatedEvent, error) {
	attendees := make([]*gcal.EventAttendee, 0, len(req.Attendees))
	for _, email := range req.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	event := &gcal.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start: &gcal.EventDateTime{
			DateTime: req.StartTime,
			TimeZone: c.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: req.EndTime,
			TimeZone: c.timezone,
		},
		Attendees: attendees,
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: reminderEmailMinutes},
				{Method: "popup", Minutes: reminderPopupMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId: fmt.Sprintf("hr-agent-%s", uuid.NewString()),
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	var created *gcal.Event
	err := c.retry.Do(ctx, func() error {
		var callErr error
		// ConferenceDataVersion 1 is required for the Meet link to come back.
		created, callErr = c.service.Events.Insert(c.calendarID, event).
			ConferenceDataVersion(1).
			Context(ctx).
			Do()
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	meetingLink := created.HangoutLink
	if meetingLink == "" {
		meetingLink = "TBD"
	}
	return &CreatedEvent{
		EventID:     created.Id,
		EventLink:   created.HtmlLink,
		MeetingLink: meetingLink,
	}, nil
}

// EmbedURL returns the public embed URL for the configured calendar.
func (c *GoogleClient) EmbedURL(ctx context.Context) (string, error) {
	cal, err := c.service.Calendars.Get(c.calendarID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get calendar: %w", err)
	}
	return fmt.Sprintf("https://calendar.google.com/calendar/embed?src=%s", url.QueryEscape(cal.Id)), nil
}

func parseEventTime(dt *gcal.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
			return t
		}
	}
	if dt.Date != "" {
		if t, err := time.Parse("2006-01-02", dt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

func attendeeEmails(attendees []*gcal.EventAttendee) []string {
	if len(attendees) == 0 {
		return nil
	}
	emails := make([]string, 0, len(attendees))
	for _, a := range attendees {
		emails = append(emails, a.Email)
	}
	return emails
}
