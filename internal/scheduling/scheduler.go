// Package scheduling commits interviews: a calendar event first, then a
// best-effort confirmation email. Event creation failures abort; email
// failures only mark the result.
package scheduling

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/hr-agent/internal/calendar"
	"github.com/jonathan/hr-agent/internal/mail"
	"github.com/jonathan/hr-agent/internal/types"
)

// interviewTitlePrefix identifies interview events among other calendar
// entries when listing scheduled interviews.
const interviewTitlePrefix = "Interview:"

// scheduledLookaheadDays is the listing window for scheduled interviews.
const scheduledLookaheadDays = 30

// Options configures the scheduler's environment-dependent strings.
type Options struct {
	CompanyName      string
	InterviewerName  string
	InterviewerEmail string
	Timezone         string
}

// Result is the outcome of a successful scheduling call.
type Result struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message"`
	Details types.ScheduledInterview `json:"details"`
}

// Scheduler books interviews on the calendar and notifies candidates.
type Scheduler struct {
	calendar calendar.Client
	mailer   mail.Mailer
	opts     Options
}

// New creates a Scheduler over the given calendar backend and mailer.
func New(cal calendar.Client, mailer mail.Mailer, opts Options) *Scheduler {
	return &Scheduler{
		calendar: cal,
		mailer:   mailer,
		opts:     opts,
	}
}

// Schedule books an interview for the candidate in [startTime, endTime],
// both RFC 3339. The calendar event is the commit point: if it cannot be
// created, Schedule fails. The confirmation email is best effort and only
// recorded in Details.EmailSent; there is no rollback of the calendar event
// when the email does not go out.
func (s *Scheduler) Schedule(ctx context.Context, candidate types.CandidateRef, startTime, endTime string) (*Result, error) {
	log.Printf("Scheduling interview for %s", candidate.Name)

	created, err := s.calendar.CreateEvent(ctx, calendar.EventRequest{
		Title:       fmt.Sprintf("%s %s - %s", interviewTitlePrefix, s.opts.CompanyName, candidate.Name),
		Description: fmt.Sprintf("Interview with %s for the open position.", candidate.Name),
		StartTime:   startTime,
		EndTime:     endTime,
		Attendees:   []string{candidate.Email, s.opts.InterviewerEmail},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule interview for %s: %w", candidate.Name, err)
	}

	date, clock := formatInterviewTime(startTime)

	body, err := mail.RenderConfirmation(mail.InterviewDetails{
		CandidateName: candidate.Name,
		Date:          date,
		Time:          clock,
		Timezone:      s.opts.Timezone,
		Interviewer:   s.opts.InterviewerName,
		MeetingLink:   created.MeetingLink,
		CompanyName:   s.opts.CompanyName,
	})
	emailSent := false
	if err != nil {
		log.Printf("Error rendering confirmation email for %s: %v", candidate.Name, err)
	} else {
		emailSent = s.mailer.Send(candidate.Email, mail.ConfirmationSubject(s.opts.CompanyName), body)
	}

	return &Result{
		Status:  "success",
		Message: fmt.Sprintf("Successfully scheduled interview for %s", candidate.Name),
		Details: types.ScheduledInterview{
			CandidateName:  candidate.Name,
			CandidateEmail: candidate.Email,
			InterviewDate:  date,
			InterviewTime:  clock,
			Timezone:       s.opts.Timezone,
			MeetingLink:    created.MeetingLink,
			EmailSent:      emailSent,
		},
	}, nil
}

// ScheduledInterviews lists calendar events recognized as interviews over
// the next 30 days. A listing failure yields an empty list, not an error:
// the dashboard view degrades rather than breaking.
func (s *Scheduler) ScheduledInterviews(ctx context.Context) []types.InterviewSummary {
	now := time.Now().UTC()
	events, err := s.calendar.ListEvents(ctx, now, now.AddDate(0, 0, scheduledLookaheadDays))
	if err != nil {
		log.Printf("Error fetching scheduled interviews: %v", err)
		return []types.InterviewSummary{}
	}

	interviews := make([]types.InterviewSummary, 0, len(events))
	for _, event := range events {
		if !strings.Contains(event.Summary, interviewTitlePrefix) {
			continue
		}
		status := event.Status
		if status == "" {
			status = "confirmed"
		}
		interviews = append(interviews, types.InterviewSummary{
			ID:        event.ID,
			Title:     event.Summary,
			StartTime: event.Start.Format(time.RFC3339),
			EndTime:   event.End.Format(time.RFC3339),
			Attendees: event.Attendees,
			Status:    status,
		})
	}
	return interviews
}

// formatInterviewTime splits an RFC 3339 timestamp into the date and clock
// strings the confirmation email shows. An unparseable timestamp passes
// through verbatim for both fields rather than failing a scheduling call
// whose calendar event already exists.
func formatInterviewTime(startTime string) (date, clock string) {
	t, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		log.Printf("Unparseable interview start time %q, passing through", startTime)
		return startTime, startTime
	}
	return t.Format("2006-01-02"), t.Format("3:04 PM")
}
