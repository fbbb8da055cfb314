package types

import "time"

// TimeSlot is a single bookable interview slot discovered by the calendar
// scan. Derived purely from business-hour policy plus an availability check;
// never mutated.
type TimeSlot struct {
	Start    time.Time `json:"start_time"`
	End      time.Time `json:"end_time"`
	Date     string    `json:"date"` // "2006-01-02"
	Time     string    `json:"time"` // "15:04"
	Timezone string    `json:"timezone"`
}

// AvailabilityGroup is the external-facing shape of slot listings: one group
// per calendar date, groups ordered by date ascending (the scan order), slot
// times ascending within each group.
type AvailabilityGroup struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// ScheduledInterview describes a committed interview once the calendar event
// exists. EmailSent records whether the confirmation email was delivered;
// a false value does not undo the calendar event.
type ScheduledInterview struct {
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	InterviewDate  string `json:"interview_date"`
	InterviewTime  string `json:"interview_time"`
	Timezone       string `json:"timezone"`
	MeetingLink    string `json:"meeting_link"`
	EmailSent      bool   `json:"email_sent"`
}

// InterviewSummary is a calendar event recognized as a scheduled interview.
type InterviewSummary struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Attendees []string `json:"attendees"`
	Status    string   `json:"status"`
}
