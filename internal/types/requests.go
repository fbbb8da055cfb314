package types

import "github.com/go-playground/validator/v10"

// CandidateRef identifies the candidate an interview is scheduled for.
type CandidateRef struct {
	Name  string `json:"name" validate:"required,min=1"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// ScheduleRequest is the request body for scheduling a single interview.
// Start and end times are RFC 3339 timestamps.
type ScheduleRequest struct {
	Candidate CandidateRef `json:"candidate" validate:"required"`
	StartTime string       `json:"start_time" validate:"required"`
	EndTime   string       `json:"end_time" validate:"required"`
}

// Validate validates the ScheduleRequest using the validator.
func (r *ScheduleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
