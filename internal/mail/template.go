package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// DefaultMeetingLinkNote is shown when no meeting link exists yet.
const DefaultMeetingLinkNote = "Will be provided closer to the interview date"

// InterviewDetails carries everything the confirmation email mentions.
type InterviewDetails struct {
	CandidateName string
	Date          string
	Time          string
	Timezone      string
	Duration      string
	Interviewer   string
	MeetingLink   string
	CompanyName   string
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f8f9fa; padding: 20px; text-align: center; border-radius: 8px; margin-bottom: 20px; }
        .content { background-color: #fff; padding: 20px; border: 1px solid #dee2e6; border-radius: 8px; }
        .highlight { background-color: #e3f2fd; padding: 15px; border-left: 4px solid #2196f3; margin: 20px 0; }
        .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #dee2e6; font-size: 14px; color: #6c757d; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.CompanyName}}</h1>
            <h2>Interview Confirmation</h2>
        </div>

        <div class="content">
            <p>Dear {{.CandidateName}},</p>

            <p>Thank you for your interest in joining our team! We're excited to move forward with your application and would like to schedule an interview with you.</p>

            <div class="highlight">
                <h3>Interview Details:</h3>
                <ul>
                    <li><strong>Date:</strong> {{.Date}}</li>
                    <li><strong>Time:</strong> {{.Time}} ({{.Timezone}})</li>
                    <li><strong>Duration:</strong> {{.Duration}}</li>
                    <li><strong>Interviewer:</strong> {{.Interviewer}}</li>
                    <li><strong>Meeting Link:</strong> {{.MeetingLink}}</li>
                </ul>
            </div>

            <h3>What to Expect:</h3>
            <ul>
                <li>Discussion about your background and experience</li>
                <li>Overview of the role and team</li>
                <li>Opportunity for you to ask questions about the position and company</li>
            </ul>

            <p>We look forward to speaking with you!</p>

            <p>Best regards,<br>
            {{.Interviewer}}<br>
            {{.CompanyName}}</p>
        </div>

        <div class="footer">
            <p>This email was sent from an automated system. Please contact our hiring team if you have any questions.</p>
        </div>
    </div>
</body>
</html>`))

// ConfirmationSubject returns the subject line for a confirmation email.
func ConfirmationSubject(companyName string) string {
	return fmt.Sprintf("Interview Confirmation - %s", companyName)
}

// RenderConfirmation renders the HTML confirmation email. Unset fields fall
// back to placeholders rather than rendering empty.
func RenderConfirmation(details InterviewDetails) (string, error) {
	if details.Date == "" {
		details.Date = "TBD"
	}
	if details.Time == "" {
		details.Time = "TBD"
	}
	if details.Duration == "" {
		details.Duration = "30 minutes"
	}
	if details.MeetingLink == "" || details.MeetingLink == "TBD" {
		details.MeetingLink = DefaultMeetingLinkNote
	}

	var buf strings.Builder
	if err := confirmationTemplate.Execute(&buf, details); err != nil {
		return "", fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return buf.String(), nil
}
