// Package config provides configuration loading and validation for the HR agent.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all process-wide configuration. It is constructed once at
// startup from the environment and passed by reference into each component;
// no component reads the environment after that.
type Config struct {
	// Server
	Port int

	// DevMode selects the stub implementations of every external
	// collaborator (extractor, scorer, calendar, mailer).
	DevMode bool

	// Generative scoring backend
	GeminiAPIKey string
	GeminiModel  string

	// Calendar backend
	CalendarCredentialsPath string
	CalendarID              string

	// Email backend. Credentials are optional; without them sends are
	// skipped and reported as not sent.
	SMTPServer    string
	SMTPPort      int
	EmailAddress  string
	EmailPassword string

	// Company identity used in event titles and confirmation emails
	CompanyName      string
	InterviewerName  string
	InterviewerEmail string

	// Timezone is the IANA zone interview slots and events are expressed in.
	Timezone string

	// Optional persistence of screening runs; empty disables it.
	DatabaseURL string

	// UploadDir is where resume uploads are staged before extraction.
	// Empty means a fresh temp directory per request.
	UploadDir string
}

// Load builds a Config from the environment, applying defaults for every
// optional value. It does not validate; call Validate before use.
func Load() *Config {
	return &Config{
		Port:                    getEnvInt("PORT", 8080),
		DevMode:                 getEnvBool("DEV_MODE", false),
		GeminiAPIKey:            os.Getenv("GEMINI_API_KEY"),
		GeminiModel:             getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		CalendarCredentialsPath: os.Getenv("GOOGLE_CALENDAR_CREDENTIALS_PATH"),
		CalendarID:              getEnv("CALENDAR_ID", "primary"),
		SMTPServer:              getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:                getEnvInt("SMTP_PORT", 587),
		EmailAddress:            os.Getenv("EMAIL_ADDRESS"),
		EmailPassword:           os.Getenv("EMAIL_PASSWORD"),
		CompanyName:             getEnv("COMPANY_NAME", "Your Company"),
		InterviewerName:         getEnv("INTERVIEWER_NAME", "Hiring Manager"),
		InterviewerEmail:        getEnv("INTERVIEWER_EMAIL", "interviewer@company.com"),
		Timezone:                getEnv("INTERVIEW_TIMEZONE", "America/New_York"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		UploadDir:               os.Getenv("UPLOAD_DIR"),
	}
}

// Validate checks that required credentials are present and the timezone is
// resolvable. Missing required configuration aborts initialization; it is
// never discovered mid-operation.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config error: invalid INTERVIEW_TIMEZONE %q: %w", c.Timezone, err)
	}

	if c.DevMode {
		// Stub collaborators need no credentials.
		return nil
	}

	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY environment variable is required")
	}
	if c.CalendarCredentialsPath == "" {
		return fmt.Errorf("config error: GOOGLE_CALENDAR_CREDENTIALS_PATH environment variable is required")
	}
	if _, err := os.Stat(c.CalendarCredentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("config error: calendar credentials file not found: %s", c.CalendarCredentialsPath)
	}

	return nil
}

// Location resolves the configured timezone. Validate must have succeeded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
