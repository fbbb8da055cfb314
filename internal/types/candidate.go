// Package types provides type definitions for structured data used throughout the hr-agent system.
package types

// CandidateFacts holds the structured information extracted from a single resume.
// Instances are immutable once produced; scoring is the only consumer.
type CandidateFacts struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       string   `json:"education"`
	Summary         string   `json:"summary"`
}

// ParseErrorName marks a sentinel CandidateFacts produced when a resume
// could not be extracted or parsed. Sentinel records are still scored and
// included in batch output so uploads are never silently dropped.
const ParseErrorName = "Parse Error"

// ParseErrorFacts returns the sentinel record for an unparseable resume.
func ParseErrorFacts() *CandidateFacts {
	return &CandidateFacts{
		Name:    ParseErrorName,
		Skills:  []string{},
		Summary: "Failed to parse resume",
	}
}

// ScoreResult is the outcome of scoring one candidate against one job
// description. Score is always within [1, 100]; Reasons holds at most three
// human-readable assessment notes.
type ScoreResult struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// RankedCandidate merges CandidateFacts with a ScoreResult. Sequences of
// RankedCandidate are sorted by score descending with ties kept in input
// order.
type RankedCandidate struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone,omitempty"`
	Score   float64  `json:"score"`
	Summary []string `json:"summary"`
}
