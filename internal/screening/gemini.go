package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/hr-agent/internal/llm"
	"github.com/jonathan/hr-agent/internal/retry"
	"github.com/jonathan/hr-agent/internal/schemas"
	"github.com/jonathan/hr-agent/internal/types"
)

// Token-economy limits applied before prompting. Resume text and job
// descriptions are condensed so every call stays cheap.
const (
	maxResumeChars    = 2000
	maxJobChars       = 1000
	maxEducationChars = 100
	maxSkills         = 10
	maxSummaryChars   = 200
	topSkillsInPrompt = 5
)

// GeminiScorer implements ModelScorer over the Gemini backend.
type GeminiScorer struct {
	client llm.Client
	retry  retry.Policy
}

// NewGeminiScorer creates a model scorer over an LLM client.
func NewGeminiScorer(client llm.Client) *GeminiScorer {
	return &GeminiScorer{
		client: client,
		retry:  retry.DefaultPolicy(),
	}
}

// ParseCandidateFacts extracts structured candidate information from resume
// text. The response is schema-validated before decoding; fields are capped
// to their documented limits.
func (g *GeminiScorer) ParseCandidateFacts(ctx context.Context, resumeText string) (*types.CandidateFacts, error) {
	prompt := fmt.Sprintf(`Extract candidate info from this resume. Return ONLY valid JSON:

%s

Required JSON format:
{"name":"","email":"","phone":"","skills":[],"experience_years":0,"education":"","summary":""}`,
		truncate(resumeText, maxResumeChars))

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateCandidateFacts(raw); err != nil {
		return nil, fmt.Errorf("candidate extraction response rejected: %w", err)
	}

	var facts types.CandidateFacts
	if err := json.Unmarshal([]byte(raw), &facts); err != nil {
		return nil, fmt.Errorf("failed to decode candidate extraction response: %w", err)
	}

	if facts.Name == "" {
		facts.Name = "Unknown"
	}
	if facts.Skills == nil {
		facts.Skills = []string{}
	}
	if len(facts.Skills) > maxSkills {
		facts.Skills = facts.Skills[:maxSkills]
	}
	if facts.ExperienceYears < 0 {
		facts.ExperienceYears = 0
	}
	facts.Summary = truncate(facts.Summary, maxSummaryChars)

	return &facts, nil
}

// ScoreCandidate asks the model for a 1-100 fit score with reasons, using a
// condensed job description and candidate summary.
func (g *GeminiScorer) ScoreCandidate(ctx context.Context, jobDescription string, facts *types.CandidateFacts) (*types.ScoreResult, error) {
	prompt := fmt.Sprintf(`Score this candidate (1-100) for the job. Return ONLY valid JSON:

JOB: %s

CANDIDATE: %s

Required JSON format:
{"score":0,"reasons":["reason1","reason2","reason3"]}`,
		truncate(jobDescription, maxJobChars), condenseCandidate(facts))

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateScoreResult(raw); err != nil {
		return nil, fmt.Errorf("scoring response rejected: %w", err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode scoring response: %w", err)
	}
	if len(result.Reasons) == 0 {
		result.Reasons = []string{"Unable to assess"}
	}

	return &result, nil
}

// generate calls the model with the shared retry policy and normalizes the
// response body.
func (g *GeminiScorer) generate(ctx context.Context, prompt string) (string, error) {
	var raw string
	err := g.retry.Do(ctx, func() error {
		var callErr error
		raw, callErr = g.client.GenerateJSON(ctx, prompt)
		return callErr
	})
	if err != nil {
		return "", err
	}
	return llm.CleanJSONBlock(raw), nil
}

// condenseCandidate builds the compact candidate block used in scoring
// prompts: name, experience, leading skills and truncated education.
func condenseCandidate(facts *types.CandidateFacts) string {
	skills := facts.Skills
	if len(skills) > topSkillsInPrompt {
		skills = skills[:topSkillsInPrompt]
	}

	return fmt.Sprintf(`
Name: %s
Experience: %d years
Skills: %s
Education: %s
`, facts.Name, facts.ExperienceYears, strings.Join(skills, ", "), truncate(facts.Education, maxEducationChars))
}

// truncate cuts s to at most limit bytes without splitting a multibyte
// rune; a partial rune at the cut would make the prompt invalid UTF-8 and
// the backend rejects such strings outright.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r == utf8.RuneError && size == 1 {
			cut = cut[:len(cut)-1]
			continue
		}
		break
	}
	return cut
}
