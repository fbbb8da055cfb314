package screening

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/hr-agent/internal/types"
)

// StubModelScorer is a deterministic model backend for DEV_MODE. It parses
// the line-oriented resume format the stub extractor emits and scores
// without any network call.
type StubModelScorer struct{}

// NewStubModelScorer creates the development-mode model backend.
func NewStubModelScorer() *StubModelScorer {
	return &StubModelScorer{}
}

// ParseCandidateFacts extracts facts from "Key: value" resume lines.
func (s *StubModelScorer) ParseCandidateFacts(_ context.Context, resumeText string) (*types.CandidateFacts, error) {
	facts := &types.CandidateFacts{Name: "Unknown", Skills: []string{}}

	for _, line := range strings.Split(resumeText, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "name":
			if value != "" {
				facts.Name = value
			}
		case "email":
			facts.Email = value
		case "phone":
			facts.Phone = value
		case "skills":
			for _, skill := range strings.Split(value, ",") {
				if skill = strings.TrimSpace(skill); skill != "" {
					facts.Skills = append(facts.Skills, skill)
				}
			}
		case "education":
			facts.Education = value
		case "experience":
			facts.ExperienceYears = leadingInt(value)
		}
	}

	if len(facts.Skills) > maxSkills {
		facts.Skills = facts.Skills[:maxSkills]
	}
	return facts, nil
}

// ScoreCandidate produces a deterministic score from the candidate facts.
func (s *StubModelScorer) ScoreCandidate(_ context.Context, _ string, facts *types.CandidateFacts) (*types.ScoreResult, error) {
	score := ClampScore(float64(facts.ExperienceYears*8+len(facts.Skills)*6) + 30)
	return &types.ScoreResult{
		Score: score,
		Reasons: []string{
			"Strong technical background for the role",
			"Skill set aligns with the position requirements",
			"Relevant professional experience",
		},
	}, nil
}

// leadingInt parses the integer prefix of a string like "5 years in ...".
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
