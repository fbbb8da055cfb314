package screening

import (
	"context"
	"log"

	"github.com/jonathan/hr-agent/internal/types"
)

// escalationThreshold gates the model-backed scorer: only candidates whose
// quick score exceeds it cost a model call. The model call is the expensive
// step and is rationed; low-promise candidates keep their heuristic score.
const escalationThreshold = 6.0

// maxReasons caps the human-readable assessment notes per candidate.
const maxReasons = 3

// neutralScore and neutralReason are the fallback when the model call fails
// or returns unparsable output.
const (
	neutralScore  = 50.0
	neutralReason = "Error in assessment"
)

// ModelScorer is the generative backend behind the scoring escalation tier.
// Implementations return an error on call or parse failure; the caller
// converts that into the neutral fallback.
type ModelScorer interface {
	ParseCandidateFacts(ctx context.Context, resumeText string) (*types.CandidateFacts, error)
	ScoreCandidate(ctx context.Context, jobDescription string, facts *types.CandidateFacts) (*types.ScoreResult, error)
}

// Scorer produces a ScoreResult for a candidate against a job description
// using the two-tier policy: keyword heuristic first, model call only when
// the heuristic is promising.
type Scorer struct {
	model ModelScorer
}

// NewScorer creates a Scorer over the given model backend.
func NewScorer(model ModelScorer) *Scorer {
	return &Scorer{model: model}
}

// Score applies the two-tier scoring policy. It never fails: model errors
// degrade to the neutral fallback score.
func (s *Scorer) Score(ctx context.Context, facts *types.CandidateFacts, jobDescription string) types.ScoreResult {
	jobKeywords := ExtractJobKeywords(jobDescription)
	quick := QuickScore(facts, jobKeywords)

	if quick <= escalationThreshold {
		log.Printf("Quick scoring for %s (score %.1f)", facts.Name, quick)
		return types.ScoreResult{
			Score:   quick,
			Reasons: QuickReasons(facts),
		}
	}

	log.Printf("Detailed scoring for %s (quick score %.1f)", facts.Name, quick)
	result, err := s.model.ScoreCandidate(ctx, jobDescription, facts)
	if err != nil {
		log.Printf("Error scoring candidate %s: %v", facts.Name, err)
		return types.ScoreResult{
			Score:   neutralScore,
			Reasons: []string{neutralReason},
		}
	}

	result.Score = ClampScore(result.Score)
	if len(result.Reasons) > maxReasons {
		result.Reasons = result.Reasons[:maxReasons]
	}
	return *result
}

// ParseFacts extracts structured candidate facts from resume text. A
// failure produces the "Parse Error" sentinel record, never an error: every
// uploaded resume yields a scorable candidate.
func (s *Scorer) ParseFacts(ctx context.Context, resumeText string) *types.CandidateFacts {
	facts, err := s.model.ParseCandidateFacts(ctx, resumeText)
	if err != nil {
		log.Printf("Error extracting candidate info: %v", err)
		return types.ParseErrorFacts()
	}
	return facts
}
