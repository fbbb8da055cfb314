package screening

import (
	"context"
	"log"
	"sort"

	"github.com/jonathan/hr-agent/internal/extraction"
	"github.com/jonathan/hr-agent/internal/types"
)

// BatchProcessor fans a batch of extracted resumes through parsing and
// scoring and returns candidates ranked by score.
type BatchProcessor struct {
	scorer *Scorer
}

// NewBatchProcessor creates a batch processor over the given scorer.
func NewBatchProcessor(scorer *Scorer) *BatchProcessor {
	return &BatchProcessor{scorer: scorer}
}

// Process scores every resume in the batch against the job description and
// returns candidates sorted by score descending. Ties keep input order
// (identifiers are processed in sorted order for determinism). Failures are
// isolated per item: a resume whose extraction failed becomes a "Parse
// Error" sentinel candidate and is still scored and included. Scores are
// independent; there is no cross-batch normalization.
func (p *BatchProcessor) Process(ctx context.Context, resumeTexts map[string]string, jobDescription string) []types.RankedCandidate {
	log.Printf("Processing batch of %d resumes", len(resumeTexts))

	ids := make([]string, 0, len(resumeTexts))
	for id := range resumeTexts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	candidates := make([]types.RankedCandidate, 0, len(ids))
	for _, id := range ids {
		text := resumeTexts[id]

		var facts *types.CandidateFacts
		if extraction.IsErrorText(text) {
			log.Printf("Resume %s failed extraction, recording sentinel candidate", id)
			facts = types.ParseErrorFacts()
		} else {
			facts = p.scorer.ParseFacts(ctx, text)
		}

		result := p.scorer.Score(ctx, facts, jobDescription)
		candidates = append(candidates, types.RankedCandidate{
			Name:    facts.Name,
			Email:   facts.Email,
			Phone:   facts.Phone,
			Score:   result.Score,
			Summary: result.Reasons,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	log.Printf("Batch processing complete: %d candidates ranked", len(candidates))
	return candidates
}
