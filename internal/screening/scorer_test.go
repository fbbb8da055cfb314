package screening

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/hr-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	parseFacts *types.CandidateFacts
	parseErr   error
	scoreRes   *types.ScoreResult
	scoreErr   error
	scoreCalls int
	parseCalls int
}

func (f *fakeModel) ParseCandidateFacts(_ context.Context, _ string) (*types.CandidateFacts, error) {
	f.parseCalls++
	return f.parseFacts, f.parseErr
}

func (f *fakeModel) ScoreCandidate(_ context.Context, _ string, _ *types.CandidateFacts) (*types.ScoreResult, error) {
	f.scoreCalls++
	return f.scoreRes, f.scoreErr
}

func TestScore_EscalatesPromisingCandidate(t *testing.T) {
	model := &fakeModel{
		scoreRes: &types.ScoreResult{Score: 85, Reasons: []string{"Deep Python experience"}},
	}
	scorer := NewScorer(model)

	facts := &types.CandidateFacts{
		Name:            "Jane Doe",
		Skills:          []string{"python", "sql"},
		ExperienceYears: 3,
		Education:       "BS CS",
	}

	result := scorer.Score(context.Background(), facts, "Python and React developer")

	assert.Equal(t, 1, model.scoreCalls)
	assert.Equal(t, 85.0, result.Score)
	assert.Equal(t, []string{"Deep Python experience"}, result.Reasons)
}

func TestScore_NoKeywordJobStillEscalates(t *testing.T) {
	// An unrecognized job description yields the neutral quick score of 50,
	// which is above the escalation threshold, so the model is consulted.
	model := &fakeModel{
		scoreRes: &types.ScoreResult{Score: 72, Reasons: []string{"solid generalist"}},
	}
	scorer := NewScorer(model)

	facts := &types.CandidateFacts{Name: "Nobody"}
	result := scorer.Score(context.Background(), facts, "Seeking a pastry chef.")

	require.Equal(t, 1, model.scoreCalls)
	assert.Equal(t, 72.0, result.Score)
}

func TestScore_ModelFailureFallsBackToNeutral(t *testing.T) {
	model := &fakeModel{scoreErr: errors.New("quota exceeded")}
	scorer := NewScorer(model)

	facts := &types.CandidateFacts{
		Name:            "Jane Doe",
		Skills:          []string{"python"},
		ExperienceYears: 4,
		Education:       "BS",
	}

	result := scorer.Score(context.Background(), facts, "python backend role")

	assert.Equal(t, 1, model.scoreCalls)
	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, []string{"Error in assessment"}, result.Reasons)
}

func TestScore_ClampsAndTruncatesModelOutput(t *testing.T) {
	model := &fakeModel{
		scoreRes: &types.ScoreResult{
			Score:   140,
			Reasons: []string{"one", "two", "three", "four"},
		},
	}
	scorer := NewScorer(model)

	facts := &types.CandidateFacts{Skills: []string{"python"}, ExperienceYears: 5, Education: "BS"}
	result := scorer.Score(context.Background(), facts, "python role")

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, []string{"one", "two", "three"}, result.Reasons)
}

func TestParseFacts_ErrorYieldsSentinel(t *testing.T) {
	model := &fakeModel{parseErr: errors.New("model returned garbage")}
	scorer := NewScorer(model)

	facts := scorer.ParseFacts(context.Background(), "some resume text")

	assert.Equal(t, types.ParseErrorName, facts.Name)
	assert.Empty(t, facts.Skills)
}

func TestParseFacts_PassesThroughModelResult(t *testing.T) {
	want := &types.CandidateFacts{Name: "Jane Doe", Email: "jane@example.com"}
	model := &fakeModel{parseFacts: want}
	scorer := NewScorer(model)

	got := scorer.ParseFacts(context.Background(), "resume text")

	assert.Same(t, want, got)
	assert.Equal(t, 1, model.parseCalls)
}
