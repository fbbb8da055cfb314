package screening

import (
	"context"
	"testing"

	"github.com/jonathan/hr-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor() *BatchProcessor {
	return NewBatchProcessor(NewScorer(NewStubModelScorer()))
}

func TestProcess_RanksByScoreDescending(t *testing.T) {
	resumes := map[string]string{
		"junior.pdf": "Name: Alex Junior\nSkills: python\nExperience: 1 years",
		"senior.pdf": "Name: Sam Senior\nSkills: python, sql, aws, docker\nExperience: 8 years",
		"mid.pdf":    "Name: Max Mid\nSkills: python, sql\nExperience: 4 years",
	}

	ranked := newTestProcessor().Process(context.Background(), resumes, "python backend role")

	require.Len(t, ranked, 3)
	assert.Equal(t, "Sam Senior", ranked[0].Name)
	assert.Equal(t, "Max Mid", ranked[1].Name)
	assert.Equal(t, "Alex Junior", ranked[2].Name)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i].Score, ranked[i-1].Score)
	}
}

func TestProcess_TiesKeepSortedInputOrder(t *testing.T) {
	// Identical resumes score identically; identifiers are processed in
	// sorted order and the sort is stable, so ties stay in that order.
	resumes := map[string]string{
		"b.pdf": "Name: Bob\nSkills: python\nExperience: 2 years",
		"a.pdf": "Name: Ann\nSkills: python\nExperience: 2 years",
		"c.pdf": "Name: Cal\nSkills: python\nExperience: 2 years",
	}

	ranked := newTestProcessor().Process(context.Background(), resumes, "python role")

	require.Len(t, ranked, 3)
	assert.Equal(t, "Ann", ranked[0].Name)
	assert.Equal(t, "Bob", ranked[1].Name)
	assert.Equal(t, "Cal", ranked[2].Name)
}

func TestProcess_ExtractionFailureYieldsSentinelCandidate(t *testing.T) {
	resumes := map[string]string{
		"good.pdf":   "Name: Jane Doe\nSkills: python, sql\nExperience: 5 years",
		"broken.pdf": "Error extracting text: file is corrupt",
	}

	ranked := newTestProcessor().Process(context.Background(), resumes, "python role")

	require.Len(t, ranked, 2, "failed extraction must not drop the candidate")
	assert.Equal(t, "Jane Doe", ranked[0].Name)
	assert.Equal(t, types.ParseErrorName, ranked[1].Name)
	assert.GreaterOrEqual(t, ranked[1].Score, 1.0)
}

func TestProcess_ScoresAlwaysInRange(t *testing.T) {
	resumes := map[string]string{
		"empty.txt": "unstructured text with no recognizable fields",
		"max.txt":   "Name: Maxed Out\nSkills: a, b, c, d, e, f, g, h, i, j, k, l\nExperience: 40 years",
		"bad.txt":   "Error extracting text: unreadable",
	}

	ranked := newTestProcessor().Process(context.Background(), resumes, "python react docker role")

	require.Len(t, ranked, 3)
	for _, c := range ranked {
		assert.GreaterOrEqual(t, c.Score, 1.0)
		assert.LessOrEqual(t, c.Score, 100.0)
	}
}

func TestProcess_EmptyBatch(t *testing.T) {
	ranked := newTestProcessor().Process(context.Background(), map[string]string{}, "python role")

	assert.Empty(t, ranked)
}
