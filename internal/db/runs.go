package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hr-agent/internal/types"
)

// ScreeningRun is one recorded batch-screening invocation.
type ScreeningRun struct {
	ID             uuid.UUID `json:"id"`
	JobDescription string    `json:"job_description"`
	ResumeCount    int       `json:"resume_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateScreeningRun records a screening invocation and returns its ID.
func (db *DB) CreateScreeningRun(ctx context.Context, jobDescription string, resumeCount int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO screening_runs (id, job_description, resume_count)
		 VALUES ($1, $2, $3)`,
		id, jobDescription, resumeCount,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create screening run: %w", err)
	}
	return id, nil
}

// SaveCandidates stores the ranked output of a screening run. Rank follows
// the slice order, starting at 1.
func (db *DB) SaveCandidates(ctx context.Context, runID uuid.UUID, candidates []types.RankedCandidate) error {
	for i, candidate := range candidates {
		summary, err := json.Marshal(candidate.Summary)
		if err != nil {
			return fmt.Errorf("failed to marshal candidate summary: %w", err)
		}
		_, err = db.pool.Exec(ctx,
			`INSERT INTO candidates (id, run_id, rank, name, email, phone, score, summary)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), runID, i+1, candidate.Name, candidate.Email, candidate.Phone, candidate.Score, summary,
		)
		if err != nil {
			return fmt.Errorf("failed to save candidate %s: %w", candidate.Name, err)
		}
	}
	return nil
}

// ListRuns returns the most recent screening runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]ScreeningRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_description, resume_count, created_at
		 FROM screening_runs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screening runs: %w", err)
	}
	defer rows.Close()

	runs := make([]ScreeningRun, 0)
	for rows.Next() {
		var run ScreeningRun
		if err := rows.Scan(&run.ID, &run.JobDescription, &run.ResumeCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan screening run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunCandidates returns the ranked candidates of a run in rank order.
// A missing run yields an empty slice.
func (db *DB) GetRunCandidates(ctx context.Context, runID uuid.UUID) ([]types.RankedCandidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, email, phone, score, summary
		 FROM candidates
		 WHERE run_id = $1
		 ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get run candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]types.RankedCandidate, 0)
	for rows.Next() {
		var c types.RankedCandidate
		var summaryJSON []byte
		if err := rows.Scan(&c.Name, &c.Email, &c.Phone, &c.Score, &summaryJSON); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if summaryJSON != nil {
			_ = json.Unmarshal(summaryJSON, &c.Summary)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
