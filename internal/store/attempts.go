package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Attempt records one graded pass over a question set.
// The report is stored as opaque JSON; the store never interprets it.
type Attempt struct {
	AttemptID  string
	PassageID  string
	SetID      string
	StartedAt  time.Time
	GradedAt   time.Time
	ReportJSON string
}

// AttemptRepo manages graded attempts.
type AttemptRepo interface {
	// Save stores an attempt. Saving the same attempt ID again replaces
	// the stored report (regrading is idempotent).
	Save(ctx context.Context, a *Attempt) error

	// ListByPassage returns attempts for a passage, newest first.
	ListByPassage(ctx context.Context, passageID string, limit int) ([]Attempt, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, a *Attempt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (attempt_id, passage_id, set_id, started_at, graded_at, report_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(attempt_id) DO UPDATE SET
			graded_at = excluded.graded_at,
			report_json = excluded.report_json`,
		a.AttemptID, a.PassageID, a.SetID, a.StartedAt, a.GradedAt, a.ReportJSON,
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByPassage(ctx context.Context, passageID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT attempt_id, passage_id, set_id, started_at, COALESCE(graded_at, started_at), report_json
		FROM attempts
		WHERE passage_id = ?
		ORDER BY started_at DESC
		LIMIT ?`, passageID, limit)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.AttemptID, &a.PassageID, &a.SetID, &a.StartedAt, &a.GradedAt, &a.ReportJSON); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
