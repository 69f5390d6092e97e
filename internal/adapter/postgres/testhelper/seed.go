package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedRun inserts an ingestion_runs row and returns its id. Questions
// reference runs via a foreign key, so most tests need one first.
func SeedRun(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	runID := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO ingestion_runs (id, success, message, total_processed, total_failed, processing_time_ms)
		 VALUES ($1, true, 'seeded', 0, 0, 0)`,
		runID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRun insert: %v", err)
	}

	return runID
}

// SeedQuestion inserts one practice_questions row for the given run and
// returns its id.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, runID uuid.UUID, question, answer, category, questionType string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO practice_questions (id, run_id, question, answer, category, question_type)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, runID, question, answer, category, questionType,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert: %v", err)
	}

	return id
}
