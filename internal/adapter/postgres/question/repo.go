// Package question implements the practice question sink using PostgreSQL.
// One ingestion run writes one ingestion_runs row plus a batch of
// practice_questions rows, atomically when wrapped in a transaction.
package question

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/quizdrill/quizdrill-backend/internal/adapter/postgres"
	"github.com/quizdrill/quizdrill-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RunSummary is the persisted outcome of one ingestion run.
type RunSummary struct {
	ID             uuid.UUID
	Success        bool
	Message        string
	TotalProcessed int
	TotalFailed    int
	ProcessingTime time.Duration
}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// RecordRun inserts the run summary row. Failed runs are recorded too.
// Returns domain.ErrAlreadyExists when the run id was already recorded.
func (r *Repo) RecordRun(ctx context.Context, run RunSummary) error {
	query, args, err := psql.Insert("ingestion_runs").
		Columns("id", "success", "message", "total_processed", "total_failed", "processing_time_ms").
		Values(run.ID, run.Success, run.Message, run.TotalProcessed, run.TotalFailed, run.ProcessingTime.Milliseconds()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build run insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "ingestion_run", run.ID)
	}

	return nil
}

// InsertBatch bulk-inserts the accepted questions of one run in a single
// multi-row statement. Returns the number of rows written.
// Returns domain.ErrNotFound when the run id has no ingestion_runs row.
func (r *Repo) InsertBatch(ctx context.Context, runID uuid.UUID, questions []domain.PracticeQuestion) (int, error) {
	if len(questions) == 0 {
		return 0, nil
	}

	builder := psql.Insert("practice_questions").
		Columns("id", "run_id", "question", "answer", "category", "question_type")
	for _, q := range questions {
		builder = builder.Values(uuid.New(), runID, q.Question, q.Answer, q.Category, string(q.Type))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build question insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "practice_question", runID)
	}

	return int(tag.RowsAffected()), nil
}

// GetByRunID returns the questions stored for one run, ordered by category
// then question text.
func (r *Repo) GetByRunID(ctx context.Context, runID uuid.UUID) ([]domain.PracticeQuestion, error) {
	query, args, err := psql.Select("question", "answer", "category", "question_type").
		From("practice_questions").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("category", "question").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build question select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "practice_question", runID)
	}
	defer rows.Close()

	var out []domain.PracticeQuestion
	for rows.Next() {
		var (
			q  domain.PracticeQuestion
			qt string
		)
		if err := rows.Scan(&q.Question, &q.Answer, &q.Category, &qt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Type = domain.QuestionType(qt)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return out, nil
}

// CountByCategory returns per-category question counts across all runs,
// ordered by category name.
func (r *Repo) CountByCategory(ctx context.Context) (map[string]int, error) {
	query, args, err := psql.Select("category", "count(*)").
		From("practice_questions").
		GroupBy("category").
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category count: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			category string
			n        int
		)
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}

	return counts, nil
}
