package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizdrill/quizdrill-backend/internal/domain"
)

// Result is the aggregate outcome of one ingestion run. It is built
// incrementally by the pipeline and finalized exactly once.
type Result struct {
	// RunID identifies this ingestion run (used by the question sink).
	RunID uuid.UUID
	// Success is true iff at least one file was discovered and downloaded
	// and at least one valid question was produced overall.
	Success bool
	// Message is a human-readable summary for the caller.
	Message string
	// TotalProcessed counts accepted questions; TotalFailed counts rows
	// that were rejected (short rows and validation failures). Blank rows
	// are not counted at all.
	TotalProcessed int
	TotalFailed    int
	// CategoriesFound is the unique set of categories present in the
	// accepted questions, in insertion order.
	CategoriesFound []string
	// Errors holds per-file failures (download, parse, schema); the run
	// continues past them. Warnings holds non-fatal diagnostics, including
	// per-row rejection reasons when strict mode is on.
	Errors   []string
	Warnings []string
	// ProcessingTime is wall-clock time since the run started.
	ProcessingTime time.Duration
	// Questions is the merged list of accepted questions from all files.
	Questions []domain.PracticeQuestion
}

// summaryMessage renders the success message from the final counts.
func summaryMessage(processed int, categories []string) string {
	noun := "questions"
	if processed == 1 {
		noun = "question"
	}
	if len(categories) > 0 && len(categories) <= 3 {
		return fmt.Sprintf("Imported %d %s across %s", processed, noun, strings.Join(categories, ", "))
	}
	return fmt.Sprintf("Imported %d %s across %d categories", processed, noun, len(categories))
}
