package tabular

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quizdrill/quizdrill-backend/internal/domain"
)

// ErrEmptyRow marks a data row whose instruction and solution are both
// blank. Such rows are skipped without being counted as failures.
var ErrEmptyRow = errors.New("empty row")

// BuildQuestion turns one tokenized data row into a validated
// PracticeQuestion using the given column mapping. The returned error
// describes why the row was dropped; ErrEmptyRow means the row carried no
// content at all.
func BuildQuestion(fields []string, m ColumnMapping) (domain.PracticeQuestion, error) {
	need := max(m.Instruction, m.Solution) + 1
	if len(fields) < need {
		return domain.PracticeQuestion{}, fmt.Errorf("row has %d fields, need at least %d", len(fields), need)
	}

	instruction := fields[m.Instruction]
	solution := fields[m.Solution]

	category := domain.DefaultCategory
	if m.Category >= 0 && m.Category < len(fields) {
		if c := strings.TrimSpace(fields[m.Category]); c != "" {
			category = c
		}
	}

	var typeRaw string
	if m.Type >= 0 && m.Type < len(fields) {
		typeRaw = fields[m.Type]
	}

	if strings.TrimSpace(instruction) == "" && strings.TrimSpace(solution) == "" {
		return domain.PracticeQuestion{}, ErrEmptyRow
	}

	q := domain.PracticeQuestion{
		Question: CleanField(instruction),
		Answer:   CleanField(solution),
		Category: category,
		Type:     domain.NormalizeQuestionType(typeRaw),
	}

	if err := q.Validate(); err != nil {
		return domain.PracticeQuestion{}, err
	}

	return q, nil
}
