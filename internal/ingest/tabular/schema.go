package tabular

import (
	"fmt"
	"strings"
)

// ColumnMapping records which column of a file holds which semantic role.
// Category and Type are -1 when the file has no such column.
type ColumnMapping struct {
	Instruction int
	Solution    int
	Category    int
	Type        int
}

// MapHeader infers a ColumnMapping from a header row. Matching is
// case-insensitive substring search; the first matching column wins for
// each role independently. A header without a recognizable instruction or
// solution column is an error; the caller must abort that file.
func MapHeader(fields []string) (ColumnMapping, error) {
	m := ColumnMapping{Instruction: -1, Solution: -1, Category: -1, Type: -1}

	for i, f := range fields {
		h := strings.ToLower(strings.TrimSpace(f))
		if m.Instruction == -1 && (strings.Contains(h, "instruction") || strings.Contains(h, "question")) {
			m.Instruction = i
		}
		if m.Solution == -1 && (strings.Contains(h, "solution") || strings.Contains(h, "answer")) {
			m.Solution = i
		}
		if m.Category == -1 && (strings.Contains(h, "category") || strings.Contains(h, "topic")) {
			m.Category = i
		}
		if m.Type == -1 && strings.Contains(h, "type") {
			m.Type = i
		}
	}

	var missing []string
	if m.Instruction == -1 {
		missing = append(missing, "instruction/question")
	}
	if m.Solution == -1 {
		missing = append(missing, "solution/answer")
	}
	if len(missing) > 0 {
		return m, fmt.Errorf("header has no recognizable %s column", strings.Join(missing, " or "))
	}

	return m, nil
}
