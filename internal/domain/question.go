package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Structural limits for a practice question. Rows exceeding them are
// rejected by the ingestion pipeline, never truncated.
const (
	MaxQuestionLen = 1000
	MaxAnswerLen   = 5000
	MaxCategoryLen = 100
)

// DefaultCategory is assigned when a source file has no category column.
const DefaultCategory = "General"

// QuestionType classifies a practice question.
type QuestionType string

const (
	QuestionTypePractical   QuestionType = "Practical"
	QuestionTypeTheoretical QuestionType = "Theoretical"
)

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypePractical, QuestionTypeTheoretical:
		return true
	}
	return false
}

// NormalizeQuestionType maps free-form type text from a source file to a
// QuestionType. Anything mentioning practical or coding work is Practical;
// everything else, including empty text, is Theoretical.
func NormalizeQuestionType(raw string) QuestionType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(s, "practical") || strings.Contains(s, "coding") || strings.Contains(s, "code") {
		return QuestionTypePractical
	}
	return QuestionTypeTheoretical
}

// PracticeQuestion is one validated practice-question record.
// Immutable once produced by the ingestion pipeline.
type PracticeQuestion struct {
	Question string
	Answer   string
	Category string
	Type     QuestionType
}

// Validate checks the structural invariants of a question record.
// Returns an error wrapping ErrValidation on any violation.
func (q PracticeQuestion) Validate() error {
	err := validation.ValidateStruct(&q,
		validation.Field(&q.Question, validation.Required, validation.RuneLength(1, MaxQuestionLen)),
		validation.Field(&q.Answer, validation.Required, validation.RuneLength(1, MaxAnswerLen)),
		validation.Field(&q.Category, validation.Required, validation.RuneLength(1, MaxCategoryLen)),
		validation.Field(&q.Type, validation.By(func(any) error {
			if !q.Type.IsValid() {
				return validation.NewError("validation_question_type", "must be Practical or Theoretical")
			}
			return nil
		})),
	)
	if err != nil {
		return NewValidationError("question", err.Error())
	}
	if q.Question == q.Answer {
		return NewValidationError("question", "must not be identical to answer")
	}
	return nil
}
