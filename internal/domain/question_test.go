package domain

import (
	"errors"
	"strings"
	"testing"
)

func validQuestion() PracticeQuestion {
	return PracticeQuestion{
		Question: "What is a goroutine?",
		Answer:   "A lightweight thread managed by the Go runtime.",
		Category: "Concurrency",
		Type:     QuestionTypeTheoretical,
	}
}

func TestPracticeQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PracticeQuestion)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(q *PracticeQuestion) {},
		},
		{
			name:    "empty question",
			mutate:  func(q *PracticeQuestion) { q.Question = "" },
			wantErr: true,
		},
		{
			name:    "empty answer",
			mutate:  func(q *PracticeQuestion) { q.Answer = "" },
			wantErr: true,
		},
		{
			name:    "empty category",
			mutate:  func(q *PracticeQuestion) { q.Category = "" },
			wantErr: true,
		},
		{
			name:   "question at limit",
			mutate: func(q *PracticeQuestion) { q.Question = strings.Repeat("a", MaxQuestionLen) },
		},
		{
			name:    "question over limit",
			mutate:  func(q *PracticeQuestion) { q.Question = strings.Repeat("a", MaxQuestionLen+1) },
			wantErr: true,
		},
		{
			name:   "answer at limit",
			mutate: func(q *PracticeQuestion) { q.Answer = strings.Repeat("b", MaxAnswerLen) },
		},
		{
			name:    "answer over limit",
			mutate:  func(q *PracticeQuestion) { q.Answer = strings.Repeat("b", MaxAnswerLen+1) },
			wantErr: true,
		},
		{
			name:    "category over limit",
			mutate:  func(q *PracticeQuestion) { q.Category = strings.Repeat("c", MaxCategoryLen+1) },
			wantErr: true,
		},
		{
			name: "question equals answer",
			mutate: func(q *PracticeQuestion) {
				q.Question = "same text"
				q.Answer = "same text"
			},
			wantErr: true,
		},
		{
			name:    "invalid type",
			mutate:  func(q *PracticeQuestion) { q.Type = "Quiz" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)

			err := q.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("error should wrap ErrValidation, got %v", err)
			}
		})
	}
}

func TestNormalizeQuestionType(t *testing.T) {
	tests := []struct {
		raw  string
		want QuestionType
	}{
		{"Practical", QuestionTypePractical},
		{"practical exercise", QuestionTypePractical},
		{"Coding Challenge", QuestionTypePractical},
		{"CODE review", QuestionTypePractical},
		{"Theoretical", QuestionTypeTheoretical},
		{"Conceptual", QuestionTypeTheoretical},
		{"", QuestionTypeTheoretical},
		{"   ", QuestionTypeTheoretical},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeQuestionType(tt.raw); got != tt.want {
				t.Errorf("NormalizeQuestionType(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQuestionType_IsValid(t *testing.T) {
	if !QuestionTypePractical.IsValid() || !QuestionTypeTheoretical.IsValid() {
		t.Error("canonical types must be valid")
	}
	if QuestionType("other").IsValid() {
		t.Error("unknown type must be invalid")
	}
}
