package tabular

import "testing"

func TestMapHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		want    ColumnMapping
		wantErr bool
	}{
		{
			name:   "canonical header",
			header: []string{"Instruction", "Solution", "Category", "Type"},
			want:   ColumnMapping{Instruction: 0, Solution: 1, Category: 2, Type: 3},
		},
		{
			name:   "question answer topic synonyms",
			header: []string{"question", "answer", "topic"},
			want:   ColumnMapping{Instruction: 0, Solution: 1, Category: 2, Type: -1},
		},
		{
			name:   "mixed case",
			header: []string{"QUESTION TEXT", "Expected Answer", "Question Type"},
			want:   ColumnMapping{Instruction: 0, Solution: 1, Category: -1, Type: 2},
		},
		{
			name:   "reordered columns",
			header: []string{"Category", "Solution", "Instruction"},
			want:   ColumnMapping{Instruction: 2, Solution: 1, Category: 0, Type: -1},
		},
		{
			name:   "first match wins per role",
			header: []string{"Question", "Another Question", "Answer"},
			want:   ColumnMapping{Instruction: 0, Solution: 2, Category: -1, Type: -1},
		},
		{
			name:   "optional columns absent",
			header: []string{"Instruction", "Solution"},
			want:   ColumnMapping{Instruction: 0, Solution: 1, Category: -1, Type: -1},
		},
		{
			name:    "unrecognizable header",
			header:  []string{"Foo", "Bar"},
			wantErr: true,
		},
		{
			name:    "instruction only",
			header:  []string{"Instruction", "Notes"},
			wantErr: true,
		},
		{
			name:    "solution only",
			header:  []string{"Remarks", "Answer"},
			wantErr: true,
		},
		{
			name:    "empty header",
			header:  []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapHeader(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("MapHeader(%q) expected error, got %+v", tt.header, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("MapHeader(%q) unexpected error: %v", tt.header, err)
			}
			if got != tt.want {
				t.Errorf("MapHeader(%q) = %+v, want %+v", tt.header, got, tt.want)
			}
		})
	}
}
