package drive

import "testing"

func TestQuery(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Query
		want  string
	}{
		{
			name: "primary search",
			build: func() *Query {
				return NewQuery().
					InFolder("folder-1").
					AnyNameContains("class", "practice").
					MimeType(MimeTypeCSV).
					NotTrashed()
			},
			want: "'folder-1' in parents and (name contains 'class' or name contains 'practice') and mimeType = 'text/csv' and trashed = false",
		},
		{
			name: "exact name probe",
			build: func() *Query {
				return NewQuery().NameEquals("class3_practice.csv").NotTrashed()
			},
			want: "name = 'class3_practice.csv' and trashed = false",
		},
		{
			name: "single quotes escaped",
			build: func() *Query {
				return NewQuery().NameEquals("bob's file.csv")
			},
			want: `name = 'bob\'s file.csv'`,
		},
		{
			name:  "empty query",
			build: NewQuery,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().String(); got != tt.want {
				t.Errorf("Query.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
