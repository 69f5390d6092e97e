package drive

import (
	"fmt"
	"strings"
)

// Query composes the q-expression, field projection and paging parameters
// of one listing call. Clauses added through the builder methods are joined
// with "and".
type Query struct {
	clauses  []string
	PageSize int
	OrderBy  string
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// InFolder scopes the query to a folder (container) id.
func (q *Query) InFolder(folderID string) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("'%s' in parents", escapeQuery(folderID)))
	return q
}

// NameEquals matches an exact file name.
func (q *Query) NameEquals(name string) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("name = '%s'", escapeQuery(name)))
	return q
}

// AnyNameContains matches files whose name contains any of the given
// substrings (joined with "or" inside one parenthesized clause).
func (q *Query) AnyNameContains(subs ...string) *Query {
	parts := make([]string, 0, len(subs))
	for _, s := range subs {
		parts = append(parts, fmt.Sprintf("name contains '%s'", escapeQuery(s)))
	}
	q.clauses = append(q.clauses, "("+strings.Join(parts, " or ")+")")
	return q
}

// MimeType matches an exact MIME type.
func (q *Query) MimeType(mime string) *Query {
	q.clauses = append(q.clauses, fmt.Sprintf("mimeType = '%s'", escapeQuery(mime)))
	return q
}

// NotTrashed excludes trashed files.
func (q *Query) NotTrashed() *Query {
	q.clauses = append(q.clauses, "trashed = false")
	return q
}

// String renders the q-expression.
func (q *Query) String() string {
	return strings.Join(q.clauses, " and ")
}

// escapeQuery escapes single quotes so user-supplied names cannot break
// out of the quoted literal.
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
