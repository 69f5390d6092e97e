package tabular

import "strings"

// CleanField turns a raw field into clean display text: trim, strip one
// layer of quotes if they wrap the entire remaining string, convert the
// literal escape sequences \n and \t into real newline and tab characters,
// trim again. Internal whitespace and newlines are preserved verbatim.
// Idempotent.
func CleanField(raw string) string {
	s := strings.TrimSpace(raw)

	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = s[1 : len(s)-1]
		}
	}

	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")

	return strings.TrimSpace(s)
}
