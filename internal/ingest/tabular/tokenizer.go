// Package tabular parses delimited practice-question files.
// Pure functions: header and data lines in, domain structs out. No I/O.
package tabular

import "strings"

// SplitLine splits one line of a delimited file into trimmed field values,
// honoring quoting. A span may be opened by either a single or a double
// quote; only the same character closes it. A doubled quote character inside
// an open span is one literal quote. Quote characters delimiting a span are
// not part of the field value. Unterminated spans end at end-of-line.
// SplitLine never fails; malformed quoting degrades to a best-effort split.
func SplitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	var quote rune // 0 = outside any quoted span

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
		case quote != 0 && r == quote:
			if i+1 < len(runes) && runes[i+1] == quote {
				// Doubled quote: literal character, skip the second one.
				cur.WriteRune(r)
				i++
			} else {
				quote = 0
			}
		case quote == 0 && r == ',':
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))

	return fields
}
