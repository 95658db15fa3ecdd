package ask

import (
	"fmt"
	"regexp"
	"strings"
)

// Model output is adversarial input: freeform text that may or may not wrap
// the statement in markdown fences, prose, or a trailing terminator. All of
// the parsing lives in ExtractSQL and nowhere else.
var (
	codeFenceRe = regexp.MustCompile("(?i)```sql|```")
	withStmtRe  = regexp.MustCompile(`(?is)\bWITH\b.*`)
	selectRe    = regexp.MustCompile(`(?is)\bSELECT\b.*`)
)

// ExtractSQL pulls a single SELECT/WITH statement out of raw model output.
// WITH wins over SELECT so a CTE is captured from its start rather than from
// the inner SELECT. Returns an error when no statement is found; the caller
// discards the candidate in that case.
func ExtractSQL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = codeFenceRe.ReplaceAllString(s, "")

	stmt := withStmtRe.FindString(s)
	if stmt == "" {
		stmt = selectRe.FindString(s)
	}
	if stmt == "" {
		return "", fmt.Errorf("no SELECT or WITH statement in model output")
	}

	stmt = strings.TrimSpace(stmt)
	stmt = strings.TrimSuffix(stmt, ";")
	return strings.TrimSpace(stmt), nil
}
