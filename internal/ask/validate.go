package ask

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// forbiddenStmtRe matches write/DDL keywords as whole words only, so an
// identifier or literal that merely contains one ("Dropout") does not trip it.
var forbiddenStmtRe = regexp.MustCompile(`(?i)\b(DELETE|DROP|UPDATE|INSERT|ALTER|TRUNCATE|GRANT|REVOKE)\b`)

// sensitiveColumns are matched as plain substrings anywhere in the statement.
// "phone" and "email" also cover the guardian_* contact columns.
var sensitiveColumns = []string{
	"birth_date",
	"email",
	"phone",
	"address",
	"password",
	"guardian",
}

// ValidateSQL is a static safety check on a generated statement. It is a
// defense-in-depth layer on top of the read-only, tenant-isolated executor,
// not the sole safety boundary: no parsing, no execution, first failure wins.
// A nil return means the statement passed; a non-nil error carries a
// user-presentable rejection reason.
func ValidateSQL(sqlText string) error {
	upper := strings.ToUpper(strings.TrimSpace(sqlText))
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return errors.New("apenas consultas de leitura (SELECT) são permitidas")
	}

	if m := forbiddenStmtRe.FindString(sqlText); m != "" {
		return fmt.Errorf("a consulta contém um comando não permitido: %s", strings.ToUpper(m))
	}

	lower := strings.ToLower(sqlText)
	for _, col := range sensitiveColumns {
		if strings.Contains(lower, col) {
			return fmt.Errorf("a consulta referencia dados pessoais protegidos (%s)", col)
		}
	}

	return nil
}
