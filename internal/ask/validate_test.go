package ask

import (
	"strings"
	"testing"
)

func TestValidateSQL(t *testing.T) {
	tests := []struct {
		name       string
		sql        string
		wantReason string // empty means the statement must pass
	}{
		{
			name: "PlainSelect",
			sql:  "SELECT name FROM students WHERE school_id = '42'",
		},
		{
			name: "CTE",
			sql:  "WITH ranked AS (SELECT id FROM occurrences) SELECT * FROM ranked",
		},
		{
			name: "LowercaseSelect",
			sql:  "select count(*) from occurrences",
		},
		{
			name:       "Update",
			sql:        "UPDATE students SET status = 'inactive'",
			wantReason: "apenas consultas de leitura",
		},
		{
			name:       "Delete",
			sql:        "DELETE FROM occurrences",
			wantReason: "apenas consultas de leitura",
		},
		{
			name:       "PiggybackedDrop",
			sql:        "SELECT * FROM students; DROP TABLE students",
			wantReason: "comando não permitido: DROP",
		},
		{
			name: "DropoutLiteralPasses",
			sql:  "SELECT * FROM students WHERE category = 'Dropout Risk'",
		},
		{
			name:       "SensitiveColumnBirthDate",
			sql:        "SELECT birth_date FROM students",
			wantReason: "dados pessoais protegidos",
		},
		{
			name:       "SensitiveColumnGuardianPhone",
			sql:        "SELECT guardian_phone FROM students WHERE school_id = '42'",
			wantReason: "dados pessoais protegidos",
		},
		{
			name:       "SensitiveColumnPassword",
			sql:        "SELECT password FROM users",
			wantReason: "dados pessoais protegidos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSQL(tt.sql)
			if tt.wantReason == "" {
				if err != nil {
					t.Errorf("ValidateSQL(%q) unexpected rejection: %v", tt.sql, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateSQL(%q) expected rejection", tt.sql)
			}
			if !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("ValidateSQL(%q) reason = %q, want it to contain %q", tt.sql, err.Error(), tt.wantReason)
			}
		})
	}
}
