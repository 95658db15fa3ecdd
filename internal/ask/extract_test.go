package ask

import (
	"strings"
	"testing"
)

func TestExtractSQL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "FencedSelect",
			raw:  "```sql\nSELECT 1\n```",
			want: "SELECT 1",
		},
		{
			name: "FenceUppercase",
			raw:  "```SQL\nSELECT 1\n```",
			want: "SELECT 1",
		},
		{
			name: "BareFence",
			raw:  "```\nSELECT name FROM students\n```",
			want: "SELECT name FROM students",
		},
		{
			name: "PlainStatement",
			raw:  "  SELECT COUNT(*) FROM occurrences  ",
			want: "SELECT COUNT(*) FROM occurrences",
		},
		{
			name: "TrailingTerminator",
			raw:  "SELECT 1;",
			want: "SELECT 1",
		},
		{
			name: "ProseBeforeStatement",
			raw:  "Aqui está a consulta:\n\nSELECT name FROM classes ORDER BY name",
			want: "SELECT name FROM classes ORDER BY name",
		},
		{
			name: "CTEWinsOverInnerSelect",
			raw:  "Segue a consulta pedida:\nWITH ranked AS (SELECT id FROM occurrences) SELECT * FROM ranked",
			want: "WITH ranked AS (SELECT id FROM occurrences) SELECT * FROM ranked",
		},
		{
			name: "FencedCTE",
			raw:  "```sql\nWITH t AS (SELECT 1 AS n) SELECT n FROM t;\n```",
			want: "WITH t AS (SELECT 1 AS n) SELECT n FROM t",
		},
		{
			name:    "NoStatement",
			raw:     "Desculpe, não consigo gerar essa consulta.",
			wantErr: true,
		},
		{
			name:    "Empty",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSQL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractSQL(%q) expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractSQL(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ExtractSQL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractSQLStartsAtCTE(t *testing.T) {
	raw := "A consulta usa ranking por turma.\n\nWITH ranked AS (\n  SELECT id FROM occurrences\n)\nSELECT * FROM ranked WHERE pos <= 3\n"
	got, err := ExtractSQL(raw)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "WITH") {
		t.Errorf("Expected extraction to start at WITH, got %q", got)
	}
}
