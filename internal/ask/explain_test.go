package ask

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildExplainPrompt(t *testing.T) {
	t.Run("EmbedsQuestionAndRows", func(t *testing.T) {
		rows := []Row{{"class_name": "5º A", "total": 3}}
		prompt := buildExplainPrompt("Quantas ocorrências por turma?", rows)

		if !strings.Contains(prompt, "Quantas ocorrências por turma?") {
			t.Error("Expected prompt to contain the question")
		}
		if !strings.Contains(prompt, "5º A") {
			t.Error("Expected prompt to contain row data")
		}
		if !strings.Contains(prompt, "TODOS os grupos") {
			t.Error("Expected prompt to carry the enumerate-every-group instruction")
		}
	})

	t.Run("CapsRowsAndNotesOmitted", func(t *testing.T) {
		rows := make([]Row, 35)
		for i := range rows {
			rows[i] = Row{"student": fmt.Sprintf("aluno-%d", i)}
		}
		prompt := buildExplainPrompt("pergunta", rows)

		if !strings.Contains(prompt, "aluno-19") {
			t.Error("Expected row 19 to be included")
		}
		if strings.Contains(prompt, "aluno-20") {
			t.Error("Expected rows past the cap to be omitted")
		}
		if !strings.Contains(prompt, "mais 15 linha(s) omitida(s)") {
			t.Error("Expected omitted-row note")
		}
		if !strings.Contains(prompt, "(35 linha(s))") {
			t.Error("Expected total row count")
		}
	})
}

func TestFallbackExplanation(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		want string
	}{
		{"Empty", nil, "Nenhum resultado encontrado."},
		{"One", []Row{{"a": 1}}, "1 resultado encontrado."},
		{"Many", []Row{{"a": 1}, {"a": 2}, {"a": 3}}, "3 resultados encontrados."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fallbackExplanation(tt.rows); got != tt.want {
				t.Errorf("fallbackExplanation = %q, want %q", got, tt.want)
			}
		})
	}
}
