package ask

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Bold", "A turma **5º A** lidera.", "A turma 5º A lidera."},
		{"Italic", "O aluno *José* tem 3 ocorrências.", "O aluno José tem 3 ocorrências."},
		{"BoldUnderscore", "__Atenção__ ao total.", "Atenção ao total."},
		{"ItalicUnderscore", "Tipo _Atraso_ é o mais comum.", "Tipo Atraso é o mais comum."},
		{"Mixed", "**Resumo**: o tipo *Atraso* domina.", "Resumo: o tipo Atraso domina."},
		{"NoMarkers", "Foram 12 ocorrências em março.", "Foram 12 ocorrências em março."},
		{"WhitespacePreserved", "Linha 1.\n\nLinha 2.", "Linha 1.\n\nLinha 2."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
