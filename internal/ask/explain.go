package ask

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxExplainRows caps how many rows are embedded in the explanation prompt.
const maxExplainRows = 20

// buildExplainPrompt embeds the question and a size-capped sample of the
// localized rows. The "enumerate every group" instruction is load-bearing:
// naive summarization of grouped results (a per-class ranking, say) silently
// drops groups.
func buildExplainPrompt(question string, rows []Row) string {
	var b strings.Builder

	b.WriteString("Você é um assistente de um sistema de gestão escolar. Um administrador fez uma pergunta e a consulta ao banco de dados retornou os resultados abaixo.\n\n")
	b.WriteString(fmt.Sprintf("Pergunta: \"%s\"\n\n", question))

	shown := rows
	omitted := 0
	if len(rows) > maxExplainRows {
		shown = rows[:maxExplainRows]
		omitted = len(rows) - maxExplainRows
	}

	b.WriteString(fmt.Sprintf("Resultados (%d linha(s)):\n", len(rows)))
	for _, row := range shown {
		line, err := json.Marshal(row)
		if err != nil {
			continue
		}
		b.Write(line)
		b.WriteString("\n")
	}
	if omitted > 0 {
		b.WriteString(fmt.Sprintf("(... mais %d linha(s) omitida(s))\n", omitted))
	}

	b.WriteString(`
Instruções:
- Responda em português, de forma direta e objetiva.
- Use SOMENTE a pergunta e os dados acima; não invente informações.
- Se os dados contiverem múltiplos grupos (por exemplo, um ranking por turma), enumere TODOS os grupos presentes, nunca apenas uma parte deles.
- Não mencione SQL, tabelas ou o banco de dados na resposta.`)

	return b.String()
}

// fallbackExplanation is the deterministic non-LLM answer used when both
// providers fail the explanation stage. Derived purely from row count.
func fallbackExplanation(rows []Row) string {
	switch n := len(rows); n {
	case 0:
		return "Nenhum resultado encontrado."
	case 1:
		return "1 resultado encontrado."
	default:
		return fmt.Sprintf("%d resultados encontrados.", n)
	}
}
