package ask

import "strings"

// Keyword lists for the pre-LLM safety gate. Matching is lowercase substring
// containment, so entries must be chosen to avoid collisions with harmless
// words ("idade" would match "quantidade", hence the longer forms below).
var sensitiveKeywords = []string{
	"telefone",
	"celular",
	"email",
	"e-mail",
	"endereço",
	"endereco",
	"data de nascimento",
	"nascimento",
	"quantos anos",
	"cpf",
	"rg do",
	"rg da",
	"senha",
}

var judgmentalKeywords = []string{
	"melhor aluno",
	"melhor aluna",
	"pior",
	"mais problemático",
	"mais problematico",
	"aluno problema",
	"indisciplinado",
	"indisciplinada",
	"bagunceiro",
	"bagunceira",
	"mal comportado",
	"mal comportada",
	"preguiçoso",
	"preguicoso",
	"culpado",
	"culpada",
}

// Classification is the verdict of the pre-LLM input gate.
type Classification struct {
	Sensitive  bool
	Judgmental bool
}

// Classify checks a question against the fixed keyword lists. It is a pure
// function and runs before any provider is contacted: a question flagged here
// never reaches an LLM. Both checks are evaluated independently so a question
// matching both lists reports both flags.
func Classify(question string) Classification {
	lower := strings.ToLower(question)

	var c Classification
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			c.Sensitive = true
			break
		}
	}
	for _, kw := range judgmentalKeywords {
		if strings.Contains(lower, kw) {
			c.Judgmental = true
			break
		}
	}
	return c
}
