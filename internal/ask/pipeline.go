package ask

import (
	"context"
	"log/slog"
	"strings"
)

// Canned user-facing messages. Blocked questions get an explanation, not an
// error; provider outages get a generic retry message. Rate limiting vs
// misconfiguration is distinguished only in logs.
const (
	msgBlockedSensitive  = "Não posso responder perguntas que envolvam dados pessoais de alunos ou responsáveis, como telefone, email, endereço ou documentos."
	msgBlockedJudgmental = "Não posso fazer julgamentos de valor sobre alunos. Reformule a pergunta em termos de dados objetivos, como contagens de ocorrências por tipo ou período."
	msgProvidersDown     = "O serviço de análise está indisponível no momento. Tente novamente em instantes."
	msgExecutionFailed   = "Não foi possível executar a consulta gerada. Tente reformular a pergunta."
)

// Executor is the single database capability this core consumes: run an
// already-validated, already-tenant-substituted read-only SQL string and
// return rows as records. The concrete implementation lives outside the core.
type Executor interface {
	Query(ctx context.Context, sqlText string) ([]Row, error)
}

// GenerateSQLResult is the outcome of the generation stage.
type GenerateSQLResult struct {
	Success           bool         `json:"success"`
	Query             string       `json:"query,omitempty"`
	Error             string       `json:"error,omitempty"`
	Provider          ProviderName `json:"provider,omitempty"`
	BlockedSensitive  bool         `json:"blocked_sensitive,omitempty"`
	BlockedJudgmental bool         `json:"blocked_judgmental,omitempty"`
}

// ExplainResult is the outcome of the explanation stage. Provider is empty
// when the deterministic fallback text was used.
type ExplainResult struct {
	Explanation string       `json:"explanation"`
	Provider    ProviderName `json:"provider,omitempty"`
}

// AnswerResult is the outcome of the full question-to-answer pipeline.
type AnswerResult struct {
	Success             bool         `json:"success"`
	Answer              string       `json:"answer,omitempty"`
	Query               string       `json:"query,omitempty"`
	RowCount            int          `json:"row_count"`
	Error               string       `json:"error,omitempty"`
	SQLProvider         ProviderName `json:"sql_provider,omitempty"`
	ExplanationProvider ProviderName `json:"explanation_provider,omitempty"`
	BlockedSensitive    bool         `json:"blocked_sensitive,omitempty"`
	BlockedJudgmental   bool         `json:"blocked_judgmental,omitempty"`
}

// Pipeline is the natural-language analytics query pipeline. It is stateless
// across requests: every execution creates its entities at the start of one
// request and discards them at the end, so concurrent requests need no
// locking. Within a request the stages run strictly sequentially.
type Pipeline struct {
	primary   Provider
	secondary Provider
	log       *slog.Logger
}

// NewPipeline wires the two providers in their fixed fallback order.
func NewPipeline(primary, secondary Provider, log *slog.Logger) *Pipeline {
	return &Pipeline{primary: primary, secondary: secondary, log: log}
}

// GenerateSQL runs guard -> generation chain -> extraction -> tenant
// substitution -> validation for one question. The guard short-circuits
// before any network call: zero LLM tokens are spent on blocked questions.
func (p *Pipeline) GenerateSQL(ctx context.Context, question, schoolID string) GenerateSQLResult {
	c := Classify(question)
	if c.Sensitive || c.Judgmental {
		if p.log != nil {
			p.log.Info("Question blocked by input guard", "sensitive", c.Sensitive, "judgmental", c.Judgmental)
		}
		msg := msgBlockedSensitive
		if !c.Sensitive {
			msg = msgBlockedJudgmental
		}
		return GenerateSQLResult{
			Error:             msg,
			BlockedSensitive:  c.Sensitive,
			BlockedJudgmental: c.Judgmental,
		}
	}

	op := func(ctx context.Context, prov Provider) (string, error) {
		raw, err := prov.GenerateSQL(ctx, question)
		if err != nil {
			return "", err
		}
		stmt, err := ExtractSQL(raw)
		if err != nil {
			// A candidate without a statement is discarded; nothing to
			// retry, so it classifies terminal.
			return "", &ProviderError{Provider: prov.Name(), Class: FailureTerminal, Err: err}
		}
		return stmt, nil
	}

	stmt, name, err := runWithFallback(ctx, p.log, p.primary, p.secondary, op)
	if err != nil {
		if p.log != nil {
			p.log.Error("SQL generation failed on all providers", "error", err, "last_provider", name, "failure_class", failureClassOf(err))
		}
		return GenerateSQLResult{Error: msgProvidersDown, Provider: name}
	}

	// The only place the real tenant id enters the SQL text. The model only
	// ever sees the placeholder.
	query := strings.ReplaceAll(stmt, TenantPlaceholder, schoolID)

	if err := ValidateSQL(query); err != nil {
		if p.log != nil {
			p.log.Warn("Generated SQL rejected by validator", "reason", err, "provider", name)
		}
		return GenerateSQLResult{Error: err.Error(), Provider: name}
	}

	if p.log != nil {
		p.log.Info("SQL generated", "provider", name)
	}
	return GenerateSQLResult{Success: true, Query: query, Provider: name}
}

// ExplainResults turns rows into a natural-language answer: localization,
// the explanation chain, then sanitization. It never errors: when both
// providers fail it degrades to the deterministic row-count fallback, since
// valid data without narration beats an error screen.
func (p *Pipeline) ExplainResults(ctx context.Context, question string, rows []Row) ExplainResult {
	localized := LocalizeRows(rows)
	prompt := buildExplainPrompt(question, localized)

	op := func(ctx context.Context, prov Provider) (string, error) {
		return prov.ExplainResults(ctx, prompt)
	}

	text, name, err := runWithFallback(ctx, p.log, p.primary, p.secondary, op)
	if err != nil {
		if p.log != nil {
			p.log.Warn("Explanation failed on all providers, using statistical fallback", "error", err, "row_count", len(rows))
		}
		return ExplainResult{Explanation: fallbackExplanation(rows)}
	}

	return ExplainResult{Explanation: Sanitize(text), Provider: name}
}

// Answer runs the full pipeline for one question: generation, execution via
// the external executor, then explanation. The explanation chain starts at
// the primary again regardless of which provider generated the SQL.
func (p *Pipeline) Answer(ctx context.Context, question, schoolID string, exec Executor) AnswerResult {
	gen := p.GenerateSQL(ctx, question, schoolID)
	if !gen.Success {
		return AnswerResult{
			Error:             gen.Error,
			SQLProvider:       gen.Provider,
			BlockedSensitive:  gen.BlockedSensitive,
			BlockedJudgmental: gen.BlockedJudgmental,
		}
	}

	rows, err := exec.Query(ctx, gen.Query)
	if err != nil {
		if p.log != nil {
			p.log.Error("Query execution failed", "error", err, "provider", gen.Provider)
		}
		return AnswerResult{Query: gen.Query, SQLProvider: gen.Provider, Error: msgExecutionFailed}
	}

	exp := p.ExplainResults(ctx, question, rows)

	return AnswerResult{
		Success:             true,
		Answer:              exp.Explanation,
		Query:               gen.Query,
		RowCount:            len(rows),
		SQLProvider:         gen.Provider,
		ExplanationProvider: exp.Provider,
	}
}
