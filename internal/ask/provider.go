package ask

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ProviderName identifies a provider's position in the fallback chain. It is
// used for attribution in responses and logs, never for business branching.
type ProviderName string

const (
	ProviderPrimary   ProviderName = "primary"
	ProviderSecondary ProviderName = "secondary"
)

// FailureClass decides whether the orchestrator moves on to the next provider.
type FailureClass int

const (
	// FailureTerminal covers bad or missing credentials and anything else
	// not explicitly classified. No fallback is attempted.
	FailureTerminal FailureClass = iota
	// FailureRateLimited covers quota exhaustion plus unavailable models,
	// 404s and transient network errors. Folding unavailability in here is
	// an availability-over-precision tradeoff: trying the fallback beats
	// surfacing a config error, at the cost of possibly masking a broken
	// primary configuration. The class is logged so it stays visible.
	FailureRateLimited
)

// ProviderError is the only error shape adapters are allowed to return. Raw
// SDK and network errors never escape an adapter.
type ProviderError struct {
	Provider ProviderName
	Class    FailureClass
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Provider is the capability both pipeline stages depend on. Exactly two
// concrete implementations exist, selected by static configuration order;
// the orchestrator never sees vendor-specific types.
type Provider interface {
	Name() ProviderName
	GenerateSQL(ctx context.Context, question string) (string, error)
	ExplainResults(ctx context.Context, prompt string) (string, error)
}

// classifyFailure maps an SDK/network error onto a FailureClass by message
// shape. Unrecognized errors are terminal.
func classifyFailure(err error) FailureClass {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureRateLimited
	}

	msg := strings.ToLower(err.Error())
	retryable := []string{
		"rate limit",
		"rate_limit",
		"too many requests",
		"429",
		"quota",
		"resource_exhausted",
		"overloaded",
		"404",
		"not found",
		"not supported",
		"unavailable",
		"connection refused",
		"connection reset",
		"timeout",
		"deadline exceeded",
	}
	for _, marker := range retryable {
		if strings.Contains(msg, marker) {
			return FailureRateLimited
		}
	}
	return FailureTerminal
}

// failureClassOf extracts the class from a chain of wrapped errors. Anything
// that is not a ProviderError counts as terminal.
func failureClassOf(err error) FailureClass {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Class
	}
	return FailureTerminal
}

// brokenProvider stands in for a provider whose client could not be
// constructed (typically missing credentials). Every call fails with the
// construction error, classified terminal, so a misconfigured secondary
// behaves exactly like a secondary failure instead of a crash.
type brokenProvider struct {
	name ProviderName
	err  error
}

// NewBrokenProvider wraps a construction error as an always-failing Provider.
func NewBrokenProvider(name ProviderName, err error) Provider {
	return &brokenProvider{name: name, err: err}
}

func (p *brokenProvider) Name() ProviderName { return p.name }

func (p *brokenProvider) GenerateSQL(ctx context.Context, question string) (string, error) {
	return "", &ProviderError{Provider: p.name, Class: FailureTerminal, Err: p.err}
}

func (p *brokenProvider) ExplainResults(ctx context.Context, prompt string) (string, error) {
	return "", &ProviderError{Provider: p.name, Class: FailureTerminal, Err: p.err}
}
