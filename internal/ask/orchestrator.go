package ask

import (
	"context"
	"log/slog"
)

// runWithFallback runs op against the primary provider and, only when the
// failure is classified retryable, once against the secondary. The chain
// length is fixed at two; there is never a third attempt. When the secondary
// also fails, its error (the most recent one) is what the caller sees.
func runWithFallback[T any](ctx context.Context, log *slog.Logger, primary, secondary Provider, op func(context.Context, Provider) (T, error)) (T, ProviderName, error) {
	out, err := op(ctx, primary)
	if err == nil {
		return out, primary.Name(), nil
	}

	var zero T
	if failureClassOf(err) == FailureTerminal {
		if log != nil {
			log.Error("Primary provider failed, no fallback for terminal errors", "error", err, "provider", primary.Name())
		}
		return zero, primary.Name(), err
	}

	if log != nil {
		log.Warn("Primary provider unavailable, falling back to secondary", "error", err, "provider", primary.Name())
	}

	out, err = op(ctx, secondary)
	if err != nil {
		if log != nil {
			log.Error("Secondary provider failed", "error", err, "provider", secondary.Name())
		}
		return zero, secondary.Name(), err
	}
	return out, secondary.Name(), nil
}
