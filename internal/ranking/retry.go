package ranking

import (
	"context"
	"log/slog"
	"time"

	"github.com/vietddude/ranksync/internal/core/domain"
	"github.com/vietddude/ranksync/internal/metrics"
)

// Action determines how the retry executor handles a failed attempt.
type Action int

const (
	// ActionRetry retries immediately.
	ActionRetry Action = iota
	// ActionCooldown waits the policy's cooldown, then retries.
	ActionCooldown
	// ActionFatal propagates the error as-is with no further attempts.
	ActionFatal
	// ActionResolve converts the error into success.
	ActionResolve
)

// Classifier maps an attempt's error to an Action. Classification runs
// once per failed attempt; it never sees a nil error.
type Classifier func(err error) Action

// Policy is a bounded retry executor with a fixed rate-limit cooldown.
// One Policy value is scoped to one logical endpoint; the attempt counter
// lives only for the duration of a single Do call.
type Policy struct {
	// Operation names the logical endpoint in the exhaustion error.
	Operation   string
	MaxAttempts int
	Cooldown    time.Duration
}

// Do runs op until it succeeds, a classification resolves or kills it,
// or the attempt budget runs out. The cooldown sleep is context-aware.
func (p Policy) Do(ctx context.Context, classify Classifier, op func(context.Context) error) error {
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}

		action := classify(err)
		switch action {
		case ActionResolve:
			return nil
		case ActionFatal:
			return err
		}

		if attempt == p.MaxAttempts {
			break
		}

		metrics.RetryAttempts.WithLabelValues(p.Operation).Inc()
		if action == ActionCooldown {
			metrics.RateLimitCooldowns.WithLabelValues(p.Operation).Inc()
			slog.Debug("rate limited, cooling down",
				"operation", p.Operation, "attempt", attempt, "cooldown", p.Cooldown)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Cooldown):
			}
		} else {
			slog.Debug("attempt failed, retrying",
				"operation", p.Operation, "attempt", attempt, "error", err)
		}
	}

	return &domain.RetryLimitError{Endpoint: p.Operation}
}
