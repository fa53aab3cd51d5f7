// Package batch runs an operation over a list of items in laps, retrying the
// items that failed until they all succeed or the attempt ceiling is hit.
package batch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

// Options configures Run. Key is required.
type Options[T any, K comparable] struct {
	// Name labels log lines, e.g. "load complex resources".
	Name string

	// MaxAttempts is the lap ceiling. Values below 1 mean a single lap.
	MaxAttempts int

	// Key identifies an item in the outcome. Items sharing a key after the
	// first are dropped before the first lap.
	Key func(T) K

	// Pause is waited between laps. Zero means no wait.
	Pause time.Duration

	Logger *slog.Logger
}

// Op is invoked once per item per lap. isLast is true only for the final
// item of the current lap.
type Op[T any] func(ctx context.Context, item T, isLast bool) error

type Result struct {
	Succeeded bool
	Attempts  int
	Err       error
}

// Outcome holds the per-item result of a Run in input order.
type Outcome[K comparable] struct {
	order   []K
	results map[K]Result
}

func (o Outcome[K]) Result(key K) (Result, bool) {
	result, ok := o.results[key]
	return result, ok
}

func (o Outcome[K]) Keys() []K {
	return append([]K(nil), o.order...)
}

func (o Outcome[K]) Succeeded() []K {
	return o.filter(true)
}

func (o Outcome[K]) Failed() []K {
	return o.filter(false)
}

// Map flattens the outcome to key -> succeeded.
func (o Outcome[K]) Map() map[K]bool {
	out := make(map[K]bool, len(o.results))
	for key, result := range o.results {
		out[key] = result.Succeeded
	}
	return out
}

func (o Outcome[K]) filter(succeeded bool) []K {
	keys := make([]K, 0, len(o.order))
	for _, key := range o.order {
		if o.results[key].Succeeded == succeeded {
			keys = append(keys, key)
		}
	}
	return keys
}

// Run never returns an error: items still failing after the last lap are
// reported as failed in the outcome together with their last error.
func Run[T any, K comparable](ctx context.Context, items []T, opts Options[T, K], op Op[T]) Outcome[K] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	outcome := Outcome[K]{
		order:   make([]K, 0, len(items)),
		results: make(map[K]Result, len(items)),
	}
	remaining := make([]T, 0, len(items))
	for _, item := range items {
		key := opts.Key(item)
		if _, seen := outcome.results[key]; seen {
			continue
		}
		outcome.order = append(outcome.order, key)
		outcome.results[key] = Result{}
		remaining = append(remaining, item)
	}
	if dropped := len(items) - len(remaining); dropped > 0 {
		logger.Warn("batch duplicate keys dropped", "batch", opts.Name, "dropped", dropped)
	}

	for attempt := 1; len(remaining) > 0 && attempt <= maxAttempts; attempt++ {
		if attempt > 1 && !wait(ctx, opts.Pause) {
			break
		}

		lap := remaining
		remaining = make([]T, 0, len(lap))
		logger.Info("batch lap started", "batch", opts.Name, "attempt", attempt, "max_attempts", maxAttempts, "items", len(lap))

		for i, item := range lap {
			key := opts.Key(item)
			result := outcome.results[key]

			if err := ctx.Err(); err != nil {
				result.Err = err
				outcome.results[key] = result
				remaining = append(remaining, lap[i:]...)
				break
			}

			result.Attempts++
			err := op(ctx, item, i == len(lap)-1)
			if err == nil {
				result.Succeeded = true
				result.Err = nil
				outcome.results[key] = result
				continue
			}

			result.Err = err
			outcome.results[key] = result
			remaining = append(remaining, item)

			var categoryErr *vo.CategoryResolutionError
			if errors.As(err, &categoryErr) {
				logger.Warn("batch item has unknown categories", "batch", opts.Name, "item", key, "attempt", attempt, "categories", categoryErr.Names)
			} else {
				logger.Warn("batch item failed", "batch", opts.Name, "item", key, "attempt", attempt, "error", err)
			}
		}

		logger.Info("batch lap finished", "batch", opts.Name, "attempt", attempt, "pending", len(remaining))
		if ctx.Err() != nil {
			break
		}
	}

	if len(remaining) > 0 {
		logger.Error("batch finished with failures", "batch", opts.Name, "failed", len(remaining), "total", len(outcome.order))
	}

	return outcome
}

func wait(ctx context.Context, pause time.Duration) bool {
	if pause <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(pause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
