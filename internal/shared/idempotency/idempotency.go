// Package idempotency records the outcome of a keyed request so that a
// retried request replays the first response instead of repeating its side
// effects. The gateway uses it for massive-load creation.
package idempotency

import (
	"context"
	"errors"
	"strings"
	"time"
)

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

const (
	statusInProgress = "in_progress"
	statusCompleted  = "completed"
)

// Request identifies one keyed call. The same Key with a different
// RequestHash is a conflict.
type Request struct {
	Scope       string
	Key         string
	RequestHash string
	LockTTL     time.Duration
}

type Decision struct {
	Type        DecisionType
	StatusCode  int
	Body        []byte
	ContentType string
}

type StoredResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

type Store interface {
	Acquire(ctx context.Context, request Request) (Decision, error)
	Complete(ctx context.Context, request Request, response StoredResponse) error
}

// normalize trims the identifying fields and rejects empty ones.
func (r Request) normalize() (Request, error) {
	r.Scope = strings.TrimSpace(r.Scope)
	r.Key = strings.TrimSpace(r.Key)
	r.RequestHash = strings.TrimSpace(r.RequestHash)

	switch {
	case r.Scope == "":
		return r, errors.New("idempotency: scope is required")
	case r.Key == "":
		return r, errors.New("idempotency: key is required")
	case r.RequestHash == "":
		return r, errors.New("idempotency: request hash is required")
	}
	return r, nil
}
