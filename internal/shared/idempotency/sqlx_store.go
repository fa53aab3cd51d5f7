package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	defaultLockTTL = 30 * time.Second

	// DefaultTable holds gateway keys.
	DefaultTable = "gateway_idempotency"
)

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var _ Store = (*SQLXStore)(nil)

// SQLXStore keeps keys in Postgres. Acquire locks the key row for the
// duration of its transaction so concurrent callers see a single winner.
type SQLXStore struct {
	db    *sqlx.DB
	table string
	now   func() time.Time
}

// NewSQLXStore uses DefaultTable when table is empty. Table names are
// restricted to lower snake case since they are spliced into queries.
func NewSQLXStore(db *sqlx.DB, table string) (*SQLXStore, error) {
	if db == nil {
		return nil, errors.New("idempotency: db is required")
	}

	table = strings.TrimSpace(table)
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("idempotency: invalid table name %q", table)
	}

	return &SQLXStore{db: db, table: table, now: time.Now}, nil
}

type keyRow struct {
	RequestHash    string         `db:"request_hash"`
	Status         string         `db:"status"`
	ResponseStatus sql.NullInt64  `db:"response_status"`
	ResponseBody   []byte         `db:"response_body"`
	ResponseType   sql.NullString `db:"response_content_type"`
	LockedUntil    time.Time      `db:"locked_until"`
}

func (r keyRow) replay() Decision {
	decision := Decision{
		Type: DecisionReplay,
		Body: append([]byte(nil), r.ResponseBody...),
	}
	if r.ResponseStatus.Valid {
		decision.StatusCode = int(r.ResponseStatus.Int64)
	}
	if r.ResponseType.Valid {
		decision.ContentType = r.ResponseType.String
	}
	return decision
}

func (s *SQLXStore) Acquire(ctx context.Context, request Request) (Decision, error) {
	request, err := request.normalize()
	if err != nil {
		return Decision{}, err
	}

	lockTTL := request.LockTTL
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	now := s.now().UTC()
	lockUntil := now.Add(lockTTL)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery := fmt.Sprintf(`
SELECT request_hash, status, response_status, response_body, response_content_type, locked_until
FROM %s
WHERE scope = $1 AND idempotency_key = $2
FOR UPDATE`, s.table)

	var existing keyRow
	err = tx.GetContext(ctx, &existing, selectQuery, request.Scope, request.Key)

	var decision Decision
	switch {
	case errors.Is(err, sql.ErrNoRows):
		insertQuery := fmt.Sprintf(`
INSERT INTO %s (scope, idempotency_key, request_hash, status, locked_until, created_at, updated_at)
VALUES ($1, $2, $3, '%s', $4, now(), now())`, s.table, statusInProgress)

		if _, err := tx.ExecContext(ctx, insertQuery, request.Scope, request.Key, request.RequestHash, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to insert key: %w", err)
		}
		decision = Decision{Type: DecisionAcquired}
	case err != nil:
		return Decision{}, fmt.Errorf("idempotency: failed to query key: %w", err)
	case existing.RequestHash != request.RequestHash:
		decision = Decision{Type: DecisionConflict}
	case existing.Status == statusCompleted:
		decision = existing.replay()
	case existing.Status == statusInProgress && existing.LockedUntil.After(now):
		decision = Decision{Type: DecisionInProgress}
	default:
		// The previous holder's lock expired without completing.
		reacquireQuery := fmt.Sprintf(`
UPDATE %s
SET status = '%s', locked_until = $3, updated_at = now()
WHERE scope = $1 AND idempotency_key = $2`, s.table, statusInProgress)

		if _, err := tx.ExecContext(ctx, reacquireQuery, request.Scope, request.Key, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to reacquire key: %w", err)
		}
		decision = Decision{Type: DecisionAcquired}
	}

	if err := tx.Commit(); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to commit %s decision: %w", decision.Type, err)
	}

	return decision, nil
}

func (s *SQLXStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	request, err := request.normalize()
	if err != nil {
		return err
	}

	updateQuery := fmt.Sprintf(`
UPDATE %s
SET
	status = '%s',
	response_status = $4,
	response_body = $5,
	response_content_type = $6,
	locked_until = now(),
	completed_at = now(),
	updated_at = now()
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3`, s.table, statusCompleted)

	result, err := s.db.ExecContext(ctx, updateQuery,
		request.Scope, request.Key, request.RequestHash,
		response.StatusCode, response.Body, strings.TrimSpace(response.ContentType),
	)
	if err != nil {
		return fmt.Errorf("idempotency: failed to persist response: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency: failed to read affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return errors.New("idempotency: key not found for completion")
	}

	return nil
}
