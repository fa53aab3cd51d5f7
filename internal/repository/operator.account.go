package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

const operatorStatusActive = "active"

// OperatorAccountRepository reads gateway operator accounts.
type OperatorAccountRepository struct {
	db *sqlx.DB
}

type operatorAuthRow struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Status       string `db:"status"`
}

func NewOperatorAccountRepository(db *sqlx.DB) *OperatorAccountRepository {
	return &OperatorAccountRepository{db: db}
}

// GetOperatorAuthByEmail returns vo.ErrInvalidCredentials for unknown and
// inactive operators alike.
func (r *OperatorAccountRepository) GetOperatorAuthByEmail(ctx context.Context, email string) (domain.OperatorAuth, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))
	if normalizedEmail == "" {
		return domain.OperatorAuth{}, vo.ErrInvalidCredentials
	}

	const query = `
		SELECT id::text AS id, email, password_hash, status
		FROM gateway_operators
		WHERE lower(email) = $1
		LIMIT 1
	`

	var row operatorAuthRow
	if err := r.db.GetContext(ctx, &row, query, normalizedEmail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.OperatorAuth{}, vo.ErrInvalidCredentials
		}
		return domain.OperatorAuth{}, fmt.Errorf("repository: get operator auth by email failed: %w", err)
	}

	if row.Status != operatorStatusActive {
		return domain.OperatorAuth{}, vo.ErrInvalidCredentials
	}

	return domain.OperatorAuth{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Status:       row.Status,
	}, nil
}
