package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

func newSQLXMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return sqlx.NewDb(sqlDB, "sqlmock"), mockDB
}

type OperatorAccountRepositorySuite struct{ suite.Suite }

func (s *OperatorAccountRepositorySuite) TestGetOperatorAuthByEmail_TableDriven() {
	repoErr := errors.New("query failed")
	selectOperator := regexp.QuoteMeta("SELECT id::text AS id, email, password_hash, status")

	tests := []struct {
		name      string
		email     string
		setupMock func(sqlmock.Sqlmock)
		assertion func(error)
	}{
		{
			name:  "invalid when email empty",
			email: "   ",
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:  "invalid when operator not found",
			email: "Ops@Example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(selectOperator).
					WithArgs("ops@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:  "wraps query errors",
			email: "ops@example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(selectOperator).
					WithArgs("ops@example.com").
					WillReturnError(repoErr)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "get operator auth by email failed")
				assert.ErrorIs(s.T(), err, repoErr)
			},
		},
		{
			name:  "invalid when status not active",
			email: "ops@example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "status"}).
					AddRow("op-1", "ops@example.com", "hashed", "suspended")
				mockDB.ExpectQuery(selectOperator).
					WithArgs("ops@example.com").
					WillReturnRows(rows)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:  "success",
			email: "ops@example.com",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "status"}).
					AddRow("op-1", "ops@example.com", "hashed", "active")
				mockDB.ExpectQuery(selectOperator).
					WithArgs("ops@example.com").
					WillReturnRows(rows)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewOperatorAccountRepository(db)
			if tc.setupMock != nil {
				tc.setupMock(mockDB)
			}

			result, err := repo.GetOperatorAuthByEmail(context.Background(), tc.email)
			tc.assertion(err)
			if err == nil {
				assert.Equal(s.T(), "op-1", result.ID)
				assert.Equal(s.T(), "hashed", result.PasswordHash)
			}
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func TestOperatorAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(OperatorAccountRepositorySuite))
}

type LoadJournalRepositorySuite struct{ suite.Suite }

func (s *LoadJournalRepositorySuite) TestRecordResourceOutcomes_TableDriven() {
	now := time.Now().UTC()
	insertErr := errors.New("insert failed")
	records := []domain.ResourceLoadRecord{
		{LoadID: "demo~2026/1/1~1:1:1", ResourceID: uuid.New(), Operation: domain.OperationDelete, Succeeded: true, Attempts: 1, RecordedAt: now},
		{LoadID: "demo~2026/1/1~1:1:1", ResourceID: uuid.New(), Operation: domain.OperationDelete, Attempts: 3, Error: "boom", RecordedAt: now},
	}

	tests := []struct {
		name      string
		records   []domain.ResourceLoadRecord
		setupMock func(sqlmock.Sqlmock)
		assertion func(error)
	}{
		{
			name: "no records is a no-op",
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:    "insert failure rolls back",
			records: records,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("INSERT INTO gnoss_resource_journal").WillReturnError(insertErr)
				mockDB.ExpectRollback()
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "failed to journal resource")
				assert.ErrorIs(s.T(), err, insertErr)
			},
		},
		{
			name:    "success",
			records: records,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin()
				mockDB.ExpectExec("INSERT INTO gnoss_resource_journal").
					WithArgs(records[0].LoadID, records[0].ResourceID, "delete", true, 1, "", now).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mockDB.ExpectExec("INSERT INTO gnoss_resource_journal").
					WithArgs(records[1].LoadID, records[1].ResourceID, "delete", false, 3, "boom", now).
					WillReturnResult(sqlmock.NewResult(2, 1))
				mockDB.ExpectCommit()
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewLoadJournalRepository(db)
			if tc.setupMock != nil {
				tc.setupMock(mockDB)
			}

			tc.assertion(repo.RecordResourceOutcomes(context.Background(), tc.records))
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *LoadJournalRepositorySuite) TestMassiveLoadLifecycle() {
	db, mockDB := newSQLXMock(s.T())
	repo := NewLoadJournalRepository(db)

	loadID := uuid.New()
	now := time.Now().UTC()
	load := domain.MassiveLoad{
		ID:             loadID,
		Name:           "books",
		Community:      "demo",
		OrganizationID: domain.DefaultOrganizationID,
		State:          domain.MassiveLoadOpen,
		CreatedAt:      now,
	}

	mockDB.ExpectExec("INSERT INTO gnoss_massive_loads").
		WithArgs(loadID, "books", "demo", domain.DefaultOrganizationID, "open", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(s.T(), repo.CreateLoad(context.Background(), load))

	mockDB.ExpectExec("INSERT INTO gnoss_massive_load_packages").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(s.T(), repo.RecordPackage(context.Background(), domain.LoadPackage{
		ID: uuid.New(), LoadID: loadID, Ontology: "book.owl", Resources: 3, IsLast: true,
	}))

	mockDB.ExpectExec("UPDATE gnoss_massive_loads").
		WithArgs(loadID, "closed", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(s.T(), repo.UpdateLoadState(context.Background(), loadID, domain.MassiveLoadClosed, now))

	rows := sqlmock.NewRows([]string{"id", "name", "community", "organization_id", "state", "created_at", "closed_at"}).
		AddRow(loadID.String(), "books", "demo", domain.DefaultOrganizationID.String(), "closed", now, now)
	mockDB.ExpectQuery(regexp.QuoteMeta("SELECT id, name, community, organization_id, state, created_at, closed_at")).
		WithArgs(loadID).
		WillReturnRows(rows)

	got, err := repo.GetLoad(context.Background(), loadID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.MassiveLoadClosed, got.State)
	require.NotNil(s.T(), got.ClosedAt)
	assert.Equal(s.T(), now, *got.ClosedAt)

	require.NoError(s.T(), mockDB.ExpectationsWereMet())
}

func (s *LoadJournalRepositorySuite) TestUnknownLoad() {
	db, mockDB := newSQLXMock(s.T())
	repo := NewLoadJournalRepository(db)
	loadID := uuid.New()

	mockDB.ExpectExec("UPDATE gnoss_massive_loads").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateLoadState(context.Background(), loadID, domain.MassiveLoadClosed, time.Now())
	assert.ErrorIs(s.T(), err, vo.ErrMassiveLoadNotFound)

	mockDB.ExpectQuery("SELECT id, name").WithArgs(loadID).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetLoad(context.Background(), loadID)
	assert.ErrorIs(s.T(), err, vo.ErrMassiveLoadNotFound)

	require.NoError(s.T(), mockDB.ExpectationsWereMet())
}

func TestLoadJournalRepositorySuite(t *testing.T) {
	suite.Run(t, new(LoadJournalRepositorySuite))
}
