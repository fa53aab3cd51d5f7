package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

// LoadJournalRepository persists what was sent to GNOSS: per-item batch
// outcomes, massive loads and their packages.
type LoadJournalRepository struct {
	db *sqlx.DB
}

type massiveLoadRow struct {
	ID             uuid.UUID    `db:"id"`
	Name           string       `db:"name"`
	Community      string       `db:"community"`
	OrganizationID uuid.UUID    `db:"organization_id"`
	State          string       `db:"state"`
	CreatedAt      time.Time    `db:"created_at"`
	ClosedAt       sql.NullTime `db:"closed_at"`
}

type resourceRecordRow struct {
	LoadID     string    `db:"load_id"`
	ResourceID uuid.UUID `db:"resource_id"`
	Operation  string    `db:"operation"`
	Succeeded  bool      `db:"succeeded"`
	Attempts   int       `db:"attempts"`
	Error      string    `db:"error"`
	RecordedAt time.Time `db:"recorded_at"`
}

type loadPackageRow struct {
	ID           uuid.UUID `db:"id"`
	LoadID       uuid.UUID `db:"load_id"`
	Ontology     string    `db:"ontology"`
	Sequence     int       `db:"sequence"`
	OntologyPath string    `db:"ontology_path"`
	SearchPath   string    `db:"search_path"`
	AcidPath     string    `db:"acid_path"`
	IsLast       bool      `db:"is_last"`
	Resources    int       `db:"resources"`
}

func NewLoadJournalRepository(db *sqlx.DB) *LoadJournalRepository {
	return &LoadJournalRepository{db: db}
}

func (r *LoadJournalRepository) RecordResourceOutcomes(ctx context.Context, records []domain.ResourceLoadRecord) error {
	if len(records) == 0 {
		return nil
	}

	const query = `
		INSERT INTO gnoss_resource_journal (load_id, resource_id, operation, succeeded, attempts, error, recorded_at)
		VALUES (:load_id, :resource_id, :operation, :succeeded, :attempts, :error, :recorded_at)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		row := resourceRecordRow{
			LoadID:     record.LoadID,
			ResourceID: record.ResourceID,
			Operation:  string(record.Operation),
			Succeeded:  record.Succeeded,
			Attempts:   record.Attempts,
			Error:      record.Error,
			RecordedAt: record.RecordedAt,
		}
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("repository: failed to journal resource %s: %w", record.ResourceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}
	return nil
}

func (r *LoadJournalRepository) CreateLoad(ctx context.Context, load domain.MassiveLoad) error {
	const query = `
		INSERT INTO gnoss_massive_loads (id, name, community, organization_id, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := r.db.ExecContext(ctx, query,
		load.ID, load.Name, load.Community, load.OrganizationID, string(load.State), load.CreatedAt,
	); err != nil {
		return fmt.Errorf("repository: failed to create massive load: %w", err)
	}
	return nil
}

func (r *LoadJournalRepository) RecordPackage(ctx context.Context, pkg domain.LoadPackage) error {
	const query = `
		INSERT INTO gnoss_massive_load_packages
			(id, load_id, ontology, sequence, ontology_path, search_path, acid_path, is_last, resources)
		VALUES
			(:id, :load_id, :ontology, :sequence, :ontology_path, :search_path, :acid_path, :is_last, :resources)
	`

	row := loadPackageRow{
		ID:           pkg.ID,
		LoadID:       pkg.LoadID,
		Ontology:     pkg.Ontology,
		Sequence:     pkg.Sequence,
		OntologyPath: pkg.OntologyPath,
		SearchPath:   pkg.SearchPath,
		AcidPath:     pkg.AcidPath,
		IsLast:       pkg.IsLast,
		Resources:    pkg.Resources,
	}
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("repository: failed to record load package: %w", err)
	}
	return nil
}

func (r *LoadJournalRepository) UpdateLoadState(ctx context.Context, id uuid.UUID, state domain.MassiveLoadState, at time.Time) error {
	const query = `
		UPDATE gnoss_massive_loads
		SET state = $2, closed_at = CASE WHEN $2 = 'open' THEN NULL ELSE $3::timestamptz END
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, string(state), at)
	if err != nil {
		return fmt.Errorf("repository: failed to update massive load state: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return vo.ErrMassiveLoadNotFound
	}
	return nil
}

func (r *LoadJournalRepository) GetLoad(ctx context.Context, id uuid.UUID) (domain.MassiveLoad, error) {
	const query = `
		SELECT id, name, community, organization_id, state, created_at, closed_at
		FROM gnoss_massive_loads
		WHERE id = $1
	`

	var row massiveLoadRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.MassiveLoad{}, vo.ErrMassiveLoadNotFound
		}
		return domain.MassiveLoad{}, fmt.Errorf("repository: get massive load failed: %w", err)
	}

	load := domain.MassiveLoad{
		ID:             row.ID,
		Name:           row.Name,
		Community:      row.Community,
		OrganizationID: row.OrganizationID,
		State:          domain.MassiveLoadState(row.State),
		CreatedAt:      row.CreatedAt,
	}
	if row.ClosedAt.Valid {
		closedAt := row.ClosedAt.Time
		load.ClosedAt = &closedAt
	}
	return load, nil
}
