package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/repository"
)

type caretakerRepository struct {
	db *sqlx.DB
}

func NewCaretakerRepository(db *sqlx.DB) repository.CaretakerRepository {
	return &caretakerRepository{db: db}
}

func (r *caretakerRepository) Create(ctx context.Context, caretaker *model.Caretaker) error {
	query := `
		INSERT INTO caretakers (id, patient_id, name, relation, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	caretaker.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		caretaker.ID,
		caretaker.PatientID,
		caretaker.Name,
		caretaker.Relation,
		caretaker.Email,
		caretaker.Phone,
		caretaker.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create caretaker: %w", err)
	}
	return nil
}

func (r *caretakerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Caretaker, error) {
	query := `SELECT * FROM caretakers WHERE id = $1`
	var caretaker model.Caretaker
	err := r.db.GetContext(ctx, &caretaker, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get caretaker: %w", err)
	}
	return &caretaker, nil
}

func (r *caretakerRepository) Update(ctx context.Context, caretaker *model.Caretaker) error {
	query := `
		UPDATE caretakers
		SET name = $1, relation = $2, phone = $3, email = $4, updated_at = $5
		WHERE id = $6
	`
	now := time.Now().UTC()
	caretaker.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, query,
		caretaker.Name,
		caretaker.Relation,
		caretaker.Phone,
		caretaker.Email,
		caretaker.UpdatedAt,
		caretaker.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update caretaker: %w", err)
	}
	return nil
}

func (r *caretakerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM caretakers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete caretaker: %w", err)
	}
	return nil
}

func (r *caretakerRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.Caretaker, error) {
	query := `SELECT * FROM caretakers WHERE patient_id = $1 ORDER BY created_at`
	var caretakers []*model.Caretaker
	if err := r.db.SelectContext(ctx, &caretakers, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list caretakers: %w", err)
	}
	return caretakers, nil
}

// ListByPatients returns caretakers for any of the given patients. Callers
// must not pass an empty id list; an empty IN clause is not a valid query.
func (r *caretakerRepository) ListByPatients(ctx context.Context, patientIDs []string) ([]*model.Caretaker, error) {
	query, args, err := sqlx.In(
		`SELECT * FROM caretakers WHERE patient_id IN (?) ORDER BY created_at`,
		patientIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build caretaker query: %w", err)
	}

	var caretakers []*model.Caretaker
	if err := r.db.SelectContext(ctx, &caretakers, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list caretakers: %w", err)
	}
	return caretakers, nil
}
