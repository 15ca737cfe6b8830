package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, organization_id, role, name, email FROM users WHERE id = $1`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) ListPatientIDs(ctx context.Context, organizationID string) ([]string, error) {
	query := `SELECT id FROM users WHERE organization_id = $1 AND role = $2`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, organizationID, model.UserRolePatient); err != nil {
		return nil, fmt.Errorf("failed to list patient ids: %w", err)
	}
	return ids, nil
}
