package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/repository"
)

type auditRepository struct {
	db *sqlx.DB
}

func NewAuditRepository(db *sqlx.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	query := `
		INSERT INTO audit_logs (
			id, action, user_id, user_name, entity_type, entity_id,
			entity_name, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Action,
		entry.UserID,
		entry.UserName,
		entry.EntityType,
		entry.EntityID,
		entry.EntityName,
		entry.Details,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (r *auditRepository) List(ctx context.Context, filters map[string]interface{}) ([]*model.AuditLog, error) {
	query := `SELECT * FROM audit_logs WHERE 1=1`
	var args []interface{}

	if v, ok := filters["user_id"]; ok {
		query += fmt.Sprintf(" AND user_id = $%d", len(args)+1)
		args = append(args, v)
	}

	if v, ok := filters["entity_id"]; ok {
		query += fmt.Sprintf(" AND entity_id = $%d", len(args)+1)
		args = append(args, v)
	}

	if v, ok := filters["action"]; ok {
		query += fmt.Sprintf(" AND action = $%d", len(args)+1)
		args = append(args, v)
	}

	query += " ORDER BY created_at DESC"

	var logs []*model.AuditLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
