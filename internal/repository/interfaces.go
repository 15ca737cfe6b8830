package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careloop/caregiver-api/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type CaretakerRepository interface {
	Create(ctx context.Context, caretaker *model.Caretaker) error
	Get(ctx context.Context, id uuid.UUID) (*model.Caretaker, error)
	Update(ctx context.Context, caretaker *model.Caretaker) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID string) ([]*model.Caretaker, error)
	ListByPatients(ctx context.Context, patientIDs []string) ([]*model.Caretaker, error)
}

type UserRepository interface {
	Get(ctx context.Context, id string) (*model.User, error)
	ListPatientIDs(ctx context.Context, organizationID string) ([]string, error)
}

type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, filters map[string]interface{}) ([]*model.AuditLog, error)
}
