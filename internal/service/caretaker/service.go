package caretaker

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/repository"
	"github.com/careloop/caregiver-api/internal/service/audit"
	apperrors "github.com/careloop/caregiver-api/pkg/errors"
)

type Service interface {
	Create(ctx context.Context, req *model.CreateCaretakerRequest) (*model.Caretaker, error)
	ListByPatient(ctx context.Context, patientID string) ([]*model.Caretaker, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCaretakerRequest) (*model.Caretaker, error)
	Delete(ctx context.Context, id uuid.UUID, patientID string) error
	ListByOrganization(ctx context.Context, organizationID string) ([]*model.Caretaker, error)
}

type service struct {
	repo    repository.CaretakerRepository
	users   repository.UserRepository
	auditor *audit.Recorder
}

func NewService(repo repository.CaretakerRepository, users repository.UserRepository, auditor *audit.Recorder) Service {
	return &service{
		repo:    repo,
		users:   users,
		auditor: auditor,
	}
}

func (s *service) Create(ctx context.Context, req *model.CreateCaretakerRequest) (*model.Caretaker, error) {
	caretaker := &model.Caretaker{
		ID:        uuid.New(),
		PatientID: req.PatientID,
		Name:      req.Name,
		Relation:  req.Relation,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.repo.Create(ctx, caretaker); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.auditor.Record(ctx, audit.Entry{
		Action:     model.AuditActionCreate,
		UserID:     req.PatientID,
		EntityType: model.AuditEntityCaretaker,
		EntityID:   caretaker.ID.String(),
		EntityName: caretaker.Name,
		Details:    map[string]interface{}{"data": req},
	})

	return caretaker, nil
}

func (s *service) ListByPatient(ctx context.Context, patientID string) ([]*model.Caretaker, error) {
	caretakers, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if caretakers == nil {
		caretakers = []*model.Caretaker{}
	}
	return caretakers, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCaretakerRequest) (*model.Caretaker, error) {
	existing, err := s.authorize(ctx, id, req.PatientID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = req.Name
	updated.Relation = req.Relation
	updated.Phone = req.Phone
	updated.Email = req.Email

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.auditor.Record(ctx, audit.Entry{
		Action:     model.AuditActionUpdate,
		UserID:     req.PatientID,
		EntityType: model.AuditEntityCaretaker,
		EntityID:   id.String(),
		EntityName: updated.Name,
		Details: map[string]interface{}{
			"old": existing,
			"new": req,
		},
	})

	return &updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, patientID string) error {
	existing, err := s.authorize(ctx, id, patientID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}

	s.auditor.Record(ctx, audit.Entry{
		Action:     model.AuditActionDelete,
		UserID:     patientID,
		EntityType: model.AuditEntityCaretaker,
		EntityID:   id.String(),
		EntityName: existing.Name,
		Details:    map[string]interface{}{"data": existing},
	})

	return nil
}

// ListByOrganization is a two-phase read: collect the organization's patient
// ids, then fetch caretakers linked to any of them. An organization with no
// patients short-circuits to an empty list so the IN query is never issued
// with an empty set.
func (s *service) ListByOrganization(ctx context.Context, organizationID string) ([]*model.Caretaker, error) {
	patientIDs, err := s.users.ListPatientIDs(ctx, organizationID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(patientIDs) == 0 {
		return []*model.Caretaker{}, nil
	}

	caretakers, err := s.repo.ListByPatients(ctx, patientIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if caretakers == nil {
		caretakers = []*model.Caretaker{}
	}
	return caretakers, nil
}

// authorize fetches the record and checks that the caller-supplied patientId
// matches the stored one. Knowing a record id is not enough to mutate it.
func (s *service) authorize(ctx context.Context, id uuid.UUID, patientID string) (*model.Caretaker, error) {
	existing, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("caretaker", err)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if existing.PatientID != patientID {
		return nil, apperrors.Forbidden("unauthorized to modify this caretaker", nil)
	}

	return existing, nil
}
