package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/repository"
)

// Fallbacks used when the acting user cannot be resolved.
const (
	unknownUserID     = "unknown"
	unknownUserName   = "Unknown"
	unnamedUserName   = "Unnamed User"
	defaultEntityName = "N/A"
)

type Entry struct {
	Action     string
	UserID     string
	EntityType string
	EntityID   string
	EntityName string
	Details    interface{}
}

type Service struct {
	repo  repository.AuditRepository
	users repository.UserRepository
}

func NewService(repo repository.AuditRepository, users repository.UserRepository) *Service {
	return &Service{repo: repo, users: users}
}

// Record appends one audit log entry. The acting user's display name is
// resolved best-effort; a failed lookup falls back to a placeholder rather
// than failing the entry.
func (s *Service) Record(ctx context.Context, entry Entry) error {
	var details json.RawMessage
	if entry.Details != nil {
		var err error
		details, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal audit details: %w", err)
		}
	}

	userID, userName := s.resolveActor(ctx, entry.UserID)

	entityName := entry.EntityName
	if entityName == "" {
		entityName = defaultEntityName
	}

	log := &model.AuditLog{
		ID:         uuid.New(),
		Action:     entry.Action,
		UserID:     userID,
		UserName:   userName,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		EntityName: entityName,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}

	return s.repo.Create(ctx, log)
}

func (s *Service) resolveActor(ctx context.Context, userID string) (string, string) {
	if userID == "" {
		return unknownUserID, unknownUserName
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return userID, unknownUserName
	}
	if user.Name == "" {
		return userID, unnamedUserName
	}
	return userID, user.Name
}

func (s *Service) List(ctx context.Context, filters map[string]interface{}) ([]*model.AuditLog, error) {
	return s.repo.List(ctx, filters)
}
