package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	// Action types
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"

	// Entity types
	AuditEntityCaretaker = "Caretaker"
)

// AuditLog is an append-only record of a mutating action. Entries are never
// updated or deleted by this service.
type AuditLog struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	Action     string          `json:"action" db:"action"`
	UserID     string          `json:"userId" db:"user_id"`
	UserName   string          `json:"userName" db:"user_name"`
	EntityType string          `json:"entity" db:"entity_type"`
	EntityID   string          `json:"entityId" db:"entity_id"`
	EntityName string          `json:"entityName" db:"entity_name"`
	Details    json.RawMessage `json:"details" db:"details"`
	CreatedAt  time.Time       `json:"timestamp" db:"created_at"`
}
