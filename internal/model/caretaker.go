package model

import (
	"time"

	"github.com/google/uuid"
)

// Caretaker is a caregiver record linked to exactly one patient.
type Caretaker struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PatientID string     `json:"patientId" db:"patient_id"`
	Name      string     `json:"name" db:"name"`
	Relation  string     `json:"relation" db:"relation"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone" db:"phone"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}

// CreateCaretakerRequest represents caretaker creation parameters
type CreateCaretakerRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Relation  string `json:"relation" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// UpdateCaretakerRequest represents caretaker update parameters. The supplied
// patientId must match the stored one; it is an ownership check, not a move.
type UpdateCaretakerRequest struct {
	ID        string `json:"id" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
	Name      string `json:"name"`
	Relation  string `json:"relation"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// DeleteCaretakerRequest represents caretaker deletion parameters
type DeleteCaretakerRequest struct {
	ID        string `json:"id" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
}
