package model

// User role constants
const (
	UserRoleAdmin   = "admin"
	UserRolePatient = "user"
)

// User is a record owned by the accounts service. This service only reads it,
// to resolve organization membership and display names.
type User struct {
	ID             string  `json:"id" db:"id"`
	OrganizationID string  `json:"organizationId" db:"organization_id"`
	Role           string  `json:"role" db:"role"`
	Name           string  `json:"name" db:"name"`
	Email          *string `json:"email,omitempty" db:"email"`
}
