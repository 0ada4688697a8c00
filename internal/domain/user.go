package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account in the domain layer
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Validate ensures the user adheres to domain rules
// Returns a ValidationError if validation fails
func (u *User) Validate() error {
	if u.Name == "" {
		return NewValidationError("name", "cannot be empty")
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty")
	}

	if u.PasswordHash == "" {
		return NewValidationError("password", "cannot be empty")
	}

	return nil
}
