package domain

import (
	"context"

	"github.com/google/uuid"
)

// TransactionRepository defines the interface for transaction persistence operations
type TransactionRepository interface {
	// Create appends a new transaction
	Create(ctx context.Context, tx *Transaction) error

	// Update replaces an existing transaction by id
	// Returns a NotFoundError if the id is absent
	Update(ctx context.Context, tx *Transaction) error

	// Delete removes a transaction by id
	// Returns a NotFoundError if the id is absent
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// GetByID retrieves a single transaction by id
	// Returns a NotFoundError if the id is absent
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)

	// ListByUser retrieves all transactions for a user in insertion order
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
}

// ObjectiveRepository defines the interface for objective persistence operations
type ObjectiveRepository interface {
	// Create creates a new objective
	Create(ctx context.Context, obj *Objective) error

	// Update replaces an existing objective by id
	// Returns a NotFoundError if the id is absent
	Update(ctx context.Context, obj *Objective) error

	// Delete removes an objective by id
	// Returns a NotFoundError if the id is absent
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// GetByID retrieves a single objective by id
	// Returns a NotFoundError if the id is absent
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Objective, error)

	// ListByUser retrieves all objectives for a user ordered by creation time
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Objective, error)
}

// RiskProfileRepository defines the interface for risk profile persistence operations
type RiskProfileRepository interface {
	// Save creates or replaces the profile for its user
	Save(ctx context.Context, profile *RiskProfile) error

	// GetByUser retrieves the profile for a user.
	// Returns a NotFoundError when no profile has been saved yet; callers
	// treat absence identically to an uninitialized profile.
	GetByUser(ctx context.Context, userID uuid.UUID) (*RiskProfile, error)
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by id
	// Returns a NotFoundError if the id is absent
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email.
	// Returns a NotFoundError when no user has that email.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
