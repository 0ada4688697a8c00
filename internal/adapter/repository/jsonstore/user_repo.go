package jsonstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// userRepository implements domain.UserRepository over the snapshot store
type userRepository struct {
	store *Store
}

// NewUserRepository creates a new snapshot-backed user repository
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record := *user
	r.store.snap.Users = append(r.store.snap.Users, &record)

	return r.store.persist()
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.snap.Users {
		if existing.ID == id {
			record := *existing
			return &record, nil
		}
	}

	return nil, domain.NewNotFoundError("user", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.snap.Users {
		if existing.Email == email {
			record := *existing
			return &record, nil
		}
	}

	return nil, domain.NewNotFoundError("user", uuid.Nil)
}
