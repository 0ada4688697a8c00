package jsonstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// objectiveRepository implements domain.ObjectiveRepository over the snapshot store
type objectiveRepository struct {
	store *Store
}

// NewObjectiveRepository creates a new snapshot-backed objective repository
func NewObjectiveRepository(store *Store) domain.ObjectiveRepository {
	return &objectiveRepository{store: store}
}

func (r *objectiveRepository) Create(ctx context.Context, obj *domain.Objective) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record := *obj
	r.store.snap.Objectives = append(r.store.snap.Objectives, &record)

	return r.store.persist()
}

func (r *objectiveRepository) Update(ctx context.Context, obj *domain.Objective) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.snap.Objectives {
		if existing.ID == obj.ID && existing.UserID == obj.UserID {
			record := *obj
			r.store.snap.Objectives[i] = &record
			return r.store.persist()
		}
	}

	return domain.NewNotFoundError("objective", obj.ID)
}

func (r *objectiveRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.snap.Objectives {
		if existing.ID == id && existing.UserID == userID {
			r.store.snap.Objectives = append(
				r.store.snap.Objectives[:i],
				r.store.snap.Objectives[i+1:]...,
			)
			return r.store.persist()
		}
	}

	return domain.NewNotFoundError("objective", id)
}

func (r *objectiveRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Objective, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.snap.Objectives {
		if existing.ID == id && existing.UserID == userID {
			record := *existing
			return &record, nil
		}
	}

	return nil, domain.NewNotFoundError("objective", id)
}

func (r *objectiveRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Objective, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.Objective, 0)
	for _, existing := range r.store.snap.Objectives {
		if existing.UserID == userID {
			record := *existing
			result = append(result, &record)
		}
	}

	return result, nil
}
