package jsonstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// riskProfileRepository implements domain.RiskProfileRepository over the snapshot store
type riskProfileRepository struct {
	store *Store
}

// NewRiskProfileRepository creates a new snapshot-backed risk profile repository
func NewRiskProfileRepository(store *Store) domain.RiskProfileRepository {
	return &riskProfileRepository{store: store}
}

func (r *riskProfileRepository) Save(ctx context.Context, profile *domain.RiskProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record := *profile
	for i, existing := range r.store.snap.RiskProfiles {
		if existing.UserID == profile.UserID {
			r.store.snap.RiskProfiles[i] = &record
			return r.store.persist()
		}
	}

	r.store.snap.RiskProfiles = append(r.store.snap.RiskProfiles, &record)
	return r.store.persist()
}

func (r *riskProfileRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.RiskProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.snap.RiskProfiles {
		if existing.UserID == userID {
			record := *existing
			return &record, nil
		}
	}

	return nil, domain.NewNotFoundError("risk profile", userID)
}
