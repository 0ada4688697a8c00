package jsonstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository over the snapshot store
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new snapshot-backed transaction repository
func NewTransactionRepository(store *Store) domain.TransactionRepository {
	return &transactionRepository{store: store}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	record := *tx
	r.store.snap.Transactions = append(r.store.snap.Transactions, &record)

	return r.store.persist()
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.snap.Transactions {
		if existing.ID == tx.ID && existing.UserID == tx.UserID {
			record := *tx
			r.store.snap.Transactions[i] = &record
			return r.store.persist()
		}
	}

	return domain.NewNotFoundError("transaction", tx.ID)
}

func (r *transactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.snap.Transactions {
		if existing.ID == id && existing.UserID == userID {
			r.store.snap.Transactions = append(
				r.store.snap.Transactions[:i],
				r.store.snap.Transactions[i+1:]...,
			)
			return r.store.persist()
		}
	}

	return domain.NewNotFoundError("transaction", id)
}

func (r *transactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.snap.Transactions {
		if existing.ID == id && existing.UserID == userID {
			record := *existing
			return &record, nil
		}
	}

	return nil, domain.NewNotFoundError("transaction", id)
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.Transaction, 0)
	for _, existing := range r.store.snap.Transactions {
		if existing.UserID == userID {
			record := *existing
			result = append(result, &record)
		}
	}

	return result, nil
}
