package jsonstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

func newTestTransaction(userID uuid.UUID, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      domain.KindDeposit,
		Amount:    decimal.NewFromInt(amount),
		Category:  domain.DefaultCategory,
		Timestamp: time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "snapshot.json")

	store, err := Open(path)
	require.NoError(t, err)

	userID := uuid.New()
	txRepo := NewTransactionRepository(store)
	tx := newTestTransaction(userID, 1000)
	tx.IsInitialBank = true
	require.NoError(t, txRepo.Create(ctx, tx))

	objRepo := NewObjectiveRepository(store)
	obj := &domain.Objective{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "Car",
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(2500),
		Deadline:      time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now(),
	}
	require.NoError(t, objRepo.Create(ctx, obj))

	profileRepo := NewRiskProfileRepository(store)
	profile := domain.DefaultRiskProfile(userID, decimal.NewFromInt(1000))
	require.NoError(t, profileRepo.Save(ctx, profile))

	// Reopen from disk and verify everything survived
	reopened, err := Open(path)
	require.NoError(t, err)

	txs, err := NewTransactionRepository(reopened).ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, txs[0].IsInitialBank)

	objs, err := NewObjectiveRepository(reopened).ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "Car", objs[0].Title)

	loaded, err := NewRiskProfileRepository(reopened).GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, loaded.IsInitialized)
	assert.True(t, loaded.StopLoss.Equal(decimal.NewFromInt(200)))
}

func TestStore_OpenMissingFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	txs, err := NewTransactionRepository(store).ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestTransactionRepository_DeleteTwiceFails(t *testing.T) {
	ctx := context.Background()
	store, err := Open("")
	require.NoError(t, err)

	repo := NewTransactionRepository(store)
	userID := uuid.New()
	tx := newTestTransaction(userID, 100)
	require.NoError(t, repo.Create(ctx, tx))

	require.NoError(t, repo.Delete(ctx, userID, tx.ID))

	err = repo.Delete(ctx, userID, tx.ID)
	assert.True(t, domain.IsNotFoundError(err), "second delete of the same id must fail")
}

func TestTransactionRepository_UpdateUnknownIDFails(t *testing.T) {
	ctx := context.Background()
	store, err := Open("")
	require.NoError(t, err)

	repo := NewTransactionRepository(store)
	err = repo.Update(ctx, newTestTransaction(uuid.New(), 100))
	assert.True(t, domain.IsNotFoundError(err))
}

func TestTransactionRepository_IsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store, err := Open("")
	require.NoError(t, err)

	repo := NewTransactionRepository(store)
	alice := uuid.New()
	bob := uuid.New()
	require.NoError(t, repo.Create(ctx, newTestTransaction(alice, 100)))
	require.NoError(t, repo.Create(ctx, newTestTransaction(bob, 200)))

	txs, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestRiskProfileRepository_SaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	store, err := Open("")
	require.NoError(t, err)

	repo := NewRiskProfileRepository(store)
	userID := uuid.New()

	first := domain.DefaultRiskProfile(userID, decimal.NewFromInt(1000))
	require.NoError(t, repo.Save(ctx, first))

	second := domain.DefaultRiskProfile(userID, decimal.NewFromInt(2000))
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, loaded.InitialBalance.Equal(decimal.NewFromInt(2000)), "save upserts a single profile per user")
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	store, err := Open("")
	require.NoError(t, err)

	repo := NewUserRepository(store)
	user := &domain.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	loaded, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.True(t, domain.IsNotFoundError(err))
}
