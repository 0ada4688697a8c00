package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// RecordTransactionInput represents the input for recording a transaction
type RecordTransactionInput struct {
	UserID        uuid.UUID
	Kind          domain.TransactionKind
	Amount        decimal.Decimal
	Category      string
	Timestamp     time.Time // zero value means "now"
	IsInitialBank bool
	Description   string
}

// TransactionPatch represents a partial update to a transaction.
// Nil fields are left unchanged. The patch is applied all-or-nothing:
// validation failure leaves the stored transaction untouched.
type TransactionPatch struct {
	Kind          *domain.TransactionKind
	Amount        *decimal.Decimal
	Category      *string
	Timestamp     *time.Time
	IsInitialBank *bool
	Description   *string
}

// BalanceSummary represents the aggregate balance figures for a user's ledger
type BalanceSummary struct {
	Balance          decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	InitialBankroll  decimal.Decimal
}

// MonthlySummary represents the per-month aggregation of a user's ledger.
// Net is deposits minus withdrawals for that month only, not cumulative.
type MonthlySummary struct {
	Month       string // "2006-01"
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	Net         decimal.Decimal
}

// CategorySummary represents the per-category aggregation of a user's ledger
type CategorySummary struct {
	Category    string
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	TotalAbs    decimal.Decimal
}

// LedgerService handles transaction recording and balance/aggregate queries
type LedgerService struct {
	TransactionRepo domain.TransactionRepository
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(transactionRepo domain.TransactionRepository) *LedgerService {
	return &LedgerService{TransactionRepo: transactionRepo}
}

// RecordTransaction appends a new transaction to the user's ledger
// Logic:
//  1. Default the category to "Other" and the timestamp to now
//  2. Validate the transaction (positive amount, valid kind and timestamp)
//  3. Save using TransactionRepo.Create
//
// A failed validation leaves the ledger unchanged.
func (s *LedgerService) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	category := input.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	tx := &domain.Transaction{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Kind:          input.Kind,
		Amount:        input.Amount,
		Category:      category,
		Timestamp:     timestamp,
		IsInitialBank: input.IsInitialBank,
		Description:   input.Description,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.TransactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// EditTransaction applies a patch to an existing transaction
// Logic:
//  1. Fetch the transaction (NotFoundError if absent)
//  2. Apply the patch to a copy
//  3. Validate the patched copy; failure leaves the original untouched
//  4. Save using TransactionRepo.Update
func (s *LedgerService) EditTransaction(ctx context.Context, userID, id uuid.UUID, patch TransactionPatch) (*domain.Transaction, error) {
	existing, err := s.TransactionRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if patch.Kind != nil {
		updated.Kind = *patch.Kind
	}
	if patch.Amount != nil {
		updated.Amount = *patch.Amount
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.Timestamp != nil {
		updated.Timestamp = *patch.Timestamp
	}
	if patch.IsInitialBank != nil {
		updated.IsInitialBank = *patch.IsInitialBank
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.TransactionRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteTransaction removes a transaction by id.
// Deleting the same id twice fails with a NotFoundError the second time.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	return s.TransactionRepo.Delete(ctx, userID, id)
}

// ListTransactions retrieves the user's transactions in insertion order
func (s *LedgerService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	return s.TransactionRepo.ListByUser(ctx, userID)
}

// GetBalanceSummary computes the aggregate balance figures for a user
func (s *LedgerService) GetBalanceSummary(ctx context.Context, userID uuid.UUID) (*BalanceSummary, error) {
	txs, err := s.TransactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &BalanceSummary{
		Balance:          domain.LedgerBalance(txs),
		TotalDeposits:    domain.TotalDeposits(txs),
		TotalWithdrawals: domain.TotalWithdrawals(txs),
		InitialBankroll:  domain.InitialBankroll(txs),
	}, nil
}

// GetMonthlySummary groups the user's ledger by (year, month) of the
// transaction timestamp, ascending by month key
func (s *LedgerService) GetMonthlySummary(ctx context.Context, userID uuid.UUID) ([]MonthlySummary, error) {
	txs, err := s.TransactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*MonthlySummary)
	for _, tx := range txs {
		key := tx.Timestamp.Format("2006-01")
		summary, ok := byMonth[key]
		if !ok {
			summary = &MonthlySummary{
				Month:       key,
				Deposits:    decimal.Zero,
				Withdrawals: decimal.Zero,
			}
			byMonth[key] = summary
		}

		if tx.Kind == domain.KindDeposit {
			summary.Deposits = summary.Deposits.Add(tx.Amount)
		} else {
			summary.Withdrawals = summary.Withdrawals.Add(tx.Amount)
		}
	}

	result := make([]MonthlySummary, 0, len(byMonth))
	for _, summary := range byMonth {
		summary.Net = summary.Deposits.Sub(summary.Withdrawals)
		result = append(result, *summary)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	return result, nil
}

// GetCategorySummary groups the user's ledger by category.
// Canonical ordering: descending by TotalAbs = |deposits - withdrawals|.
func (s *LedgerService) GetCategorySummary(ctx context.Context, userID uuid.UUID) ([]CategorySummary, error) {
	txs, err := s.TransactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*CategorySummary)
	for _, tx := range txs {
		summary, ok := byCategory[tx.Category]
		if !ok {
			summary = &CategorySummary{
				Category:    tx.Category,
				Deposits:    decimal.Zero,
				Withdrawals: decimal.Zero,
			}
			byCategory[tx.Category] = summary
		}

		if tx.Kind == domain.KindDeposit {
			summary.Deposits = summary.Deposits.Add(tx.Amount)
		} else {
			summary.Withdrawals = summary.Withdrawals.Add(tx.Amount)
		}
	}

	result := make([]CategorySummary, 0, len(byCategory))
	for _, summary := range byCategory {
		summary.TotalAbs = summary.Deposits.Sub(summary.Withdrawals).Abs()
		result = append(result, *summary)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalAbs.Equal(result[j].TotalAbs) {
			return result[i].Category < result[j].Category
		}
		return result[i].TotalAbs.GreaterThan(result[j].TotalAbs)
	})

	return result, nil
}
