package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "Valid deposit should pass",
			tx: Transaction{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				Kind:      KindDeposit,
				Amount:    decimal.NewFromInt(100),
				Category:  "Initial Deposit",
				Timestamp: now,
			},
			wantErr: false,
		},
		{
			name: "Valid withdrawal should pass",
			tx: Transaction{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				Kind:      KindWithdrawal,
				Amount:    decimal.NewFromInt(50),
				Category:  CategoryProfitWithdrawal,
				Timestamp: now,
			},
			wantErr: false,
		},
		{
			name: "Zero amount should fail",
			tx: Transaction{
				ID:        uuid.New(),
				Kind:      KindDeposit,
				Amount:    decimal.Zero,
				Timestamp: now,
			},
			wantErr: true,
			errMsg:  "amount",
		},
		{
			name: "Negative amount should fail",
			tx: Transaction{
				ID:        uuid.New(),
				Kind:      KindWithdrawal,
				Amount:    decimal.NewFromInt(-10),
				Timestamp: now,
			},
			wantErr: true,
			errMsg:  "amount",
		},
		{
			name: "Unknown kind should fail",
			tx: Transaction{
				ID:        uuid.New(),
				Kind:      TransactionKind("TRANSFER"),
				Amount:    decimal.NewFromInt(10),
				Timestamp: now,
			},
			wantErr: true,
			errMsg:  "kind",
		},
		{
			name: "Zero timestamp should fail",
			tx: Transaction{
				ID:     uuid.New(),
				Kind:   KindDeposit,
				Amount: decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "timestamp",
		},
		{
			name: "Initial bank flag on withdrawal should fail",
			tx: Transaction{
				ID:            uuid.New(),
				Kind:          KindWithdrawal,
				Amount:        decimal.NewFromInt(10),
				Timestamp:     now,
				IsInitialBank: true,
			},
			wantErr: true,
			errMsg:  "isInitialBank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedgerBalance_EqualsDepositsMinusWithdrawals(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	deposit := func(amount string, initial bool) *Transaction {
		return &Transaction{
			ID:            uuid.New(),
			UserID:        userID,
			Kind:          KindDeposit,
			Amount:        decimal.RequireFromString(amount),
			Category:      DefaultCategory,
			Timestamp:     now,
			IsInitialBank: initial,
		}
	}
	withdrawal := func(amount, category string) *Transaction {
		return &Transaction{
			ID:        uuid.New(),
			UserID:    userID,
			Kind:      KindWithdrawal,
			Amount:    decimal.RequireFromString(amount),
			Category:  category,
			Timestamp: now,
		}
	}

	txs := []*Transaction{
		deposit("1000", true),
		deposit("250.10", false),
		withdrawal("100.05", DefaultCategory),
		withdrawal("49.95", CategoryProfitWithdrawal),
	}

	// balance = totalDeposits - totalWithdrawals, exactly, with no decimal drift
	assert.True(t, LedgerBalance(txs).Equal(TotalDeposits(txs).Sub(TotalWithdrawals(txs))))
	assert.True(t, LedgerBalance(txs).Equal(decimal.RequireFromString("1100.10")))
	assert.True(t, TotalDeposits(txs).Equal(decimal.RequireFromString("1250.10")))
	assert.True(t, TotalWithdrawals(txs).Equal(decimal.RequireFromString("150")))
	assert.True(t, InitialBankroll(txs).Equal(decimal.NewFromInt(1000)))
	assert.True(t, SumWithdrawalsByCategory(txs, CategoryProfitWithdrawal).Equal(decimal.RequireFromString("49.95")))
}

func TestLedgerBalance_Empty(t *testing.T) {
	assert.True(t, LedgerBalance(nil).IsZero())
	assert.True(t, InitialBankroll(nil).IsZero())
}
