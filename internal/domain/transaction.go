package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a transaction
type TransactionKind string

const (
	KindDeposit    TransactionKind = "DEPOSIT"
	KindWithdrawal TransactionKind = "WITHDRAWAL"
)

// DefaultCategory is applied when a transaction is recorded without a category
const DefaultCategory = "Other"

// CategoryProfitWithdrawal labels withdrawals that represent realized profit.
// Withdrawals in this category are counted in full by the real-profit metric.
const CategoryProfitWithdrawal = "Profit Withdrawal"

// Transaction represents a single ledger entry in the domain layer.
// Immutable once created except through explicit edit/delete operations.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Kind          TransactionKind
	Amount        decimal.Decimal // ABSOLUTE VALUE (Always Positive)
	Category      string
	Timestamp     time.Time
	IsInitialBank bool // true only for deposits that seed the bankroll
	Description   string
}

// Validate ensures the transaction adheres to domain rules
// Returns a ValidationError if validation fails
func (t *Transaction) Validate() error {
	if t.Kind != KindDeposit && t.Kind != KindWithdrawal {
		return NewValidationError("kind", "must be DEPOSIT or WITHDRAWAL")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("amount", "must be positive")
	}

	if t.Timestamp.IsZero() {
		return NewValidationError("timestamp", "must be a valid date")
	}

	// Only deposits may seed the bankroll
	if t.IsInitialBank && t.Kind != KindDeposit {
		return NewValidationError("isInitialBank", "only deposits can be flagged as initial bankroll")
	}

	return nil
}
