package domain

import "github.com/shopspring/decimal"

// LedgerBalance computes the current balance over a transaction list:
// sum(deposits) - sum(withdrawals).
// This is the single definition of "current balance" used everywhere;
// it must never be computed any other way.
func LedgerBalance(txs []*Transaction) decimal.Decimal {
	return TotalDeposits(txs).Sub(TotalWithdrawals(txs))
}

// TotalDeposits sums the amounts of all deposit transactions
func TotalDeposits(txs []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Kind == KindDeposit {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalWithdrawals sums the amounts of all withdrawal transactions
func TotalWithdrawals(txs []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Kind == KindWithdrawal {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// InitialBankroll sums the amounts of deposits flagged as initial bankroll.
// A zero result means the bankroll is undefined, NOT a real seed of zero;
// callers must fall back through the cumulative-initial-balance chain rather
// than treating 0 as a known baseline.
func InitialBankroll(txs []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Kind == KindDeposit && tx.IsInitialBank {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// SumWithdrawalsByCategory sums withdrawal amounts for a single category
func SumWithdrawalsByCategory(txs []*Transaction, category string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Kind == KindWithdrawal && tx.Category == category {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
