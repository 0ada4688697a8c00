package reporting

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// DashboardSummary represents the derived metrics a dashboard needs, composed
// from the ledger and the risk profile without either knowing the other
type DashboardSummary struct {
	Balance                  decimal.Decimal
	TotalDeposits            decimal.Decimal
	TotalWithdrawals         decimal.Decimal
	CumulativeInitialBalance decimal.Decimal
	OperationResult          decimal.Decimal
	RealProfit               decimal.Decimal
	ROI                      decimal.Decimal
	ROIDefined               bool
	AutomaticProfitTarget    decimal.Decimal
	StopLoss                 domain.StopLossStatus
	ProfitTarget             domain.ProfitTargetStatus
	HasInitializationIssue   bool
	ProfileType              domain.ProfileType
	ProfileMeta              domain.ProfileMeta
}

// ReportingService composes the ledger and the risk profile into
// dashboard-level derived metrics
type ReportingService struct {
	TransactionRepo domain.TransactionRepository
	RiskProfileRepo domain.RiskProfileRepository
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(
	transactionRepo domain.TransactionRepository,
	riskProfileRepo domain.RiskProfileRepository,
) *ReportingService {
	return &ReportingService{
		TransactionRepo: transactionRepo,
		RiskProfileRepo: riskProfileRepo,
	}
}

// CumulativeInitialBalance resolves the bankroll baseline through the
// fallback chain, first non-zero wins:
//  1. The ledger's flagged initial deposits
//  2. The risk profile's initial balance, if the profile is initialized
//  3. Zero
//
// The chain tolerates partially-entered data: a profile set before the first
// transaction, or vice versa.
func CumulativeInitialBalance(txs []*domain.Transaction, profile *domain.RiskProfile) decimal.Decimal {
	if bankroll := domain.InitialBankroll(txs); !bankroll.IsZero() {
		return bankroll
	}

	if profile != nil && profile.IsInitialized && !profile.InitialBalance.IsZero() {
		return profile.InitialBalance
	}

	return decimal.Zero
}

// OperationResult is the balance movement relative to the bankroll baseline:
// balance - cumulativeInitialBalance
func OperationResult(txs []*domain.Transaction, profile *domain.RiskProfile) decimal.Decimal {
	return domain.LedgerBalance(txs).Sub(CumulativeInitialBalance(txs, profile))
}

// RealProfit is max(0, balance - cumulativeInitialBalance) plus all
// withdrawals labeled "Profit Withdrawal", counted in full.
//
// The floor applies to the unrealized side only; realized profit withdrawals
// are added back unfloored, so the figure answers "how much money was made",
// never going negative.
func RealProfit(txs []*domain.Transaction, profile *domain.RiskProfile) decimal.Decimal {
	unrealized := domain.LedgerBalance(txs).Sub(CumulativeInitialBalance(txs, profile))
	if unrealized.LessThan(decimal.Zero) {
		unrealized = decimal.Zero
	}

	realized := domain.SumWithdrawalsByCategory(txs, domain.CategoryProfitWithdrawal)

	return unrealized.Add(realized)
}

// ROI is realProfit / cumulativeInitialBalance * 100. The second return is
// false when the baseline is zero: the ratio is undefined, not zero and not
// an error, and callers must branch on it instead of dividing blindly.
func ROI(txs []*domain.Transaction, profile *domain.RiskProfile) (decimal.Decimal, bool) {
	base := CumulativeInitialBalance(txs, profile)
	if base.IsZero() {
		return decimal.Zero, false
	}

	return RealProfit(txs, profile).Div(base).Mul(decimal.NewFromInt(100)), true
}

// HasInitializationIssue reports a positive balance with no known bankroll
// baseline. Drives a one-time user warning, not a hard error.
func HasInitializationIssue(txs []*domain.Transaction, profile *domain.RiskProfile) bool {
	return CumulativeInitialBalance(txs, profile).IsZero() &&
		domain.LedgerBalance(txs).GreaterThan(decimal.Zero)
}

// BuildDashboard loads the user's ledger and profile once and computes the
// full set of dashboard metrics over that snapshot
func (s *ReportingService) BuildDashboard(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	txs, err := s.TransactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.RiskProfileRepo.GetByUser(ctx, userID)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			return nil, err
		}
		// Absent profile behaves as uninitialized: default risk level, so the
		// automatic target still derives from the ledger's baseline
		profile = domain.UninitializedRiskProfile(userID)
	}

	balance := domain.LedgerBalance(txs)
	cumulative := CumulativeInitialBalance(txs, profile)
	roi, roiDefined := ROI(txs, profile)

	// The dashboard profit-goal card shows the risk-derived automatic target,
	// computed against the resolved baseline, not the stored ProfitTarget.
	autoTarget := domain.AutomaticProfitTarget(cumulative, profile.RiskLevel)

	return &DashboardSummary{
		Balance:                  balance,
		TotalDeposits:            domain.TotalDeposits(txs),
		TotalWithdrawals:         domain.TotalWithdrawals(txs),
		CumulativeInitialBalance: cumulative,
		OperationResult:          OperationResult(txs, profile),
		RealProfit:               RealProfit(txs, profile),
		ROI:                      roi,
		ROIDefined:               roiDefined,
		AutomaticProfitTarget:    autoTarget,
		StopLoss:                 profile.CheckStopLoss(balance),
		ProfitTarget:             profile.CheckProfitTarget(balance),
		HasInitializationIssue:   HasInitializationIssue(txs, profile),
		ProfileType:              profile.ProfileType,
		ProfileMeta:              domain.MetaFor(profile.ProfileType),
	}, nil
}
