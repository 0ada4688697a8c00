package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileType represents the risk profile classification
type ProfileType string

const (
	ProfileCautious ProfileType = "CAUTIOUS"
	ProfileBalanced ProfileType = "BALANCED"
	ProfileHighRisk ProfileType = "HIGH_RISK"
)

const (
	// MinRiskLevel and MaxRiskLevel bound the user-settable risk level
	MinRiskLevel = 0
	MaxRiskLevel = 10

	// DefaultRiskLevel is applied when a profile is initialized with defaults
	DefaultRiskLevel = 5
)

// RiskProfile represents one user's risk configuration in the domain layer.
// Never deleted, only reset to defaults.
type RiskProfile struct {
	UserID         uuid.UUID
	InitialBalance decimal.Decimal // bankroll baseline for all ratio computations
	RiskLevel      int             // integer in [0, 10]
	StopLoss       decimal.Decimal // 0 means disabled
	ProfitTarget   decimal.Decimal // stored, user-settable target; 0 means manual mode
	ProfileType    ProfileType
	IsInitialized  bool
	UpdatedAt      time.Time
}

// StopLossStatus is the result of a stop-loss threshold check
type StopLossStatus struct {
	Triggered bool
	Deficit   decimal.Decimal
}

// ProfitTargetStatus is the result of a profit-target threshold check
type ProfitTargetStatus struct {
	Achieved bool
	Surplus  decimal.Decimal
}

// ClassifyRiskLevel maps a risk level to its profile classification.
// Single source of truth: riskLevel <= 3 is Cautious, <= 6 is Balanced,
// everything above is HighRisk. Must be recomputed whenever riskLevel
// changes, never cached stale.
func ClassifyRiskLevel(riskLevel int) ProfileType {
	switch {
	case riskLevel <= 3:
		return ProfileCautious
	case riskLevel <= 6:
		return ProfileBalanced
	default:
		return ProfileHighRisk
	}
}

// DefaultRiskProfile produces the default profile for a known initial balance:
// riskLevel=5, stopLoss=20% of initial balance, profitTarget=50% of initial
// balance, Balanced classification, initialized.
func DefaultRiskProfile(userID uuid.UUID, initialBalance decimal.Decimal) *RiskProfile {
	return &RiskProfile{
		UserID:         userID,
		InitialBalance: initialBalance,
		RiskLevel:      DefaultRiskLevel,
		StopLoss:       initialBalance.Mul(decimal.NewFromFloat(0.2)),
		ProfitTarget:   initialBalance.Mul(decimal.NewFromFloat(0.5)),
		ProfileType:    ClassifyRiskLevel(DefaultRiskLevel),
		IsInitialized:  true,
	}
}

// UninitializedRiskProfile is the profile an absent row reads as: default
// risk level, Balanced classification, everything else zero, not initialized.
// Absence and "uninitialized" are the same state everywhere.
func UninitializedRiskProfile(userID uuid.UUID) *RiskProfile {
	return &RiskProfile{
		UserID:         userID,
		InitialBalance: decimal.Zero,
		RiskLevel:      DefaultRiskLevel,
		StopLoss:       decimal.Zero,
		ProfitTarget:   decimal.Zero,
		ProfileType:    ClassifyRiskLevel(DefaultRiskLevel),
		IsInitialized:  false,
	}
}

// Validate ensures the risk profile adheres to domain rules
// Returns a ValidationError if validation fails
func (p *RiskProfile) Validate() error {
	if p.RiskLevel < MinRiskLevel || p.RiskLevel > MaxRiskLevel {
		return NewValidationError("riskLevel", "must be between 0 and 10")
	}

	if p.InitialBalance.LessThan(decimal.Zero) {
		return NewValidationError("initialBalance", "cannot be negative")
	}

	if p.StopLoss.LessThan(decimal.Zero) {
		return NewValidationError("stopLoss", "cannot be negative")
	}

	if p.ProfitTarget.LessThan(decimal.Zero) {
		return NewValidationError("profitTarget", "cannot be negative")
	}

	if p.ProfileType != ProfileCautious && p.ProfileType != ProfileBalanced && p.ProfileType != ProfileHighRisk {
		return NewValidationError("profileType", "must be CAUTIOUS, BALANCED, or HIGH_RISK")
	}

	return nil
}

// CheckStopLoss evaluates the stop-loss threshold against the current balance.
// Triggered iff the stop-loss is enabled (> 0) and the balance has fallen to
// or below it. Deficit is how far the balance sits below the initial bankroll,
// floored at zero; it is only reported while the stop-loss is triggered.
func (p *RiskProfile) CheckStopLoss(currentBalance decimal.Decimal) StopLossStatus {
	triggered := p.StopLoss.GreaterThan(decimal.Zero) && currentBalance.LessThanOrEqual(p.StopLoss)
	if !triggered {
		return StopLossStatus{Deficit: decimal.Zero}
	}

	deficit := p.InitialBalance.Sub(currentBalance)
	if deficit.LessThan(decimal.Zero) {
		deficit = decimal.Zero
	}

	return StopLossStatus{Triggered: true, Deficit: deficit}
}

// CheckProfitTarget evaluates the stored (manual) profit target against the
// current balance. The target balance is initialBalance + profitTarget.
// Surplus is balance - initialBalance and may be negative.
func (p *RiskProfile) CheckProfitTarget(currentBalance decimal.Decimal) ProfitTargetStatus {
	targetBalance := p.InitialBalance.Add(p.ProfitTarget)
	achieved := p.ProfitTarget.GreaterThan(decimal.Zero) && currentBalance.GreaterThanOrEqual(targetBalance)

	return ProfitTargetStatus{
		Achieved: achieved,
		Surplus:  currentBalance.Sub(p.InitialBalance),
	}
}

// AutomaticProfitTarget derives a profit target from the risk level alone:
// initialBalance * riskLevel / 100. Returns 0 when the initial balance is 0.
//
// This is a separate concept from the stored ProfitTarget field and is the
// value surfaced on the dashboard profit-goal card. Both coexist on purpose;
// see DESIGN.md for the open question on reconciling them.
func AutomaticProfitTarget(initialBalance decimal.Decimal, riskLevel int) decimal.Decimal {
	if initialBalance.IsZero() {
		return decimal.Zero
	}

	return initialBalance.Mul(decimal.NewFromInt(int64(riskLevel))).Div(decimal.NewFromInt(100))
}
