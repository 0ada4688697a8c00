package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxObjectiveTitleLength bounds the objective title
const MaxObjectiveTitleLength = 100

// ProgressColor classifies objective progress into display buckets.
// The bucket boundaries are a contract callers rely on for consistent UX.
type ProgressColor string

const (
	ProgressGood ProgressColor = "good" // >= 80
	ProgressOK   ProgressColor = "ok"   // >= 50
	ProgressWarn ProgressColor = "warn" // >= 25
	ProgressBad  ProgressColor = "bad"  // < 25
)

// Objective represents a savings goal in the domain layer.
// Independent of the transaction ledger.
type Objective struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	CreatedAt     time.Time
}

// Validate ensures the objective adheres to domain rules.
// The deadline-in-past rule is create-only and is enforced by the service,
// not here: objectives updated later keep whatever deadline they have.
func (o *Objective) Validate() error {
	if o.Title == "" {
		return NewValidationError("title", "cannot be empty")
	}

	if utf8.RuneCountInString(o.Title) > MaxObjectiveTitleLength {
		return NewValidationError("title", "must be at most 100 characters")
	}

	if o.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("targetAmount", "must be positive")
	}

	if o.CurrentAmount.LessThan(decimal.Zero) {
		return NewValidationError("currentAmount", "cannot be negative")
	}

	return nil
}

// Progress returns the completion percentage, clamped to [0, 100].
// Guards against targetAmount <= 0: objectives loaded from external storage
// may violate the creation invariant, and division by zero must return 0.
func (o *Objective) Progress() decimal.Decimal {
	if o.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	percent := o.CurrentAmount.Div(o.TargetAmount).Mul(decimal.NewFromInt(100))

	hundred := decimal.NewFromInt(100)
	if percent.GreaterThan(hundred) {
		return hundred
	}

	return percent
}

// DaysRemaining returns the calendar-day difference between the deadline and
// today, time of day ignored. May be negative (overdue) or zero (due today);
// no clamping. Dates are normalized to UTC before subtracting so a DST
// transition between them cannot skew the count.
func (o *Objective) DaysRemaining(now time.Time) int {
	today := utcDate(now)
	deadline := utcDate(o.Deadline)

	return int(deadline.Sub(today) / (24 * time.Hour))
}

// utcDate maps a time to its calendar date at midnight UTC
func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ProgressColorFor maps a progress percentage to its display bucket
func ProgressColorFor(percent decimal.Decimal) ProgressColor {
	switch {
	case percent.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return ProgressGood
	case percent.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return ProgressOK
	case percent.GreaterThanOrEqual(decimal.NewFromInt(25)):
		return ProgressWarn
	default:
		return ProgressBad
	}
}

// DateOnly truncates a time to midnight in its own location.
// Used wherever the model compares dates ignoring time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
