package riskprofile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// RiskProfilePatch represents a partial update to a risk profile.
// Nil fields are left unchanged. When RiskLevel changes and ProfileType is
// not part of the patch, the classification is recomputed.
type RiskProfilePatch struct {
	InitialBalance *decimal.Decimal
	RiskLevel      *int
	StopLoss       *decimal.Decimal
	ProfitTarget   *decimal.Decimal
	ProfileType    *domain.ProfileType
}

// RiskProfileService owns one user's risk profile lifecycle:
// Uninitialized -> Initialized via InitializeDefault or the first successful
// update, back to Uninitialized only via Reset.
type RiskProfileService struct {
	RiskProfileRepo domain.RiskProfileRepository
}

// NewRiskProfileService creates a new RiskProfileService instance
func NewRiskProfileService(riskProfileRepo domain.RiskProfileRepository) *RiskProfileService {
	return &RiskProfileService{RiskProfileRepo: riskProfileRepo}
}

// GetProfile retrieves the user's profile.
// A profile that was never saved is returned as an uninitialized zero profile
// rather than an error: absence and "uninitialized" are the same state.
func (s *RiskProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.RiskProfile, error) {
	profile, err := s.RiskProfileRepo.GetByUser(ctx, userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return s.uninitialized(userID), nil
		}
		return nil, err
	}

	return profile, nil
}

// InitializeDefault creates the default profile for a known initial balance
// Logic:
//  1. Refuse to initialize against a zero or negative balance: the engine
//     must not auto-initialize before a real bankroll is known
//  2. Refuse to overwrite an already-initialized profile
//  3. Build the default profile (riskLevel=5, stopLoss=20%, profitTarget=50%)
//     and save it
func (s *RiskProfileService) InitializeDefault(ctx context.Context, userID uuid.UUID, initialBalance decimal.Decimal) (*domain.RiskProfile, error) {
	if initialBalance.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("initialBalance", "cannot initialize against a zero or unknown balance")
	}

	existing, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing.IsInitialized {
		return nil, domain.NewValidationError("profile", "already initialized")
	}

	profile := domain.DefaultRiskProfile(userID, initialBalance)
	profile.UpdatedAt = time.Now()

	if err := s.RiskProfileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile merges a patch into the user's profile
// Logic:
//  1. Load the current profile (absent behaves as uninitialized zero profile)
//  2. Merge non-nil patch fields
//  3. Recompute ProfileType from the new RiskLevel when the level changed and
//     the patch did not set the type explicitly
//  4. Validate, mark initialized, save
//
// A successful first update transitions the profile to Initialized.
func (s *RiskProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch RiskProfilePatch) (*domain.RiskProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *profile
	if patch.InitialBalance != nil {
		updated.InitialBalance = *patch.InitialBalance
	}
	if patch.StopLoss != nil {
		updated.StopLoss = *patch.StopLoss
	}
	if patch.ProfitTarget != nil {
		updated.ProfitTarget = *patch.ProfitTarget
	}

	riskLevelChanged := false
	if patch.RiskLevel != nil && *patch.RiskLevel != updated.RiskLevel {
		updated.RiskLevel = *patch.RiskLevel
		riskLevelChanged = true
	}

	if patch.ProfileType != nil {
		updated.ProfileType = *patch.ProfileType
	} else if riskLevelChanged || updated.ProfileType == "" {
		updated.ProfileType = domain.ClassifyRiskLevel(updated.RiskLevel)
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.IsInitialized = true
	updated.UpdatedAt = time.Now()

	if err := s.RiskProfileRepo.Save(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Reset clears the profile back to the uninitialized state.
// The profile is never deleted, only zeroed.
func (s *RiskProfileService) Reset(ctx context.Context, userID uuid.UUID) (*domain.RiskProfile, error) {
	profile := s.uninitialized(userID)
	profile.UpdatedAt = time.Now()

	if err := s.RiskProfileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *RiskProfileService) uninitialized(userID uuid.UUID) *domain.RiskProfile {
	return domain.UninitializedRiskProfile(userID)
}
