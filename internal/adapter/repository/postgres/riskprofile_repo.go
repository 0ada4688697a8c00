package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// riskProfileRepository implements domain.RiskProfileRepository
type riskProfileRepository struct {
	db *DB
}

// NewRiskProfileRepository creates a new risk profile repository
func NewRiskProfileRepository(db *DB) domain.RiskProfileRepository {
	return &riskProfileRepository{db: db}
}

// Save creates or replaces the profile for its user (one profile per user)
func (r *riskProfileRepository) Save(ctx context.Context, profile *domain.RiskProfile) error {
	query := `
		INSERT INTO risk_profiles (user_id, initial_balance, risk_level, stop_loss, profit_target, profile_type, is_initialized, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			initial_balance = EXCLUDED.initial_balance,
			risk_level = EXCLUDED.risk_level,
			stop_loss = EXCLUDED.stop_loss,
			profit_target = EXCLUDED.profit_target,
			profile_type = EXCLUDED.profile_type,
			is_initialized = EXCLUDED.is_initialized,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.UserID,
		profile.InitialBalance.String(),
		profile.RiskLevel,
		profile.StopLoss.String(),
		profile.ProfitTarget.String(),
		string(profile.ProfileType),
		profile.IsInitialized,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save risk profile: %w", err)
	}

	return nil
}

// GetByUser retrieves the profile for a user
func (r *riskProfileRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.RiskProfile, error) {
	query := `
		SELECT user_id, initial_balance, risk_level, stop_loss, profit_target, profile_type, is_initialized, updated_at
		FROM risk_profiles
		WHERE user_id = $1
	`

	var profile domain.RiskProfile
	var initialStr, stopLossStr, targetStr string

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&initialStr,
		&profile.RiskLevel,
		&stopLossStr,
		&targetStr,
		&profile.ProfileType,
		&profile.IsInitialized,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("risk profile", userID)
		}
		return nil, fmt.Errorf("failed to get risk profile: %w", err)
	}

	// Parse the DECIMAL columns
	if profile.InitialBalance, err = decimal.NewFromString(initialStr); err != nil {
		return nil, fmt.Errorf("failed to parse initial_balance: %w", err)
	}
	if profile.StopLoss, err = decimal.NewFromString(stopLossStr); err != nil {
		return nil, fmt.Errorf("failed to parse stop_loss: %w", err)
	}
	if profile.ProfitTarget, err = decimal.NewFromString(targetStr); err != nil {
		return nil, fmt.Errorf("failed to parse profit_target: %w", err)
	}

	return &profile, nil
}
