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

// objectiveRepository implements domain.ObjectiveRepository
type objectiveRepository struct {
	db *DB
}

// NewObjectiveRepository creates a new objective repository
func NewObjectiveRepository(db *DB) domain.ObjectiveRepository {
	return &objectiveRepository{db: db}
}

// Create creates a new objective
func (r *objectiveRepository) Create(ctx context.Context, obj *domain.Objective) error {
	query := `
		INSERT INTO objectives (id, user_id, title, target_amount, current_amount, deadline, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		obj.ID,
		obj.UserID,
		obj.Title,
		obj.TargetAmount.String(),
		obj.CurrentAmount.String(),
		obj.Deadline,
		obj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert objective: %w", err)
	}

	return nil
}

// Update replaces an existing objective by id
func (r *objectiveRepository) Update(ctx context.Context, obj *domain.Objective) error {
	query := `
		UPDATE objectives
		SET title = $3, target_amount = $4, current_amount = $5, deadline = $6
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.ExecContext(ctx, query,
		obj.ID,
		obj.UserID,
		obj.Title,
		obj.TargetAmount.String(),
		obj.CurrentAmount.String(),
		obj.Deadline,
	)
	if err != nil {
		return fmt.Errorf("failed to update objective: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("objective", obj.ID)
	}

	return nil
}

// Delete removes an objective by id
func (r *objectiveRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM objectives WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete objective: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("objective", id)
	}

	return nil
}

// GetByID retrieves a single objective by id
func (r *objectiveRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Objective, error) {
	query := `
		SELECT id, user_id, title, target_amount, current_amount, deadline, created_at
		FROM objectives
		WHERE id = $1 AND user_id = $2
	`

	obj, err := scanObjective(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("objective", id)
		}
		return nil, fmt.Errorf("failed to get objective by ID: %w", err)
	}

	return obj, nil
}

// ListByUser retrieves all objectives for a user ordered by creation time
func (r *objectiveRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Objective, error) {
	query := `
		SELECT id, user_id, title, target_amount, current_amount, deadline, created_at
		FROM objectives
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	defer rows.Close()

	objectives := make([]*domain.Objective, 0)
	for rows.Next() {
		obj, err := scanObjective(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan objective: %w", err)
		}
		objectives = append(objectives, obj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate objectives: %w", err)
	}

	return objectives, nil
}

func scanObjective(row rowScanner) (*domain.Objective, error) {
	var obj domain.Objective
	var targetStr, currentStr string

	err := row.Scan(
		&obj.ID,
		&obj.UserID,
		&obj.Title,
		&targetStr,
		&currentStr,
		&obj.Deadline,
		&obj.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Parse target_amount and current_amount (DECIMAL)
	target, err := decimal.NewFromString(targetStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target_amount: %w", err)
	}
	obj.TargetAmount = target

	current, err := decimal.NewFromString(currentStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse current_amount: %w", err)
	}
	obj.CurrentAmount = current

	return &obj, nil
}
