package objective

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// CreateObjectiveInput represents the input for creating an objective
type CreateObjectiveInput struct {
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
}

// ObjectivePatch represents a partial update to an objective.
// Nil fields are left unchanged.
type ObjectivePatch struct {
	Title         *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
}

// ObjectiveProgress represents the derived progress figures for an objective
type ObjectiveProgress struct {
	Objective     *domain.Objective
	Percent       decimal.Decimal
	DaysRemaining int
	Color         domain.ProgressColor
}

// ObjectiveService handles savings-goal CRUD and progress computation
type ObjectiveService struct {
	ObjectiveRepo domain.ObjectiveRepository

	// now is injectable for deterministic deadline tests
	now func() time.Time
}

// NewObjectiveService creates a new ObjectiveService instance
func NewObjectiveService(objectiveRepo domain.ObjectiveRepository) *ObjectiveService {
	return &ObjectiveService{
		ObjectiveRepo: objectiveRepo,
		now:           time.Now,
	}
}

// CreateObjective creates a new savings goal
// Logic:
//  1. Validate title/amounts through the entity rules
//  2. Reject deadlines strictly before today (date-only comparison)
//  3. Save using ObjectiveRepo.Create
//
// The deadline-in-past rule applies on create only; updates skip it
// (see UpdateObjective).
func (s *ObjectiveService) CreateObjective(ctx context.Context, input CreateObjectiveInput) (*domain.Objective, error) {
	obj := &domain.Objective{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Title:         input.Title,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
		CreatedAt:     s.now(),
	}

	if err := obj.Validate(); err != nil {
		return nil, err
	}

	today := domain.DateOnly(s.now())
	if domain.DateOnly(obj.Deadline).Before(today) {
		return nil, domain.NewValidationError("deadline", "cannot be in the past")
	}

	if err := s.ObjectiveRepo.Create(ctx, obj); err != nil {
		return nil, err
	}

	return obj, nil
}

// UpdateObjective applies a patch to an existing objective.
// Does NOT re-validate deadline-in-past: an objective whose deadline has
// since passed can still be edited. Only creation enforces the
// future-deadline rule.
func (s *ObjectiveService) UpdateObjective(ctx context.Context, userID, id uuid.UUID, patch ObjectivePatch) (*domain.Objective, error) {
	existing, err := s.ObjectiveRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.TargetAmount != nil {
		updated.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		updated.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Deadline != nil {
		updated.Deadline = *patch.Deadline
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.ObjectiveRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteObjective removes an objective by id
// Returns a NotFoundError if the id is absent
func (s *ObjectiveService) DeleteObjective(ctx context.Context, userID, id uuid.UUID) error {
	return s.ObjectiveRepo.Delete(ctx, userID, id)
}

// ListObjectives retrieves the user's objectives with derived progress figures
func (s *ObjectiveService) ListObjectives(ctx context.Context, userID uuid.UUID) ([]ObjectiveProgress, error) {
	objectives, err := s.ObjectiveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]ObjectiveProgress, 0, len(objectives))
	for _, obj := range objectives {
		result = append(result, s.progressFor(obj))
	}

	return result, nil
}

// GetObjective retrieves a single objective with derived progress figures
func (s *ObjectiveService) GetObjective(ctx context.Context, userID, id uuid.UUID) (*ObjectiveProgress, error) {
	obj, err := s.ObjectiveRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	progress := s.progressFor(obj)
	return &progress, nil
}

func (s *ObjectiveService) progressFor(obj *domain.Objective) ObjectiveProgress {
	percent := obj.Progress()
	return ObjectiveProgress{
		Objective:     obj,
		Percent:       percent,
		DaysRemaining: obj.DaysRemaining(s.now()),
		Color:         domain.ProgressColorFor(percent),
	}
}
