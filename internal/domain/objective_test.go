package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjective_Validate(t *testing.T) {
	longTitle := ""
	for i := 0; i < MaxObjectiveTitleLength+1; i++ {
		longTitle += "x"
	}

	tests := []struct {
		name      string
		objective Objective
		wantErr   bool
		errMsg    string
	}{
		{
			name: "Valid objective should pass",
			objective: Objective{
				ID:            uuid.New(),
				Title:         "Car",
				TargetAmount:  decimal.NewFromInt(10000),
				CurrentAmount: decimal.NewFromInt(2500),
			},
			wantErr: false,
		},
		{
			name: "Empty title should fail",
			objective: Objective{
				ID:           uuid.New(),
				TargetAmount: decimal.NewFromInt(100),
			},
			wantErr: true,
			errMsg:  "title",
		},
		{
			name: "Title over 100 characters should fail",
			objective: Objective{
				ID:           uuid.New(),
				Title:        longTitle,
				TargetAmount: decimal.NewFromInt(100),
			},
			wantErr: true,
			errMsg:  "title",
		},
		{
			name: "Title length is counted in characters, not bytes",
			objective: Objective{
				ID:           uuid.New(),
				Title:        strings.Repeat("é", MaxObjectiveTitleLength),
				TargetAmount: decimal.NewFromInt(100),
			},
			wantErr: false,
		},
		{
			name: "Zero target amount should fail",
			objective: Objective{
				ID:    uuid.New(),
				Title: "Car",
			},
			wantErr: true,
			errMsg:  "targetAmount",
		},
		{
			name: "Negative current amount should fail",
			objective: Objective{
				ID:            uuid.New(),
				Title:         "Car",
				TargetAmount:  decimal.NewFromInt(100),
				CurrentAmount: decimal.NewFromInt(-1),
			},
			wantErr: true,
			errMsg:  "currentAmount",
		},
		{
			name: "Current amount above target is allowed (overflow clamped only for display)",
			objective: Objective{
				ID:            uuid.New(),
				Title:         "Car",
				TargetAmount:  decimal.NewFromInt(100),
				CurrentAmount: decimal.NewFromInt(150),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.objective.Validate()
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

func TestObjective_Progress(t *testing.T) {
	tests := []struct {
		name    string
		target  int64
		current int64
		want    string
	}{
		{"Quarter of the way", 10000, 2500, "25"},
		{"Overflow clamps to 100", 10000, 12000, "100"},
		{"Exactly complete", 500, 500, "100"},
		{"Zero progress", 500, 0, "0"},
		{"Zero target guards against division by zero", 0, 100, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := Objective{
				Title:         "Car",
				TargetAmount:  decimal.NewFromInt(tt.target),
				CurrentAmount: decimal.NewFromInt(tt.current),
			}
			assert.True(t, obj.Progress().Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", obj.Progress(), tt.want)
		})
	}
}

func TestObjective_DaysRemaining(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"Thirty days out", time.Date(2026, time.April, 14, 0, 0, 0, 0, time.UTC), 30},
		{"Due today", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), 0},
		{"Overdue goes negative, no clamping", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), -5},
		{"Tomorrow", time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), 1},
		{"Deadline time of day ignored", time.Date(2026, time.March, 16, 23, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := Objective{Deadline: tt.deadline}
			assert.Equal(t, tt.want, obj.DaysRemaining(now))
		})
	}
}

func TestObjective_DaysRemaining_AcrossDSTFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST ends 2026-11-01 in New York, so that local day is 25 hours long.
	// The count is one calendar day regardless.
	now := time.Date(2026, time.November, 1, 9, 0, 0, 0, loc)
	obj := Objective{Deadline: time.Date(2026, time.November, 2, 0, 0, 0, 0, loc)}

	assert.Equal(t, 1, obj.DaysRemaining(now))
}

func TestProgressColorFor_BucketBoundaries(t *testing.T) {
	tests := []struct {
		percent string
		want    ProgressColor
	}{
		{"100", ProgressGood},
		{"80", ProgressGood},
		{"79.99", ProgressOK},
		{"50", ProgressOK},
		{"49.99", ProgressWarn},
		{"25", ProgressWarn}, // 25 is a boundary and belongs to the >=25 bucket
		{"24.99", ProgressBad},
		{"0", ProgressBad},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressColorFor(decimal.RequireFromString(tt.percent)))
		})
	}
}
