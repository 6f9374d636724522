package service_test

import (
	"testing"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestDirectionsForEdit(t *testing.T) {
	right := models.AttackingDirectionRight
	left := models.AttackingDirectionLeft

	tests := []struct {
		name         string
		periodNumber int
		direction    models.AttackingDirection
		want         [3]models.AttackingDirection
	}{
		{
			name:         "first period set to right",
			periodNumber: 1,
			direction:    right,
			want:         [3]models.AttackingDirection{right, left, right},
		},
		{
			name:         "first period set to left",
			periodNumber: 1,
			direction:    left,
			want:         [3]models.AttackingDirection{left, right, left},
		},
		{
			name:         "second period set to right flips the others",
			periodNumber: 2,
			direction:    right,
			want:         [3]models.AttackingDirection{left, right, left},
		},
		{
			name:         "second period set to left flips the others",
			periodNumber: 2,
			direction:    left,
			want:         [3]models.AttackingDirection{right, left, right},
		},
		{
			name:         "third period set to left",
			periodNumber: 3,
			direction:    left,
			want:         [3]models.AttackingDirection{left, right, left},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.DirectionsForEdit(tt.periodNumber, tt.direction)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionsForEditAlternation(t *testing.T) {
	// Whatever period is edited, neighbouring periods must alternate.
	for periodNumber := 1; periodNumber <= 3; periodNumber++ {
		for _, dir := range []models.AttackingDirection{models.AttackingDirectionLeft, models.AttackingDirectionRight} {
			got := service.DirectionsForEdit(periodNumber, dir)
			assert.Equal(t, dir, got[periodNumber-1], "edited period keeps its direction")
			assert.NotEqual(t, got[0], got[1])
			assert.NotEqual(t, got[1], got[2])
			assert.Equal(t, got[0], got[2])
		}
	}
}
