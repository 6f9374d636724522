package service_test

import (
	"testing"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestShootingPercentage(t *testing.T) {
	tests := []struct {
		name  string
		goals int
		shots int
		want  float64
	}{
		{"no shots", 0, 0, 0},
		{"goals but no shots", 3, 0, 0},
		{"no goals", 0, 10, 0},
		{"perfect", 5, 5, 100},
		{"half", 1, 2, 50},
		{"rounds to two decimals", 3, 7, 42.86},
		{"repeating decimal", 1, 3, 33.33},
		{"small fraction", 1, 8, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ShootingPercentage(tt.goals, tt.shots)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
