package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthToHit(t *testing.T) {
	traj := Simulate(500, 1, 0) // 500, 1000, ..., 6000

	tests := []struct {
		name        string
		target      float64
		wantReached bool
		wantMonth   int
	}{
		{"first month", 300, true, 1},
		{"exact balance counts as hit", 1000, true, 2},
		{"between balances", 1200, true, 3},
		{"last month", 6000, true, 12},
		{"beyond horizon", 6000.01, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthToHit(traj, tt.target)
			assert.Equal(t, tt.wantReached, got.Reached)
			assert.Equal(t, tt.wantMonth, got.Month)
			assert.Equal(t, tt.target, got.Target)
		})
	}
}

func TestMonthToHit_IsSmallestIndex(t *testing.T) {
	traj := Simulate(750, 20, 7)
	target := 250000.0
	got := MonthToHit(traj, target)
	if assert.True(t, got.Reached) {
		assert.GreaterOrEqual(t, traj[got.Month-1], target)
		for i := 0; i < got.Month-1; i++ {
			assert.Less(t, traj[i], target)
		}
	}
}

func TestMonthToHit_EmptyTrajectory(t *testing.T) {
	assert.False(t, MonthToHit(nil, 10).Reached)
}
