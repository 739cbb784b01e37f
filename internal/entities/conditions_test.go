package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
)

func TestShouldApply(t *testing.T) {
	tests := []struct {
		name      string
		condition entities.ApplyCondition
		oneHit    bool
		bothHit   bool
		rollTotal int
		threshold int
		expected  bool
	}{
		{"never with full hit", entities.ConditionNever, true, true, 20, 1, false},
		{"never with miss", entities.ConditionNever, false, false, 0, 0, false},
		{"one success with one hit", entities.ConditionOneSuccess, true, false, 0, 0, true},
		{"one success with both hits", entities.ConditionOneSuccess, false, true, 0, 0, true},
		{"one success with miss", entities.ConditionOneSuccess, false, false, 0, 0, false},
		{"two successes with one hit", entities.ConditionTwoSuccesses, true, false, 0, 0, false},
		{"two successes with both hits", entities.ConditionTwoSuccesses, true, true, 0, 0, true},
		{"roll value at boundary", entities.ConditionRollValue, false, false, 15, 15, true},
		{"roll value below boundary", entities.ConditionRollValue, true, true, 14, 15, false},
		{"roll value above boundary", entities.ConditionRollValue, false, false, 19, 15, true},
		{"unknown condition", entities.ApplyCondition("whenever"), true, true, 20, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entities.ShouldApply(tt.condition, tt.oneHit, tt.bothHit, tt.rollTotal, tt.threshold)
			assert.Equal(t, tt.expected, got)
		})
	}
}
