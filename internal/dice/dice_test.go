package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		input    string
		expected Formula
		wantErr  bool
	}{
		{input: "2d6+3", expected: Formula{Count: 2, Sides: 6, Bonus: 3}},
		{input: "1d8", expected: Formula{Count: 1, Sides: 8}},
		{input: "d20", expected: Formula{Count: 1, Sides: 20}},
		{input: "2d6-1", expected: Formula{Count: 2, Sides: 6, Bonus: -1}},
		{input: "3", expected: Formula{Bonus: 3}},
		{input: " 1D4 ", expected: Formula{Count: 1, Sides: 4}},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "2d", wantErr: true},
		{input: "0d6", wantErr: true},
		{input: "1d0", wantErr: true},
		{input: "1d6+x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormula(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRollFormula_Constant(t *testing.T) {
	// Constants never consume predetermined rolls
	roller := NewMockRoller()

	result, err := RollFormula(roller, "4")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Empty(t, result.Rolls)
}

func TestRollFormula_Dice(t *testing.T) {
	roller := NewMockRoller()
	roller.SetRolls([]int{3, 5})

	result, err := RollFormula(roller, "2d6+2")
	require.NoError(t, err)
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, []int{3, 5}, result.Rolls)
}

func TestMockRoller_ExhaustedRolls(t *testing.T) {
	roller := NewMockRoller()
	roller.SetRolls([]int{6})

	_, err := roller.Roll(2, 6, 0)
	assert.Error(t, err)
}

func TestRandomRoller_Bounds(t *testing.T) {
	roller := NewRandomRoller()

	for i := 0; i < 100; i++ {
		result, err := roller.Roll(2, 6, 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, 3)
		assert.LessOrEqual(t, result.Total, 13)
		assert.Len(t, result.Rolls, 2)
	}
}

func TestRandomRoller_InvalidInput(t *testing.T) {
	roller := NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
}
