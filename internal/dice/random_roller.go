package dice

import (
	"math/rand"

	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
)

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, enginerr.InvalidArgument("invalid dice count")
	}
	if sides < 1 {
		return nil, enginerr.InvalidArgument("invalid dice size")
	}

	rolls := make([]int, count)
	total := bonus
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		rolls[i] = roll
		total += roll
	}

	return &RollResult{
		Total: total,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}
