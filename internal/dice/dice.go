package dice

import (
	"fmt"
	"strconv"
	"strings"

	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
)

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total int
	Rolls []int
	Bonus int
	Count int
	Sides int
}

// Formula is a parsed dice expression such as "2d6+3".
// A Count of zero means the formula is a plain constant carried in Bonus.
type Formula struct {
	Count int
	Sides int
	Bonus int
}

// IsConstant reports whether the formula rolls no dice
func (f Formula) IsConstant() bool {
	return f.Count == 0
}

// ParseFormula parses dice expressions of the form "XdY", "XdY+Z", "XdY-Z",
// "dY" (one die) or a plain integer constant.
func ParseFormula(input string) (Formula, error) {
	expr := strings.ToLower(strings.TrimSpace(input))
	if expr == "" {
		return Formula{}, enginerr.InvalidArgument("empty dice formula")
	}

	// Plain constant, e.g. "3"
	if !strings.Contains(expr, "d") {
		value, err := strconv.Atoi(expr)
		if err != nil {
			return Formula{}, enginerr.InvalidArgumentf("invalid dice formula %q", input)
		}
		return Formula{Bonus: value}, nil
	}

	dicePart := expr
	bonus := 0
	sign := 1
	if idx := strings.IndexAny(expr, "+-"); idx > 0 {
		if expr[idx] == '-' {
			sign = -1
		}
		parsed, err := strconv.Atoi(expr[idx+1:])
		if err != nil {
			return Formula{}, enginerr.InvalidArgumentf("invalid dice formula %q", input)
		}
		bonus = sign * parsed
		dicePart = expr[:idx]
	}

	parts := strings.Split(dicePart, "d")
	if len(parts) != 2 {
		return Formula{}, enginerr.InvalidArgumentf("invalid dice formula %q", input)
	}

	count := 1
	if parts[0] != "" {
		parsed, err := strconv.Atoi(parts[0])
		if err != nil {
			return Formula{}, enginerr.InvalidArgumentf("invalid dice formula %q", input)
		}
		count = parsed
	}

	sides, err := strconv.Atoi(parts[1])
	if err != nil {
		return Formula{}, enginerr.InvalidArgumentf("invalid dice formula %q", input)
	}

	if count < 1 {
		return Formula{}, enginerr.InvalidArgumentf("invalid dice count in %q", input)
	}
	if sides < 1 {
		return Formula{}, enginerr.InvalidArgumentf("invalid dice size in %q", input)
	}

	return Formula{Count: count, Sides: sides, Bonus: bonus}, nil
}

// RollFormula parses and rolls a dice expression with the given roller.
// Constant formulas produce a result without consuming any rolls.
func RollFormula(roller Roller, input string) (*RollResult, error) {
	formula, err := ParseFormula(input)
	if err != nil {
		return nil, err
	}

	if formula.IsConstant() {
		return &RollResult{Total: formula.Bonus, Bonus: formula.Bonus}, nil
	}

	result, err := roller.Roll(formula.Count, formula.Sides, formula.Bonus)
	if err != nil {
		return nil, enginerr.Wrapf(err, "failed to roll %q", input)
	}
	return result, nil
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
