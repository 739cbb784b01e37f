package entities

// ApplyCondition names the trigger deciding whether damage or status
// effects apply for one target's hit result
type ApplyCondition string

const (
	// ConditionNever suppresses application entirely
	ConditionNever ApplyCondition = "never"

	// ConditionOneSuccess requires at least one opposed-check stage to hit
	ConditionOneSuccess ApplyCondition = "one_success"

	// ConditionTwoSuccesses requires both opposed-check stages to hit
	ConditionTwoSuccesses ApplyCondition = "two_successes"

	// ConditionRollValue compares the roll total against a threshold
	ConditionRollValue ApplyCondition = "roll_value"
)

// ShouldApply evaluates a trigger condition against one target's hit
// and roll data. It is pure and deterministic. Unknown conditions
// never apply.
func ShouldApply(condition ApplyCondition, oneHit, bothHit bool, rollTotal, threshold int) bool {
	switch condition {
	case ConditionNever:
		return false
	case ConditionOneSuccess:
		return oneHit || bothHit
	case ConditionTwoSuccesses:
		return bothHit
	case ConditionRollValue:
		return rollTotal >= threshold
	default:
		return false
	}
}

// TargetHitResult records one target's outcome of the two-stage
// opposed check for a single repetition
type TargetHitResult struct {
	TargetID  string `json:"target_id"`
	OneHit    bool   `json:"one_hit"`
	BothHit   bool   `json:"both_hit"`
	RollTotal int    `json:"roll_total"`
}
