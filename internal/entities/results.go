package entities

// StatusEffectResult records the outcome of attempting one effect on
// one target
type StatusEffectResult struct {
	TargetID    string `json:"target_id"`
	TargetName  string `json:"target_name,omitempty"`
	EffectName  string `json:"effect_name"`
	Applied     bool   `json:"applied"`
	Intensified bool   `json:"intensified,omitempty"`
	Warning     string `json:"warning,omitempty"`
	Error       string `json:"error,omitempty"`
}

// DamageResult records one damage or heal application
type DamageResult struct {
	TargetID   string     `json:"target_id"`
	Repetition int        `json:"repetition"`
	Amount     int        `json:"amount"`
	Type       DamageType `json:"type"`
	Applied    bool       `json:"applied"`
	Error      string     `json:"error,omitempty"`
}

// CostResult records one power-cost deduction
type CostResult struct {
	Repetition int    `json:"repetition"`
	Requested  int    `json:"requested"`
	Deducted   int    `json:"deducted"`
	Warning    string `json:"warning,omitempty"`
}

// ExecutionResult aggregates every repetition's outcomes for one
// invocation. Partial successes are always preserved: the operator
// sees per target and per effect what succeeded, what was skipped,
// and why.
type ExecutionResult struct {
	CardID      string                `json:"card_id"`
	SourceID    string                `json:"source_id"`
	Repetitions int                   `json:"repetitions"`
	Damage      []*DamageResult       `json:"damage,omitempty"`
	Statuses    []*StatusEffectResult `json:"statuses,omitempty"`
	Costs       []*CostResult         `json:"costs,omitempty"`

	// Aborted marks early termination mid-sequence; everything
	// accumulated so far is still returned
	Aborted     bool   `json:"aborted,omitempty"`
	AbortReason string `json:"abort_reason,omitempty"`
}
