package entities

// CardMode selects which resolution path an action card takes
type CardMode string

const (
	// ModeAttackChain resolves a two-stage opposed check before
	// damage or status effects can trigger
	ModeAttackChain CardMode = "attack_chain"

	// ModeSavedDamage applies a fixed formula without an opposed check
	ModeSavedDamage CardMode = "saved_damage"
)

// DamageType distinguishes harmful from restorative formulas
type DamageType string

const (
	DamageTypeDamage DamageType = "damage"
	DamageTypeHeal   DamageType = "heal"
)

// DefaultStatusThreshold is used when a roll_value status condition
// carries no explicit threshold
const DefaultStatusThreshold = 15

// DefaultStatusApplicationLimit caps status application passes per
// target per invocation when the card does not override it
const DefaultStatusApplicationLimit = 1

// AttackChainConfig configures the opposed-check resolution path
type AttackChainConfig struct {
	FirstStat       Stat           `json:"first_stat" yaml:"first_stat"`
	SecondStat      Stat           `json:"second_stat" yaml:"second_stat"`
	DamageCondition ApplyCondition `json:"damage_condition" yaml:"damage_condition"`
	DamageFormula   string         `json:"damage_formula" yaml:"damage_formula"`
	DamageType      DamageType     `json:"damage_type" yaml:"damage_type"`
	StatusCondition ApplyCondition `json:"status_condition" yaml:"status_condition"`
	StatusThreshold int            `json:"status_threshold" yaml:"status_threshold"`
}

// SavedDamageConfig configures the fixed-effect resolution path
type SavedDamageConfig struct {
	Formula     string     `json:"formula" yaml:"formula"`
	Type        DamageType `json:"type" yaml:"type"`
	Description string     `json:"description" yaml:"description"`
}

// RepetitionConfig controls how many times a card resolves and which
// outcomes reapply on later repetitions
type RepetitionConfig struct {
	// Formula is a dice expression evaluated once per invocation to
	// the repetition count, clamped to a minimum of 1
	Formula string `json:"formula" yaml:"formula"`

	// RepeatToHit re-resolves the opposed check on every repetition
	// instead of reusing the first repetition's hit results
	RepeatToHit bool `json:"repeat_to_hit" yaml:"repeat_to_hit"`

	// DamageEveryRepetition applies damage on every qualifying
	// repetition; false applies it only on the first that qualifies
	DamageEveryRepetition bool `json:"damage_every_repetition" yaml:"damage_every_repetition"`

	// StatusPerSuccess attempts a status application pass on every
	// repetition; false attempts one only on the first repetition
	StatusPerSuccess bool `json:"status_per_success" yaml:"status_per_success"`

	// CostEveryRepetition deducts the power cost each repetition;
	// false deducts it exactly once, on the first
	CostEveryRepetition bool `json:"cost_every_repetition" yaml:"cost_every_repetition"`

	// TimingOverrideSeconds replaces the system default pacing delay
	// between repetitions; zero keeps the default
	TimingOverrideSeconds int `json:"timing_override_seconds" yaml:"timing_override_seconds"`
}

// ActionCard is the read-only definition of a combat action
type ActionCard struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Mode        CardMode `json:"mode" yaml:"mode"`

	// Exactly one of these is active, selected by Mode
	AttackChain *AttackChainConfig `json:"attack_chain,omitempty" yaml:"attack_chain,omitempty"`
	SavedDamage *SavedDamageConfig `json:"saved_damage,omitempty" yaml:"saved_damage,omitempty"`

	Repetition RepetitionConfig  `json:"repetition" yaml:"repetition"`
	Effects    []*EmbeddedEffect `json:"effects,omitempty" yaml:"effects,omitempty"`

	// PowerCost is the resource cost deducted from the acting actor
	PowerCost int `json:"power_cost" yaml:"power_cost"`

	// StatusApplicationLimit caps application passes per target per
	// invocation. Zero means use the default; negative means unlimited.
	StatusApplicationLimit int `json:"status_application_limit" yaml:"status_application_limit"`
}

// StatusCondition returns the condition gating status application for
// this card. Saved-damage cards have no opposed check, so their status
// effects ride on the synthetic all-hit results.
func (c *ActionCard) StatusCondition() ApplyCondition {
	if c.Mode == ModeAttackChain && c.AttackChain != nil {
		return c.AttackChain.StatusCondition
	}
	return ConditionOneSuccess
}

// StatusThreshold returns the roll-value threshold for status
// application, falling back to the default when unset
func (c *ActionCard) StatusThreshold() int {
	if c.Mode == ModeAttackChain && c.AttackChain != nil && c.AttackChain.StatusThreshold != 0 {
		return c.AttackChain.StatusThreshold
	}
	return DefaultStatusThreshold
}

// ApplicationLimit returns the per-target status application limit.
// Zero on the card means the default; negative disables the limit.
func (c *ActionCard) ApplicationLimit() int {
	switch {
	case c.StatusApplicationLimit < 0:
		return 0
	case c.StatusApplicationLimit == 0:
		return DefaultStatusApplicationLimit
	default:
		return c.StatusApplicationLimit
	}
}
