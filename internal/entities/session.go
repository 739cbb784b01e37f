package entities

import "fmt"

// ExecutionSession is the mutable per-invocation bookkeeping threaded
// through one resolution. It is created fresh for each top-level
// invocation and never shared across unrelated invocations.
type ExecutionSession struct {
	Card     *ActionCard
	SourceID string

	// HitResults holds the current repetition's opposed-check outcomes
	HitResults []*TargetHitResult

	// StatusApplicationCounts tracks completed application passes per
	// target. It increments exactly once per completed pass over all
	// of a target's effects in one repetition, never per effect.
	StatusApplicationCounts map[string]int

	// AppliedStatusEffects records target+effect keys already touched
	// in this invocation. Informational only; it does not block
	// re-intensification on later repetitions.
	AppliedStatusEffects map[string]struct{}

	// SelectedEffectIDs restricts application to a user pre-selection.
	// Empty means no filtering.
	SelectedEffectIDs []string

	// IsFinalRepetition suppresses trailing pacing delays
	IsFinalRepetition bool

	// PacingDisabled turns off cosmetic delays for the whole invocation
	PacingDisabled bool

	// Repetition is the 1-based index of the current repetition
	Repetition int
}

// NewExecutionSession creates the per-invocation state for one card
// resolution
func NewExecutionSession(card *ActionCard, sourceID string, selectedEffectIDs []string) *ExecutionSession {
	return &ExecutionSession{
		Card:                    card,
		SourceID:                sourceID,
		StatusApplicationCounts: make(map[string]int),
		AppliedStatusEffects:    make(map[string]struct{}),
		SelectedEffectIDs:       selectedEffectIDs,
	}
}

// EffectKey builds the de-duplication key for one target+effect pair
func (s *ExecutionSession) EffectKey(targetID, effectKey string) string {
	return fmt.Sprintf("%s:%s", targetID, effectKey)
}

// MarkApplied records that an effect touched a target this invocation
func (s *ExecutionSession) MarkApplied(targetID, effectKey string) {
	s.AppliedStatusEffects[s.EffectKey(targetID, effectKey)] = struct{}{}
}

// WasApplied reports whether an effect already touched a target this
// invocation
func (s *ExecutionSession) WasApplied(targetID, effectKey string) bool {
	_, ok := s.AppliedStatusEffects[s.EffectKey(targetID, effectKey)]
	return ok
}
