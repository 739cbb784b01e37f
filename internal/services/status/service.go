// Package status applies an action card's embedded effects to the
// targets whose hit results satisfy the card's status condition.
// Failure isolation is a first-class property here: one bad effect,
// target, or inventory check never aborts the rest of the pass.
package status

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/effects"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/notifications"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/pacing"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
)

// DefaultEffectDelay paces successive effect applications so the
// operator can follow along
const DefaultEffectDelay = 500 * time.Millisecond

// Service applies status and gear effects to qualifying targets
type Service interface {
	// ProcessStatusResults runs one status application pass over the
	// session's current hit results
	ProcessStatusResults(ctx context.Context, session *entities.ExecutionSession) ([]*entities.StatusEffectResult, error)
}

// ServiceConfig holds configuration for the status service
type ServiceConfig struct {
	Repository  actors.Repository
	Applier     effects.Applier
	Notifier    notifications.Notifier
	Delayer     pacing.Delayer
	EffectDelay time.Duration
}

type service struct {
	repository  actors.Repository
	applier     effects.Applier
	notifier    notifications.Notifier
	delayer     pacing.Delayer
	effectDelay time.Duration
}

// NewService creates a new status service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("actor repository is required")
	}
	if cfg.Applier == nil {
		panic("effect applier is required")
	}

	svc := &service{
		repository:  cfg.Repository,
		applier:     cfg.Applier,
		notifier:    cfg.Notifier,
		delayer:     cfg.Delayer,
		effectDelay: cfg.EffectDelay,
	}
	if svc.notifier == nil {
		svc.notifier = notifications.NopNotifier{}
	}
	if svc.delayer == nil {
		svc.delayer = pacing.NewSleeper()
	}
	if svc.effectDelay == 0 {
		svc.effectDelay = DefaultEffectDelay
	}
	return svc
}

// FilterEffectsBySelection narrows the effect list to a user
// pre-selection, matching by explicit ID with a positional-key
// fallback. An empty selection means no filtering.
func FilterEffectsBySelection(candidates []*entities.EmbeddedEffect, selectedIDs []string) []*entities.EmbeddedEffect {
	if len(selectedIDs) == 0 {
		return candidates
	}

	selected := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = struct{}{}
	}

	var filtered []*entities.EmbeddedEffect
	for i, effect := range candidates {
		if effect == nil {
			continue
		}
		if _, ok := selected[effect.Key(i)]; ok {
			filtered = append(filtered, effect)
		}
	}
	return filtered
}

func (s *service) ProcessStatusResults(ctx context.Context, session *entities.ExecutionSession) ([]*entities.StatusEffectResult, error) {
	if session == nil || session.Card == nil {
		return nil, enginerr.InvalidArgument("session with card is required")
	}

	if len(session.Card.Effects) == 0 {
		return []*entities.StatusEffectResult{}, nil
	}

	candidates := FilterEffectsBySelection(session.Card.Effects, session.SelectedEffectIDs)
	if len(candidates) == 0 {
		log.Printf("[status] card=%s selection excluded every effect", session.Card.ID)
		return []*entities.StatusEffectResult{}, nil
	}

	// Missing acting actor is the one unrecoverable failure
	source, err := s.repository.Get(ctx, session.SourceID)
	if err != nil {
		return nil, enginerr.Wrap(err, "acting actor is unavailable")
	}

	condition := session.Card.StatusCondition()
	threshold := session.Card.StatusThreshold()

	results := []*entities.StatusEffectResult{}
	for _, hit := range session.HitResults {
		if hit == nil || hit.TargetID == "" {
			log.Printf("[status] card=%s skipping malformed hit result", session.Card.ID)
			s.notifier.Warn("Skipped a malformed target entry during status application")
			continue
		}

		if !entities.ShouldApply(condition, hit.OneHit, hit.BothHit, hit.RollTotal, threshold) {
			continue
		}

		target, err := s.repository.Get(ctx, hit.TargetID)
		if err != nil {
			log.Printf("[status] card=%s target=%s unavailable: %v", session.Card.ID, hit.TargetID, err)
			s.notifier.Warn(fmt.Sprintf("Target %s is unavailable; its effects were skipped", hit.TargetID))
			continue
		}

		results = append(results, s.applyEffectsToTarget(ctx, session, source, target, candidates)...)
	}

	return results, nil
}

// applyEffectsToTarget attempts every effect in order for one target,
// then increments the target's application count by exactly one. The
// limit check precedes the loop: a target at its limit is skipped
// entirely for this pass.
func (s *service) applyEffectsToTarget(ctx context.Context, session *entities.ExecutionSession, source, target *entities.Actor, candidates []*entities.EmbeddedEffect) []*entities.StatusEffectResult {
	limit := session.Card.ApplicationLimit()
	if limit > 0 && session.StatusApplicationCounts[target.ID] >= limit {
		log.Printf("[status] target=%s (%s) at application limit %d, skipping pass",
			target.ID, target.Name, limit)
		return nil
	}

	var results []*entities.StatusEffectResult
	for i, effect := range candidates {
		if effect == nil || effect.Payload == nil {
			log.Printf("[status] card=%s skipping empty effect entry %d", session.Card.ID, i)
			s.notifier.Warn("Skipped an empty effect entry")
			continue
		}

		key := effect.Key(i)

		if gear, ok := effect.Payload.(*entities.GearPayload); ok {
			validation := s.processGearEffect(ctx, gear, source, target)
			if !validation.valid {
				if validation.warning != "" {
					s.notifier.Warn(validation.warning)
				}
				results = append(results, &entities.StatusEffectResult{
					TargetID:   target.ID,
					TargetName: target.Name,
					EffectName: gear.Name,
					Applied:    false,
					Warning:    validation.warning,
					Error:      validation.err,
				})
				continue
			}
		}

		results = append(results, s.applySingleEffect(ctx, session, target, effect.Payload, key))
	}

	// One completed pass over all effects counts once, never per effect
	session.StatusApplicationCounts[target.ID]++

	return results
}

// gearValidation is the outcome of validating and deducting a gear cost
type gearValidation struct {
	valid   bool
	warning string
	err     string
}

// processGearEffect validates a gear grant against the source actor's
// inventory and deducts the cost. Failures never propagate; they are
// converted into an invalid validation result.
func (s *service) processGearEffect(ctx context.Context, gear *entities.GearPayload, source, target *entities.Actor) gearValidation {
	item, err := s.repository.FindGearByName(ctx, source.ID, gear.Name)
	if err != nil {
		if enginerr.IsNotFound(err) {
			return gearValidation{
				warning: fmt.Sprintf("%s has no %s to give %s", source.Name, gear.Name, target.Name),
			}
		}
		return gearValidation{err: fmt.Sprintf("gear lookup failed: %v", err)}
	}

	if item.Quantity < gear.Cost {
		return gearValidation{
			warning: fmt.Sprintf("%s needs %d %s but only has %d", source.Name, gear.Cost, gear.Name, item.Quantity),
		}
	}

	remaining := item.Quantity - gear.Cost
	if remaining < 0 {
		remaining = 0
	}
	if err := s.repository.SetGearQuantity(ctx, source.ID, gear.Name, remaining); err != nil {
		return gearValidation{err: fmt.Sprintf("gear deduction failed: %v", err)}
	}

	log.Printf("[status] deducted %d %s from %s (%d remaining)", gear.Cost, gear.Name, source.Name, remaining)
	return gearValidation{valid: true}
}

// applySingleEffect clones and tags the payload, delegates the
// attach-or-intensify decision, and records the touch in the session.
// Any failure is wrapped into the result rather than propagated.
func (s *service) applySingleEffect(ctx context.Context, session *entities.ExecutionSession, target *entities.Actor, payload entities.EffectPayload, key string) *entities.StatusEffectResult {
	result := &entities.StatusEffectResult{
		TargetID:   target.ID,
		TargetName: target.Name,
		EffectName: payload.EffectName(),
	}

	clone := payload.Clone()
	switch p := clone.(type) {
	case *entities.StatusPayload:
		p.Source = entities.EffectSourceActionCard
	case *entities.GearPayload:
		p.Source = entities.EffectSourceActionCard
		// Granted instances arrive equipped as a single item, however
		// the source cost was deducted
		p.Equip = true
		p.Quantity = 1
	}

	outcome, err := s.applier.ApplyOrIntensify(ctx, target.ID, clone)
	if err != nil {
		log.Printf("[status] target=%s (%s) effect=%s failed: %v", target.ID, target.Name, result.EffectName, err)
		result.Error = err.Error()
		return result
	}

	result.Applied = outcome.Applied
	result.Intensified = outcome.Intensified
	session.MarkApplied(target.ID, key)

	log.Printf("[status] target=%s (%s) effect=%s applied=%v intensified=%v count=%d limit=%d",
		target.ID, target.Name, result.EffectName, result.Applied, result.Intensified,
		session.StatusApplicationCounts[target.ID], session.Card.ApplicationLimit())

	if !session.PacingDisabled && !session.IsFinalRepetition {
		if err := s.delayer.Wait(ctx, s.effectDelay); err != nil {
			log.Printf("[status] pacing interrupted: %v", err)
		}
	}

	return result
}
