// Package resolution drives a full action-card invocation: it
// evaluates the repetition count, runs sequential repetitions, and
// gates damage, status, and cost application per the card's
// configuration, aggregating everything into one result.
package resolution

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/dice"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/notifications"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/pacing"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/attack"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/status"
)

// Service executes action cards
type Service interface {
	// Execute resolves one card invocation start to finish
	Execute(ctx context.Context, input *ExecuteInput) (*entities.ExecutionResult, error)
}

// ExecuteInput describes one card invocation
type ExecuteInput struct {
	Card              *entities.ActionCard
	SourceID          string
	TargetIDs         []string
	SelectedEffectIDs []string

	// DisablePacing skips all cosmetic delays (useful for tests and
	// batch resolution)
	DisablePacing bool
}

// ServiceConfig holds configuration for the resolution service
type ServiceConfig struct {
	Repository    actors.Repository
	Roller        dice.Roller
	AttackService attack.Service
	StatusService status.Service
	Notifier      notifications.Notifier
	Delayer       pacing.Delayer

	// DefaultDelay paces repetitions when the card has no timing
	// override; zero keeps the system default
	DefaultDelay time.Duration
}

type service struct {
	repository    actors.Repository
	roller        dice.Roller
	attackService attack.Service
	statusService status.Service
	notifier      notifications.Notifier
	delayer       pacing.Delayer
	defaultDelay  time.Duration
}

// NewService creates a new resolution service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("actor repository is required")
	}
	if cfg.AttackService == nil {
		panic("attack service is required")
	}
	if cfg.StatusService == nil {
		panic("status service is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		roller:        cfg.Roller,
		attackService: cfg.AttackService,
		statusService: cfg.StatusService,
		notifier:      cfg.Notifier,
		delayer:       cfg.Delayer,
		defaultDelay:  cfg.DefaultDelay,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.notifier == nil {
		svc.notifier = notifications.NopNotifier{}
	}
	if svc.delayer == nil {
		svc.delayer = pacing.NewSleeper()
	}
	if svc.defaultDelay == 0 {
		svc.defaultDelay = pacing.DefaultDelay
	}
	return svc
}

func (s *service) Execute(ctx context.Context, input *ExecuteInput) (*entities.ExecutionResult, error) {
	if input == nil || input.Card == nil {
		return nil, enginerr.InvalidArgument("input with card is required")
	}
	card := input.Card

	// Missing acting actor aborts the whole invocation
	source, err := s.repository.Get(ctx, input.SourceID)
	if err != nil {
		return nil, enginerr.Wrap(err, "acting actor is unavailable")
	}

	repetitions, err := s.evaluateRepetitions(card)
	if err != nil {
		return nil, err
	}

	session := entities.NewExecutionSession(card, source.ID, input.SelectedEffectIDs)
	session.PacingDisabled = input.DisablePacing

	result := &entities.ExecutionResult{
		CardID:      card.ID,
		SourceID:    source.ID,
		Repetitions: repetitions,
	}

	log.Printf("[resolution] card=%s (%s) source=%s targets=%d repetitions=%d",
		card.ID, card.Name, source.ID, len(input.TargetIDs), repetitions)

	damageApplied := false
	costApplied := false

	for i := 1; i <= repetitions; i++ {
		session.Repetition = i
		session.IsFinalRepetition = i == repetitions

		if aborted := s.resolveHits(ctx, session, source, input.TargetIDs, result); aborted {
			break
		}

		if aborted := s.applyDamage(ctx, session, result, &damageApplied); aborted {
			break
		}

		if card.Repetition.StatusPerSuccess || i == 1 {
			statuses, statusErr := s.statusService.ProcessStatusResults(ctx, session)
			if statusErr != nil {
				result.Aborted = true
				result.AbortReason = statusErr.Error()
				break
			}
			result.Statuses = append(result.Statuses, statuses...)
		}

		if card.PowerCost > 0 && (card.Repetition.CostEveryRepetition || !costApplied) {
			cost, costErr := s.deductCost(ctx, source.ID, card.PowerCost, i)
			if costErr != nil {
				result.Aborted = true
				result.AbortReason = costErr.Error()
				break
			}
			result.Costs = append(result.Costs, cost)
			costApplied = true
		}

		if !session.IsFinalRepetition && !input.DisablePacing {
			if waitErr := s.delayer.Wait(ctx, s.repetitionDelay(card)); waitErr != nil {
				result.Aborted = true
				result.AbortReason = waitErr.Error()
				break
			}
		}
	}

	if result.Aborted {
		log.Printf("[resolution] card=%s aborted at repetition %d: %s", card.ID, session.Repetition, result.AbortReason)
		s.notifier.Error(fmt.Sprintf("Resolution of %s ended early: %s", card.Name, result.AbortReason))
	}

	return result, nil
}

// evaluateRepetitions rolls the repetition formula once, clamping the
// count to a minimum of 1
func (s *service) evaluateRepetitions(card *entities.ActionCard) (int, error) {
	formula := card.Repetition.Formula
	if formula == "" {
		return 1, nil
	}

	roll, err := dice.RollFormula(s.roller, formula)
	if err != nil {
		return 0, enginerr.Wrapf(err, "invalid repetition formula %q", formula)
	}

	if roll.Total < 1 {
		return 1, nil
	}
	return roll.Total, nil
}

// resolveHits fills the session's hit results for this repetition,
// re-resolving only when the card asks for it. Reports whether the
// invocation must terminate early.
func (s *service) resolveHits(ctx context.Context, session *entities.ExecutionSession, source *entities.Actor, targetIDs []string, result *entities.ExecutionResult) bool {
	card := session.Card

	switch card.Mode {
	case entities.ModeAttackChain:
		if session.Repetition > 1 && !card.Repetition.RepeatToHit {
			return false
		}
		hits, err := s.attackService.ResolveChain(ctx, card, source, targetIDs)
		if err != nil {
			result.Aborted = true
			result.AbortReason = err.Error()
			return true
		}
		session.HitResults = hits
		return false

	case entities.ModeSavedDamage:
		if session.Repetition > 1 {
			return false
		}
		// No opposed check; every target counts as fully hit
		hits := make([]*entities.TargetHitResult, 0, len(targetIDs))
		for _, targetID := range targetIDs {
			hits = append(hits, &entities.TargetHitResult{
				TargetID: targetID,
				OneHit:   true,
				BothHit:  true,
			})
		}
		session.HitResults = hits
		return false

	default:
		result.Aborted = true
		result.AbortReason = fmt.Sprintf("unknown card mode %q", card.Mode)
		return true
	}
}

// applyDamage applies the card's damage or heal formula to every
// qualifying target, honoring the first-qualifying-repetition gate.
// Reports whether the invocation must terminate early.
func (s *service) applyDamage(ctx context.Context, session *entities.ExecutionSession, result *entities.ExecutionResult, damageApplied *bool) bool {
	card := session.Card

	formula, damageType, condition := s.damagePlan(card)
	if formula == "" || condition == entities.ConditionNever {
		return false
	}

	if !card.Repetition.DamageEveryRepetition && *damageApplied {
		return false
	}

	threshold := card.StatusThreshold()
	appliedThisRepetition := false

	for _, hit := range session.HitResults {
		if hit == nil || hit.TargetID == "" {
			continue
		}
		if !entities.ShouldApply(condition, hit.OneHit, hit.BothHit, hit.RollTotal, threshold) {
			continue
		}

		roll, err := dice.RollFormula(s.roller, formula)
		if err != nil {
			result.Aborted = true
			result.AbortReason = enginerr.Wrapf(err, "invalid damage formula %q", formula).Error()
			return true
		}

		damage := &entities.DamageResult{
			TargetID:   hit.TargetID,
			Repetition: session.Repetition,
			Amount:     roll.Total,
			Type:       damageType,
		}

		target, err := s.repository.Get(ctx, hit.TargetID)
		if err != nil {
			// Target vanished mid-sequence: terminal, but keep the partial result
			damage.Error = err.Error()
			result.Damage = append(result.Damage, damage)
			result.Aborted = true
			result.AbortReason = fmt.Sprintf("target '%s' became unavailable", hit.TargetID)
			return true
		}

		if damageType == entities.DamageTypeHeal {
			target.ApplyHealing(roll.Total)
		} else {
			target.ApplyDamage(roll.Total)
		}

		if err := s.repository.Update(ctx, target); err != nil {
			damage.Error = err.Error()
			result.Damage = append(result.Damage, damage)
			result.Aborted = true
			result.AbortReason = fmt.Sprintf("failed to update target '%s'", hit.TargetID)
			return true
		}

		damage.Applied = true
		result.Damage = append(result.Damage, damage)
		appliedThisRepetition = true

		log.Printf("[resolution] card=%s target=%s repetition=%d %s=%d hp=%d/%d",
			card.ID, target.ID, session.Repetition, damageType, roll.Total, target.CurrentHP, target.MaxHP)
	}

	if appliedThisRepetition {
		*damageApplied = true
	}
	return false
}

// damagePlan extracts the active mode's formula, type, and trigger
func (s *service) damagePlan(card *entities.ActionCard) (string, entities.DamageType, entities.ApplyCondition) {
	switch card.Mode {
	case entities.ModeAttackChain:
		if card.AttackChain == nil {
			return "", "", entities.ConditionNever
		}
		return card.AttackChain.DamageFormula, card.AttackChain.DamageType, card.AttackChain.DamageCondition
	case entities.ModeSavedDamage:
		if card.SavedDamage == nil {
			return "", "", entities.ConditionNever
		}
		return card.SavedDamage.Formula, card.SavedDamage.Type, entities.ConditionOneSuccess
	default:
		return "", "", entities.ConditionNever
	}
}

// deductCost spends the card's power cost from the acting actor,
// flooring the pool at zero and warning on a shortfall
func (s *service) deductCost(ctx context.Context, sourceID string, cost, repetition int) (*entities.CostResult, error) {
	source, err := s.repository.Get(ctx, sourceID)
	if err != nil {
		return nil, enginerr.Wrap(err, "acting actor is unavailable")
	}

	spent := source.SpendPower(cost)
	if err := s.repository.Update(ctx, source); err != nil {
		return nil, enginerr.Wrap(err, "failed to deduct power cost")
	}

	result := &entities.CostResult{
		Repetition: repetition,
		Requested:  cost,
		Deducted:   spent,
	}
	if spent < cost {
		result.Warning = fmt.Sprintf("%s needed %d power but only had %d", source.Name, cost, spent)
		s.notifier.Warn(result.Warning)
	}

	log.Printf("[resolution] source=%s repetition=%d power cost %d deducted %d (pool %d/%d)",
		source.ID, repetition, cost, spent, source.CurrentPower, source.MaxPower)

	return result, nil
}

// repetitionDelay picks the card's timing override or the system default
func (s *service) repetitionDelay(card *entities.ActionCard) time.Duration {
	if card.Repetition.TimingOverrideSeconds > 0 {
		return time.Duration(card.Repetition.TimingOverrideSeconds) * time.Second
	}
	return s.defaultDelay
}
