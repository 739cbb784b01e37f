// Package attack resolves the two-stage opposed check an attack-chain
// card makes against each of its targets.
package attack

import (
	"context"
	"log"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/dice"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
)

// Service resolves opposed checks for attack-chain cards
type Service interface {
	// ResolveChain rolls one opposed check for the card against every
	// target, producing a hit result per target in target order
	ResolveChain(ctx context.Context, card *entities.ActionCard, source *entities.Actor, targetIDs []string) ([]*entities.TargetHitResult, error)
}

// ServiceConfig holds configuration for the attack service
type ServiceConfig struct {
	Repository actors.Repository
	Roller     dice.Roller
}

type service struct {
	repository actors.Repository
	roller     dice.Roller
}

// NewService creates a new attack service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("actor repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		roller:     cfg.Roller,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	return svc
}

// ResolveChain resolves the two-stage opposed check. One d20 is rolled
// per invocation and shared by both stages; stage i hits when
// roll + source bonus for that stage's stat meets or exceeds the
// target's defense for the same stat. The reported roll total is the
// first-stage total.
func (s *service) ResolveChain(ctx context.Context, card *entities.ActionCard, source *entities.Actor, targetIDs []string) ([]*entities.TargetHitResult, error) {
	if card == nil || card.Mode != entities.ModeAttackChain || card.AttackChain == nil {
		return nil, enginerr.InvalidArgument("card is not an attack chain")
	}
	if source == nil {
		return nil, enginerr.InvalidArgument("source actor is required")
	}

	cfg := card.AttackChain

	roll, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return nil, enginerr.Wrap(err, "failed to roll opposed check")
	}

	firstTotal := roll.Total + source.StatBonus(cfg.FirstStat)
	secondTotal := roll.Total + source.StatBonus(cfg.SecondStat)

	results := make([]*entities.TargetHitResult, 0, len(targetIDs))
	for _, targetID := range targetIDs {
		target, err := s.repository.Get(ctx, targetID)
		if err != nil {
			return results, enginerr.Wrapf(err, "failed to get target '%s'", targetID)
		}

		oneHit := firstTotal >= target.Defense(cfg.FirstStat)
		bothHit := oneHit && secondTotal >= target.Defense(cfg.SecondStat)

		log.Printf("[attack] card=%s target=%s roll=%d first=%d/%d second=%d/%d oneHit=%v bothHit=%v",
			card.ID, target.ID, roll.Total,
			firstTotal, target.Defense(cfg.FirstStat),
			secondTotal, target.Defense(cfg.SecondStat),
			oneHit, bothHit)

		results = append(results, &entities.TargetHitResult{
			TargetID:  targetID,
			OneHit:    oneHit,
			BothHit:   bothHit,
			RollTotal: firstTotal,
		})
	}

	return results, nil
}
