package attack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/dice"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/attack"
)

func chainCard() *entities.ActionCard {
	return &entities.ActionCard{
		ID:   "card-1",
		Name: "Rending Strike",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			FirstStat:       entities.StatPhysical,
			SecondStat:      entities.StatFortitude,
			DamageCondition: entities.ConditionOneSuccess,
			DamageFormula:   "1d8",
			DamageType:      entities.DamageTypeDamage,
			StatusCondition: entities.ConditionTwoSuccesses,
		},
	}
}

func newActor(id string, physBonus, physDef, fortDef int) *entities.Actor {
	return &entities.Actor{
		ID:    id,
		Name:  id,
		MaxHP: 20,
		Attributes: map[entities.Stat]*entities.AbilityScore{
			entities.StatPhysical:  {Bonus: physBonus, Defense: physDef},
			entities.StatFortitude: {Bonus: 0, Defense: fortDef},
		},
	}
}

func TestResolveChain(t *testing.T) {
	ctx := context.Background()
	repo := actors.NewInMemoryRepository()
	roller := dice.NewMockRoller()

	source := newActor("source", 2, 12, 11)
	// First stage total is 10+2=12, second stage total 10+0=10
	fullHit := newActor("full-hit", 0, 12, 10)
	oneHit := newActor("one-hit", 0, 12, 11)
	miss := newActor("miss", 0, 13, 10)

	for _, actor := range []*entities.Actor{source, fullHit, oneHit, miss} {
		require.NoError(t, repo.Create(ctx, actor))
	}

	svc := attack.NewService(&attack.ServiceConfig{Repository: repo, Roller: roller})

	roller.SetRolls([]int{10})

	results, err := svc.ResolveChain(ctx, chainCard(), source, []string{"full-hit", "one-hit", "miss"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].OneHit)
	assert.True(t, results[0].BothHit)
	assert.Equal(t, 12, results[0].RollTotal)

	assert.True(t, results[1].OneHit)
	assert.False(t, results[1].BothHit)

	assert.False(t, results[2].OneHit)
	assert.False(t, results[2].BothHit)
}

func TestResolveChain_SecondStageNeedsFirst(t *testing.T) {
	ctx := context.Background()
	repo := actors.NewInMemoryRepository()
	roller := dice.NewMockRoller()

	source := newActor("source", 0, 12, 11)
	// First stage misses even though the second stage total would hit
	target := newActor("target", 0, 15, 5)

	require.NoError(t, repo.Create(ctx, source))
	require.NoError(t, repo.Create(ctx, target))

	svc := attack.NewService(&attack.ServiceConfig{Repository: repo, Roller: roller})
	roller.SetRolls([]int{10})

	results, err := svc.ResolveChain(ctx, chainCard(), source, []string{"target"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].OneHit)
	assert.False(t, results[0].BothHit)
}

func TestResolveChain_MissingTarget(t *testing.T) {
	ctx := context.Background()
	repo := actors.NewInMemoryRepository()
	roller := dice.NewMockRoller()

	source := newActor("source", 0, 12, 11)
	require.NoError(t, repo.Create(ctx, source))

	svc := attack.NewService(&attack.ServiceConfig{Repository: repo, Roller: roller})
	roller.SetRolls([]int{10})

	_, err := svc.ResolveChain(ctx, chainCard(), source, []string{"missing"})
	assert.Error(t, err)
}

func TestResolveChain_WrongMode(t *testing.T) {
	ctx := context.Background()
	repo := actors.NewInMemoryRepository()
	svc := attack.NewService(&attack.ServiceConfig{Repository: repo, Roller: dice.NewMockRoller()})

	card := &entities.ActionCard{ID: "card-2", Mode: entities.ModeSavedDamage}
	_, err := svc.ResolveChain(ctx, card, &entities.Actor{ID: "source"}, nil)
	assert.Error(t, err)
}
