package resolution_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/dice"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/effects"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/pacing"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/attack"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/resolution"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/services/status"
)

type fixture struct {
	repo     actors.Repository
	roller   *dice.MockRoller
	recorder *pacing.Recorder
	svc      resolution.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := actors.NewInMemoryRepository()
	roller := dice.NewMockRoller()
	recorder := pacing.NewRecorder()

	attackService := attack.NewService(&attack.ServiceConfig{Repository: repo, Roller: roller})
	statusService := status.NewService(&status.ServiceConfig{
		Repository: repo,
		Applier:    effects.NewManager(&effects.ManagerConfig{Repository: repo}),
		Delayer:    pacing.NoDelay{},
	})

	svc := resolution.NewService(&resolution.ServiceConfig{
		Repository:    repo,
		Roller:        roller,
		AttackService: attackService,
		StatusService: statusService,
		Delayer:       recorder,
	})

	return &fixture{repo: repo, roller: roller, recorder: recorder, svc: svc}
}

func (f *fixture) seed(t *testing.T, actor *entities.Actor) {
	t.Helper()
	require.NoError(t, f.repo.Create(context.Background(), actor))
}

func source() *entities.Actor {
	return &entities.Actor{
		ID:           "source",
		Name:         "Vess",
		CurrentHP:    30,
		MaxHP:        30,
		CurrentPower: 10,
		MaxPower:     10,
		Attributes: map[entities.Stat]*entities.AbilityScore{
			entities.StatPhysical:  {Bonus: 2, Defense: 12},
			entities.StatFortitude: {Bonus: 0, Defense: 11},
		},
	}
}

func defender(id string, physDef, fortDef int) *entities.Actor {
	return &entities.Actor{
		ID:        id,
		Name:      id,
		CurrentHP: 20,
		MaxHP:     20,
		Attributes: map[entities.Stat]*entities.AbilityScore{
			entities.StatPhysical:  {Defense: physDef},
			entities.StatFortitude: {Defense: fortDef},
		},
	}
}

func TestExecute_DamageAndStatusGateIndependently(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, source())
	// Shared roll of 10: first stage total 12, second stage total 10
	f.seed(t, defender("target-a", 12, 11)) // one hit only
	f.seed(t, defender("target-b", 10, 10)) // both hits

	card := &entities.ActionCard{
		ID:   "card-1",
		Name: "Rending Strike",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			FirstStat:       entities.StatPhysical,
			SecondStat:      entities.StatFortitude,
			DamageCondition: entities.ConditionOneSuccess,
			DamageFormula:   "5",
			DamageType:      entities.DamageTypeDamage,
			StatusCondition: entities.ConditionTwoSuccesses,
		},
		Effects: []*entities.EmbeddedEffect{
			{ID: "bleeding", Payload: &entities.StatusPayload{Name: "Bleeding", Intensity: 1}},
		},
	}

	f.roller.SetRolls([]int{10})

	result, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:          card,
		SourceID:      "source",
		TargetIDs:     []string{"target-a", "target-b"},
		DisablePacing: true,
	})
	require.NoError(t, err)
	require.False(t, result.Aborted)

	// Damage lands on both targets
	require.Len(t, result.Damage, 2)
	for _, damage := range result.Damage {
		assert.True(t, damage.Applied)
		assert.Equal(t, 5, damage.Amount)
	}

	targetA, err := f.repo.Get(ctx, "target-a")
	require.NoError(t, err)
	assert.Equal(t, 15, targetA.CurrentHP)

	// Status lands only on the target with both successes
	require.Len(t, result.Statuses, 1)
	assert.Equal(t, "target-b", result.Statuses[0].TargetID)
	assert.True(t, result.Statuses[0].Applied)
}

func TestExecute_DamageOnlyOnFirstQualifyingRepetition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, source())
	f.seed(t, defender("target", 10, 10))

	card := &entities.ActionCard{
		ID:   "card-2",
		Name: "Knife Flurry",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			FirstStat:       entities.StatPhysical,
			SecondStat:      entities.StatFortitude,
			DamageCondition: entities.ConditionOneSuccess,
			DamageFormula:   "4",
			DamageType:      entities.DamageTypeDamage,
			StatusCondition: entities.ConditionNever,
		},
		Repetition: entities.RepetitionConfig{
			Formula:     "3",
			RepeatToHit: true,
			// DamageEveryRepetition is false: first qualifying only
		},
	}

	// Repetitions hit, miss, hit; only the first hit deals damage
	f.roller.SetRolls([]int{10, 2, 10})

	result, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:          card,
		SourceID:      "source",
		TargetIDs:     []string{"target"},
		DisablePacing: true,
	})
	require.NoError(t, err)
	require.False(t, result.Aborted)
	assert.Equal(t, 3, result.Repetitions)

	require.Len(t, result.Damage, 1)
	assert.Equal(t, 1, result.Damage[0].Repetition)

	target, err := f.repo.Get(ctx, "target")
	require.NoError(t, err)
	assert.Equal(t, 16, target.CurrentHP)
}

func TestExecute_CostDeductedOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, source())
	f.seed(t, defender("target", 25, 25))

	card := &entities.ActionCard{
		ID:   "card-3",
		Name: "Channel",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			FirstStat:       entities.StatPhysical,
			SecondStat:      entities.StatFortitude,
			DamageCondition: entities.ConditionNever,
			StatusCondition: entities.ConditionNever,
		},
		Repetition: entities.RepetitionConfig{
			Formula: "4",
			// CostEveryRepetition is false: pay exactly once
		},
		PowerCost: 3,
	}

	f.roller.SetRolls([]int{10})

	result, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:          card,
		SourceID:      "source",
		TargetIDs:     []string{"target"},
		DisablePacing: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Repetitions)

	require.Len(t, result.Costs, 1)
	assert.Equal(t, 1, result.Costs[0].Repetition)
	assert.Equal(t, 3, result.Costs[0].Deducted)

	actor, err := f.repo.Get(ctx, "source")
	require.NoError(t, err)
	assert.Equal(t, 7, actor.CurrentPower)
}

func TestExecute_CostEveryRepetitionWithShortfall(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	vess := source()
	vess.CurrentPower = 5
	f.seed(t, vess)
	f.seed(t, defender("target", 25, 25))

	card := &entities.ActionCard{
		ID:   "card-4",
		Name: "Overchannel",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			DamageCondition: entities.ConditionNever,
			StatusCondition: entities.ConditionNever,
		},
		Repetition: entities.RepetitionConfig{
			Formula:             "3",
			CostEveryRepetition: true,
		},
		PowerCost: 2,
	}

	f.roller.SetRolls([]int{10})

	result, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:          card,
		SourceID:      "source",
		TargetIDs:     []string{"target"},
		DisablePacing: true,
	})
	require.NoError(t, err)

	// 2 + 2 + 1: the pool floors at zero with a shortfall warning
	require.Len(t, result.Costs, 3)
	assert.Equal(t, 2, result.Costs[0].Deducted)
	assert.Equal(t, 2, result.Costs[1].Deducted)
	assert.Equal(t, 1, result.Costs[2].Deducted)
	assert.NotEmpty(t, result.Costs[2].Warning)

	actor, err := f.repo.Get(ctx, "source")
	require.NoError(t, err)
	assert.Equal(t, 0, actor.CurrentPower)
}

func TestExecute_RepetitionCountClampsToOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, source())
	f.seed(t, defender("target", 25, 25))

	card := &entities.ActionCard{
		ID:   "card-5",
		Name: "Feint",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			DamageCondition: entities.ConditionNever,
			StatusCondition: entities.ConditionNever,
		},
		Repetition: entities.RepetitionConfig{Formula: "0"},
	}

	f.roller.SetRolls([]int{10})

	result, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:          card,
		SourceID:      "source",
		TargetIDs:     []string{"target"},
		DisablePacing: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Repetitions)
}

func TestExecute_PacingBetweenRepetitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, source())
	f.seed(t, defender("target", 25, 25))

	card := &entities.ActionCard{
		ID:   "card-6",
		Name: "Slow Burn",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			DamageCondition: entities.ConditionNever,
			StatusCondition: entities.ConditionNever,
		},
		Repetition: entities.RepetitionConfig{
			Formula:               "3",
			TimingOverrideSeconds: 1,
		},
	}

	f.roller.SetRolls([]int{10})

	_, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:      card,
		SourceID:  "source",
		TargetIDs: []string{"target"},
	})
	require.NoError(t, err)

	// A delay after repetitions one and two, never after the final one
	assert.Equal(t, []time.Duration{time.Second, time.Second}, f.recorder.Waits())
}

func TestExecute_SavedDamageHealsAndAppliesStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, source())
	wounded := defender("target", 25, 25)
	wounded.CurrentHP = 10
	f.seed(t, wounded)

	card := &entities.ActionCard{
		ID:   "card-7",
		Name: "Mending Draught",
		Mode: entities.ModeSavedDamage,
		SavedDamage: &entities.SavedDamageConfig{
			Formula: "2",
			Type:    entities.DamageTypeHeal,
		},
		Effects: []*entities.EmbeddedEffect{
			{ID: "fortified", Payload: &entities.StatusPayload{Name: "Fortified", Intensity: 1}},
		},
	}

	result, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:          card,
		SourceID:      "source",
		TargetIDs:     []string{"target"},
		DisablePacing: true,
	})
	require.NoError(t, err)
	require.False(t, result.Aborted)

	target, err := f.repo.Get(ctx, "target")
	require.NoError(t, err)
	assert.Equal(t, 12, target.CurrentHP)

	require.Len(t, result.Statuses, 1)
	assert.True(t, result.Statuses[0].Applied)
	assert.Equal(t, "Fortified", result.Statuses[0].EffectName)
}

func TestExecute_MissingActingActorAborts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	card := &entities.ActionCard{
		ID:          "card-8",
		Name:        "Ghost Strike",
		Mode:        entities.ModeSavedDamage,
		SavedDamage: &entities.SavedDamageConfig{Formula: "2", Type: entities.DamageTypeDamage},
	}

	_, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:      card,
		SourceID:  "nobody",
		TargetIDs: []string{"target"},
	})
	assert.Error(t, err)
}

func TestExecute_InvalidTargetTerminatesWithPartialResult(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.seed(t, source())

	card := &entities.ActionCard{
		ID:   "card-9",
		Name: "Rending Strike",
		Mode: entities.ModeAttackChain,
		AttackChain: &entities.AttackChainConfig{
			FirstStat:       entities.StatPhysical,
			SecondStat:      entities.StatFortitude,
			DamageCondition: entities.ConditionOneSuccess,
			DamageFormula:   "5",
			DamageType:      entities.DamageTypeDamage,
			StatusCondition: entities.ConditionNever,
		},
	}

	f.roller.SetRolls([]int{10})

	result, err := f.svc.Execute(ctx, &resolution.ExecuteInput{
		Card:          card,
		SourceID:      "source",
		TargetIDs:     []string{"ghost"},
		DisablePacing: true,
	})
	require.NoError(t, err)
	assert.True(t, result.Aborted)
	assert.NotEmpty(t, result.AbortReason)
}
