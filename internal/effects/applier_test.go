package effects_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/effects"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
)

func setupManager(t *testing.T) (effects.Applier, actors.Repository, *entities.Actor) {
	t.Helper()

	repo := actors.NewInMemoryRepository()
	target := &entities.Actor{
		ID:    "target-1",
		Name:  "Husk",
		MaxHP: 10,
	}
	require.NoError(t, repo.Create(context.Background(), target))

	manager := effects.NewManager(&effects.ManagerConfig{Repository: repo})
	return manager, repo, target
}

func TestManager_ApplyThenIntensify(t *testing.T) {
	ctx := context.Background()
	manager, repo, target := setupManager(t)

	payload := &entities.StatusPayload{
		Name:      "Bleeding",
		Intensity: 1,
		Source:    entities.EffectSourceActionCard,
	}

	outcome, err := manager.ApplyOrIntensify(ctx, target.ID, payload)
	require.NoError(t, err)
	assert.True(t, outcome.Applied)
	assert.False(t, outcome.Intensified)

	// A second application intensifies instead of duplicating
	outcome, err = manager.ApplyOrIntensify(ctx, target.ID, payload)
	require.NoError(t, err)
	assert.True(t, outcome.Applied)
	assert.True(t, outcome.Intensified)

	stored, err := repo.Get(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, stored.ActiveEffects, 1)
	assert.Equal(t, 2, stored.ActiveEffects[0].Intensity)
	assert.Equal(t, entities.EffectSourceActionCard, stored.ActiveEffects[0].Source)
}

func TestManager_RepeatedCallsNeverDuplicate(t *testing.T) {
	ctx := context.Background()
	manager, repo, target := setupManager(t)

	payload := &entities.StatusPayload{Name: "Chilled", Intensity: 2, Source: entities.EffectSourceActionCard}
	for i := 0; i < 4; i++ {
		_, err := manager.ApplyOrIntensify(ctx, target.ID, payload)
		require.NoError(t, err)
	}

	stored, err := repo.Get(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, stored.ActiveEffects, 1)
	assert.Equal(t, 8, stored.ActiveEffects[0].Intensity)
}

func TestManager_GearGrantMergesStacks(t *testing.T) {
	ctx := context.Background()
	manager, repo, target := setupManager(t)

	payload := &entities.GearPayload{Name: "Throwing Knife", Quantity: 1, Equip: true}

	outcome, err := manager.ApplyOrIntensify(ctx, target.ID, payload)
	require.NoError(t, err)
	assert.True(t, outcome.Applied)
	assert.False(t, outcome.Intensified)

	outcome, err = manager.ApplyOrIntensify(ctx, target.ID, payload)
	require.NoError(t, err)
	assert.True(t, outcome.Intensified)

	stored, err := repo.Get(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, stored.Inventory, 1)
	assert.Equal(t, 2, stored.Inventory[0].Quantity)
	assert.True(t, stored.Inventory[0].Equipped)
}

func TestManager_MissingTarget(t *testing.T) {
	ctx := context.Background()
	manager, _, _ := setupManager(t)

	_, err := manager.ApplyOrIntensify(ctx, "missing", &entities.StatusPayload{Name: "Bleeding"})
	assert.Error(t, err)
}

func TestManager_NilPayload(t *testing.T) {
	ctx := context.Background()
	manager, _, target := setupManager(t)

	_, err := manager.ApplyOrIntensify(ctx, target.ID, nil)
	assert.Error(t, err)
}
