package actors

import (
	"context"
	"sync"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the actor
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu     sync.RWMutex
	actors map[string]*entities.Actor
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		actors: make(map[string]*entities.Actor),
	}
}

// Create stores a new actor
func (r *InMemoryRepository) Create(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return enginerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return enginerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[actor.ID]; exists {
		return enginerr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	r.actors[actor.ID] = copyActor(actor)
	return nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, enginerr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, exists := r.actors[id]
	if !exists {
		return nil, enginerr.NotFoundf("actor with ID '%s' not found", id).
			WithMeta("actor_id", id)
	}

	return copyActor(actor), nil
}

// Update replaces an existing actor
func (r *InMemoryRepository) Update(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return enginerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return enginerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[actor.ID]; !exists {
		return enginerr.NotFoundf("actor with ID '%s' not found", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	r.actors[actor.ID] = copyActor(actor)
	return nil
}

// Delete removes an actor
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return enginerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[id]; !exists {
		return enginerr.NotFoundf("actor with ID '%s' not found", id)
	}

	delete(r.actors, id)
	return nil
}

// FindGearByName looks up an inventory stack by name on an actor
func (r *InMemoryRepository) FindGearByName(ctx context.Context, actorID, name string) (*entities.GearItem, error) {
	actor, err := r.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}

	item := actor.FindGear(name)
	if item == nil {
		return nil, enginerr.NotFoundf("actor '%s' has no gear named '%s'", actorID, name).
			WithMeta("actor_id", actorID).
			WithMeta("gear_name", name)
	}

	itemCopy := *item
	return &itemCopy, nil
}

// SetGearQuantity updates the quantity of a named inventory stack
func (r *InMemoryRepository) SetGearQuantity(ctx context.Context, actorID, name string, quantity int) error {
	if quantity < 0 {
		return enginerr.InvalidArgument("gear quantity cannot be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[actorID]
	if !exists {
		return enginerr.NotFoundf("actor with ID '%s' not found", actorID)
	}

	item := actor.FindGear(name)
	if item == nil {
		return enginerr.NotFoundf("actor '%s' has no gear named '%s'", actorID, name)
	}

	item.Quantity = quantity
	return nil
}

// AddActiveEffect attaches an effect record to an actor
func (r *InMemoryRepository) AddActiveEffect(ctx context.Context, actorID string, effect *entities.ActiveEffect) error {
	if effect == nil {
		return enginerr.InvalidArgument("effect cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[actorID]
	if !exists {
		return enginerr.NotFoundf("actor with ID '%s' not found", actorID)
	}

	effectCopy := *effect
	actor.ActiveEffects = append(actor.ActiveEffects, &effectCopy)
	return nil
}

// UpdateActiveEffect replaces an attached effect record, matched by ID
func (r *InMemoryRepository) UpdateActiveEffect(ctx context.Context, actorID string, effect *entities.ActiveEffect) error {
	if effect == nil || effect.ID == "" {
		return enginerr.InvalidArgument("effect with ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[actorID]
	if !exists {
		return enginerr.NotFoundf("actor with ID '%s' not found", actorID)
	}

	for i, existing := range actor.ActiveEffects {
		if existing.ID == effect.ID {
			effectCopy := *effect
			actor.ActiveEffects[i] = &effectCopy
			return nil
		}
	}

	return enginerr.NotFoundf("actor '%s' has no active effect '%s'", actorID, effect.ID)
}

// AddGearItem appends or merges a gear stack into an actor's inventory
func (r *InMemoryRepository) AddGearItem(ctx context.Context, actorID string, item *entities.GearItem) error {
	if item == nil || item.Name == "" {
		return enginerr.InvalidArgument("gear item with name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actor, exists := r.actors[actorID]
	if !exists {
		return enginerr.NotFoundf("actor with ID '%s' not found", actorID)
	}

	if existing := actor.FindGear(item.Name); existing != nil {
		existing.Quantity += item.Quantity
		existing.Equipped = existing.Equipped || item.Equipped
		return nil
	}

	itemCopy := *item
	actor.Inventory = append(actor.Inventory, &itemCopy)
	return nil
}

// copyActor deep-copies an actor so callers cannot mutate stored state
func copyActor(actor *entities.Actor) *entities.Actor {
	clone := *actor

	if actor.Attributes != nil {
		clone.Attributes = make(map[entities.Stat]*entities.AbilityScore, len(actor.Attributes))
		for stat, score := range actor.Attributes {
			scoreCopy := *score
			clone.Attributes[stat] = &scoreCopy
		}
	}

	if actor.Inventory != nil {
		clone.Inventory = make([]*entities.GearItem, len(actor.Inventory))
		for i, item := range actor.Inventory {
			itemCopy := *item
			clone.Inventory[i] = &itemCopy
		}
	}

	if actor.ActiveEffects != nil {
		clone.ActiveEffects = make([]*entities.ActiveEffect, len(actor.ActiveEffects))
		for i, effect := range actor.ActiveEffects {
			effectCopy := *effect
			clone.ActiveEffects[i] = &effectCopy
		}
	}

	return &clone
}
