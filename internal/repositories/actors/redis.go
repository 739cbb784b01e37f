package actors

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
	"github.com/redis/go-redis/v9"
)

// TimeProvider abstracts the clock for deterministic tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// ActorData is the serialized form of an actor in Redis
type ActorData struct {
	ID            string                                   `json:"id"`
	Name          string                                   `json:"name"`
	CurrentHP     int                                      `json:"current_hp"`
	MaxHP         int                                      `json:"max_hp"`
	CurrentPower  int                                      `json:"current_power"`
	MaxPower      int                                      `json:"max_power"`
	Attributes    map[entities.Stat]*entities.AbilityScore `json:"attributes"`
	Inventory     []*entities.GearItem                     `json:"inventory"`
	ActiveEffects []*entities.ActiveEffect                 `json:"active_effects"`
	CreatedAt     time.Time                                `json:"created_at"`
	UpdatedAt     time.Time                                `json:"updated_at"`
}

// redisRepo implements Repository using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedis creates a Redis-backed actor repository
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func actorKey(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

func actorToData(actor *entities.Actor) *ActorData {
	return &ActorData{
		ID:            actor.ID,
		Name:          actor.Name,
		CurrentHP:     actor.CurrentHP,
		MaxHP:         actor.MaxHP,
		CurrentPower:  actor.CurrentPower,
		MaxPower:      actor.MaxPower,
		Attributes:    actor.Attributes,
		Inventory:     actor.Inventory,
		ActiveEffects: actor.ActiveEffects,
		CreatedAt:     actor.CreatedAt,
		UpdatedAt:     actor.UpdatedAt,
	}
}

func dataToActor(data *ActorData) *entities.Actor {
	return &entities.Actor{
		ID:            data.ID,
		Name:          data.Name,
		CurrentHP:     data.CurrentHP,
		MaxHP:         data.MaxHP,
		CurrentPower:  data.CurrentPower,
		MaxPower:      data.MaxPower,
		Attributes:    data.Attributes,
		Inventory:     data.Inventory,
		ActiveEffects: data.ActiveEffects,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func (r *redisRepo) set(ctx context.Context, actor *entities.Actor) error {
	jsonData, err := json.Marshal(actorToData(actor))
	if err != nil {
		return enginerr.Wrap(err, "failed to marshal actor data")
	}

	if err := r.client.Set(ctx, actorKey(actor.ID), string(jsonData), 0).Err(); err != nil {
		return enginerr.Wrap(err, "failed to set actor in Redis")
	}
	return nil
}

// Create stores a new actor
func (r *redisRepo) Create(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return enginerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return enginerr.InvalidArgument("actor ID is required")
	}

	exists, err := r.client.Exists(ctx, actorKey(actor.ID)).Result()
	if err != nil {
		return enginerr.Wrap(err, "failed to check actor existence")
	}
	if exists > 0 {
		return enginerr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	now := r.timeProvider.Now()
	actor.CreatedAt = now
	actor.UpdatedAt = now

	return r.set(ctx, actor)
}

// Get retrieves an actor by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, enginerr.InvalidArgument("actor ID is required")
	}

	jsonData, err := r.client.Get(ctx, actorKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, enginerr.NotFoundf("actor with ID '%s' not found", id).
				WithMeta("actor_id", id)
		}
		return nil, enginerr.Wrap(err, "failed to get actor from Redis")
	}

	var data ActorData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, enginerr.Wrap(err, "failed to unmarshal actor data")
	}

	return dataToActor(&data), nil
}

// Update replaces an existing actor
func (r *redisRepo) Update(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return enginerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return enginerr.InvalidArgument("actor ID is required")
	}

	exists, err := r.client.Exists(ctx, actorKey(actor.ID)).Result()
	if err != nil {
		return enginerr.Wrap(err, "failed to check actor existence")
	}
	if exists == 0 {
		return enginerr.NotFoundf("actor with ID '%s' not found", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	actor.UpdatedAt = r.timeProvider.Now()
	return r.set(ctx, actor)
}

// Delete removes an actor
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return enginerr.InvalidArgument("actor ID is required")
	}

	deleted, err := r.client.Del(ctx, actorKey(id)).Result()
	if err != nil {
		return enginerr.Wrap(err, "failed to delete actor from Redis")
	}
	if deleted == 0 {
		return enginerr.NotFoundf("actor with ID '%s' not found", id)
	}
	return nil
}

// FindGearByName looks up an inventory stack by name on an actor
func (r *redisRepo) FindGearByName(ctx context.Context, actorID, name string) (*entities.GearItem, error) {
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
	return item, nil
}

// SetGearQuantity updates the quantity of a named inventory stack
func (r *redisRepo) SetGearQuantity(ctx context.Context, actorID, name string, quantity int) error {
	if quantity < 0 {
		return enginerr.InvalidArgument("gear quantity cannot be negative")
	}

	actor, err := r.Get(ctx, actorID)
	if err != nil {
		return err
	}

	item := actor.FindGear(name)
	if item == nil {
		return enginerr.NotFoundf("actor '%s' has no gear named '%s'", actorID, name)
	}

	item.Quantity = quantity
	return r.Update(ctx, actor)
}

// AddActiveEffect attaches an effect record to an actor
func (r *redisRepo) AddActiveEffect(ctx context.Context, actorID string, effect *entities.ActiveEffect) error {
	if effect == nil {
		return enginerr.InvalidArgument("effect cannot be nil")
	}

	actor, err := r.Get(ctx, actorID)
	if err != nil {
		return err
	}

	actor.ActiveEffects = append(actor.ActiveEffects, effect)
	return r.Update(ctx, actor)
}

// UpdateActiveEffect replaces an attached effect record, matched by ID
func (r *redisRepo) UpdateActiveEffect(ctx context.Context, actorID string, effect *entities.ActiveEffect) error {
	if effect == nil || effect.ID == "" {
		return enginerr.InvalidArgument("effect with ID is required")
	}

	actor, err := r.Get(ctx, actorID)
	if err != nil {
		return err
	}

	for i, existing := range actor.ActiveEffects {
		if existing.ID == effect.ID {
			actor.ActiveEffects[i] = effect
			return r.Update(ctx, actor)
		}
	}

	return enginerr.NotFoundf("actor '%s' has no active effect '%s'", actorID, effect.ID)
}

// AddGearItem appends or merges a gear stack into an actor's inventory
func (r *redisRepo) AddGearItem(ctx context.Context, actorID string, item *entities.GearItem) error {
	if item == nil || item.Name == "" {
		return enginerr.InvalidArgument("gear item with name is required")
	}

	actor, err := r.Get(ctx, actorID)
	if err != nil {
		return err
	}

	if existing := actor.FindGear(item.Name); existing != nil {
		existing.Quantity += item.Quantity
		existing.Equipped = existing.Equipped || item.Equipped
	} else {
		actor.Inventory = append(actor.Inventory, item)
	}

	return r.Update(ctx, actor)
}
