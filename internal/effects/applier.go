// Package effects implements the status-intensification boundary: a
// target already carrying a matching effect has its magnitude increased
// instead of receiving a duplicate instance.
package effects

import (
	"context"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/repositories/actors"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/uuid"
)

// Outcome reports what ApplyOrIntensify did to the target
type Outcome struct {
	Applied     bool
	Intensified bool
}

// Applier is the status-intensification service contract. It must
// tolerate repeated calls across repetitions without accumulating
// duplicate effect instances beyond intensification.
type Applier interface {
	ApplyOrIntensify(ctx context.Context, targetID string, payload entities.EffectPayload) (*Outcome, error)
}

// Manager implements Applier against the actor document store
type Manager struct {
	repository    actors.Repository
	uuidGenerator uuid.Generator
}

// ManagerConfig holds configuration for the effect manager
type ManagerConfig struct {
	Repository    actors.Repository
	UUIDGenerator uuid.Generator
}

// NewManager creates a new effect manager
func NewManager(cfg *ManagerConfig) *Manager {
	if cfg.Repository == nil {
		panic("actor repository is required")
	}

	mgr := &Manager{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if mgr.uuidGenerator == nil {
		mgr.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return mgr
}

// ApplyOrIntensify attaches the payload to the target, or increases the
// magnitude of an already-present matching effect
func (m *Manager) ApplyOrIntensify(ctx context.Context, targetID string, payload entities.EffectPayload) (*Outcome, error) {
	if payload == nil {
		return nil, enginerr.InvalidArgument("effect payload cannot be nil")
	}

	switch p := payload.(type) {
	case *entities.StatusPayload:
		return m.applyStatus(ctx, targetID, p)
	case *entities.GearPayload:
		return m.applyGear(ctx, targetID, p)
	default:
		return nil, enginerr.InvalidArgumentf("unknown effect payload type %T", payload)
	}
}

func (m *Manager) applyStatus(ctx context.Context, targetID string, payload *entities.StatusPayload) (*Outcome, error) {
	target, err := m.repository.Get(ctx, targetID)
	if err != nil {
		return nil, enginerr.Wrap(err, "failed to get target")
	}

	intensity := payload.Intensity
	if intensity < 1 {
		intensity = 1
	}

	if existing := target.FindActiveEffect(payload.Name, payload.Source); existing != nil {
		existing.Intensity += intensity
		if err := m.repository.UpdateActiveEffect(ctx, targetID, existing); err != nil {
			return nil, enginerr.Wrap(err, "failed to intensify effect")
		}
		return &Outcome{Applied: true, Intensified: true}, nil
	}

	effect := &entities.ActiveEffect{
		ID:          m.uuidGenerator.New(),
		Name:        payload.Name,
		Description: payload.Description,
		Intensity:   intensity,
		Source:      payload.Source,
	}
	if err := m.repository.AddActiveEffect(ctx, targetID, effect); err != nil {
		return nil, enginerr.Wrap(err, "failed to attach effect")
	}

	return &Outcome{Applied: true}, nil
}

func (m *Manager) applyGear(ctx context.Context, targetID string, payload *entities.GearPayload) (*Outcome, error) {
	target, err := m.repository.Get(ctx, targetID)
	if err != nil {
		return nil, enginerr.Wrap(err, "failed to get target")
	}

	quantity := payload.Quantity
	if quantity < 1 {
		quantity = 1
	}

	intensified := target.FindGear(payload.Name) != nil

	item := &entities.GearItem{
		Name:     payload.Name,
		Quantity: quantity,
		Equipped: payload.Equip,
	}
	if err := m.repository.AddGearItem(ctx, targetID, item); err != nil {
		return nil, enginerr.Wrap(err, "failed to grant gear")
	}

	return &Outcome{Applied: true, Intensified: intensified}, nil
}
