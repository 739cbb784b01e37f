package actors

//go:generate mockgen -destination=mock/mock.go -package=mockactors -source=interface.go

import (
	"context"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
)

// Repository defines the document-store interface for actor persistence.
// The engine assumes no read-after-write guarantee beyond what the
// store itself provides.
type Repository interface {
	// Create stores a new actor
	Create(ctx context.Context, actor *entities.Actor) error

	// Get retrieves an actor by ID
	Get(ctx context.Context, id string) (*entities.Actor, error)

	// Update replaces an existing actor
	Update(ctx context.Context, actor *entities.Actor) error

	// Delete removes an actor
	Delete(ctx context.Context, id string) error

	// FindGearByName looks up an inventory stack by name on an actor.
	// Returns a not-found error when the actor carries no match.
	FindGearByName(ctx context.Context, actorID, name string) (*entities.GearItem, error)

	// SetGearQuantity updates the quantity of a named inventory stack
	SetGearQuantity(ctx context.Context, actorID, name string, quantity int) error

	// AddActiveEffect attaches an embedded effect record to an actor
	AddActiveEffect(ctx context.Context, actorID string, effect *entities.ActiveEffect) error

	// UpdateActiveEffect replaces an attached effect record, matched by ID
	UpdateActiveEffect(ctx context.Context, actorID string, effect *entities.ActiveEffect) error

	// AddGearItem appends or merges a gear stack into an actor's inventory
	AddGearItem(ctx context.Context, actorID string, item *entities.GearItem) error
}
