package entities

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// EffectSourceActionCard marks effect payloads created by the engine so
// downstream creation listeners recognize them as system-generated
const EffectSourceActionCard = "action_card"

// EffectPayload is the tagged union of things an action card can bestow
// on a target. Concrete types are StatusPayload and GearPayload;
// consumers dispatch with a type switch.
type EffectPayload interface {
	// EffectName is the display name used for matching and reporting
	EffectName() string

	// Clone returns an independent copy safe to tag and mutate during
	// application
	Clone() EffectPayload
}

// StatusPayload bestows a status effect that intensifies when the
// target already carries a matching one
type StatusPayload struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Intensity   int    `json:"intensity" yaml:"intensity"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
}

func (p *StatusPayload) EffectName() string { return p.Name }

func (p *StatusPayload) Clone() EffectPayload {
	clone := *p
	return &clone
}

// GearPayload grants a gear item, paid for out of the source actor's
// matching inventory stack
type GearPayload struct {
	Name     string `json:"name" yaml:"name"`
	Cost     int    `json:"cost" yaml:"cost"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Equip    bool   `json:"equip" yaml:"equip"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
}

func (p *GearPayload) EffectName() string { return p.Name }

func (p *GearPayload) Clone() EffectPayload {
	clone := *p
	return &clone
}

// EmbeddedEffect bundles a payload with the card that carries it.
// ID may be empty; consumers fall back to the positional key.
type EmbeddedEffect struct {
	ID      string
	Payload EffectPayload
}

// Key returns the effect's identifier, falling back to its position
// in the card's effect list when no explicit ID is set
func (e *EmbeddedEffect) Key(index int) string {
	if e.ID != "" {
		return e.ID
	}
	return fmt.Sprintf("effect-%d", index)
}

// effectData wraps a payload with type information for marshaling
type effectData struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const (
	effectTypeStatus = "status"
	effectTypeGear   = "gear"
)

// MarshalJSON implements json.Marshaler
func (e *EmbeddedEffect) MarshalJSON() ([]byte, error) {
	if e.Payload == nil {
		return nil, fmt.Errorf("embedded effect has no payload")
	}

	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal effect payload: %w", err)
	}

	var typeStr string
	switch e.Payload.(type) {
	case *StatusPayload:
		typeStr = effectTypeStatus
	case *GearPayload:
		typeStr = effectTypeGear
	default:
		return nil, fmt.Errorf("unknown effect payload type %T", e.Payload)
	}

	return json.Marshal(effectData{ID: e.ID, Type: typeStr, Payload: raw})
}

// UnmarshalJSON implements json.Unmarshaler
func (e *EmbeddedEffect) UnmarshalJSON(data []byte) error {
	var wrapper effectData
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	payload, err := payloadForType(wrapper.Type, func(v any) error {
		return json.Unmarshal(wrapper.Payload, v)
	})
	if err != nil {
		return err
	}

	e.ID = wrapper.ID
	e.Payload = payload
	return nil
}

// UnmarshalYAML decodes card-pack documents where the payload fields
// sit inline next to a "type" discriminator
func (e *EmbeddedEffect) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		ID   string `yaml:"id"`
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	payload, err := payloadForType(head.Type, func(v any) error {
		return node.Decode(v)
	})
	if err != nil {
		return err
	}

	e.ID = head.ID
	e.Payload = payload
	return nil
}

func payloadForType(typeStr string, decode func(any) error) (EffectPayload, error) {
	switch strings.ToLower(typeStr) {
	case effectTypeStatus:
		var status StatusPayload
		if err := decode(&status); err != nil {
			return nil, fmt.Errorf("failed to decode status payload: %w", err)
		}
		return &status, nil
	case effectTypeGear:
		var gear GearPayload
		if err := decode(&gear); err != nil {
			return nil, fmt.Errorf("failed to decode gear payload: %w", err)
		}
		return &gear, nil
	default:
		return nil, fmt.Errorf("unknown effect type %q", typeStr)
	}
}
