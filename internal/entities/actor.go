package entities

import (
	"strings"
	"time"
)

// Stat identifies one of an actor's core abilities
type Stat string

const (
	StatAcrobatics Stat = "acro"
	StatPhysical   Stat = "phys"
	StatFortitude  Stat = "fort"
	StatWill       Stat = "will"
	StatWits       Stat = "wits"
)

// AbilityScore holds an actor's rating in one stat along with the
// defense value opposed checks roll against
type AbilityScore struct {
	Score   int `json:"score" yaml:"score"`
	Bonus   int `json:"bonus" yaml:"bonus"`
	Defense int `json:"defense" yaml:"defense"`
}

// GearItem is a single stack of gear in an actor's inventory
type GearItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Equipped bool   `json:"equipped" yaml:"equipped"`
}

// ActiveEffect is a status effect currently attached to an actor
type ActiveEffect struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Intensity   int       `json:"intensity"`
	Source      string    `json:"source,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Actor is any entity an action card can act from or against
type Actor struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	CurrentHP     int                    `json:"current_hp"`
	MaxHP         int                    `json:"max_hp"`
	CurrentPower  int                    `json:"current_power"`
	MaxPower      int                    `json:"max_power"`
	Attributes    map[Stat]*AbilityScore `json:"attributes"`
	Inventory     []*GearItem            `json:"inventory"`
	ActiveEffects []*ActiveEffect        `json:"active_effects"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// StatBonus returns the actor's bonus for a stat, zero when unrated
func (a *Actor) StatBonus(stat Stat) int {
	if score, ok := a.Attributes[stat]; ok {
		return score.Bonus
	}
	return 0
}

// Defense returns the defense value opposed checks compare against
// for a stat. Unrated stats defend at 10.
func (a *Actor) Defense(stat Stat) int {
	if score, ok := a.Attributes[stat]; ok {
		return score.Defense
	}
	return 10
}

// FindGear returns the first inventory stack matching name
// (case-insensitive), or nil when the actor carries none
func (a *Actor) FindGear(name string) *GearItem {
	for _, item := range a.Inventory {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

// FindActiveEffect returns the attached effect matching name and source,
// or nil when none is present
func (a *Actor) FindActiveEffect(name, source string) *ActiveEffect {
	for _, effect := range a.ActiveEffects {
		if strings.EqualFold(effect.Name, name) && effect.Source == source {
			return effect
		}
	}
	return nil
}

// ApplyDamage reduces current HP, flooring at zero
func (a *Actor) ApplyDamage(amount int) {
	a.CurrentHP -= amount
	if a.CurrentHP < 0 {
		a.CurrentHP = 0
	}
}

// ApplyHealing raises current HP, capped at the maximum
func (a *Actor) ApplyHealing(amount int) {
	a.CurrentHP += amount
	if a.CurrentHP > a.MaxHP {
		a.CurrentHP = a.MaxHP
	}
}

// SpendPower deducts from the power pool, flooring at zero, and
// returns the amount actually deducted
func (a *Actor) SpendPower(amount int) int {
	spent := amount
	if spent > a.CurrentPower {
		spent = a.CurrentPower
	}
	a.CurrentPower -= spent
	return spent
}
