// Package cards loads action-card definitions from YAML pack files and
// validates them before they reach the resolution engine.
package cards

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/dice"
	"github.com/EventideMiles/eventide-rp-system-sub001/internal/entities"
	enginerr "github.com/EventideMiles/eventide-rp-system-sub001/internal/errors"
)

// Pack is one YAML document of action cards
type Pack struct {
	Name  string                 `yaml:"name"`
	Cards []*entities.ActionCard `yaml:"cards"`
}

// Load reads and validates a single pack file
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, enginerr.Wrapf(err, "failed to read card pack %q", path)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, enginerr.Wrapf(err, "failed to parse card pack %q", path)
	}

	for _, card := range pack.Cards {
		if err := Validate(card); err != nil {
			return nil, enginerr.Wrapf(err, "invalid card in pack %q", path)
		}
	}

	return &pack, nil
}

// LoadDir loads every .yaml/.yml pack in a directory, in name order
func LoadDir(dir string) ([]*Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, enginerr.Wrapf(err, "failed to read card pack directory %q", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	packs := make([]*Pack, 0, len(paths))
	for _, path := range paths {
		pack, err := Load(path)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
	}
	return packs, nil
}

// Validate checks a card definition for structural problems
func Validate(card *entities.ActionCard) error {
	if card == nil {
		return enginerr.Validation("card cannot be nil")
	}
	if card.ID == "" {
		return enginerr.Validation("card ID is required")
	}
	if card.Name == "" {
		return enginerr.Validationf("card '%s' has no name", card.ID)
	}

	switch card.Mode {
	case entities.ModeAttackChain:
		if card.AttackChain == nil {
			return enginerr.Validationf("card '%s' is an attack chain without its config", card.ID)
		}
		if err := validateCondition(card.AttackChain.DamageCondition); err != nil {
			return enginerr.Wrapf(err, "card '%s' damage condition", card.ID)
		}
		if err := validateCondition(card.AttackChain.StatusCondition); err != nil {
			return enginerr.Wrapf(err, "card '%s' status condition", card.ID)
		}
		if card.AttackChain.DamageCondition != entities.ConditionNever {
			if _, err := dice.ParseFormula(card.AttackChain.DamageFormula); err != nil {
				return enginerr.Wrapf(err, "card '%s' damage formula", card.ID)
			}
		}
	case entities.ModeSavedDamage:
		if card.SavedDamage == nil {
			return enginerr.Validationf("card '%s' is saved damage without its config", card.ID)
		}
		if _, err := dice.ParseFormula(card.SavedDamage.Formula); err != nil {
			return enginerr.Wrapf(err, "card '%s' saved damage formula", card.ID)
		}
	default:
		return enginerr.Validationf("card '%s' has unknown mode %q", card.ID, card.Mode)
	}

	if card.Repetition.Formula != "" {
		if _, err := dice.ParseFormula(card.Repetition.Formula); err != nil {
			return enginerr.Wrapf(err, "card '%s' repetition formula", card.ID)
		}
	}

	for i, effect := range card.Effects {
		if effect == nil || effect.Payload == nil {
			return enginerr.Validationf("card '%s' effect %d is empty", card.ID, i)
		}
		if effect.Payload.EffectName() == "" {
			return enginerr.Validationf("card '%s' effect %d has no name", card.ID, i)
		}
	}

	return nil
}

func validateCondition(condition entities.ApplyCondition) error {
	switch condition {
	case entities.ConditionNever, entities.ConditionOneSuccess,
		entities.ConditionTwoSuccesses, entities.ConditionRollValue:
		return nil
	default:
		return enginerr.Validationf("unknown apply condition %q", condition)
	}
}
