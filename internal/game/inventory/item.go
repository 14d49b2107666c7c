// Package inventory models the item catalog, equipped gear, and the bonuses
// that gear contributes to boss combat.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idlerealm/worldboss/internal/game/character"
)

// Item defines the static properties of a catalog item loaded from YAML or
// the item table.
//
// Invariant: bonuses are non-negative; SkillBonus > 0 requires RequiredSkill.
type Item struct {
	ID            string          `yaml:"id"`
	Name          string          `yaml:"name"`
	Description   string          `yaml:"description"`
	Slot          Slot            `yaml:"slot"`
	AttackBonus   int             `yaml:"attack_bonus"`
	DefenseBonus  int             `yaml:"defense_bonus"`
	HealthBonus   int             `yaml:"health_bonus"`
	SkillBonus    int             `yaml:"skill_bonus"`
	RequiredSkill character.Skill `yaml:"required_skill"`
}

// Validate checks that the Item satisfies its invariants.
//
// Precondition: i is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (i *Item) Validate() error {
	var errs []error
	if i.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if i.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if i.Slot != "" && !i.Slot.Valid() {
		errs = append(errs, fmt.Errorf("slot %q is not a recognised equipment slot", i.Slot))
	}
	if i.AttackBonus < 0 || i.DefenseBonus < 0 || i.HealthBonus < 0 || i.SkillBonus < 0 {
		errs = append(errs, errors.New("bonuses must be >= 0"))
	}
	if i.RequiredSkill != "" && !i.RequiredSkill.Valid() {
		errs = append(errs, fmt.Errorf("required_skill %q is not a known skill", i.RequiredSkill))
	}
	if i.SkillBonus > 0 && i.RequiredSkill == "" {
		errs = append(errs, errors.New("skill_bonus requires required_skill"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q validation failed: %w", i.ID, errors.Join(errs...))
	}
	return nil
}

// Equippable reports whether the item can occupy an equipment slot.
func (i *Item) Equippable() bool {
	return i.Slot != ""
}

// LoadItems reads all *.yaml and *.yml files from dir. Each file holds a YAML
// list of items; every item is validated.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Items or the first encountered error.
func LoadItems(dir string) ([]*Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*Item
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		parsed, err := LoadItemsFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: %q: %w", path, err)
		}
		items = append(items, parsed...)
	}
	return items, nil
}

// LoadItemsFromBytes parses a YAML list of items and validates each one.
func LoadItemsFromBytes(data []byte) ([]*Item, error) {
	var items []*Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing items: %w", err)
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
	}
	return items, nil
}
