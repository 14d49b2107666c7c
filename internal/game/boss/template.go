// Package boss implements the shared world boss: template definitions, the
// instance state machine, damage resolution, reward distribution, rotation,
// and the damage leaderboard.
package boss

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idlerealm/worldboss/internal/game/character"
)

// Rarity is the tier of a boss template; it drives weighted selection.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// RarityWeights is the fixed weight of each tier in WEIGHTED selection.
var RarityWeights = map[Rarity]int{
	RarityCommon:    50,
	RarityUncommon:  30,
	RarityRare:      15,
	RarityEpic:      4,
	RarityLegendary: 1,
}

// Valid reports whether r is a known rarity tier.
func (r Rarity) Valid() bool {
	_, ok := RarityWeights[r]
	return ok
}

// Weight returns the selection weight for r, or 0 for unknown tiers.
func (r Rarity) Weight() int {
	return RarityWeights[r]
}

// DropRule is one entry of a template's drop table.
//
// Invariant: DropRate in [0, 1]; 1 <= MinQuantity <= MaxQuantity; at most one
// rule per (TemplateID, ItemID).
type DropRule struct {
	ID          int64
	TemplateID  int64
	ItemID      string
	DropRate    float64
	MinQuantity int
	MaxQuantity int
	// KillerOnly restricts the drop to the player who landed the lethal hit.
	KillerOnly bool
}

// Validate checks the drop rule's numeric ranges.
//
// Postcondition: Returns nil iff all constraints hold; the error wraps ErrInvalidDropRule.
func (d *DropRule) Validate() error {
	if d.ItemID == "" {
		return fmt.Errorf("%w: item id must not be empty", ErrInvalidDropRule)
	}
	if d.DropRate < 0 || d.DropRate > 1 {
		return fmt.Errorf("%w: drop rate must be in [0, 1], got %g", ErrInvalidDropRule, d.DropRate)
	}
	if d.MinQuantity < 1 {
		return fmt.Errorf("%w: min quantity must be >= 1, got %d", ErrInvalidDropRule, d.MinQuantity)
	}
	if d.MinQuantity > d.MaxQuantity {
		return fmt.Errorf("%w: min quantity (%d) must be <= max quantity (%d)", ErrInvalidDropRule, d.MinQuantity, d.MaxQuantity)
	}
	return nil
}

// Template is the static definition of a boss type. Templates are edited by
// admins and never mutated by combat.
type Template struct {
	ID          int64
	Name        string
	Description string
	MaxHealth   int64
	Attack      int
	Defense     int
	Level       int
	Weaknesses  []character.Skill
	GoldReward  int64
	ExpReward   int64
	Rarity      Rarity
	DropRules   []DropRule
	CreatedAt   time.Time
}

// Validate checks that the template satisfies its invariants.
//
// Postcondition: Returns nil iff the template is valid; the error wraps ErrInvalidTemplate.
func (t *Template) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if t.MaxHealth < 1 {
		errs = append(errs, fmt.Errorf("max health must be >= 1, got %d", t.MaxHealth))
	}
	if t.Attack < 0 || t.Defense < 0 {
		errs = append(errs, errors.New("attack and defense must be >= 0"))
	}
	if t.Level < 1 {
		errs = append(errs, fmt.Errorf("level must be >= 1, got %d", t.Level))
	}
	if t.GoldReward < 0 || t.ExpReward < 0 {
		errs = append(errs, errors.New("rewards must be >= 0"))
	}
	if !t.Rarity.Valid() {
		errs = append(errs, fmt.Errorf("unknown rarity %q", t.Rarity))
	}
	for _, w := range t.Weaknesses {
		if !w.Valid() {
			errs = append(errs, fmt.Errorf("unknown weakness skill %q", w))
		}
	}
	seen := make(map[string]bool, len(t.DropRules))
	for i := range t.DropRules {
		if err := t.DropRules[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("drop[%d]: %w", i, err))
		}
		if seen[t.DropRules[i].ItemID] {
			errs = append(errs, fmt.Errorf("drop[%d]: duplicate item %q", i, t.DropRules[i].ItemID))
		}
		seen[t.DropRules[i].ItemID] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidTemplate, t.Name, errors.Join(errs...))
	}
	return nil
}

// WeakTo reports whether skill is one of the template's weaknesses.
func (t *Template) WeakTo(skill character.Skill) bool {
	for _, w := range t.Weaknesses {
		if w == skill {
			return true
		}
	}
	return false
}

type dropYAML struct {
	Item       string  `yaml:"item"`
	Rate       float64 `yaml:"rate"`
	MinQty     int     `yaml:"min_qty"`
	MaxQty     int     `yaml:"max_qty"`
	KillerOnly bool    `yaml:"killer_only"`
}

type templateYAML struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	MaxHealth   int64      `yaml:"max_health"`
	Attack      int        `yaml:"attack"`
	Defense     int        `yaml:"defense"`
	Level       int        `yaml:"level"`
	Weaknesses  []string   `yaml:"weaknesses"`
	GoldReward  int64      `yaml:"gold_reward"`
	ExpReward   int64      `yaml:"exp_reward"`
	Rarity      string     `yaml:"rarity"`
	Drops       []dropYAML `yaml:"drops"`
}

// LoadTemplateFromBytes parses a single boss template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template with zero ID, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var raw templateYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing boss template: %w", err)
	}
	t := &Template{
		Name:        raw.Name,
		Description: raw.Description,
		MaxHealth:   raw.MaxHealth,
		Attack:      raw.Attack,
		Defense:     raw.Defense,
		Level:       raw.Level,
		GoldReward:  raw.GoldReward,
		ExpReward:   raw.ExpReward,
		Rarity:      Rarity(raw.Rarity),
	}
	for _, w := range raw.Weaknesses {
		t.Weaknesses = append(t.Weaknesses, character.Skill(w))
	}
	for _, d := range raw.Drops {
		t.DropRules = append(t.DropRules, DropRule{
			ItemID:      d.Item,
			DropRate:    d.Rate,
			MinQuantity: d.MinQty,
			MaxQuantity: d.MaxQty,
			KillerOnly:  d.KillerOnly,
		})
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTemplates reads every *.yaml / *.yml file in dir as one boss template.
//
// Precondition: dir is a readable directory.
// Postcondition: Returns all templates in file-name order, or the first error.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading boss template directory %q: %w", dir, err)
	}
	var out []*Template
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		t, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		out = append(out, t)
	}
	return out, nil
}
