package boss

import (
	"fmt"
	"sort"

	"github.com/idlerealm/worldboss/internal/game/dice"
)

// WeightedPool duplicates each template by its rarity weight.
//
// Postcondition: len(result) == sum of Rarity.Weight() over templates.
func WeightedPool(templates []*Template) []*Template {
	var pool []*Template
	for _, t := range templates {
		for i := 0; i < t.Rarity.Weight(); i++ {
			pool = append(pool, t)
		}
	}
	return pool
}

// SelectTemplate picks the next template to spawn.
//
// RANDOM draws uniformly; SEQUENTIAL takes the lowest level, ties broken by
// insertion order (ID); WEIGHTED draws uniformly from WeightedPool.
//
// Postcondition: returns ErrNoTemplates when templates is empty.
func SelectTemplate(mode SelectionMode, templates []*Template, src dice.Source) (*Template, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}
	switch mode {
	case SelectRandom:
		return templates[src.Intn(len(templates))], nil
	case SelectSequential:
		ordered := append([]*Template(nil), templates...)
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Level != ordered[j].Level {
				return ordered[i].Level < ordered[j].Level
			}
			return ordered[i].ID < ordered[j].ID
		})
		return ordered[0], nil
	case SelectWeighted:
		pool := WeightedPool(templates)
		if len(pool) == 0 {
			return nil, ErrNoTemplates
		}
		return pool[src.Intn(len(pool))], nil
	}
	return nil, fmt.Errorf("%w: unknown selection mode %q", ErrInvalidSettings, mode)
}
