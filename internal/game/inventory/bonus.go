package inventory

import "github.com/idlerealm/worldboss/internal/game/character"

// Bonus aggregates the stat bonuses contributed by a player's equipped items.
// It is derived on every read and never persisted.
type Bonus struct {
	Attack  int
	Defense int
	Health  int
	// Skills maps a skill to the additional effective levels granted by gear.
	Skills map[character.Skill]int
}

// SkillBonus returns the bonus levels for skill, or 0 when no gear grants any.
func (b Bonus) SkillBonus(skill character.Skill) int {
	return b.Skills[skill]
}

// CalculateBonus sums the bonuses of every equipped item.
//
// Skill-level bonuses accumulate per required skill, so two items granting the
// same skill add together. Items with a skill bonus but no required skill
// contribute nothing to the skill map.
//
// Postcondition: the result is all-zero with a non-nil Skills map when
// equipped is empty. Pure and side-effect free.
func CalculateBonus(equipped []EquippedItem) Bonus {
	b := Bonus{Skills: make(map[character.Skill]int)}
	for _, eq := range equipped {
		b.Attack += eq.Item.AttackBonus
		b.Defense += eq.Item.DefenseBonus
		b.Health += eq.Item.HealthBonus
		if eq.Item.SkillBonus > 0 && eq.Item.RequiredSkill != "" {
			b.Skills[eq.Item.RequiredSkill] += eq.Item.SkillBonus
		}
	}
	return b
}
