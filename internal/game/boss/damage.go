package boss

import (
	"context"
	"fmt"
	"math"

	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/dice"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

// Damage formula constants.
const (
	damagePerSkillLevel  = 5
	damagePerAttackBonus = 10
	weaknessMultiplier   = 1.5
	randomFactorMin      = 0.8
	randomFactorMax      = 1.2
	baseCritChance       = 0.10
	maxCritBonus         = 0.10
	critMultiplier       = 2.0
	defenseScale         = 100.0
	maxMitigation        = 0.5
)

// Health cost constants, as fractions of effective max health.
const (
	healthCostMin        = 0.10
	healthCostMax        = 0.20
	defenseCostPerPoint  = 0.001
	maxDefenseCostRelief = 0.05
	minHealthCost        = 0.02
)

// DamageInput carries everything the resolver needs; it never touches state.
type DamageInput struct {
	PlayerLevel int
	SkillLevel  int
	Skill       character.Skill
	// Weak is set when the boss is weak to Skill.
	Weak        bool
	BossDefense int
	Bonus       inventory.Bonus
}

// DamageResult is the outcome of one resolved hit.
type DamageResult struct {
	Damage   int64
	Critical bool
	// Raw is the damage before defense mitigation.
	Raw float64
	// Mitigation is the fraction of Raw removed by boss defense, in [0, 0.5].
	Mitigation float64
}

// CritChance returns the critical-hit probability for an attack bonus:
// 10% plus 1% per 50 attack bonus, capped at 20%.
func CritChance(attackBonus int) float64 {
	return baseCritChance + math.Min(float64(attackBonus)/50*0.01, maxCritBonus)
}

// Mitigation returns the fraction of damage absorbed by defense, capped at 50%.
func Mitigation(defense int) float64 {
	if defense <= 0 {
		return 0
	}
	d := float64(defense)
	return math.Min(d/(d+defenseScale), maxMitigation)
}

// ResolveDamage computes one hit against a boss.
//
// Draw order from src: one Float64 for the [0.8, 1.2) random factor, then one
// Float64 for the critical roll (critical iff draw < CritChance).
//
// Postcondition: Damage >= 0 and Damage == floor(Raw * (1 - Mitigation)).
func ResolveDamage(src dice.Source, in DamageInput) DamageResult {
	effectiveSkill := in.SkillLevel + in.Bonus.SkillBonus(in.Skill)
	base := float64(effectiveSkill*in.PlayerLevel*damagePerSkillLevel + in.Bonus.Attack*damagePerAttackBonus)

	weakness := 1.0
	if in.Weak {
		weakness = weaknessMultiplier
	}

	factor := dice.Uniform(src, randomFactorMin, randomFactorMax)
	critical := src.Float64() < CritChance(in.Bonus.Attack)
	crit := 1.0
	if critical {
		crit = critMultiplier
	}

	raw := base * weakness * factor * crit
	mitigation := Mitigation(in.BossDefense)
	damage := int64(math.Floor(raw * (1 - mitigation)))
	if damage < 0 {
		damage = 0
	}
	return DamageResult{Damage: damage, Critical: critical, Raw: raw, Mitigation: mitigation}
}

// HealthCost returns the health a player spends on one attack: 10–20% of
// effective max health, lowered by 0.1 percentage points per defense bonus
// (at most 5 points), never below 2%, and at least 1.
//
// Draw order from src: one Float64 for the base percentage.
func HealthCost(src dice.Source, maxHealth int, bonus inventory.Bonus) int {
	pct := dice.Uniform(src, healthCostMin, healthCostMax)
	pct -= math.Min(float64(bonus.Defense)*defenseCostPerPoint, maxDefenseCostRelief)
	if pct < minHealthCost {
		pct = minHealthCost
	}
	cost := int(math.Floor(float64(maxHealth+bonus.Health) * pct))
	if cost < 1 {
		cost = 1
	}
	return cost
}

// PlayerBonus reads the player's equipped gear and aggregates it. Computed
// fresh on every call.
func PlayerBonus(ctx context.Context, eq Equipment, playerID int64) (inventory.Bonus, error) {
	items, err := eq.EquippedItems(ctx, playerID)
	if err != nil {
		return inventory.Bonus{}, fmt.Errorf("loading equipment for player %d: %w", playerID, err)
	}
	return inventory.CalculateBonus(items), nil
}
