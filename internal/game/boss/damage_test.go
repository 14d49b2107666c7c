package boss_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/dice"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

func scenarioAInput() boss.DamageInput {
	return boss.DamageInput{
		PlayerLevel: 10,
		SkillLevel:  10,
		Skill:       character.SkillMining,
		Weak:        true,
		BossDefense: 0,
	}
}

func TestResolveDamage_ScenarioA_MinimumRoll(t *testing.T) {
	// factor draw 0 -> 0.8; crit draw 0.5 -> no crit
	res := boss.ResolveDamage(dice.NewScripted(0, 0.5), scenarioAInput())
	assert.False(t, res.Critical)
	assert.Equal(t, int64(600), res.Damage)
	assert.GreaterOrEqual(t, res.Damage, int64(100), "minimum roll still kills a 100 HP boss")
}

func TestResolveDamage_ScenarioA_ForcedCritical(t *testing.T) {
	res := boss.ResolveDamage(dice.NewScripted(0, 0), scenarioAInput())
	assert.True(t, res.Critical)
	assert.Equal(t, int64(1200), res.Damage)
}

func TestResolveDamage_ScenarioA_Range(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := rapid.Float64Range(0, 0.999999).Draw(rt, "factor")
		c := rapid.Float64Range(0, 0.999999).Draw(rt, "crit")
		res := boss.ResolveDamage(dice.NewScripted(f, c), scenarioAInput())
		lo, hi := 500*1.5*0.8, 500*1.5*1.2
		if res.Critical {
			lo, hi = lo*2, hi*2
		}
		if float64(res.Damage) < math.Floor(lo) || float64(res.Damage) > hi {
			rt.Fatalf("damage %d outside [%v, %v]", res.Damage, lo, hi)
		}
	})
}

func TestResolveDamage_NoWeakness(t *testing.T) {
	in := scenarioAInput()
	in.Skill = character.SkillFishing
	in.Weak = false
	res := boss.ResolveDamage(dice.NewScripted(0, 0.5), in)
	assert.Equal(t, int64(400), res.Damage)
}

func TestResolveDamage_EquipmentBonuses(t *testing.T) {
	in := scenarioAInput()
	in.Skill = character.SkillFishing
	in.Weak = false
	in.Bonus = inventory.Bonus{
		Attack: 10,
		Skills: map[character.Skill]int{character.SkillFishing: 5},
	}
	// base = (10+5)*10*5 + 10*10 = 850; factor 0.8 -> 680
	res := boss.ResolveDamage(dice.NewScripted(0, 0.5), in)
	assert.Equal(t, int64(680), res.Damage)
}

func TestResolveDamage_DefenseMitigation(t *testing.T) {
	in := scenarioAInput()
	in.BossDefense = 100
	res := boss.ResolveDamage(dice.NewScripted(0, 0.5), in)
	assert.InDelta(t, 0.5, res.Mitigation, 1e-12)
	assert.Equal(t, int64(300), res.Damage)
}

func TestMitigation_CappedAtHalf(t *testing.T) {
	assert.Zero(t, boss.Mitigation(0))
	assert.Zero(t, boss.Mitigation(-5))
	assert.InDelta(t, 50.0/150.0, boss.Mitigation(50), 1e-12)
	assert.Equal(t, 0.5, boss.Mitigation(100000))
}

func TestCritChance(t *testing.T) {
	assert.InDelta(t, 0.10, boss.CritChance(0), 1e-12)
	assert.InDelta(t, 0.11, boss.CritChance(50), 1e-12)
	assert.InDelta(t, 0.20, boss.CritChance(500), 1e-12)
	assert.InDelta(t, 0.20, boss.CritChance(5000), 1e-12)
}

func TestResolveDamage_CritBoundaryIsExclusive(t *testing.T) {
	res := boss.ResolveDamage(dice.NewScripted(0, 0.10), scenarioAInput())
	assert.False(t, res.Critical, "a draw equal to the crit chance is not a crit")
}

func TestResolveDamage_MitigationBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := boss.DamageInput{
			PlayerLevel: rapid.IntRange(1, 99).Draw(rt, "level"),
			SkillLevel:  rapid.IntRange(1, 99).Draw(rt, "skill"),
			Skill:       rapid.SampledFrom(character.AllSkills).Draw(rt, "attackSkill"),
			Weak:        rapid.Bool().Draw(rt, "weak"),
			BossDefense: rapid.IntRange(0, 10000).Draw(rt, "defense"),
			Bonus:       inventory.Bonus{Attack: rapid.IntRange(0, 500).Draw(rt, "attack")},
		}
		src := dice.NewScripted(
			rapid.Float64Range(0, 0.999999).Draw(rt, "factor"),
			rapid.Float64Range(0, 0.999999).Draw(rt, "crit"),
		)
		res := boss.ResolveDamage(src, in)
		if res.Damage < 0 {
			rt.Fatalf("negative damage %d", res.Damage)
		}
		if float64(res.Damage) < math.Floor(res.Raw*0.5) {
			rt.Fatalf("damage %d below half of raw %v", res.Damage, res.Raw)
		}
		if float64(res.Damage) > res.Raw {
			rt.Fatalf("damage %d above raw %v", res.Damage, res.Raw)
		}
		if in.BossDefense == 0 && res.Damage != int64(math.Floor(res.Raw)) {
			rt.Fatalf("undefended damage %d != floor(raw %v)", res.Damage, res.Raw)
		}
	})
}

func TestHealthCost(t *testing.T) {
	tests := []struct {
		name      string
		draw      float64
		maxHealth int
		bonus     inventory.Bonus
		want      int
	}{
		{name: "minimum percentage", draw: 0, maxHealth: 100, want: 10},
		{name: "health bonus raises effective max", draw: 0, maxHealth: 100, bonus: inventory.Bonus{Health: 100}, want: 20},
		{name: "defense relief capped at five points", draw: 0, maxHealth: 100, bonus: inventory.Bonus{Defense: 1000}, want: 5},
		{name: "never below one", draw: 0, maxHealth: 1, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, boss.HealthCost(dice.NewScripted(tt.draw), tt.maxHealth, tt.bonus))
		})
	}
}

func TestHealthCost_Bounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHealth := rapid.IntRange(1, 100000).Draw(rt, "maxHealth")
		def := rapid.IntRange(0, 1000).Draw(rt, "defense")
		draw := rapid.Float64Range(0, 0.999999).Draw(rt, "draw")
		cost := boss.HealthCost(dice.NewScripted(draw), maxHealth, inventory.Bonus{Defense: def})
		if cost < 1 {
			rt.Fatalf("cost %d < 1", cost)
		}
		if float64(cost) > float64(maxHealth)*0.20 && cost > 1 {
			rt.Fatalf("cost %d above 20%% of %d", cost, maxHealth)
		}
	})
}
