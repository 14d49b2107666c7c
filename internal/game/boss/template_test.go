package boss_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
)

const golemYAML = `
name: Stone Golem
description: A hulking mass of animated rock.
max_health: 5000
attack: 40
defense: 25
level: 10
weaknesses: [MINING, SMITHING]
gold_reward: 1000
exp_reward: 400
rarity: UNCOMMON
drops:
  - item: iron_ore
    rate: 0.5
    min_qty: 2
    max_qty: 5
  - item: golem_core
    rate: 0.05
    min_qty: 1
    max_qty: 1
    killer_only: true
`

func TestLoadTemplateFromBytes(t *testing.T) {
	tmpl, err := boss.LoadTemplateFromBytes([]byte(golemYAML))
	require.NoError(t, err)
	assert.Equal(t, "Stone Golem", tmpl.Name)
	assert.Equal(t, int64(5000), tmpl.MaxHealth)
	assert.Equal(t, 25, tmpl.Defense)
	assert.Equal(t, boss.RarityUncommon, tmpl.Rarity)
	assert.True(t, tmpl.WeakTo(character.SkillMining))
	assert.False(t, tmpl.WeakTo(character.SkillFishing))
	require.Len(t, tmpl.DropRules, 2)
	assert.Equal(t, "golem_core", tmpl.DropRules[1].ItemID)
	assert.True(t, tmpl.DropRules[1].KillerOnly)
	assert.Equal(t, 5, tmpl.DropRules[0].MaxQuantity)
}

func TestLoadTemplateFromBytes_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "name: [",
		"missing name":   "max_health: 1\nlevel: 1\nrarity: COMMON",
		"zero health":    "name: x\nmax_health: 0\nlevel: 1\nrarity: COMMON",
		"unknown rarity": "name: x\nmax_health: 1\nlevel: 1\nrarity: MYTHIC",
		"unknown skill":  "name: x\nmax_health: 1\nlevel: 1\nrarity: COMMON\nweaknesses: [ALCHEMY]",
		"bad drop rate":  "name: x\nmax_health: 1\nlevel: 1\nrarity: COMMON\ndrops:\n  - {item: a, rate: 1.5, min_qty: 1, max_qty: 1}",
		"min over max":   "name: x\nmax_health: 1\nlevel: 1\nrarity: COMMON\ndrops:\n  - {item: a, rate: 0.5, min_qty: 3, max_qty: 1}",
		"duplicate drop": "name: x\nmax_health: 1\nlevel: 1\nrarity: COMMON\ndrops:\n  - {item: a, rate: 0.5, min_qty: 1, max_qty: 1}\n  - {item: a, rate: 0.1, min_qty: 1, max_qty: 1}",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := boss.LoadTemplateFromBytes([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestTemplateValidate_WrapsSentinel(t *testing.T) {
	err := (&boss.Template{Name: "x", MaxHealth: 1, Level: 0, Rarity: boss.RarityCommon}).Validate()
	assert.ErrorIs(t, err, boss.ErrInvalidTemplate)

	err = (&boss.DropRule{ItemID: "a", DropRate: -0.1, MinQuantity: 1, MaxQuantity: 1}).Validate()
	assert.ErrorIs(t, err, boss.ErrInvalidDropRule)
}

func TestLoadTemplates_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golem.yaml"), []byte(golemYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rat.yml"), []byte("name: Rat King\nmax_health: 100\nlevel: 1\nrarity: COMMON\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	got, err := boss.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Stone Golem", got[0].Name)
	assert.Equal(t, "Rat King", got[1].Name)
}

func TestLoadTemplates_MissingDir(t *testing.T) {
	_, err := boss.LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestInstance_Lifecycle(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	inst := &boss.Instance{IsActive: true, CurrentHealth: 10, StartTime: start, EndTime: start.Add(time.Hour)}

	assert.True(t, inst.Live(start))
	assert.True(t, inst.Attackable(start.Add(59*time.Minute)))
	assert.True(t, inst.Expired(start.Add(time.Hour)), "expiry is inclusive of end time")
	assert.False(t, inst.Live(start.Add(time.Hour)))

	inst.IsDefeated = true
	assert.True(t, inst.Live(start))
	assert.False(t, inst.Attackable(start))

	inst.IsActive = false
	assert.False(t, inst.Live(start))
}

func TestSettings_Validate(t *testing.T) {
	def := boss.DefaultSettings()
	require.NoError(t, def.Validate())
	assert.Equal(t, time.Hour, def.AutoSwitchDelay())
	assert.Equal(t, 24*time.Hour, def.DefaultDuration())

	bad := def
	bad.DefaultDurationHours = 0
	assert.ErrorIs(t, bad.Validate(), boss.ErrInvalidSettings)

	bad = def
	bad.AutoSwitchDelayHours = -1
	assert.ErrorIs(t, bad.Validate(), boss.ErrInvalidSettings)

	bad = def
	bad.SelectionMode = "ROUND_ROBIN"
	assert.ErrorIs(t, bad.Validate(), boss.ErrInvalidSettings)
}
