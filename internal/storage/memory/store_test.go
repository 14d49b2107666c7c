package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/inventory"
	"github.com/idlerealm/worldboss/internal/storage/memory"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedTemplate(t *testing.T, s *memory.Store, name string, level int) *boss.Template {
	t.Helper()
	var out *boss.Template
	require.NoError(t, s.InTx(context.Background(), func(tx boss.Tx) error {
		var err error
		out, err = tx.CreateTemplate(context.Background(), &boss.Template{
			Name: name, MaxHealth: 1000, Level: level, Rarity: boss.RarityCommon,
		})
		return err
	}))
	return out
}

func TestInTx_RollsBackOnError(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	p, err := s.Create(ctx, "alice", "pw")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.InTx(ctx, func(tx boss.Tx) error {
		require.NoError(t, tx.GrantRewards(ctx, p.ID, 500, 50))
		require.NoError(t, tx.SetPlayerHealth(ctx, p.ID, 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Player(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Gold)
	assert.Equal(t, int64(0), got.Experience)
	assert.Equal(t, character.StartingMaxHealth, got.Health)
}

func TestInTx_CommitsOnSuccess(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	p, err := s.Create(ctx, "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		return tx.GrantRewards(ctx, p.ID, 10, 3)
	}))
	got, err := s.Player(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Gold)
	assert.Equal(t, int64(3), got.Experience)
}

func TestInTx_CancelledContext(t *testing.T) {
	s := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := s.InTx(ctx, func(boss.Tx) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestInsertInstance_SingleActive(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	tmpl := seedTemplate(t, s, "Golem", 1)

	inst := &boss.Instance{TemplateID: tmpl.ID, TemplateName: tmpl.Name, CurrentHealth: 1000, IsActive: true, StartTime: t0, EndTime: t0.Add(time.Hour)}
	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		_, err := tx.InsertInstance(ctx, inst)
		return err
	}))
	err := s.InTx(ctx, func(tx boss.Tx) error {
		_, err := tx.InsertInstance(ctx, inst)
		return err
	})
	assert.ErrorIs(t, err, boss.ErrActiveInstanceExists)

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		cur, err := tx.ActiveInstance(ctx, true)
		require.NoError(t, err)
		n, err := tx.CountInstances(ctx, tmpl.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		cur.IsActive = false
		return tx.UpdateInstance(ctx, cur)
	}))
	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		_, err := tx.ActiveInstance(ctx, false)
		assert.ErrorIs(t, err, boss.ErrNoActiveInstance)
		_, err = tx.InsertInstance(ctx, inst)
		return err
	}))
}

func TestTemplates_NameAndDropRules(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	tmpl := seedTemplate(t, s, "Golem", 2)

	err := s.InTx(ctx, func(tx boss.Tx) error {
		_, err := tx.CreateTemplate(ctx, &boss.Template{Name: "Golem", MaxHealth: 1, Level: 1, Rarity: boss.RarityRare})
		return err
	})
	assert.ErrorIs(t, err, boss.ErrTemplateNameTaken)

	var rule *boss.DropRule
	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		var err error
		rule, err = tx.AddDropRule(ctx, &boss.DropRule{TemplateID: tmpl.ID, ItemID: "ore", DropRate: 0.5, MinQuantity: 1, MaxQuantity: 2})
		return err
	}))
	err = s.InTx(ctx, func(tx boss.Tx) error {
		_, err := tx.AddDropRule(ctx, &boss.DropRule{TemplateID: tmpl.ID, ItemID: "ore", DropRate: 1, MinQuantity: 1, MaxQuantity: 1})
		return err
	})
	assert.ErrorIs(t, err, boss.ErrDropRuleExists)

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		updated, err := tx.UpdateTemplate(ctx, &boss.Template{ID: tmpl.ID, Name: "Stone Golem", MaxHealth: 5, Level: 3, Rarity: boss.RarityEpic})
		require.NoError(t, err)
		assert.Len(t, updated.DropRules, 1, "update keeps drop rules")
		return tx.RemoveDropRule(ctx, tmpl.ID, rule.ID)
	}))
	err = s.InTx(ctx, func(tx boss.Tx) error {
		return tx.RemoveDropRule(ctx, tmpl.ID, rule.ID)
	})
	assert.ErrorIs(t, err, boss.ErrDropRuleNotFound)
}

func TestListTemplates_OrderedByLevelThenID(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	c := seedTemplate(t, s, "C", 5)
	a := seedTemplate(t, s, "A", 1)
	b := seedTemplate(t, s, "B", 1)

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		got, err := tx.ListTemplates(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{got[0].ID, got[1].ID, got[2].ID})
		return nil
	}))
}

func TestContributions_AggregatesAndJoinsPlayers(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	tmpl := seedTemplate(t, s, "Golem", 1)
	alice, err := s.Create(ctx, "alice", "pw")
	require.NoError(t, err)
	bob, err := s.Create(ctx, "bob", "pw")
	require.NoError(t, err)

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		inst, err := tx.InsertInstance(ctx, &boss.Instance{TemplateID: tmpl.ID, CurrentHealth: 1000, IsActive: true, StartTime: t0, EndTime: t0.Add(time.Hour)})
		require.NoError(t, err)
		for _, a := range []boss.Action{
			{InstanceID: inst.ID, PlayerID: alice.ID, Damage: 50, Skill: character.SkillMining, CreatedAt: t0},
			{InstanceID: inst.ID, PlayerID: bob.ID, Damage: 120, Skill: character.SkillFishing, CreatedAt: t0.Add(time.Minute)},
			{InstanceID: inst.ID, PlayerID: alice.ID, Damage: 60, Skill: character.SkillMining, CreatedAt: t0.Add(10 * time.Minute)},
		} {
			_, err := tx.InsertAction(ctx, &a)
			require.NoError(t, err)
		}

		cs, err := tx.Contributions(ctx, inst.ID, 0)
		require.NoError(t, err)
		require.Len(t, cs, 2)
		assert.Equal(t, "bob", cs[0].Username)
		assert.Equal(t, int64(120), cs[0].TotalDamage)
		assert.Equal(t, "alice", cs[1].Username)
		assert.Equal(t, int64(110), cs[1].TotalDamage)
		assert.Equal(t, 2, cs[1].Attacks)

		top, err := tx.Contributions(ctx, inst.ID, 1)
		require.NoError(t, err)
		assert.Len(t, top, 1)

		last, err := tx.LastActionAt(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, t0.Add(10*time.Minute), last)
		return nil
	}))
}

func TestDeleteTemplate_KeepsHistory(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	tmpl := seedTemplate(t, s, "Golem", 1)
	spare := seedTemplate(t, s, "Wisp", 2)
	alice, err := s.Create(ctx, "alice", "pw")
	require.NoError(t, err)

	var instID int64
	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		inst, err := tx.InsertInstance(ctx, &boss.Instance{TemplateID: tmpl.ID, CurrentHealth: 1, StartTime: t0, EndTime: t0})
		require.NoError(t, err)
		instID = inst.ID
		_, err = tx.InsertAction(ctx, &boss.Action{InstanceID: inst.ID, PlayerID: alice.ID, Damage: 1, Skill: character.SkillMining, CreatedAt: t0})
		return err
	}))
	require.Equal(t, 1, s.ActionCount())

	err = s.InTx(ctx, func(tx boss.Tx) error { return tx.DeleteTemplate(ctx, tmpl.ID) })
	assert.ErrorIs(t, err, boss.ErrTemplateInUse)
	assert.Equal(t, 1, s.ActionCount())

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		recent, err := tx.ListRecentInstances(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, instID, recent[0].ID)

		last, err := tx.LastActionAt(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, t0, last)

		_, err = tx.GetTemplate(ctx, tmpl.ID)
		assert.NoError(t, err)
		return nil
	}))

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error { return tx.DeleteTemplate(ctx, spare.ID) }))
	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		_, err := tx.GetTemplate(ctx, spare.ID)
		assert.ErrorIs(t, err, boss.ErrTemplateNotFound)
		return nil
	}))
}

func TestPlayers_AuthAndRoles(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	p, err := s.Create(ctx, "Alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, character.RolePlayer, p.Role)

	_, err = s.Create(ctx, "alice", "other")
	assert.ErrorIs(t, err, character.ErrUsernameTaken)

	got, err := s.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = s.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, character.ErrInvalidCredentials)
	_, err = s.Authenticate(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, character.ErrPlayerNotFound)

	assert.ErrorIs(t, s.SetRole(ctx, p.ID, "editor"), character.ErrInvalidRole)
	require.NoError(t, s.SetRole(ctx, p.ID, character.RoleAdmin))
	got, err = s.GetByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin())
}

func TestEquipAndInventory(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.RegisterItems(
		&inventory.Item{ID: "pickaxe", Name: "Pickaxe", Slot: inventory.SlotTool, AttackBonus: 5, SkillBonus: 3, RequiredSkill: character.SkillMining},
		&inventory.Item{ID: "ore", Name: "Ore"},
	))
	p, err := s.Create(ctx, "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Equip(ctx, p.ID, "pickaxe"))
	assert.Error(t, s.Equip(ctx, p.ID, "ore"), "ore has no slot")
	require.NoError(t, s.SetSkillLevel(ctx, p.ID, character.SkillMining, 7))

	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		eq, err := tx.EquippedItems(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, eq, 1)
		assert.Equal(t, "pickaxe", eq[0].Item.ID)

		lvl, err := tx.SkillLevel(ctx, p.ID, character.SkillMining)
		require.NoError(t, err)
		assert.Equal(t, 7, lvl)
		lvl, err = tx.SkillLevel(ctx, p.ID, character.SkillFishing)
		require.NoError(t, err)
		assert.Equal(t, character.DefaultSkillLevel, lvl)

		require.NoError(t, tx.AddItem(ctx, p.ID, "ore", 2))
		require.NoError(t, tx.AddItem(ctx, p.ID, "ore", 3))
		assert.ErrorIs(t, tx.AddItem(ctx, p.ID, "mithril", 1), boss.ErrItemNotFound)
		return nil
	}))
	assert.Equal(t, []inventory.Stack{{PlayerID: p.ID, ItemID: "ore", Quantity: 5}}, s.Stacks(p.ID))
}

func TestSettings_NotFoundThenSaved(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		_, err := tx.GetSettings(ctx)
		assert.ErrorIs(t, err, boss.ErrSettingsNotFound)
		def := boss.DefaultSettings()
		return tx.SaveSettings(ctx, &def)
	}))
	require.NoError(t, s.InTx(ctx, func(tx boss.Tx) error {
		got, err := tx.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, boss.SelectRandom, got.SelectionMode)
		return nil
	}))
}
