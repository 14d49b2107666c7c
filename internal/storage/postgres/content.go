package postgres

import (
	"context"
	"fmt"

	"github.com/idlerealm/worldboss/internal/importer"
)

var _ importer.Sink = (*Store)(nil)

// Import upserts items by ID and templates by name in one transaction. An
// existing template keeps its ID and instances; its drop table is replaced.
func (s *Store) Import(ctx context.Context, c *importer.Content) (importer.Stats, error) {
	var stats importer.Stats
	pgtx, err := s.db.Begin(ctx)
	if err != nil {
		return stats, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = pgtx.Rollback(ctx) }()

	for _, it := range c.Items {
		_, err := pgtx.Exec(ctx, `
			INSERT INTO items (id, name, description, slot, attack_bonus, defense_bonus,
			                   health_bonus, skill_bonus, required_skill)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, description = EXCLUDED.description, slot = EXCLUDED.slot,
				attack_bonus = EXCLUDED.attack_bonus, defense_bonus = EXCLUDED.defense_bonus,
				health_bonus = EXCLUDED.health_bonus, skill_bonus = EXCLUDED.skill_bonus,
				required_skill = EXCLUDED.required_skill`,
			it.ID, it.Name, it.Description, string(it.Slot), it.AttackBonus, it.DefenseBonus,
			it.HealthBonus, it.SkillBonus, string(it.RequiredSkill),
		)
		if err != nil {
			return importer.Stats{}, fmt.Errorf("upserting item %q: %w", it.ID, err)
		}
		stats.Items++
	}

	tx := &Tx{q: pgtx}
	for _, t := range c.Templates {
		var (
			id       int64
			inserted bool
		)
		err := pgtx.QueryRow(ctx, `
			INSERT INTO boss_templates
				(name, description, max_health, attack, defense, level,
				 weaknesses, gold_reward, exp_reward, rarity)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (name) DO UPDATE SET
				description = EXCLUDED.description, max_health = EXCLUDED.max_health,
				attack = EXCLUDED.attack, defense = EXCLUDED.defense, level = EXCLUDED.level,
				weaknesses = EXCLUDED.weaknesses, gold_reward = EXCLUDED.gold_reward,
				exp_reward = EXCLUDED.exp_reward, rarity = EXCLUDED.rarity
			RETURNING id, (xmax = 0)`,
			t.Name, t.Description, t.MaxHealth, t.Attack, t.Defense, t.Level,
			weaknessStrings(t.Weaknesses), t.GoldReward, t.ExpReward, string(t.Rarity),
		).Scan(&id, &inserted)
		if err != nil {
			return importer.Stats{}, fmt.Errorf("upserting boss %q: %w", t.Name, err)
		}
		if inserted {
			stats.TemplatesCreated++
		} else {
			stats.TemplatesUpdated++
		}

		if _, err := pgtx.Exec(ctx, `DELETE FROM boss_drop_rules WHERE template_id = $1`, id); err != nil {
			return importer.Stats{}, fmt.Errorf("clearing drops for boss %q: %w", t.Name, err)
		}
		for _, d := range t.DropRules {
			d.TemplateID = id
			if _, err := tx.AddDropRule(ctx, &d); err != nil {
				return importer.Stats{}, fmt.Errorf("boss %q: %w", t.Name, err)
			}
		}
	}

	if err := pgtx.Commit(ctx); err != nil {
		return importer.Stats{}, fmt.Errorf("committing import: %w", err)
	}
	return stats, nil
}
