package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
)

const templateColumns = `id, name, description, max_health, attack, defense, level,
	weaknesses, gold_reward, exp_reward, rarity, created_at`

const dropRuleColumns = `id, template_id, item_id, drop_rate, min_quantity, max_quantity, killer_only`

func scanTemplate(row pgx.Row) (*boss.Template, error) {
	var (
		t          boss.Template
		weaknesses []string
		rarity     string
	)
	if err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.MaxHealth, &t.Attack, &t.Defense, &t.Level,
		&weaknesses, &t.GoldReward, &t.ExpReward, &rarity, &t.CreatedAt,
	); err != nil {
		return nil, err
	}
	t.Rarity = boss.Rarity(rarity)
	for _, w := range weaknesses {
		t.Weaknesses = append(t.Weaknesses, character.Skill(w))
	}
	return &t, nil
}

func scanDropRule(row pgx.Row) (boss.DropRule, error) {
	var d boss.DropRule
	err := row.Scan(&d.ID, &d.TemplateID, &d.ItemID, &d.DropRate, &d.MinQuantity, &d.MaxQuantity, &d.KillerOnly)
	return d, err
}

func weaknessStrings(skills []character.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = string(s)
	}
	return out
}

// ListTemplates returns every template with its drop rules, ordered by level then ID.
func (t *Tx) ListTemplates(ctx context.Context) ([]*boss.Template, error) {
	rows, err := t.q.Query(ctx, `SELECT `+templateColumns+` FROM boss_templates ORDER BY level ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	templates := make([]*boss.Template, 0)
	byID := make(map[int64]*boss.Template)
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning template row: %w", err)
		}
		templates = append(templates, tmpl)
		byID[tmpl.ID] = tmpl
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	rules, err := t.q.Query(ctx, `SELECT `+dropRuleColumns+` FROM boss_drop_rules ORDER BY template_id, id`)
	if err != nil {
		return nil, fmt.Errorf("listing drop rules: %w", err)
	}
	defer rules.Close()
	for rules.Next() {
		d, err := scanDropRule(rules)
		if err != nil {
			return nil, fmt.Errorf("scanning drop rule row: %w", err)
		}
		if tmpl, ok := byID[d.TemplateID]; ok {
			tmpl.DropRules = append(tmpl.DropRules, d)
		}
	}
	return templates, rules.Err()
}

// GetTemplate retrieves a template and its drop rules.
//
// Postcondition: Returns the template or an error wrapping boss.ErrTemplateNotFound.
func (t *Tx) GetTemplate(ctx context.Context, id int64) (*boss.Template, error) {
	tmpl, err := scanTemplate(t.q.QueryRow(ctx, `SELECT `+templateColumns+` FROM boss_templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("template %d: %w", id, boss.ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("querying template: %w", err)
	}
	rules, err := t.dropRules(ctx, id)
	if err != nil {
		return nil, err
	}
	tmpl.DropRules = rules
	return tmpl, nil
}

func (t *Tx) dropRules(ctx context.Context, templateID int64) ([]boss.DropRule, error) {
	rows, err := t.q.Query(ctx,
		`SELECT `+dropRuleColumns+` FROM boss_drop_rules WHERE template_id = $1 ORDER BY id`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing drop rules: %w", err)
	}
	defer rows.Close()
	var out []boss.DropRule
	for rows.Next() {
		d, err := scanDropRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning drop rule row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CreateTemplate inserts the template and each of its drop rules.
//
// Postcondition: Returns the stored template with IDs set, or
// boss.ErrTemplateNameTaken / boss.ErrItemNotFound / boss.ErrDropRuleExists.
func (t *Tx) CreateTemplate(ctx context.Context, in *boss.Template) (*boss.Template, error) {
	out, err := scanTemplate(t.q.QueryRow(ctx, `
		INSERT INTO boss_templates
			(name, description, max_health, attack, defense, level,
			 weaknesses, gold_reward, exp_reward, rarity, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+templateColumns,
		in.Name, in.Description, in.MaxHealth, in.Attack, in.Defense, in.Level,
		weaknessStrings(in.Weaknesses), in.GoldReward, in.ExpReward, string(in.Rarity), in.CreatedAt,
	))
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, boss.ErrTemplateNameTaken
		}
		return nil, fmt.Errorf("inserting template: %w", err)
	}
	for _, d := range in.DropRules {
		d.TemplateID = out.ID
		rule, err := t.AddDropRule(ctx, &d)
		if err != nil {
			return nil, err
		}
		out.DropRules = append(out.DropRules, *rule)
	}
	return out, nil
}

// UpdateTemplate replaces the scalar columns; drop rules are untouched.
func (t *Tx) UpdateTemplate(ctx context.Context, in *boss.Template) (*boss.Template, error) {
	out, err := scanTemplate(t.q.QueryRow(ctx, `
		UPDATE boss_templates SET
			name = $2, description = $3, max_health = $4, attack = $5, defense = $6,
			level = $7, weaknesses = $8, gold_reward = $9, exp_reward = $10, rarity = $11
		WHERE id = $1
		RETURNING `+templateColumns,
		in.ID, in.Name, in.Description, in.MaxHealth, in.Attack, in.Defense, in.Level,
		weaknessStrings(in.Weaknesses), in.GoldReward, in.ExpReward, string(in.Rarity),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("template %d: %w", in.ID, boss.ErrTemplateNotFound)
		}
		if isDuplicateKeyError(err) {
			return nil, boss.ErrTemplateNameTaken
		}
		return nil, fmt.Errorf("updating template: %w", err)
	}
	rules, err := t.dropRules(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	out.DropRules = rules
	return out, nil
}

// DeleteTemplate removes the template and, by cascade, its drop rules. The
// schema refuses to delete a template that instances reference.
func (t *Tx) DeleteTemplate(ctx context.Context, id int64) error {
	tag, err := t.q.Exec(ctx, `DELETE FROM boss_templates WHERE id = $1`, id)
	if violates(err, codeForeignKeyViolation, constraintInstanceTmpl) {
		return fmt.Errorf("template %d: %w", id, boss.ErrTemplateInUse)
	}
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %d: %w", id, boss.ErrTemplateNotFound)
	}
	return nil
}

// AddDropRule inserts a drop rule for d.TemplateID.
func (t *Tx) AddDropRule(ctx context.Context, d *boss.DropRule) (*boss.DropRule, error) {
	out, err := scanDropRule(t.q.QueryRow(ctx, `
		INSERT INTO boss_drop_rules
			(template_id, item_id, drop_rate, min_quantity, max_quantity, killer_only)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+dropRuleColumns,
		d.TemplateID, d.ItemID, d.DropRate, d.MinQuantity, d.MaxQuantity, d.KillerOnly,
	))
	switch {
	case err == nil:
		return &out, nil
	case isDuplicateKeyError(err):
		return nil, boss.ErrDropRuleExists
	case violates(err, codeForeignKeyViolation, constraintDropRuleItem):
		return nil, fmt.Errorf("item %q: %w", d.ItemID, boss.ErrItemNotFound)
	case violates(err, codeForeignKeyViolation, constraintDropRuleTmpl):
		return nil, fmt.Errorf("template %d: %w", d.TemplateID, boss.ErrTemplateNotFound)
	}
	return nil, fmt.Errorf("inserting drop rule: %w", err)
}

// RemoveDropRule deletes ruleID from templateID's drop table.
func (t *Tx) RemoveDropRule(ctx context.Context, templateID, ruleID int64) error {
	tag, err := t.q.Exec(ctx,
		`DELETE FROM boss_drop_rules WHERE id = $1 AND template_id = $2`,
		ruleID, templateID,
	)
	if err != nil {
		return fmt.Errorf("deleting drop rule: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := t.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM boss_templates WHERE id = $1)`, templateID).Scan(&exists); err != nil {
		return fmt.Errorf("checking template: %w", err)
	}
	if !exists {
		return fmt.Errorf("template %d: %w", templateID, boss.ErrTemplateNotFound)
	}
	return boss.ErrDropRuleNotFound
}
