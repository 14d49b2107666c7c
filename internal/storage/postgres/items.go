package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

const itemColumns = `id, name, description, slot, attack_bonus, defense_bonus,
	health_bonus, skill_bonus, required_skill`

func scanItem(row pgx.Row) (*inventory.Item, error) {
	var (
		it       inventory.Item
		slot     string
		required string
	)
	if err := row.Scan(
		&it.ID, &it.Name, &it.Description, &slot, &it.AttackBonus, &it.DefenseBonus,
		&it.HealthBonus, &it.SkillBonus, &required,
	); err != nil {
		return nil, err
	}
	it.Slot = inventory.Slot(slot)
	it.RequiredSkill = character.Skill(required)
	return &it, nil
}

func getItem(ctx context.Context, q querier, itemID string) (*inventory.Item, error) {
	it, err := scanItem(q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %q: %w", itemID, boss.ErrItemNotFound)
		}
		return nil, fmt.Errorf("querying item: %w", err)
	}
	return it, nil
}

// GetItem retrieves a catalog item.
func (t *Tx) GetItem(ctx context.Context, itemID string) (*inventory.Item, error) {
	return getItem(ctx, t.q, itemID)
}

// EquippedItems returns the player's gear ordered by slot.
func (t *Tx) EquippedItems(ctx context.Context, playerID int64) ([]inventory.EquippedItem, error) {
	rows, err := t.q.Query(ctx, `
		SELECT e.slot, i.id, i.name, i.description, i.slot, i.attack_bonus, i.defense_bonus,
		       i.health_bonus, i.skill_bonus, i.required_skill
		FROM player_equipment e JOIN items i ON i.id = e.item_id
		WHERE e.player_id = $1
		ORDER BY e.slot`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}
	defer rows.Close()

	var out []inventory.EquippedItem
	for rows.Next() {
		var (
			slot, itemSlot, required string
			it                       inventory.Item
		)
		if err := rows.Scan(
			&slot, &it.ID, &it.Name, &it.Description, &itemSlot, &it.AttackBonus, &it.DefenseBonus,
			&it.HealthBonus, &it.SkillBonus, &required,
		); err != nil {
			return nil, fmt.Errorf("scanning equipment row: %w", err)
		}
		it.Slot = inventory.Slot(itemSlot)
		it.RequiredSkill = character.Skill(required)
		out = append(out, inventory.EquippedItem{Slot: inventory.Slot(slot), Item: it})
	}
	return out, rows.Err()
}

// AddItem merges qty into the player's stack of itemID.
func (t *Tx) AddItem(ctx context.Context, playerID int64, itemID string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("adding %q: quantity must be >= 1, got %d", itemID, qty)
	}
	_, err := t.q.Exec(ctx, `
		INSERT INTO player_inventory (player_id, item_id, quantity) VALUES ($1, $2, $3)
		ON CONFLICT (player_id, item_id) DO UPDATE
		SET quantity = player_inventory.quantity + EXCLUDED.quantity`,
		playerID, itemID, qty,
	)
	switch {
	case err == nil:
		return nil
	case violates(err, codeForeignKeyViolation, constraintInventoryItem):
		return fmt.Errorf("item %q: %w", itemID, boss.ErrItemNotFound)
	case violates(err, codeForeignKeyViolation, constraintInventoryOwner):
		return errPlayer(playerID)
	}
	return fmt.Errorf("adding item: %w", err)
}
