package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

const playerColumns = `id, username, password_hash, role, level, experience, gold,
	health, max_health, created_at, updated_at`

func scanPlayer(row pgx.Row) (*character.Player, error) {
	var p character.Player
	err := row.Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.Role, &p.Level, &p.Experience, &p.Gold,
		&p.Health, &p.MaxHealth, &p.CreatedAt, &p.UpdatedAt,
	)
	return &p, err
}

func errPlayer(id int64) error {
	return fmt.Errorf("player %d: %w", id, character.ErrPlayerNotFound)
}

func getPlayer(ctx context.Context, q querier, id int64, forUpdate bool) (*character.Player, error) {
	p, err := scanPlayer(q.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1`+lockClause(forUpdate, ""), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errPlayer(id)
		}
		return nil, fmt.Errorf("querying player: %w", err)
	}
	return p, nil
}

// GetPlayer retrieves a player, optionally locking the row.
func (t *Tx) GetPlayer(ctx context.Context, id int64, forUpdate bool) (*character.Player, error) {
	return getPlayer(ctx, t.q, id, forUpdate)
}

// SkillLevel returns the player's trained level or character.DefaultSkillLevel.
func (t *Tx) SkillLevel(ctx context.Context, playerID int64, skill character.Skill) (int, error) {
	var level *int
	err := t.q.QueryRow(ctx, `
		SELECT s.level
		FROM players p LEFT JOIN player_skills s ON s.player_id = p.id AND s.skill = $2
		WHERE p.id = $1`,
		playerID, string(skill),
	).Scan(&level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errPlayer(playerID)
		}
		return 0, fmt.Errorf("querying skill level: %w", err)
	}
	if level == nil {
		return character.DefaultSkillLevel, nil
	}
	return *level, nil
}

// SetPlayerHealth writes the player's current health.
func (t *Tx) SetPlayerHealth(ctx context.Context, playerID int64, health int) error {
	tag, err := t.q.Exec(ctx,
		`UPDATE players SET health = $2, updated_at = NOW() WHERE id = $1`,
		playerID, health,
	)
	if err != nil {
		return fmt.Errorf("updating health: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errPlayer(playerID)
	}
	return nil
}

// GrantRewards adds gold and experience to the player's totals.
func (t *Tx) GrantRewards(ctx context.Context, playerID int64, gold, exp int64) error {
	tag, err := t.q.Exec(ctx,
		`UPDATE players SET gold = gold + $2, experience = experience + $3, updated_at = NOW() WHERE id = $1`,
		playerID, gold, exp,
	)
	if err != nil {
		return fmt.Errorf("granting rewards: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errPlayer(playerID)
	}
	return nil
}

// PlayerRepository provides player account operations outside the boss
// unit of work.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a PlayerRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a new player with a bcrypt-hashed password and starting attributes.
//
// Precondition: username must be non-empty; password must be non-empty.
// Postcondition: Returns the created player, or character.ErrUsernameTaken.
func (r *PlayerRepository) Create(ctx context.Context, username, password string) (*character.Player, error) {
	hash, err := character.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	p, err := scanPlayer(r.db.QueryRow(ctx, `
		INSERT INTO players (username, password_hash, level, health, max_health)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+playerColumns,
		username, hash, character.StartingLevel, character.StartingMaxHealth,
	))
	if err != nil {
		if violates(err, codeUniqueViolation, constraintPlayerUsername) {
			return nil, character.ErrUsernameTaken
		}
		return nil, fmt.Errorf("inserting player: %w", err)
	}
	return p, nil
}

// Authenticate verifies credentials and returns the matching player.
//
// Postcondition: Returns the player, character.ErrPlayerNotFound if the
// username doesn't exist, or character.ErrInvalidCredentials.
func (r *PlayerRepository) Authenticate(ctx context.Context, username, password string) (*character.Player, error) {
	p, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !character.CheckPassword(password, p.PasswordHash) {
		return nil, character.ErrInvalidCredentials
	}
	return p, nil
}

// GetByUsername retrieves a player by case-insensitive username.
func (r *PlayerRepository) GetByUsername(ctx context.Context, username string) (*character.Player, error) {
	p, err := scanPlayer(r.db.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE lower(username) = lower($1)`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, character.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("querying player: %w", err)
	}
	return p, nil
}

// Player retrieves a player by ID.
func (r *PlayerRepository) Player(ctx context.Context, id int64) (*character.Player, error) {
	return getPlayer(ctx, r.db, id, false)
}

// SetRole updates the role for the given player.
//
// Precondition: role must be a valid role string (use character.ValidRole to check).
// Postcondition: The role is updated, or character.ErrInvalidRole /
// character.ErrPlayerNotFound is returned.
func (r *PlayerRepository) SetRole(ctx context.Context, playerID int64, role string) error {
	if !character.ValidRole(role) {
		return character.ErrInvalidRole
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE players SET role = $2, updated_at = NOW() WHERE id = $1`,
		playerID, role,
	)
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errPlayer(playerID)
	}
	return nil
}

// SetSkillLevel records the player's raw level in skill.
func (r *PlayerRepository) SetSkillLevel(ctx context.Context, playerID int64, skill character.Skill, level int) error {
	if !skill.Valid() {
		return fmt.Errorf("unknown skill %q", skill)
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO player_skills (player_id, skill, level) VALUES ($1, $2, $3)
		ON CONFLICT (player_id, skill) DO UPDATE SET level = EXCLUDED.level`,
		playerID, string(skill), level,
	)
	if err != nil {
		if violates(err, codeForeignKeyViolation, constraintSkillOwner) {
			return errPlayer(playerID)
		}
		return fmt.Errorf("setting skill level: %w", err)
	}
	return nil
}

// Equip places itemID into its slot, replacing whatever was there.
func (r *PlayerRepository) Equip(ctx context.Context, playerID int64, itemID string) error {
	it, err := getItem(ctx, r.db, itemID)
	if err != nil {
		return fmt.Errorf("equipping %q: %w", itemID, err)
	}
	if !it.Equippable() {
		return fmt.Errorf("equipping %q: item has no equipment slot", itemID)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO player_equipment (player_id, slot, item_id) VALUES ($1, $2, $3)
		ON CONFLICT (player_id, slot) DO UPDATE SET item_id = EXCLUDED.item_id`,
		playerID, string(it.Slot), itemID,
	)
	if err != nil {
		if violates(err, codeForeignKeyViolation, constraintEquipmentOwner) {
			return errPlayer(playerID)
		}
		return fmt.Errorf("equipping %q: %w", itemID, err)
	}
	return nil
}

// Inventory lists the player's item stacks ordered by item ID.
func (r *PlayerRepository) Inventory(ctx context.Context, playerID int64) ([]inventory.Stack, error) {
	rows, err := r.db.Query(ctx,
		`SELECT player_id, item_id, quantity FROM player_inventory WHERE player_id = $1 ORDER BY item_id`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	defer rows.Close()

	out := make([]inventory.Stack, 0)
	for rows.Next() {
		var s inventory.Stack
		if err := rows.Scan(&s.PlayerID, &s.ItemID, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
