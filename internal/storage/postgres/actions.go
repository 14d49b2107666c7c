package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/idlerealm/worldboss/internal/game/boss"
)

// InsertAction appends an attack to the log.
func (t *Tx) InsertAction(ctx context.Context, in *boss.Action) (*boss.Action, error) {
	out := *in
	err := t.q.QueryRow(ctx, `
		INSERT INTO boss_actions
			(instance_id, player_id, damage, skill, is_critical, player_level, skill_level, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		in.InstanceID, in.PlayerID, in.Damage, string(in.Skill), in.IsCritical,
		in.PlayerLevel, in.SkillLevel, in.CreatedAt,
	).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("inserting action: %w", err)
	}
	return &out, nil
}

// LastActionAt returns the player's latest attack time across all instances.
func (t *Tx) LastActionAt(ctx context.Context, playerID int64) (time.Time, error) {
	var last *time.Time
	err := t.q.QueryRow(ctx,
		`SELECT MAX(created_at) FROM boss_actions WHERE player_id = $1`,
		playerID,
	).Scan(&last)
	if err != nil {
		return time.Time{}, fmt.Errorf("querying last action: %w", err)
	}
	return utc(last), nil
}

// Contributions aggregates damage per player for the instance.
//
// Postcondition: Ordered by total damage descending then player ID ascending;
// limit <= 0 returns every contributor.
func (t *Tx) Contributions(ctx context.Context, instanceID int64, limit int) ([]boss.Contribution, error) {
	sql := `
		SELECT a.player_id, p.username, p.level, SUM(a.damage)::BIGINT, COUNT(*)
		FROM boss_actions a JOIN players p ON p.id = a.player_id
		WHERE a.instance_id = $1
		GROUP BY a.player_id, p.username, p.level
		ORDER BY SUM(a.damage) DESC, a.player_id ASC`
	args := []any{instanceID}
	if limit > 0 {
		sql += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := t.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregating contributions: %w", err)
	}
	defer rows.Close()

	out := make([]boss.Contribution, 0)
	for rows.Next() {
		var c boss.Contribution
		if err := rows.Scan(&c.PlayerID, &c.Username, &c.Level, &c.TotalDamage, &c.Attacks); err != nil {
			return nil, fmt.Errorf("scanning contribution row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
