package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/idlerealm/worldboss/internal/game/boss"
)

const instanceSelect = `SELECT i.id, i.template_id, t.name, i.current_health, i.is_active, i.is_defeated,
	i.start_time, i.end_time, i.defeated_by, i.defeated_at
	FROM boss_instances i JOIN boss_templates t ON t.id = i.template_id`

func scanInstance(row pgx.Row) (*boss.Instance, error) {
	var inst boss.Instance
	if err := row.Scan(
		&inst.ID, &inst.TemplateID, &inst.TemplateName, &inst.CurrentHealth,
		&inst.IsActive, &inst.IsDefeated, &inst.StartTime, &inst.EndTime,
		&inst.DefeatedBy, &inst.DefeatedAt,
	); err != nil {
		return nil, err
	}
	inst.StartTime = inst.StartTime.UTC()
	inst.EndTime = inst.EndTime.UTC()
	if inst.DefeatedAt != nil {
		at := inst.DefeatedAt.UTC()
		inst.DefeatedAt = &at
	}
	return &inst, nil
}

// ActiveInstance returns the active instance. The partial unique index
// guarantees at most one row matches.
func (t *Tx) ActiveInstance(ctx context.Context, forUpdate bool) (*boss.Instance, error) {
	inst, err := scanInstance(t.q.QueryRow(ctx, instanceSelect+` WHERE i.is_active`+lockClause(forUpdate, "i")))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, boss.ErrNoActiveInstance
		}
		return nil, fmt.Errorf("querying active instance: %w", err)
	}
	return inst, nil
}

// GetInstance retrieves an instance by ID, optionally locking its row.
func (t *Tx) GetInstance(ctx context.Context, id int64, forUpdate bool) (*boss.Instance, error) {
	inst, err := scanInstance(t.q.QueryRow(ctx, instanceSelect+` WHERE i.id = $1`+lockClause(forUpdate, "i"), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("instance %d: %w", id, boss.ErrInstanceNotFound)
		}
		return nil, fmt.Errorf("querying instance: %w", err)
	}
	return inst, nil
}

// instanceErr maps constraint violations on boss_instances to domain errors,
// returning nil for anything else.
func instanceErr(err error, templateID int64) error {
	switch {
	case violates(err, codeUniqueViolation, constraintSingleActive):
		return boss.ErrActiveInstanceExists
	case violates(err, codeForeignKeyViolation, constraintInstanceTmpl):
		return fmt.Errorf("template %d: %w", templateID, boss.ErrTemplateNotFound)
	}
	return nil
}

// InsertInstance stores a new instance.
//
// Postcondition: Returns the stored instance or boss.ErrActiveInstanceExists
// when in.IsActive collides with another active row.
func (t *Tx) InsertInstance(ctx context.Context, in *boss.Instance) (*boss.Instance, error) {
	inst, err := scanInstance(t.q.QueryRow(ctx, `
		WITH ins AS (
			INSERT INTO boss_instances
				(template_id, current_health, is_active, is_defeated, start_time, end_time, defeated_by, defeated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING *
		)
		SELECT i.id, i.template_id, t.name, i.current_health, i.is_active, i.is_defeated,
			i.start_time, i.end_time, i.defeated_by, i.defeated_at
		FROM ins i JOIN boss_templates t ON t.id = i.template_id`,
		in.TemplateID, in.CurrentHealth, in.IsActive, in.IsDefeated,
		in.StartTime, in.EndTime, in.DefeatedBy, in.DefeatedAt,
	))
	if err != nil {
		if mapped := instanceErr(err, in.TemplateID); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("inserting instance: %w", err)
	}
	return inst, nil
}

// UpdateInstance writes health, defeat, and activity state.
func (t *Tx) UpdateInstance(ctx context.Context, in *boss.Instance) error {
	tag, err := t.q.Exec(ctx, `
		UPDATE boss_instances SET
			current_health = $2, is_active = $3, is_defeated = $4,
			defeated_by = $5, defeated_at = $6
		WHERE id = $1`,
		in.ID, in.CurrentHealth, in.IsActive, in.IsDefeated, in.DefeatedBy, in.DefeatedAt,
	)
	if err != nil {
		if mapped := instanceErr(err, in.TemplateID); mapped != nil {
			return mapped
		}
		return fmt.Errorf("updating instance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("instance %d: %w", in.ID, boss.ErrInstanceNotFound)
	}
	return nil
}

// CountInstances counts every instance spawned from templateID.
func (t *Tx) CountInstances(ctx context.Context, templateID int64) (int, error) {
	var n int
	err := t.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM boss_instances WHERE template_id = $1`,
		templateID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting instances: %w", err)
	}
	return n, nil
}

// ListRecentInstances returns instances newest first. limit <= 0 returns all.
func (t *Tx) ListRecentInstances(ctx context.Context, limit int) ([]*boss.Instance, error) {
	sql := instanceSelect + ` ORDER BY i.start_time DESC, i.id DESC`
	args := []any{}
	if limit > 0 {
		sql += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := t.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listing instances: %w", err)
	}
	defer rows.Close()

	out := make([]*boss.Instance, 0)
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning instance row: %w", err)
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

// utc normalises a scanned nullable timestamp.
func utc(at *time.Time) time.Time {
	if at == nil {
		return time.Time{}
	}
	return at.UTC()
}
