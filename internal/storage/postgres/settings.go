package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/idlerealm/worldboss/internal/game/boss"
)

// GetSettings reads the singleton settings row.
func (t *Tx) GetSettings(ctx context.Context) (*boss.Settings, error) {
	var (
		s    boss.Settings
		mode string
	)
	err := t.q.QueryRow(ctx, `
		SELECT auto_switch_enabled, auto_switch_delay_hours, default_duration_hours, selection_mode, updated_at
		FROM boss_settings WHERE id = 1`,
	).Scan(&s.AutoSwitchEnabled, &s.AutoSwitchDelayHours, &s.DefaultDurationHours, &mode, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, boss.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("querying settings: %w", err)
	}
	s.SelectionMode = boss.SelectionMode(mode)
	s.UpdatedAt = s.UpdatedAt.UTC()
	return &s, nil
}

// SaveSettings upserts the singleton settings row.
func (t *Tx) SaveSettings(ctx context.Context, s *boss.Settings) error {
	_, err := t.q.Exec(ctx, `
		INSERT INTO boss_settings
			(id, auto_switch_enabled, auto_switch_delay_hours, default_duration_hours, selection_mode, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			auto_switch_enabled = EXCLUDED.auto_switch_enabled,
			auto_switch_delay_hours = EXCLUDED.auto_switch_delay_hours,
			default_duration_hours = EXCLUDED.default_duration_hours,
			selection_mode = EXCLUDED.selection_mode,
			updated_at = EXCLUDED.updated_at`,
		s.AutoSwitchEnabled, s.AutoSwitchDelayHours, s.DefaultDurationHours, string(s.SelectionMode), s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
