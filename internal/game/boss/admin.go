package boss

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ListTemplates returns every template with its drop rules.
func (s *Service) ListTemplates(ctx context.Context) ([]*Template, error) {
	var out []*Template
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		out, err = tx.ListTemplates(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return out, nil
}

// GetTemplate returns one template with its drop rules.
func (s *Service) GetTemplate(ctx context.Context, id int64) (*Template, error) {
	var out *Template
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		out, err = tx.GetTemplate(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loading template %d: %w", id, err)
	}
	return out, nil
}

// CreateTemplate validates and stores t together with its drop rules.
// Every drop rule must reference a cataloged item.
func (s *Service) CreateTemplate(ctx context.Context, t *Template) (*Template, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var out *Template
	err := s.store.InTx(ctx, func(tx Tx) error {
		for _, d := range t.DropRules {
			if _, err := tx.GetItem(ctx, d.ItemID); err != nil {
				return fmt.Errorf("drop rule item %q: %w", d.ItemID, err)
			}
		}
		t.CreatedAt = s.now()
		var err error
		out, err = tx.CreateTemplate(ctx, t)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating template %q: %w", t.Name, err)
	}
	s.logger.Info("boss template created", zap.Int64("template_id", out.ID), zap.String("name", out.Name))
	return out, nil
}

// UpdateTemplate replaces the scalar fields of an existing template. Drop
// rules are managed through AddDropRule and RemoveDropRule. Running instances
// keep their current health.
func (s *Service) UpdateTemplate(ctx context.Context, t *Template) (*Template, error) {
	scalar := *t
	scalar.DropRules = nil
	if err := scalar.Validate(); err != nil {
		return nil, err
	}
	var out *Template
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		out, err = tx.UpdateTemplate(ctx, &scalar)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("updating template %d: %w", t.ID, err)
	}
	s.logger.Info("boss template updated", zap.Int64("template_id", out.ID), zap.String("name", out.Name))
	return out, nil
}

// DeleteTemplate removes a template and its drop rules. Templates that have
// ever been spawned are kept so their instances and attack log stay intact.
//
// Postcondition: returns ErrTemplateInUse while any instance references id.
func (s *Service) DeleteTemplate(ctx context.Context, id int64) error {
	err := s.store.InTx(ctx, func(tx Tx) error {
		if _, err := tx.GetTemplate(ctx, id); err != nil {
			return err
		}
		n, err := tx.CountInstances(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrTemplateInUse
		}
		return tx.DeleteTemplate(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting template %d: %w", id, err)
	}
	s.logger.Info("boss template deleted", zap.Int64("template_id", id))
	return nil
}

// AddDropRule attaches d to its template.
//
// Postcondition: returns ErrDropRuleExists when the template already drops d.ItemID.
func (s *Service) AddDropRule(ctx context.Context, d *DropRule) (*DropRule, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	var out *DropRule
	err := s.store.InTx(ctx, func(tx Tx) error {
		if _, err := tx.GetTemplate(ctx, d.TemplateID); err != nil {
			return err
		}
		if _, err := tx.GetItem(ctx, d.ItemID); err != nil {
			return err
		}
		var err error
		out, err = tx.AddDropRule(ctx, d)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("adding drop rule %q to template %d: %w", d.ItemID, d.TemplateID, err)
	}
	return out, nil
}

// RemoveDropRule detaches rule ruleID from template templateID.
func (s *Service) RemoveDropRule(ctx context.Context, templateID, ruleID int64) error {
	err := s.store.InTx(ctx, func(tx Tx) error {
		return tx.RemoveDropRule(ctx, templateID, ruleID)
	})
	if err != nil {
		return fmt.Errorf("removing drop rule %d from template %d: %w", ruleID, templateID, err)
	}
	return nil
}

// Settings returns the rotation settings, creating the defaults on first use.
func (s *Service) Settings(ctx context.Context) (*Settings, error) {
	var out *Settings
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		out, err = s.settings(ctx, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loading boss settings: %w", err)
	}
	return out, nil
}

// UpdateSettings validates and stores st.
func (s *Service) UpdateSettings(ctx context.Context, st Settings) (*Settings, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	st.UpdatedAt = s.now()
	err := s.store.InTx(ctx, func(tx Tx) error {
		return tx.SaveSettings(ctx, &st)
	})
	if err != nil {
		return nil, fmt.Errorf("saving boss settings: %w", err)
	}
	s.logger.Info("boss settings updated",
		zap.Bool("auto_switch_enabled", st.AutoSwitchEnabled),
		zap.Int("auto_switch_delay_hours", st.AutoSwitchDelayHours),
		zap.Int("default_duration_hours", st.DefaultDurationHours),
		zap.String("selection_mode", string(st.SelectionMode)),
	)
	return &st, nil
}
