package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

// tx implements boss.Tx over a working copy of the state. The store mutex is
// held for its entire lifetime, so row locks are implicit.
type tx struct {
	st *state
}

var _ boss.Tx = (*tx)(nil)

func (t *tx) ListTemplates(_ context.Context) ([]*boss.Template, error) {
	out := make([]*boss.Template, 0, len(t.st.templates))
	for _, tmpl := range t.st.templates {
		out = append(out, copyTemplate(tmpl))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (t *tx) GetTemplate(_ context.Context, id int64) (*boss.Template, error) {
	tmpl, ok := t.st.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, boss.ErrTemplateNotFound)
	}
	return copyTemplate(tmpl), nil
}

func (t *tx) nameTaken(name string, except int64) bool {
	for id, tmpl := range t.st.templates {
		if id != except && tmpl.Name == name {
			return true
		}
	}
	return false
}

func (t *tx) CreateTemplate(_ context.Context, in *boss.Template) (*boss.Template, error) {
	if t.nameTaken(in.Name, 0) {
		return nil, boss.ErrTemplateNameTaken
	}
	tmpl := copyTemplate(in)
	tmpl.ID = t.st.id()
	for i := range tmpl.DropRules {
		tmpl.DropRules[i].ID = t.st.id()
		tmpl.DropRules[i].TemplateID = tmpl.ID
	}
	t.st.templates[tmpl.ID] = tmpl
	return copyTemplate(tmpl), nil
}

func (t *tx) UpdateTemplate(_ context.Context, in *boss.Template) (*boss.Template, error) {
	cur, ok := t.st.templates[in.ID]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", in.ID, boss.ErrTemplateNotFound)
	}
	if t.nameTaken(in.Name, in.ID) {
		return nil, boss.ErrTemplateNameTaken
	}
	next := copyTemplate(in)
	next.DropRules = cur.DropRules
	next.CreatedAt = cur.CreatedAt
	t.st.templates[in.ID] = next
	return copyTemplate(next), nil
}

// DeleteTemplate removes the template and its drop rules. Like the schema's
// RESTRICT foreign key, it refuses while any instance references id.
func (t *tx) DeleteTemplate(_ context.Context, id int64) error {
	if _, ok := t.st.templates[id]; !ok {
		return fmt.Errorf("template %d: %w", id, boss.ErrTemplateNotFound)
	}
	for _, inst := range t.st.instances {
		if inst.TemplateID == id {
			return fmt.Errorf("template %d: %w", id, boss.ErrTemplateInUse)
		}
	}
	delete(t.st.templates, id)
	return nil
}

func (t *tx) AddDropRule(_ context.Context, d *boss.DropRule) (*boss.DropRule, error) {
	tmpl, ok := t.st.templates[d.TemplateID]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", d.TemplateID, boss.ErrTemplateNotFound)
	}
	for _, existing := range tmpl.DropRules {
		if existing.ItemID == d.ItemID {
			return nil, boss.ErrDropRuleExists
		}
	}
	rule := *d
	rule.ID = t.st.id()
	tmpl.DropRules = append(tmpl.DropRules, rule)
	return &rule, nil
}

func (t *tx) RemoveDropRule(_ context.Context, templateID, ruleID int64) error {
	tmpl, ok := t.st.templates[templateID]
	if !ok {
		return fmt.Errorf("template %d: %w", templateID, boss.ErrTemplateNotFound)
	}
	for i, rule := range tmpl.DropRules {
		if rule.ID == ruleID {
			tmpl.DropRules = append(tmpl.DropRules[:i], tmpl.DropRules[i+1:]...)
			return nil
		}
	}
	return boss.ErrDropRuleNotFound
}

func (t *tx) ActiveInstance(_ context.Context, _ bool) (*boss.Instance, error) {
	for _, inst := range t.st.instances {
		if inst.IsActive {
			return copyInstance(inst), nil
		}
	}
	return nil, boss.ErrNoActiveInstance
}

func (t *tx) GetInstance(_ context.Context, id int64, _ bool) (*boss.Instance, error) {
	inst, ok := t.st.instances[id]
	if !ok {
		return nil, fmt.Errorf("instance %d: %w", id, boss.ErrInstanceNotFound)
	}
	return copyInstance(inst), nil
}

func (t *tx) InsertInstance(_ context.Context, in *boss.Instance) (*boss.Instance, error) {
	if _, ok := t.st.templates[in.TemplateID]; !ok {
		return nil, fmt.Errorf("template %d: %w", in.TemplateID, boss.ErrTemplateNotFound)
	}
	if in.IsActive {
		for _, inst := range t.st.instances {
			if inst.IsActive {
				return nil, boss.ErrActiveInstanceExists
			}
		}
	}
	inst := copyInstance(in)
	inst.ID = t.st.id()
	t.st.instances[inst.ID] = inst
	return copyInstance(inst), nil
}

func (t *tx) UpdateInstance(_ context.Context, in *boss.Instance) error {
	if _, ok := t.st.instances[in.ID]; !ok {
		return fmt.Errorf("instance %d: %w", in.ID, boss.ErrInstanceNotFound)
	}
	if in.IsActive {
		for id, inst := range t.st.instances {
			if id != in.ID && inst.IsActive {
				return boss.ErrActiveInstanceExists
			}
		}
	}
	t.st.instances[in.ID] = copyInstance(in)
	return nil
}

func (t *tx) CountInstances(_ context.Context, templateID int64) (int, error) {
	n := 0
	for _, inst := range t.st.instances {
		if inst.TemplateID == templateID {
			n++
		}
	}
	return n, nil
}

func (t *tx) ListRecentInstances(_ context.Context, limit int) ([]*boss.Instance, error) {
	out := make([]*boss.Instance, 0, len(t.st.instances))
	for _, inst := range t.st.instances {
		out = append(out, copyInstance(inst))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.After(out[j].StartTime)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (t *tx) InsertAction(_ context.Context, in *boss.Action) (*boss.Action, error) {
	if _, ok := t.st.instances[in.InstanceID]; !ok {
		return nil, fmt.Errorf("instance %d: %w", in.InstanceID, boss.ErrInstanceNotFound)
	}
	if _, ok := t.st.players[in.PlayerID]; !ok {
		return nil, errPlayer(in.PlayerID)
	}
	a := *in
	a.ID = t.st.id()
	t.st.actions = append(t.st.actions, &a)
	out := a
	return &out, nil
}

func (t *tx) LastActionAt(_ context.Context, playerID int64) (time.Time, error) {
	var last time.Time
	for _, a := range t.st.actions {
		if a.PlayerID == playerID && a.CreatedAt.After(last) {
			last = a.CreatedAt
		}
	}
	return last, nil
}

func (t *tx) Contributions(_ context.Context, instanceID int64, limit int) ([]boss.Contribution, error) {
	var actions []*boss.Action
	for _, a := range t.st.actions {
		if a.InstanceID == instanceID {
			actions = append(actions, a)
		}
	}
	cs := boss.Aggregate(actions)
	if limit > 0 && len(cs) > limit {
		cs = cs[:limit]
	}
	for i := range cs {
		if p, ok := t.st.players[cs[i].PlayerID]; ok {
			cs[i].Username = p.Username
			cs[i].Level = p.Level
		}
	}
	return cs, nil
}

func (t *tx) GetSettings(_ context.Context) (*boss.Settings, error) {
	if t.st.settings == nil {
		return nil, boss.ErrSettingsNotFound
	}
	s := *t.st.settings
	return &s, nil
}

func (t *tx) SaveSettings(_ context.Context, s *boss.Settings) error {
	cp := *s
	t.st.settings = &cp
	return nil
}

func (t *tx) GetPlayer(_ context.Context, id int64, _ bool) (*character.Player, error) {
	p, ok := t.st.players[id]
	if !ok {
		return nil, errPlayer(id)
	}
	cp := *p
	return &cp, nil
}

func (t *tx) SkillLevel(_ context.Context, playerID int64, skill character.Skill) (int, error) {
	if _, ok := t.st.players[playerID]; !ok {
		return 0, errPlayer(playerID)
	}
	if lvl, ok := t.st.skills[playerID][skill]; ok {
		return lvl, nil
	}
	return character.DefaultSkillLevel, nil
}

func (t *tx) SetPlayerHealth(_ context.Context, playerID int64, health int) error {
	p, ok := t.st.players[playerID]
	if !ok {
		return errPlayer(playerID)
	}
	p.Health = health
	return nil
}

func (t *tx) GrantRewards(_ context.Context, playerID int64, gold, exp int64) error {
	p, ok := t.st.players[playerID]
	if !ok {
		return errPlayer(playerID)
	}
	p.Gold += gold
	p.Experience += exp
	return nil
}

func (t *tx) EquippedItems(_ context.Context, playerID int64) ([]inventory.EquippedItem, error) {
	var out []inventory.EquippedItem
	for slot, itemID := range t.st.equipped[playerID] {
		if it, ok := t.st.items[itemID]; ok {
			out = append(out, inventory.EquippedItem{Slot: slot, Item: *it})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, nil
}

func (t *tx) AddItem(_ context.Context, playerID int64, itemID string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("adding %q: quantity must be >= 1, got %d", itemID, qty)
	}
	if _, ok := t.st.players[playerID]; !ok {
		return errPlayer(playerID)
	}
	if _, ok := t.st.items[itemID]; !ok {
		return fmt.Errorf("item %q: %w", itemID, boss.ErrItemNotFound)
	}
	m, ok := t.st.stacks[playerID]
	if !ok {
		m = make(map[string]int)
		t.st.stacks[playerID] = m
	}
	m[itemID] += qty
	return nil
}

func (t *tx) GetItem(_ context.Context, itemID string) (*inventory.Item, error) {
	it, ok := t.st.items[itemID]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", itemID, boss.ErrItemNotFound)
	}
	cp := *it
	return &cp, nil
}
