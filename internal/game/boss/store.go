package boss

import (
	"context"
	"time"

	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

// Templates persists boss templates and their drop tables.
type Templates interface {
	// ListTemplates returns every template ordered by level, then insertion order.
	ListTemplates(ctx context.Context) ([]*Template, error)
	GetTemplate(ctx context.Context, id int64) (*Template, error)
	// CreateTemplate inserts t with its drop rules; ErrTemplateNameTaken on duplicate name.
	CreateTemplate(ctx context.Context, t *Template) (*Template, error)
	// UpdateTemplate replaces the scalar fields of t; drop rules are left untouched.
	UpdateTemplate(ctx context.Context, t *Template) (*Template, error)
	DeleteTemplate(ctx context.Context, id int64) error
	// AddDropRule inserts d; ErrDropRuleExists when the (template, item) pair is taken.
	AddDropRule(ctx context.Context, d *DropRule) (*DropRule, error)
	RemoveDropRule(ctx context.Context, templateID, ruleID int64) error
}

// Instances persists boss instances.
type Instances interface {
	// ActiveInstance returns the single is_active instance or ErrNoActiveInstance.
	// forUpdate locks the row until the surrounding transaction ends.
	ActiveInstance(ctx context.Context, forUpdate bool) (*Instance, error)
	// GetInstance returns ErrInstanceNotFound for unknown ids.
	GetInstance(ctx context.Context, id int64, forUpdate bool) (*Instance, error)
	// InsertInstance stores a new active instance; ErrActiveInstanceExists when
	// another active instance is already present.
	InsertInstance(ctx context.Context, inst *Instance) (*Instance, error)
	// UpdateInstance writes health, defeat, and activity state.
	UpdateInstance(ctx context.Context, inst *Instance) error
	// CountInstances counts every instance, active or not, spawned from templateID.
	CountInstances(ctx context.Context, templateID int64) (int, error)
	ListRecentInstances(ctx context.Context, limit int) ([]*Instance, error)
}

// Actions persists the append-only attack log.
type Actions interface {
	InsertAction(ctx context.Context, a *Action) (*Action, error)
	// LastActionAt returns the time of the player's latest attack on any
	// instance, or the zero time when the player has never attacked.
	LastActionAt(ctx context.Context, playerID int64) (time.Time, error)
	// Contributions aggregates damage per player for instanceID, ordered by
	// total damage descending then player ID. limit <= 0 returns all.
	Contributions(ctx context.Context, instanceID int64, limit int) ([]Contribution, error)
}

// SettingsStore persists the singleton rotation settings.
type SettingsStore interface {
	// GetSettings returns ErrSettingsNotFound when no record exists yet.
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s *Settings) error
}

// Players is the player collaborator consumed by combat and rewards.
type Players interface {
	GetPlayer(ctx context.Context, id int64, forUpdate bool) (*character.Player, error)
	// SkillLevel returns the player's raw level in skill, or
	// character.DefaultSkillLevel when never trained.
	SkillLevel(ctx context.Context, playerID int64, skill character.Skill) (int, error)
	SetPlayerHealth(ctx context.Context, playerID int64, health int) error
	GrantRewards(ctx context.Context, playerID int64, gold, exp int64) error
}

// Equipment reads a player's equipped gear.
type Equipment interface {
	EquippedItems(ctx context.Context, playerID int64) ([]inventory.EquippedItem, error)
}

// Inventory writes item stacks.
type Inventory interface {
	// AddItem merges qty into the player's stack of itemID, creating it if absent.
	AddItem(ctx context.Context, playerID int64, itemID string, qty int) error
}

// Catalog reads item definitions.
type Catalog interface {
	GetItem(ctx context.Context, itemID string) (*inventory.Item, error)
}

// Tx is the unit-of-work handle. Every mutation made through a Tx commits or
// rolls back together.
type Tx interface {
	Templates
	Instances
	Actions
	SettingsStore
	Players
	Equipment
	Inventory
	Catalog
}

// Store opens units of work.
type Store interface {
	// InTx runs fn inside one atomic transaction. A non-nil error from fn rolls
	// back every change made through tx and is returned unchanged.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
