// Package memory provides an in-process implementation of the boss store
// interfaces. Transactions are serialised by one mutex and run against a copy
// of the state that replaces the live state only on success, so a failed
// transaction leaves nothing behind.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

// Store is an in-memory boss.Store. It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{state: newState(), now: time.Now}
}

// InTx runs fn against a private copy of the state and publishes the copy
// only when fn returns nil. Transactions do not run concurrently.
func (s *Store) InTx(ctx context.Context, fn func(tx boss.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(&tx{st: working}); err != nil {
		return err
	}
	s.state = working
	return nil
}

// state is the full contents of the store. Every map value is owned by the
// state; callers only ever receive copies.
type state struct {
	nextID int64

	templates map[int64]*boss.Template
	instances map[int64]*boss.Instance
	actions   []*boss.Action
	settings  *boss.Settings

	players   map[int64]*character.Player
	usernames map[string]int64
	skills    map[int64]map[character.Skill]int
	equipped  map[int64]map[inventory.Slot]string
	stacks    map[int64]map[string]int
	items     map[string]*inventory.Item
}

func newState() *state {
	return &state{
		templates: make(map[int64]*boss.Template),
		instances: make(map[int64]*boss.Instance),
		players:   make(map[int64]*character.Player),
		usernames: make(map[string]int64),
		skills:    make(map[int64]map[character.Skill]int),
		equipped:  make(map[int64]map[inventory.Slot]string),
		stacks:    make(map[int64]map[string]int),
		items:     make(map[string]*inventory.Item),
	}
}

func (st *state) id() int64 {
	st.nextID++
	return st.nextID
}

// clone deep-copies every mutable record. Actions are append-only and
// items are immutable, so their pointers are shared.
func (st *state) clone() *state {
	c := &state{
		nextID:    st.nextID,
		templates: make(map[int64]*boss.Template, len(st.templates)),
		instances: make(map[int64]*boss.Instance, len(st.instances)),
		actions:   append([]*boss.Action(nil), st.actions...),
		players:   make(map[int64]*character.Player, len(st.players)),
		usernames: make(map[string]int64, len(st.usernames)),
		skills:    make(map[int64]map[character.Skill]int, len(st.skills)),
		equipped:  make(map[int64]map[inventory.Slot]string, len(st.equipped)),
		stacks:    make(map[int64]map[string]int, len(st.stacks)),
		items:     make(map[string]*inventory.Item, len(st.items)),
	}
	for id, t := range st.templates {
		c.templates[id] = copyTemplate(t)
	}
	for id, inst := range st.instances {
		c.instances[id] = copyInstance(inst)
	}
	if st.settings != nil {
		s := *st.settings
		c.settings = &s
	}
	for id, p := range st.players {
		cp := *p
		c.players[id] = &cp
	}
	for name, id := range st.usernames {
		c.usernames[name] = id
	}
	for id, m := range st.skills {
		c.skills[id] = copyMap(m)
	}
	for id, m := range st.equipped {
		c.equipped[id] = copyMap(m)
	}
	for id, m := range st.stacks {
		c.stacks[id] = copyMap(m)
	}
	for id, it := range st.items {
		c.items[id] = it
	}
	return c
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyTemplate(t *boss.Template) *boss.Template {
	c := *t
	c.Weaknesses = append([]character.Skill(nil), t.Weaknesses...)
	c.DropRules = append([]boss.DropRule(nil), t.DropRules...)
	return &c
}

func copyInstance(inst *boss.Instance) *boss.Instance {
	c := *inst
	if inst.DefeatedBy != nil {
		by := *inst.DefeatedBy
		c.DefeatedBy = &by
	}
	if inst.DefeatedAt != nil {
		at := *inst.DefeatedAt
		c.DefeatedAt = &at
	}
	return &c
}

// RegisterItems adds catalog items, replacing existing definitions with the same ID.
func (s *Store) RegisterItems(items ...*inventory.Item) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		cp := *it
		s.state.items[it.ID] = &cp
	}
	return nil
}

// Stacks returns the player's inventory ordered by item ID.
func (s *Store) Stacks(playerID int64) []inventory.Stack {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []inventory.Stack
	for itemID, qty := range s.state.stacks[playerID] {
		out = append(out, inventory.Stack{PlayerID: playerID, ItemID: itemID, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// ActionCount returns the number of logged attacks.
func (s *Store) ActionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.actions)
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func errPlayer(id int64) error {
	return fmt.Errorf("player %d: %w", id, character.ErrPlayerNotFound)
}
