package memory

import (
	"context"
	"fmt"

	"github.com/idlerealm/worldboss/internal/game/character"
	"github.com/idlerealm/worldboss/internal/game/inventory"
)

// Create registers a player with a bcrypt-hashed password and starting attributes.
//
// Postcondition: Returns the new player or character.ErrUsernameTaken.
func (s *Store) Create(ctx context.Context, username, password string) (*character.Player, error) {
	hash, err := character.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	now := s.now()
	return s.PutPlayer(ctx, &character.Player{
		Username:     username,
		PasswordHash: hash,
		Role:         character.RolePlayer,
		Level:        character.StartingLevel,
		Health:       character.StartingMaxHealth,
		MaxHealth:    character.StartingMaxHealth,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// PutPlayer stores p as given, assigning an ID. Used to seed players with
// explicit attributes.
func (s *Store) PutPlayer(_ context.Context, p *character.Player) (*character.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalizeUsername(p.Username)
	if _, taken := s.state.usernames[key]; taken {
		return nil, character.ErrUsernameTaken
	}
	cp := *p
	if cp.Role == "" {
		cp.Role = character.RolePlayer
	}
	cp.ID = s.state.id()
	s.state.players[cp.ID] = &cp
	s.state.usernames[key] = cp.ID
	out := cp
	return &out, nil
}

// Authenticate verifies credentials and returns the matching player.
//
// Postcondition: Returns the player, character.ErrPlayerNotFound, or
// character.ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*character.Player, error) {
	p, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !character.CheckPassword(password, p.PasswordHash) {
		return nil, character.ErrInvalidCredentials
	}
	return p, nil
}

// GetByUsername retrieves a player by case-insensitive username.
func (s *Store) GetByUsername(_ context.Context, username string) (*character.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.state.usernames[normalizeUsername(username)]
	if !ok {
		return nil, character.ErrPlayerNotFound
	}
	cp := *s.state.players[id]
	return &cp, nil
}

// Player returns a snapshot of the player with the given ID.
func (s *Store) Player(_ context.Context, id int64) (*character.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.players[id]
	if !ok {
		return nil, errPlayer(id)
	}
	cp := *p
	return &cp, nil
}

// SetRole updates the role for the given player.
func (s *Store) SetRole(_ context.Context, playerID int64, role string) error {
	if !character.ValidRole(role) {
		return character.ErrInvalidRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.players[playerID]
	if !ok {
		return errPlayer(playerID)
	}
	p.Role = role
	p.UpdatedAt = s.now()
	return nil
}

// SetSkillLevel records the player's raw level in skill.
func (s *Store) SetSkillLevel(_ context.Context, playerID int64, skill character.Skill, level int) error {
	if !skill.Valid() {
		return fmt.Errorf("unknown skill %q", skill)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.players[playerID]; !ok {
		return errPlayer(playerID)
	}
	m, ok := s.state.skills[playerID]
	if !ok {
		m = make(map[character.Skill]int)
		s.state.skills[playerID] = m
	}
	m[skill] = level
	return nil
}

// Equip places itemID into its slot, replacing whatever was there.
func (s *Store) Equip(_ context.Context, playerID int64, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.players[playerID]; !ok {
		return errPlayer(playerID)
	}
	it, ok := s.state.items[itemID]
	if !ok {
		return fmt.Errorf("equipping %q: item not found", itemID)
	}
	if !it.Equippable() {
		return fmt.Errorf("equipping %q: item has no equipment slot", itemID)
	}
	m, ok := s.state.equipped[playerID]
	if !ok {
		m = make(map[inventory.Slot]string)
		s.state.equipped[playerID] = m
	}
	m[it.Slot] = itemID
	return nil
}

// Inventory lists the player's item stacks ordered by item ID.
func (s *Store) Inventory(ctx context.Context, playerID int64) ([]inventory.Stack, error) {
	if _, err := s.Player(ctx, playerID); err != nil {
		return nil, err
	}
	return s.Stacks(playerID), nil
}
