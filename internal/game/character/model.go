// Package character defines the player model consumed by the boss subsystem.
package character

import (
	"errors"
	"fmt"
	"time"
)

// ErrPlayerNotFound is returned when a player lookup yields no results.
var ErrPlayerNotFound = errors.New("player not found")

// ErrUsernameTaken is returned when creating a player with a username already in use.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidCredentials is returned when authentication fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRole is returned when an unrecognised role string is supplied.
var ErrInvalidRole = errors.New("invalid role")

// Role constants for player privilege levels.
const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

// ValidRole reports whether role is a recognised privilege level.
func ValidRole(role string) bool {
	switch role {
	case RolePlayer, RoleAdmin:
		return true
	}
	return false
}

// Skill identifies a trainable skill. Skills double as attack types against a boss.
type Skill string

const (
	SkillMining      Skill = "MINING"
	SkillWoodcutting Skill = "WOODCUTTING"
	SkillFishing     Skill = "FISHING"
	SkillSmithing    Skill = "SMITHING"
	SkillCrafting    Skill = "CRAFTING"
	SkillCombat      Skill = "COMBAT"
)

// AllSkills lists every skill in display order.
var AllSkills = []Skill{
	SkillMining, SkillWoodcutting, SkillFishing,
	SkillSmithing, SkillCrafting, SkillCombat,
}

// DefaultSkillLevel is the level of a skill the player has never trained.
const DefaultSkillLevel = 1

// Valid reports whether s is a known skill.
func (s Skill) Valid() bool {
	for _, k := range AllSkills {
		if k == s {
			return true
		}
	}
	return false
}

// ParseSkill converts a raw string into a Skill.
//
// Postcondition: Returns a valid Skill or a non-nil error.
func ParseSkill(raw string) (Skill, error) {
	s := Skill(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown skill %q", raw)
	}
	return s, nil
}

// Player represents a player's persistent state as seen by the combat core.
//
// ID is set by the persistence layer; a zero value indicates an unsaved player.
type Player struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string

	Level      int
	Experience int64
	Gold       int64
	Health     int
	MaxHealth  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the player may invoke administrative operations.
func (p *Player) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Alive reports whether the player has health left to spend.
func (p *Player) Alive() bool {
	return p.Health > 0
}
