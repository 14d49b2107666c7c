package boss

import (
	"fmt"
	"time"

	"github.com/idlerealm/worldboss/internal/game/character"
)

// Instance is one live, time-boxed encounter against a template.
//
// Invariants: CurrentHealth never increases and never drops below 0;
// IsDefeated flips false→true at most once, and DefeatedBy/DefeatedAt are
// set iff IsDefeated.
type Instance struct {
	ID            int64
	TemplateID    int64
	TemplateName  string
	CurrentHealth int64
	IsActive      bool
	IsDefeated    bool
	StartTime     time.Time
	EndTime       time.Time
	DefeatedBy    *int64
	DefeatedAt    *time.Time
}

// Expired reports whether the instance's lifespan has elapsed at now.
func (i *Instance) Expired(now time.Time) bool {
	return !now.Before(i.EndTime)
}

// Live reports whether the instance is active and unexpired at now.
// A defeated instance stays live until rotated out or expired.
func (i *Instance) Live(now time.Time) bool {
	return i.IsActive && !i.Expired(now)
}

// Attackable reports whether the instance may take damage at now.
func (i *Instance) Attackable(now time.Time) bool {
	return i.Live(now) && !i.IsDefeated
}

// applyDamage lowers CurrentHealth by damage, clamped at zero, and marks the
// instance defeated by playerID when health reaches zero.
//
// Precondition: i.Attackable(now); damage >= 0.
// Postcondition: returns true iff this call performed the defeat transition.
func (i *Instance) applyDamage(damage int64, playerID int64, now time.Time) bool {
	i.CurrentHealth -= damage
	if i.CurrentHealth > 0 {
		return false
	}
	i.CurrentHealth = 0
	i.IsDefeated = true
	killer := playerID
	at := now
	i.DefeatedBy = &killer
	i.DefeatedAt = &at
	return true
}

// Action is one append-only attack log entry.
type Action struct {
	ID          int64
	InstanceID  int64
	PlayerID    int64
	Damage      int64
	Skill       character.Skill
	IsCritical  bool
	PlayerLevel int
	SkillLevel  int
	CreatedAt   time.Time
}

// Contribution is a player's aggregated damage against one instance.
type Contribution struct {
	PlayerID    int64
	Username    string
	Level       int
	TotalDamage int64
	Attacks     int
}

// SelectionMode chooses how the next template is picked on rotation.
type SelectionMode string

const (
	SelectRandom     SelectionMode = "RANDOM"
	SelectSequential SelectionMode = "SEQUENTIAL"
	SelectWeighted   SelectionMode = "WEIGHTED"
)

// Valid reports whether m is a known selection mode.
func (m SelectionMode) Valid() bool {
	switch m {
	case SelectRandom, SelectSequential, SelectWeighted:
		return true
	}
	return false
}

// Settings is the singleton admin-configurable rotation record.
type Settings struct {
	AutoSwitchEnabled    bool
	AutoSwitchDelayHours int
	DefaultDurationHours int
	SelectionMode        SelectionMode
	UpdatedAt            time.Time
}

// DefaultSettings returns the settings used when none have been stored yet.
func DefaultSettings() Settings {
	return Settings{
		AutoSwitchEnabled:    true,
		AutoSwitchDelayHours: 1,
		DefaultDurationHours: 24,
		SelectionMode:        SelectRandom,
	}
}

// Validate checks the settings ranges.
func (s *Settings) Validate() error {
	if s.AutoSwitchDelayHours < 0 {
		return fmt.Errorf("%w: auto switch delay must be >= 0 hours, got %d", ErrInvalidSettings, s.AutoSwitchDelayHours)
	}
	if s.DefaultDurationHours < 1 {
		return fmt.Errorf("%w: default duration must be >= 1 hour, got %d", ErrInvalidSettings, s.DefaultDurationHours)
	}
	if !s.SelectionMode.Valid() {
		return fmt.Errorf("%w: unknown selection mode %q", ErrInvalidSettings, s.SelectionMode)
	}
	return nil
}

// AutoSwitchDelay returns the delay after defeat before automatic rotation.
func (s *Settings) AutoSwitchDelay() time.Duration {
	return time.Duration(s.AutoSwitchDelayHours) * time.Hour
}

// DefaultDuration returns the lifespan of a freshly spawned instance.
func (s *Settings) DefaultDuration() time.Duration {
	return time.Duration(s.DefaultDurationHours) * time.Hour
}
