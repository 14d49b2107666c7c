package boss

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoActiveBoss is matched by rejections with ReasonNoActiveBoss.
	ErrNoActiveBoss = errors.New("no active boss")
	// ErrInsufficientHealth is matched by rejections with ReasonInsufficientHealth.
	ErrInsufficientHealth = errors.New("insufficient health")
	// ErrCooldownActive is matched by rejections with ReasonCooldown.
	ErrCooldownActive = errors.New("attack cooldown active")
	// ErrAlreadyDefeated is matched by rejections with ReasonAlreadyDefeated.
	ErrAlreadyDefeated = errors.New("boss already defeated")
)

// Store-level conditions.
var (
	ErrNoActiveInstance     = errors.New("no active boss instance")
	ErrActiveInstanceExists = errors.New("an active boss instance already exists")
	ErrInstanceNotFound     = errors.New("boss instance not found")
	ErrTemplateNotFound     = errors.New("boss template not found")
	ErrTemplateNameTaken    = errors.New("boss template name already taken")
	ErrDropRuleExists       = errors.New("drop rule for this item already exists")
	ErrDropRuleNotFound     = errors.New("drop rule not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrSettingsNotFound     = errors.New("boss settings not found")
)

// Admin precondition violations.
var (
	ErrNoTemplates     = errors.New("no boss templates available")
	ErrTemplateInUse   = errors.New("boss template is referenced by an active instance")
	ErrFightInProgress = errors.New("an undefeated boss is still active")
	ErrInvalidTemplate = errors.New("invalid boss template")
	ErrInvalidDropRule = errors.New("invalid drop rule")
	ErrInvalidSettings = errors.New("invalid boss settings")
	ErrInvalidAttack   = errors.New("invalid attack")
)

// RejectReason discriminates why an attack was refused.
type RejectReason string

const (
	ReasonNoActiveBoss       RejectReason = "no_active_boss"
	ReasonInsufficientHealth RejectReason = "insufficient_health"
	ReasonCooldown           RejectReason = "cooldown"
	ReasonAlreadyDefeated    RejectReason = "boss_already_defeated"
)

// Rejection is returned when an attack violates a precondition. No state is
// mutated when an attack is rejected.
type Rejection struct {
	Reason RejectReason
	// RemainingSeconds is set for ReasonCooldown.
	RemainingSeconds int
}

func (r *Rejection) Error() string {
	switch r.Reason {
	case ReasonNoActiveBoss:
		return "there is no active boss to attack"
	case ReasonInsufficientHealth:
		return "you are too exhausted to attack; recover some health first"
	case ReasonCooldown:
		return fmt.Sprintf("you must wait %d seconds before attacking again", r.RemainingSeconds)
	case ReasonAlreadyDefeated:
		return "the boss has already been defeated"
	}
	return string(r.Reason)
}

// Is matches the sentinel corresponding to the rejection reason.
func (r *Rejection) Is(target error) bool {
	switch r.Reason {
	case ReasonNoActiveBoss:
		return target == ErrNoActiveBoss
	case ReasonInsufficientHealth:
		return target == ErrInsufficientHealth
	case ReasonCooldown:
		return target == ErrCooldownActive
	case ReasonAlreadyDefeated:
		return target == ErrAlreadyDefeated
	}
	return false
}

func reject(reason RejectReason) *Rejection {
	return &Rejection{Reason: reason}
}

// cooldownRejection rounds the remaining wait up to whole seconds.
func cooldownRejection(remaining time.Duration) *Rejection {
	secs := int((remaining + time.Second - 1) / time.Second)
	return &Rejection{Reason: ReasonCooldown, RemainingSeconds: secs}
}

// AsRejection extracts a *Rejection from err.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
