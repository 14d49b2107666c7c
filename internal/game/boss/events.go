package boss

import "time"

// EventKind names a boss lifecycle notification.
type EventKind string

const (
	EventSpawned     EventKind = "spawned"
	EventAttacked    EventKind = "attacked"
	EventDefeated    EventKind = "defeated"
	EventDeactivated EventKind = "deactivated"
)

// Event is published after the transaction that caused it commits.
type Event struct {
	Kind          EventKind `json:"kind"`
	InstanceID    int64     `json:"instance_id"`
	TemplateName  string    `json:"template_name,omitempty"`
	PlayerID      int64     `json:"player_id,omitempty"`
	AttackID      string    `json:"attack_id,omitempty"`
	Damage        int64     `json:"damage,omitempty"`
	Critical      bool      `json:"critical,omitempty"`
	CurrentHealth int64     `json:"current_health"`
	At            time.Time `json:"at"`
}

// Publisher receives committed boss events. Implementations must not block.
type Publisher interface {
	Publish(ev Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(Event) {}
