package sim

import (
	"encoding/json"
	"time"
)

// EventType enumerates the kinds of simulation occurrences the debug event
// log records, for offline replay and inspection.
type EventType uint8

const (
	EventTypeUnknown EventType = iota
	EventTypeTick
	EventTypeDamage
	EventTypeDeath
	EventTypeItemPickup
	EventTypeEnemyKilled
	EventTypeDoorTransition
	EventTypeExtraLife
)

const EventVersion uint8 = 1

// Event is one record in the log: a typed, timestamped, JSON-encoded payload
// tagged with the tick it occurred on.
type Event struct {
	Version   uint8     `json:"version"`
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Sequence  uint64    `json:"sequence"`
	TickNum   uint64    `json:"tickNum"`
	Payload   []byte    `json:"payload"`
}

func (t EventType) String() string {
	switch t {
	case EventTypeTick:
		return "tick"
	case EventTypeDamage:
		return "damage"
	case EventTypeDeath:
		return "death"
	case EventTypeItemPickup:
		return "item_pickup"
	case EventTypeEnemyKilled:
		return "enemy_killed"
	case EventTypeDoorTransition:
		return "door_transition"
	case EventTypeExtraLife:
		return "extra_life"
	default:
		return "unknown"
	}
}

// DamagePayload records player damage taken.
type DamagePayload struct {
	HP     int `json:"hp"`
	Source string `json:"source"`
}

// ItemPickupPayload records an item collection.
type ItemPickupPayload struct {
	Type ItemType `json:"type"`
	X    uint8    `json:"x"`
	Y    uint8    `json:"y"`
}

// EnemyKilledPayload records an enemy despawning at the end of its death
// animation; despawns by distance are not recorded.
type EnemyKilledPayload struct {
	Slot     int        `json:"slot"`
	Behavior BehaviorKind `json:"behavior"`
	ByFire   bool       `json:"byFire"`
}

// DoorTransitionPayload records a stage/level change through a door.
type DoorTransitionPayload struct {
	FromLevel LevelNumber `json:"fromLevel"`
	FromStage uint8       `json:"fromStage"`
	ToLevel   LevelNumber `json:"toLevel"`
	ToStage   uint8       `json:"toStage"`
}

// EncodePayload marshals a payload to JSON, or nil on failure.
func EncodePayload(payload interface{}) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return data
}

// NewEvent builds an Event stamped with the current time.
func NewEvent(eventType EventType, tickNum uint64, payload interface{}) Event {
	return Event{
		Version:   EventVersion,
		Type:      eventType,
		Timestamp: time.Now().UnixNano(),
		TickNum:   tickNum,
		Payload:   EncodePayload(payload),
	}
}
