package ecs

// EventType names a gameplay event systems report to the host.
type EventType string

const (
	EventJump       EventType = "jump"
	EventCoin       EventType = "coin"
	EventStomp      EventType = "stomp"
	EventHurt       EventType = "hurt"
	EventBossHit    EventType = "boss_hit"
	EventBossRoar   EventType = "boss_roar"
	EventBossDefeat EventType = "boss_defeat"
	EventLevelWin   EventType = "level_win"
	EventGameOver   EventType = "game_over"
	EventSaved      EventType = "saved"
	EventLoaded     EventType = "loaded"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Emit pushes an event with no payload.
func (q *EventQueue) Emit(t EventType) {
	q.Push(Event{Type: t})
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
