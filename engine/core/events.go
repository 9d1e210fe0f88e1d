package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtLevelStarted EventType = iota
	EvtAlienSpawned
	EvtAlienDestroyed
	EvtShipDamaged
	EvtGoodieCollected
	EvtProjectileFired
	EvtPlayerDied
	EvtLevelCleared
	EvtGameOver
)

// ---- Payloads ----

// LevelPayload accompanies EvtLevelStarted, EvtLevelCleared and EvtGameOver
type LevelPayload struct {
	Level int
	Score int
}

// AlienPayload accompanies EvtAlienSpawned and EvtAlienDestroyed
type AlienPayload struct {
	ID    EntityID
	Class string
	X, Y  float64
	Score int // awarded on destruction, 0 on spawn
}

// DamagePayload accompanies EvtShipDamaged
type DamagePayload struct {
	Amount    float64
	Cause     Cause
	HitPoints float64
}

// GoodiePayload accompanies EvtGoodieCollected
type GoodiePayload struct {
	Kind string
}

// ShotPayload accompanies EvtProjectileFired
type ShotPayload struct {
	Kind     string
	ByPlayer bool
	Torpedo  bool
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch. A nil bus drops it.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	if eb == nil {
		return 0
	}
	return len(eb.queue)
}

// Dispatch processes all queued events. Handlers may emit; those events are
// delivered in the same pass.
func (eb *EventBus) Dispatch() {
	if eb == nil {
		return
	}
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
