package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtProjectileFired    EventType = iota // *Projectile
	EvtProjectileExploded                  // *Projectile
	EvtProjectileSpent                     // *Projectile
	EvtInterception                        // Interception
	EvtStructureHit                        // Hit
	EvtStructureRedraw                     // Redraw
	EvtGameStart
	EvtGameEnd // *Structure (the base)
)

// Interception is the payload of EvtInterception
type Interception struct {
	Friendly *Projectile
	Enemy    *Projectile
}

// Hit is the payload of EvtStructureHit
type Hit struct {
	Structure *Structure
	By        *Projectile
	Damage    int
}

// Redraw is the payload of EvtStructureRedraw
type Redraw struct {
	Structure *Structure
	Refresh   Refresh
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

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}
