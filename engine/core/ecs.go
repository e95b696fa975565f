package core

import "sync/atomic"

// EntityID is a unique identifier for projectiles and structures
type EntityID uint64

var entityCounter uint64

// NewEntityID generates a unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&entityCounter, 1))
}

// World holds the live entities of one session. It is owned by a single
// goroutine; systems get it for the duration of one Update call only.
type World struct {
	Friendly   []*Projectile
	Enemy      []*Projectile
	Structures []*Structure
	Base       *Structure
	Events     *EventBus
	TickCount  uint64
	Over       bool

	systems []System
}

// System processes the world once per tick
type System interface {
	Update(w *World)
	Priority() int
}

// NewWorld creates an empty world with its own event bus
func NewWorld() *World {
	return &World{Events: NewEventBus()}
}

// AddStructure registers a structure. The first one flagged as base becomes w.Base.
func (w *World) AddStructure(s *Structure, isBase bool) {
	w.Structures = append(w.Structures, s)
	if isBase && w.Base == nil {
		w.Base = s
	}
}

// Launch appends a projectile to the collection of its side
func (w *World) Launch(p *Projectile) {
	if p.Side == SideFriendly {
		w.Friendly = append(w.Friendly, p)
	} else {
		w.Enemy = append(w.Enemy, p)
	}
	w.Emit(EvtProjectileFired, p)
}

// AliveStructures returns the structures that can still be targeted
func (w *World) AliveStructures() []*Structure {
	var alive []*Structure
	for _, s := range w.Structures {
		if s.IsAlive() {
			alive = append(alive, s)
		}
	}
	return alive
}

// Prune drops spent projectiles from both collections
func (w *World) Prune() {
	w.Friendly = pruneSpent(w.Friendly)
	w.Enemy = pruneSpent(w.Enemy)
}

func pruneSpent(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.State != StateSpent {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = nil
	}
	return kept
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t EventType, payload interface{}) {
	if w.Events != nil {
		w.Events.Emit(Event{Type: t, Tick: w.TickCount, Payload: payload})
	}
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs all systems once, in priority order
func (w *World) Tick() {
	for _, s := range w.systems {
		s.Update(w)
	}
	w.TickCount++
}
