package actor

import (
	"log"
	"sync"

	"github.com/gosaintmrc/sulis/internal/errors"
	"github.com/gosaintmrc/sulis/internal/events"
)

// Registry owns all live actors and is the mutation surface for actor
// state that other systems react to. Held-item changes go through the
// registry so the matching event fires exactly once per change.
type Registry struct {
	actors map[string]*Actor
	bus    *events.EventBus
	mu     sync.RWMutex
}

// NewRegistry creates an actor registry wired to the given event bus
func NewRegistry(bus *events.EventBus) *Registry {
	return &Registry{
		actors: make(map[string]*Actor),
		bus:    bus,
	}
}

// Add registers an actor
func (r *Registry) Add(a *Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a == nil {
		return errors.InvalidArgument("actor cannot be nil")
	}
	if a.ID == "" {
		return errors.InvalidArgument("actor must have an ID")
	}
	if _, exists := r.actors[a.ID]; exists {
		return errors.AlreadyExists("actor " + a.ID + " already registered")
	}

	r.actors[a.ID] = a
	return nil
}

// Get returns an actor by ID
func (r *Registry) Get(id string) (*Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actors[id]
	if !ok {
		return nil, errors.NotFoundf("actor %s not found", id)
	}
	return a, nil
}

// SetHeld changes an actor's held weapon kind and emits OnHeldChanged if
// the kind actually changed
func (r *Registry) SetHeld(actorID string, kind HeldKind) error {
	a, err := r.Get(actorID)
	if err != nil {
		return err
	}

	if !a.setHeld(kind) {
		return nil
	}

	event := events.NewGameEvent(events.OnHeldChanged, actorID).
		WithContext("held", string(kind))
	if err := r.bus.Emit(event); err != nil {
		log.Printf("held-changed listeners failed for actor %s: %v", actorID, err)
		return errors.Wrap(err, "held-changed reaction failed")
	}
	return nil
}
