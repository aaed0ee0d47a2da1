package events

// EventType represents the type of game event
type EventType int

const (
	// Actor state events
	OnHeldChanged EventType = iota
	OnStatusApplied
	OnStatusRemoved
	OnModeDeactivated

	// Turn cycle events
	OnTurnStart
	OnTurnEnd
)

// String returns the string representation of the event type
func (e EventType) String() string {
	names := [...]string{
		"OnHeldChanged",
		"OnStatusApplied",
		"OnStatusRemoved",
		"OnModeDeactivated",
		"OnTurnStart",
		"OnTurnEnd",
	}
	if e < OnHeldChanged || int(e) >= len(names) {
		return "Unknown"
	}
	return names[e]
}

// GameEvent carries an event type, the acting entity's ID, and an
// open-ended context payload. Actors are addressed by ID rather than
// pointer; the registry that owns them resolves the reference.
type GameEvent struct {
	Type      EventType
	ActorID   string
	Context   map[string]any
	Cancelled bool
}

// NewGameEvent creates a game event for the given actor
func NewGameEvent(eventType EventType, actorID string) *GameEvent {
	return &GameEvent{
		Type:    eventType,
		ActorID: actorID,
	}
}

// WithContext attaches a context value to the event (builder pattern)
func (e *GameEvent) WithContext(key string, value any) *GameEvent {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves a context value
func (e *GameEvent) GetContext(key string) (any, bool) {
	if e.Context == nil {
		return nil, false
	}
	v, ok := e.Context[key]
	return v, ok
}

// Cancel stops propagation to lower-priority listeners
func (e *GameEvent) Cancel() {
	e.Cancelled = true
}

// EventListener processes game events. Lower priority values run first.
type EventListener interface {
	HandleEvent(event *GameEvent) error
	Priority() int
}
