package ability

import (
	"context"

	"github.com/gosaintmrc/sulis/internal/domain/actor"
	"github.com/gosaintmrc/sulis/internal/events"
)

// heldChangedDispatcher forwards held-changed events to the hooks held by
// the actor's active effects. Effects subscribe by holding a function
// value; removing the effect removes the hook, so deactivation needs no
// separate unsubscribe step.
type heldChangedDispatcher struct {
	actors *actor.Registry
}

func (d *heldChangedDispatcher) HandleEvent(event *events.GameEvent) error {
	if event.Type != events.OnHeldChanged {
		return nil
	}

	act, err := d.actors.Get(event.ActorID)
	if err != nil {
		// Actor despawned between emit and dispatch
		return nil
	}

	// Snapshot first: hooks may remove effects while running
	for _, hook := range act.Effects().HeldChangedHooks() {
		if err := hook(context.Background(), event.ActorID); err != nil {
			return err
		}
	}
	return nil
}

func (d *heldChangedDispatcher) Priority() int {
	return 100
}
