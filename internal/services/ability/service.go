package ability

import (
	"context"
	"log"

	abilitydef "github.com/gosaintmrc/sulis/internal/domain/ability"
	"github.com/gosaintmrc/sulis/internal/domain/actor"
	engerr "github.com/gosaintmrc/sulis/internal/errors"
	"github.com/gosaintmrc/sulis/internal/events"
	"github.com/gosaintmrc/sulis/internal/game"
)

// Service owns ability activation state. It enforces the engine-level
// invariants (mode exclusivity, effect lifetime coupling) so individual
// handlers only describe what their ability does.
type Service interface {
	// RegisterHandler adds an ability handler
	RegisterHandler(handler Handler)

	// Activate activates an ability on an actor. For mode abilities, any
	// currently active mode is deactivated first.
	Activate(ctx context.Context, actorID, abilityKey string) error

	// Deactivate deactivates an ability, removing all effects coupled to
	// it. Deactivating an inactive ability is a no-op.
	Deactivate(ctx context.Context, actorID, abilityKey string) error

	// Definition returns the content definition for an ability key
	Definition(key string) (*abilitydef.Definition, bool)
}

// ServiceConfig holds the dependencies of the ability service
type ServiceConfig struct {
	Actors      *actor.Registry
	Definitions map[string]*abilitydef.Definition
	EventBus    *events.EventBus
	Game        game.Services
}

type service struct {
	actors   *actor.Registry
	defs     map[string]*abilitydef.Definition
	eventBus *events.EventBus
	game     game.Services
	registry *HandlerRegistry
}

// NewService creates the ability service and hooks its held-changed
// dispatcher into the event bus
func NewService(cfg *ServiceConfig) Service {
	if cfg.Actors == nil {
		panic("actor registry is required")
	}
	if cfg.EventBus == nil {
		panic("event bus is required")
	}
	if cfg.Game == nil {
		panic("game services are required")
	}

	svc := &service{
		actors:   cfg.Actors,
		defs:     cfg.Definitions,
		eventBus: cfg.EventBus,
		game:     cfg.Game,
		registry: NewHandlerRegistry(),
	}
	if svc.defs == nil {
		svc.defs = make(map[string]*abilitydef.Definition)
	}

	cfg.EventBus.Subscribe(events.OnHeldChanged, &heldChangedDispatcher{actors: cfg.Actors})

	return svc
}

// RegisterHandler allows ability content to register its handler
func (s *service) RegisterHandler(handler Handler) {
	s.registry.Register(handler)
}

// Definition returns the content definition for an ability key
func (s *service) Definition(key string) (*abilitydef.Definition, bool) {
	def, ok := s.defs[key]
	return def, ok
}

// Activate activates an ability on an actor
func (s *service) Activate(ctx context.Context, actorID, abilityKey string) error {
	act, err := s.actors.Get(actorID)
	if err != nil {
		return engerr.Wrap(err, "failed to activate ability")
	}

	def, ok := s.defs[abilityKey]
	if !ok {
		return engerr.NotFoundf("ability %q is not defined", abilityKey)
	}

	state, ok := act.AbilityState(abilityKey)
	if !ok || !state.Possessed() {
		return engerr.FailedPreconditionf("%s does not possess %s", act.Name, def.Name)
	}
	if state.Active {
		return engerr.AlreadyExists(def.Name + " is already active")
	}

	// A new mode displaces whatever mode is currently up
	if def.Mode {
		if prior := act.Effects().ActiveMode(); prior != nil {
			if prior.DeactivatesWith == "" {
				return engerr.FailedPreconditionf(
					"mode %q is not coupled to an ability and cannot be displaced", prior.Name)
			}
			if err := s.Deactivate(ctx, actorID, prior.DeactivatesWith); err != nil {
				return engerr.Wrapf(err, "failed to deactivate prior mode %q", prior.Name)
			}
		}
	}

	handler, ok := s.registry.Get(abilityKey)
	if !ok {
		// No scripted behavior: just flip the state
		log.Printf("no handler for ability %q, marking active", abilityKey)
		state.Activate()
		return nil
	}

	if err := handler.OnActivate(ctx, act, state); err != nil {
		return engerr.Wrapf(err, "failed to activate %s", def.Name)
	}
	return nil
}

// Deactivate deactivates an ability on an actor
func (s *service) Deactivate(ctx context.Context, actorID, abilityKey string) error {
	act, err := s.actors.Get(actorID)
	if err != nil {
		return engerr.Wrap(err, "failed to deactivate ability")
	}

	state, ok := act.AbilityState(abilityKey)
	if !ok {
		return engerr.NotFoundf("%s does not possess ability %q", act.Name, abilityKey)
	}
	if !state.Active {
		return nil
	}

	if handler, ok := s.registry.Get(abilityKey); ok {
		return handler.OnDeactivate(ctx, act, state)
	}
	return s.teardown(act, state)
}

// teardown is the engine's ability-deactivation primitive: clear the
// active flag, remove every effect whose lifetime is coupled to the
// ability, and announce the removals
func (s *service) teardown(act *actor.Actor, state *abilitydef.State) error {
	state.Deactivate()

	removed := act.Effects().RemoveByAbility(state.Key)
	for _, eff := range removed {
		event := events.NewGameEvent(events.OnStatusRemoved, act.ID).
			WithContext("effect", eff.Name)
		if err := s.eventBus.Emit(event); err != nil {
			log.Printf("status-removed listeners failed for %q: %v", eff.Name, err)
		}

		if eff.Mode {
			modeEvent := events.NewGameEvent(events.OnModeDeactivated, act.ID).
				WithContext("mode", eff.Name)
			if err := s.eventBus.Emit(modeEvent); err != nil {
				log.Printf("mode-deactivated listeners failed for %q: %v", eff.Name, err)
			}
		}
	}

	return nil
}
