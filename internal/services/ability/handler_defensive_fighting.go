package ability

import (
	"context"
	"log"

	abilitydef "github.com/gosaintmrc/sulis/internal/domain/ability"
	"github.com/gosaintmrc/sulis/internal/domain/actor"
	"github.com/gosaintmrc/sulis/internal/effects"
	engerr "github.com/gosaintmrc/sulis/internal/errors"
	"github.com/gosaintmrc/sulis/internal/events"
)

// DefensiveFightingKey identifies the Defensive Fighting stance ability
const DefensiveFightingKey = "defensive_fighting"

// defensiveFightingHandler implements a melee-oriented stance: trade
// accuracy for defense. It exists alongside Precise Shot so the actor
// always has a competing mode to displace.
type defensiveFightingHandler struct {
	service *service
}

func newDefensiveFightingHandler(svc *service) Handler {
	return &defensiveFightingHandler{service: svc}
}

func (h *defensiveFightingHandler) Key() string {
	return DefensiveFightingKey
}

func (h *defensiveFightingHandler) OnActivate(ctx context.Context, act *actor.Actor, state *abilitydef.State) error {
	def, ok := h.service.Definition(DefensiveFightingKey)
	if !ok {
		return engerr.NotFoundf("ability %q is not defined", DefensiveFightingKey)
	}

	defense := 10.0
	if state.Upgraded() {
		defense = 15.0
	}

	effect := effects.NewBuilder(def.Name).
		AsMode().
		DeactivateWith(state.Key).
		AddNumBonus(effects.StatDefense, defense).
		AddNumBonus(effects.StatMeleeAccuracy, -10).
		AddNumBonus(effects.StatRangedAccuracy, -10).
		Build()

	if err := act.Effects().Apply(effect); err != nil {
		return engerr.Wrap(err, "failed to apply Defensive Fighting effect")
	}

	h.service.game.PlaySFX(def.ActivateSFX)
	state.Activate()

	event := events.NewGameEvent(events.OnStatusApplied, act.ID).
		WithContext("status", def.Name)
	if err := h.service.eventBus.Emit(event); err != nil {
		log.Printf("status-applied listeners failed for %q: %v", def.Name, err)
	}

	return nil
}

func (h *defensiveFightingHandler) OnDeactivate(ctx context.Context, act *actor.Actor, state *abilitydef.State) error {
	return h.service.teardown(act, state)
}
