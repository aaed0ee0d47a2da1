package ability

import (
	"context"
	"log"

	"github.com/gosaintmrc/sulis/internal/animation"
	abilitydef "github.com/gosaintmrc/sulis/internal/domain/ability"
	"github.com/gosaintmrc/sulis/internal/domain/actor"
	"github.com/gosaintmrc/sulis/internal/effects"
	engerr "github.com/gosaintmrc/sulis/internal/errors"
	"github.com/gosaintmrc/sulis/internal/events"
)

// PreciseShotKey identifies the Precise Shot stance ability
const PreciseShotKey = "precise_shot"

// preciseShotHandler implements the Precise Shot stance. While the stance
// is up the actor's attacks stop being cost-metered, ranged accuracy and
// crit multiplier rise with ability level, and the stance drops itself the
// moment the actor stops wielding a ranged weapon.
type preciseShotHandler struct {
	service *service
}

func newPreciseShotHandler(svc *service) Handler {
	return &preciseShotHandler{service: svc}
}

func (h *preciseShotHandler) Key() string {
	return PreciseShotKey
}

func (h *preciseShotHandler) OnActivate(ctx context.Context, act *actor.Actor, state *abilitydef.State) error {
	def, ok := h.service.Definition(PreciseShotKey)
	if !ok {
		return engerr.NotFoundf("ability %q is not defined", PreciseShotKey)
	}

	builder := effects.NewBuilder(def.Name).
		AsMode().
		DeactivateWith(state.Key).
		// Attacks become stance-gated instead of cost-metered
		AddNumBonus(effects.StatAttackCost, -1000).
		AddDamage(0, 0, 5)

	if state.Upgraded() {
		builder.
			AddNumBonus(effects.StatRangedAccuracy, float64(25+act.Level)).
			AddNumBonus(effects.StatCritMultiplier, 1.0)
	} else {
		builder.
			AddNumBonus(effects.StatRangedAccuracy, float64(15+act.Level/2)).
			AddNumBonus(effects.StatCritMultiplier, 0.5)
	}

	builder.OnHeldChanged(h.heldChanged)

	gen := animation.NewParticleGenerator(act.ID, "particles/focus").
		SetPosition(-0.5, -1.5).
		SetParticleSize(0.75, 0.75).
		SetGenRate(6.0).
		SetParticleDuration(0.6)
	builder.WithAnim(gen)

	if err := act.Effects().Apply(builder.Build()); err != nil {
		return engerr.Wrap(err, "failed to apply Precise Shot effect")
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

func (h *preciseShotHandler) OnDeactivate(ctx context.Context, act *actor.Actor, state *abilitydef.State) error {
	return h.service.teardown(act, state)
}

// heldChanged drops the stance when the actor is no longer attacking at
// range. Deactivation removes the effect holding this hook, so the
// message fires at most once per activation.
func (h *preciseShotHandler) heldChanged(ctx context.Context, actorID string) error {
	act, err := h.service.actors.Get(actorID)
	if err != nil {
		return nil
	}
	if act.AttackIsRanged() {
		return nil
	}

	h.service.game.SayLine("Precise Shot Deactivated", actorID)
	return h.service.Deactivate(ctx, actorID, PreciseShotKey)
}
