package ability

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosaintmrc/sulis/internal/domain/actor"
	"github.com/gosaintmrc/sulis/internal/effects"
	"github.com/gosaintmrc/sulis/internal/events"
)

func TestPreciseShot_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("upgraded archer gets the full stance", func(t *testing.T) {
		h := newHarness(t)
		archer := h.addArcher(t, 10, 2)
		h.game.EXPECT().PlaySFX("sfx_draw_bow")

		require.NoError(t, h.svc.Activate(ctx, "archer-1", PreciseShotKey))

		state, ok := archer.AbilityState(PreciseShotKey)
		require.True(t, ok)
		assert.True(t, state.Active)

		stats := archer.Stats()
		assert.Equal(t, 105, stats.RangedAccuracy, "base 70 + 25 + level 10")
		assert.InDelta(t, 2.5, stats.CritMultiplier, 0.001, "base 1.5 + 1.0")
		assert.Equal(t, 1000, stats.AttackCost, "base 2000 - 1000")
		require.Len(t, stats.Damage, 1)
		assert.Equal(t, actor.DamageBucket{Min: 8, Max: 14, Bonus: 5}, stats.Damage[0])

		mode := archer.Effects().ActiveMode()
		require.NotNil(t, mode)
		assert.Equal(t, "Precise Shot", mode.Name)
		assert.Equal(t, PreciseShotKey, mode.DeactivatesWith)
		assert.NotNil(t, mode.OnHeldChanged)
		require.NotNil(t, mode.Anim)
		assert.Equal(t, "archer-1", mode.Anim.ParentID)
	})

	t.Run("accuracy and crit follow the level branch", func(t *testing.T) {
		tests := []struct {
			actorLevel   int
			abilityLevel int
			wantAccuracy int
			wantCrit     float64
		}{
			{actorLevel: 10, abilityLevel: 2, wantAccuracy: 25 + 10, wantCrit: 1.0},
			{actorLevel: 9, abilityLevel: 2, wantAccuracy: 25 + 9, wantCrit: 1.0},
			{actorLevel: 10, abilityLevel: 1, wantAccuracy: 15 + 5, wantCrit: 0.5},
			// Odd levels truncate: 9/2 == 4
			{actorLevel: 9, abilityLevel: 1, wantAccuracy: 15 + 4, wantCrit: 0.5},
			{actorLevel: 1, abilityLevel: 1, wantAccuracy: 15 + 0, wantCrit: 0.5},
		}

		for _, tt := range tests {
			name := fmt.Sprintf("level %d ability %d", tt.actorLevel, tt.abilityLevel)
			t.Run(name, func(t *testing.T) {
				h := newHarness(t)
				archer := h.addArcher(t, tt.actorLevel, tt.abilityLevel)
				h.game.EXPECT().PlaySFX("sfx_draw_bow")

				require.NoError(t, h.svc.Activate(ctx, "archer-1", PreciseShotKey))

				mode := archer.Effects().ActiveMode()
				require.NotNil(t, mode)
				assert.InDelta(t, float64(tt.wantAccuracy),
					mode.NumBonus(effects.StatRangedAccuracy), 0.001)
				assert.InDelta(t, tt.wantCrit,
					mode.NumBonus(effects.StatCritMultiplier), 0.001)
				// Branch-independent pieces
				assert.InDelta(t, -1000.0,
					mode.NumBonus(effects.StatAttackCost), 0.001)
				assert.Equal(t, effects.DamageBonus{Min: 0, Max: 0, Bonus: 5},
					mode.DamageAt(0))
			})
		}
	})
}

func TestPreciseShot_HeldChangedReaction(t *testing.T) {
	ctx := context.Background()

	t.Run("leaving ranged mode drops the stance with one message", func(t *testing.T) {
		h := newHarness(t)
		archer := h.addArcher(t, 10, 2)
		h.game.EXPECT().PlaySFX("sfx_draw_bow")
		h.game.EXPECT().SayLine("Precise Shot Deactivated", "archer-1").Times(1)

		require.NoError(t, h.svc.Activate(ctx, "archer-1", PreciseShotKey))
		require.NoError(t, h.actors.SetHeld("archer-1", actor.HeldMeleeWeapon))

		state, ok := archer.AbilityState(PreciseShotKey)
		require.True(t, ok)
		assert.False(t, state.Active)
		assert.Nil(t, archer.Effects().ActiveMode())

		stats := archer.Stats()
		assert.Equal(t, 70, stats.RangedAccuracy)
		assert.Equal(t, 2000, stats.AttackCost)
		assert.InDelta(t, 1.5, stats.CritMultiplier, 0.001)

		// Further weapon swaps find no hook and say nothing more
		require.NoError(t, h.actors.SetHeld("archer-1", actor.HeldRangedWeapon))
		require.NoError(t, h.actors.SetHeld("archer-1", actor.HeldMeleeWeapon))
	})

	t.Run("held change while still ranged is a no-op", func(t *testing.T) {
		h := newHarness(t)
		archer := h.addArcher(t, 10, 2)
		h.game.EXPECT().PlaySFX("sfx_draw_bow")

		require.NoError(t, h.svc.Activate(ctx, "archer-1", PreciseShotKey))

		// The host may announce a held change that keeps the actor ranged
		// (e.g. swapping one bow for another)
		require.NoError(t, h.bus.Emit(
			events.NewGameEvent(events.OnHeldChanged, "archer-1")))

		state, ok := archer.AbilityState(PreciseShotKey)
		require.True(t, ok)
		assert.True(t, state.Active)
		assert.NotNil(t, archer.Effects().ActiveMode())
	})

	t.Run("unarmed counts as not ranged", func(t *testing.T) {
		h := newHarness(t)
		archer := h.addArcher(t, 10, 1)
		h.game.EXPECT().PlaySFX("sfx_draw_bow")
		h.game.EXPECT().SayLine("Precise Shot Deactivated", "archer-1").Times(1)

		require.NoError(t, h.svc.Activate(ctx, "archer-1", PreciseShotKey))
		require.NoError(t, h.actors.SetHeld("archer-1", actor.HeldNone))

		state, ok := archer.AbilityState(PreciseShotKey)
		require.True(t, ok)
		assert.False(t, state.Active)
	})
}
