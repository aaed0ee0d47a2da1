// Package effects implements the status-effect bundles that abilities and
// items attach to actors: numeric stat bonuses, damage bucket bonuses, an
// optional visual descriptor, and an optional held-changed hook.
package effects

import (
	"context"
	"time"

	"github.com/gosaintmrc/sulis/internal/animation"
)

// Stat names a numeric combat stat an effect can modify. The set mirrors
// the actor's character-sheet stats.
type Stat string

const (
	StatMeleeAccuracy  Stat = "melee_accuracy"
	StatRangedAccuracy Stat = "ranged_accuracy"
	StatSpellAccuracy  Stat = "spell_accuracy"
	StatCritMultiplier Stat = "crit_multiplier"
	StatAttackCost     Stat = "attack_cost"
	StatDefense        Stat = "defense"
	StatMovementRate   Stat = "movement_rate"
)

// DamageBonus is a bonus applied to one of the actor's damage buckets.
// Min/Max widen the damage range; Bonus is a flat addition.
type DamageBonus struct {
	Min   int
	Max   int
	Bonus int
}

// HeldChangedFunc reacts to the owning actor changing held items. The hook
// lives as long as the effect it is attached to.
type HeldChangedFunc func(ctx context.Context, actorID string) error

// Effect is a bundle of stat modifiers attached to an actor. Effects are
// owned by the actor's effect manager and addressed by ID.
type Effect struct {
	// ID is assigned by the manager on apply if empty
	ID   string
	Name string

	// DeactivatesWith couples the effect's lifetime to an ability key:
	// deactivating that ability removes the effect. Empty means the effect
	// is managed some other way (item, condition).
	DeactivatesWith string

	// Mode marks a stance effect. At most one mode may be active on an
	// actor at a time.
	Mode bool

	// NumBonuses maps stat name to bonus amount
	NumBonuses map[Stat]float64

	// Damage holds per-bucket damage bonuses, indexed by bucket
	Damage []DamageBonus

	// Anim is an optional cosmetic particle descriptor
	Anim *animation.ParticleGenerator

	// OnHeldChanged is an optional hook fired when the owning actor's held
	// items change
	OnHeldChanged HeldChangedFunc

	CreatedAt time.Time
}

// NumBonus returns the bonus this effect applies to a stat
func (e *Effect) NumBonus(stat Stat) float64 {
	return e.NumBonuses[stat]
}

// DamageAt returns the damage bonus for a bucket, zero if none
func (e *Effect) DamageAt(bucket int) DamageBonus {
	if bucket < 0 || bucket >= len(e.Damage) {
		return DamageBonus{}
	}
	return e.Damage[bucket]
}
