package effects

import (
	"github.com/gosaintmrc/sulis/internal/animation"
)

// Builder constructs effects in the order ability scripts describe them
type Builder struct {
	effect *Effect
}

// NewBuilder creates a builder for a named effect
func NewBuilder(name string) *Builder {
	return &Builder{
		effect: &Effect{
			Name:       name,
			NumBonuses: make(map[Stat]float64),
		},
	}
}

// AsMode marks the effect as a stance-governing mode
func (b *Builder) AsMode() *Builder {
	b.effect.Mode = true
	return b
}

// DeactivateWith couples the effect's lifetime to an ability: when the
// ability deactivates, the effect is removed
func (b *Builder) DeactivateWith(abilityKey string) *Builder {
	b.effect.DeactivatesWith = abilityKey
	return b
}

// AddNumBonus adds a numeric bonus to a stat. Repeated calls for the same
// stat accumulate.
func (b *Builder) AddNumBonus(stat Stat, amount float64) *Builder {
	b.effect.NumBonuses[stat] += amount
	return b
}

// AddDamage appends a damage bonus for the next bucket index
func (b *Builder) AddDamage(min, max, bonus int) *Builder {
	b.effect.Damage = append(b.effect.Damage, DamageBonus{
		Min:   min,
		Max:   max,
		Bonus: bonus,
	})
	return b
}

// OnHeldChanged attaches a hook fired when the owning actor's held items
// change
func (b *Builder) OnHeldChanged(fn HeldChangedFunc) *Builder {
	b.effect.OnHeldChanged = fn
	return b
}

// WithAnim attaches a cosmetic particle descriptor
func (b *Builder) WithAnim(gen *animation.ParticleGenerator) *Builder {
	b.effect.Anim = gen
	return b
}

// Build returns the constructed effect
func (b *Builder) Build() *Effect {
	return b.effect
}
