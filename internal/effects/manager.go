package effects

import (
	"sync"
	"time"

	"github.com/gosaintmrc/sulis/internal/errors"
	"github.com/gosaintmrc/sulis/internal/uuid"
)

// Manager owns the active effects of a single actor. Mutation goes through
// Apply and the Remove variants; readers get aggregated bonuses.
type Manager struct {
	effects map[string]*Effect
	idGen   uuid.Generator
	mu      sync.RWMutex
}

// NewManager creates an effect manager for one actor
func NewManager(idGen uuid.Generator) *Manager {
	if idGen == nil {
		idGen = uuid.NewGoogleUUIDGenerator()
	}
	return &Manager{
		effects: make(map[string]*Effect),
		idGen:   idGen,
	}
}

// Apply commits an effect to the actor's active set. Applying a second mode
// while one is active is rejected; callers must deactivate the current mode
// first.
func (m *Manager) Apply(effect *Effect) error {
	if effect == nil {
		return errors.InvalidArgument("effect cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if effect.Mode {
		for _, existing := range m.effects {
			if existing.Mode {
				return errors.FailedPreconditionf(
					"mode %q is already active", existing.Name)
			}
		}
	}

	if effect.ID == "" {
		effect.ID = m.idGen.New()
	}
	effect.CreatedAt = time.Now()
	m.effects[effect.ID] = effect

	return nil
}

// Remove removes an effect by ID and returns it, nil if absent
func (m *Manager) Remove(id string) *Effect {
	m.mu.Lock()
	defer m.mu.Unlock()

	effect, ok := m.effects[id]
	if !ok {
		return nil
	}
	delete(m.effects, id)
	return effect
}

// RemoveByAbility removes all effects lifetime-coupled to the given ability
// key and returns them
func (m *Manager) RemoveByAbility(abilityKey string) []*Effect {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []*Effect
	for id, effect := range m.effects {
		if effect.DeactivatesWith == abilityKey {
			removed = append(removed, effect)
			delete(m.effects, id)
		}
	}
	return removed
}

// Active returns the active effects
func (m *Manager) Active() []*Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := make([]*Effect, 0, len(m.effects))
	for _, effect := range m.effects {
		active = append(active, effect)
	}
	return active
}

// ActiveMode returns the active mode effect, nil if none
func (m *Manager) ActiveMode() *Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, effect := range m.effects {
		if effect.Mode {
			return effect
		}
	}
	return nil
}

// NumBonus returns the total bonus all active effects apply to a stat
func (m *Manager) NumBonus(stat Stat) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, effect := range m.effects {
		total += effect.NumBonus(stat)
	}
	return total
}

// DamageBonus returns the summed damage bonus for a bucket
func (m *Manager) DamageBonus(bucket int) DamageBonus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total DamageBonus
	for _, effect := range m.effects {
		d := effect.DamageAt(bucket)
		total.Min += d.Min
		total.Max += d.Max
		total.Bonus += d.Bonus
	}
	return total
}

// HeldChangedHooks returns the held-changed hooks of all active effects.
// The slice is a snapshot; hooks may remove effects while running.
func (m *Manager) HeldChangedHooks() []HeldChangedFunc {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hooks []HeldChangedFunc
	for _, effect := range m.effects {
		if effect.OnHeldChanged != nil {
			hooks = append(hooks, effect.OnHeldChanged)
		}
	}
	return hooks
}
