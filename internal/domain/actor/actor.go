// Package actor models combat entities. Actors are owned by a Registry and
// addressed by stable IDs; other packages request mutations through the
// registry rather than holding long-lived pointers.
package actor

import (
	"sync"

	"github.com/gosaintmrc/sulis/internal/domain/ability"
	"github.com/gosaintmrc/sulis/internal/effects"
	"github.com/gosaintmrc/sulis/internal/uuid"
)

// HeldKind is the category of the actor's currently held weapon
type HeldKind string

const (
	HeldNone         HeldKind = "none"
	HeldMeleeWeapon  HeldKind = "melee"
	HeldRangedWeapon HeldKind = "ranged"
)

// DamageRange is one base damage bucket
type DamageRange struct {
	Min int
	Max int
}

// BaseStats are the actor's stats before effects apply
type BaseStats struct {
	MeleeAccuracy  int
	RangedAccuracy int
	SpellAccuracy  int
	CritMultiplier float64
	AttackCost     int
	Defense        int
	Damage         []DamageRange
}

// Stats is an effective stat snapshot, base stats plus active effect
// bonuses, as an ability script sees them
type Stats struct {
	Level          int
	MeleeAccuracy  int
	RangedAccuracy int
	SpellAccuracy  int
	CritMultiplier float64
	AttackCost     int
	Defense        int
	AttackIsRanged bool
	Damage         []DamageBucket
}

// DamageBucket is one effective damage bucket: base range plus bonuses
type DamageBucket struct {
	Min   int
	Max   int
	Bonus int
}

// Actor is a combat entity
type Actor struct {
	ID    string
	Name  string
	Level int

	base      BaseStats
	held      HeldKind
	effectMgr *effects.Manager
	abilities map[string]*ability.State
	mu        sync.RWMutex
}

// Config holds everything needed to create an actor
type Config struct {
	ID    string
	Name  string
	Level int
	Base  BaseStats
	Held  HeldKind

	// IDGenerator seeds the actor's effect manager; nil uses UUIDs
	IDGenerator uuid.Generator
}

// New creates an actor
func New(cfg Config) *Actor {
	held := cfg.Held
	if held == "" {
		held = HeldNone
	}
	return &Actor{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Level:     cfg.Level,
		base:      cfg.Base,
		held:      held,
		effectMgr: effects.NewManager(cfg.IDGenerator),
		abilities: make(map[string]*ability.State),
	}
}

// Effects returns the actor's effect manager
func (a *Actor) Effects() *effects.Manager {
	return a.effectMgr
}

// Held returns the currently held weapon kind
func (a *Actor) Held() HeldKind {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.held
}

// setHeld updates the held weapon and reports whether it changed. Event
// emission is the registry's job.
func (a *Actor) setHeld(kind HeldKind) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.held == kind {
		return false
	}
	a.held = kind
	return true
}

// AttackIsRanged reports whether the actor's attacks are currently ranged
func (a *Actor) AttackIsRanged() bool {
	return a.Held() == HeldRangedWeapon
}

// GrantAbility gives the actor an ability at the given possession level
func (a *Actor) GrantAbility(key string, level int) *ability.State {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := ability.NewState(key, level)
	a.abilities[key] = state
	return state
}

// AbilityState returns the actor's state for an ability
func (a *Actor) AbilityState(key string) (*ability.State, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	state, ok := a.abilities[key]
	return state, ok
}

// AbilityLevel returns the possession level of an ability: 0 not
// possessed, 1 base, 2 and up with upgrades
func (a *Actor) AbilityLevel(key string) int {
	state, ok := a.AbilityState(key)
	if !ok {
		return 0
	}
	return state.Level
}

// Stats builds the effective stat snapshot. Integer stats truncate
// fractional effect totals, matching the engine's integer stat
// convention.
func (a *Actor) Stats() Stats {
	a.mu.RLock()
	base := a.base
	held := a.held
	a.mu.RUnlock()

	mgr := a.effectMgr
	stats := Stats{
		Level:          a.Level,
		MeleeAccuracy:  base.MeleeAccuracy + int(mgr.NumBonus(effects.StatMeleeAccuracy)),
		RangedAccuracy: base.RangedAccuracy + int(mgr.NumBonus(effects.StatRangedAccuracy)),
		SpellAccuracy:  base.SpellAccuracy + int(mgr.NumBonus(effects.StatSpellAccuracy)),
		CritMultiplier: base.CritMultiplier + mgr.NumBonus(effects.StatCritMultiplier),
		AttackCost:     base.AttackCost + int(mgr.NumBonus(effects.StatAttackCost)),
		Defense:        base.Defense + int(mgr.NumBonus(effects.StatDefense)),
		AttackIsRanged: held == HeldRangedWeapon,
	}

	for i, d := range base.Damage {
		bonus := mgr.DamageBonus(i)
		stats.Damage = append(stats.Damage, DamageBucket{
			Min:   d.Min + bonus.Min,
			Max:   d.Max + bonus.Max,
			Bonus: bonus.Bonus,
		})
	}

	return stats
}
