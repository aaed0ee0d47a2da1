// Package ability holds static ability definitions and the per-actor
// activation state of each ability.
package ability

// Definition is the static, content-defined part of an ability
type Definition struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`

	// Mode marks a stance ability: its effect is a mode, mutually
	// exclusive with other modes on the same actor
	Mode bool `yaml:"mode"`

	// ActivateSFX is the sound resource played on activation
	ActivateSFX string `yaml:"activate_sfx"`

	// MaxLevel is the highest proficiency level, base level plus upgrades
	MaxLevel int `yaml:"max_level"`
}

// State is the per-actor runtime state of one ability. Level follows the
// possession convention: 0 not possessed, 1 base ability, 2 and up with
// upgrades.
type State struct {
	Key    string
	Level  int
	Active bool
}

// NewState creates ability state at the given possession level
func NewState(key string, level int) *State {
	return &State{
		Key:   key,
		Level: level,
	}
}

// Possessed reports whether the actor has the ability at all
func (s *State) Possessed() bool {
	return s.Level > 0
}

// Upgraded reports whether the actor has at least one upgrade past the
// base ability
func (s *State) Upgraded() bool {
	return s.Level > 1
}

// Activate marks the ability active
func (s *State) Activate() {
	s.Active = true
}

// Deactivate marks the ability inactive
func (s *State) Deactivate() {
	s.Active = false
}
