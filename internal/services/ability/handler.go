package ability

import (
	"context"

	abilitydef "github.com/gosaintmrc/sulis/internal/domain/ability"
	"github.com/gosaintmrc/sulis/internal/domain/actor"
)

// Handler implements one ability's behavior. Handlers are the Go
// counterpart of per-ability content scripts: the engine discovers them by
// key and invokes the fixed entry points.
type Handler interface {
	// Key returns the unique identifier for this ability (e.g. "precise_shot")
	Key() string

	// OnActivate performs the ability's activation: build and apply its
	// effects, trigger presentation, mark the ability active
	OnActivate(ctx context.Context, act *actor.Actor, state *abilitydef.State) error

	// OnDeactivate tears the ability down. Most handlers delegate straight
	// to the engine's deactivation primitive.
	OnDeactivate(ctx context.Context, act *actor.Actor, state *abilitydef.State) error
}
