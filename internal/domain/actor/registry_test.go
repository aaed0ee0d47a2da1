package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosaintmrc/sulis/internal/errors"
	"github.com/gosaintmrc/sulis/internal/events"
)

type countingListener struct {
	events []*events.GameEvent
}

func (l *countingListener) HandleEvent(event *events.GameEvent) error {
	l.events = append(l.events, event)
	return nil
}

func (l *countingListener) Priority() int { return 0 }

func TestRegistry_AddGet(t *testing.T) {
	registry := NewRegistry(events.NewEventBus())

	a := testActor()
	require.NoError(t, registry.Add(a))

	got, err := registry.Get("archer-1")
	require.NoError(t, err)
	assert.Same(t, a, got)

	t.Run("duplicate ID is rejected", func(t *testing.T) {
		err := registry.Add(testActor())
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("unknown ID is not found", func(t *testing.T) {
		_, err := registry.Get("nobody")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("nil and unidentified actors are rejected", func(t *testing.T) {
		assert.True(t, errors.IsInvalidArgument(registry.Add(nil)))
		assert.True(t, errors.IsInvalidArgument(registry.Add(New(Config{}))))
	})
}

func TestRegistry_SetHeld(t *testing.T) {
	bus := events.NewEventBus()
	listener := &countingListener{}
	bus.Subscribe(events.OnHeldChanged, listener)

	registry := NewRegistry(bus)
	require.NoError(t, registry.Add(testActor()))

	t.Run("change emits one held-changed event", func(t *testing.T) {
		require.NoError(t, registry.SetHeld("archer-1", HeldMeleeWeapon))

		require.Len(t, listener.events, 1)
		event := listener.events[0]
		assert.Equal(t, events.OnHeldChanged, event.Type)
		assert.Equal(t, "archer-1", event.ActorID)

		held, ok := event.GetContext("held")
		require.True(t, ok)
		assert.Equal(t, "melee", held)
	})

	t.Run("setting the same kind emits nothing", func(t *testing.T) {
		require.NoError(t, registry.SetHeld("archer-1", HeldMeleeWeapon))
		assert.Len(t, listener.events, 1)
	})

	t.Run("unknown actor errors", func(t *testing.T) {
		err := registry.SetHeld("nobody", HeldRangedWeapon)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
