package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingListener records the order it fires in
type recordingListener struct {
	name     string
	priority int
	order    *[]string
	err      error
	cancel   bool
}

func (l *recordingListener) HandleEvent(event *GameEvent) error {
	*l.order = append(*l.order, l.name)
	if l.cancel {
		event.Cancel()
	}
	return l.err
}

func (l *recordingListener) Priority() int {
	return l.priority
}

func TestEventBus_Emit(t *testing.T) {
	t.Run("fires listeners in priority order", func(t *testing.T) {
		bus := NewEventBus()
		var order []string

		bus.Subscribe(OnHeldChanged, &recordingListener{name: "late", priority: 200, order: &order})
		bus.Subscribe(OnHeldChanged, &recordingListener{name: "early", priority: 10, order: &order})
		bus.Subscribe(OnHeldChanged, &recordingListener{name: "mid", priority: 100, order: &order})

		require.NoError(t, bus.Emit(NewGameEvent(OnHeldChanged, "actor-1")))
		assert.Equal(t, []string{"early", "mid", "late"}, order)
	})

	t.Run("only matching event type fires", func(t *testing.T) {
		bus := NewEventBus()
		var order []string

		bus.Subscribe(OnHeldChanged, &recordingListener{name: "held", order: &order})
		bus.Subscribe(OnStatusApplied, &recordingListener{name: "status", order: &order})

		require.NoError(t, bus.Emit(NewGameEvent(OnStatusApplied, "actor-1")))
		assert.Equal(t, []string{"status"}, order)
	})

	t.Run("cancellation stops propagation", func(t *testing.T) {
		bus := NewEventBus()
		var order []string

		bus.Subscribe(OnHeldChanged, &recordingListener{name: "first", priority: 1, order: &order, cancel: true})
		bus.Subscribe(OnHeldChanged, &recordingListener{name: "second", priority: 2, order: &order})

		require.NoError(t, bus.Emit(NewGameEvent(OnHeldChanged, "actor-1")))
		assert.Equal(t, []string{"first"}, order)
	})

	t.Run("listener error stops dispatch and propagates", func(t *testing.T) {
		bus := NewEventBus()
		var order []string

		bus.Subscribe(OnHeldChanged, &recordingListener{name: "boom", priority: 1, order: &order, err: assert.AnError})
		bus.Subscribe(OnHeldChanged, &recordingListener{name: "after", priority: 2, order: &order})

		err := bus.Emit(NewGameEvent(OnHeldChanged, "actor-1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, []string{"boom"}, order)
	})

	t.Run("nil event is rejected", func(t *testing.T) {
		bus := NewEventBus()
		assert.Error(t, bus.Emit(nil))
	})

	t.Run("no listeners is fine", func(t *testing.T) {
		bus := NewEventBus()
		assert.NoError(t, bus.Emit(NewGameEvent(OnTurnStart, "actor-1")))
	})
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	var order []string

	listener := &recordingListener{name: "once", order: &order}
	bus.Subscribe(OnHeldChanged, listener)
	require.Equal(t, 1, bus.ListenerCount(OnHeldChanged))

	require.NoError(t, bus.Emit(NewGameEvent(OnHeldChanged, "actor-1")))
	bus.Unsubscribe(OnHeldChanged, listener)
	require.NoError(t, bus.Emit(NewGameEvent(OnHeldChanged, "actor-1")))

	assert.Equal(t, []string{"once"}, order)
	assert.Zero(t, bus.ListenerCount(OnHeldChanged))
}

func TestEventBus_Clear(t *testing.T) {
	bus := NewEventBus()
	var order []string

	bus.Subscribe(OnHeldChanged, &recordingListener{name: "held", order: &order})
	bus.Subscribe(OnStatusApplied, &recordingListener{name: "status", order: &order})
	require.Equal(t, 1, bus.ListenerCount(OnHeldChanged))

	bus.Clear()

	assert.Zero(t, bus.ListenerCount(OnHeldChanged))
	assert.Zero(t, bus.ListenerCount(OnStatusApplied))
	require.NoError(t, bus.Emit(NewGameEvent(OnHeldChanged, "actor-1")))
	assert.Empty(t, order)
}

func TestGameEvent_Context(t *testing.T) {
	event := NewGameEvent(OnHeldChanged, "actor-1").
		WithContext("held", "melee")

	held, ok := event.GetContext("held")
	require.True(t, ok)
	assert.Equal(t, "melee", held)

	_, ok = event.GetContext("missing")
	assert.False(t, ok)
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "OnHeldChanged", OnHeldChanged.String())
	assert.Equal(t, "OnModeDeactivated", OnModeDeactivated.String())
	assert.Equal(t, "Unknown", EventType(99).String())
}
