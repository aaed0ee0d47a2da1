package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("preserves the code of a coded error", func(t *testing.T) {
		cause := NotFound("actor archer-1 not found")
		wrapped := Wrap(cause, "failed to activate ability")

		assert.True(t, IsNotFound(wrapped))
		assert.Equal(t, "failed to activate ability: actor archer-1 not found", wrapped.Error())
		assert.ErrorIs(t, wrapped, cause)
	})

	t.Run("foreign errors become unknown", func(t *testing.T) {
		cause := stderrors.New("disk on fire")
		wrapped := Wrap(cause, "failed to load content")

		assert.Equal(t, CodeUnknown, GetCode(wrapped))
		assert.ErrorIs(t, wrapped, cause)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		require.Nil(t, Wrap(nil, "nothing happened"))
		require.Nil(t, Wrapf(nil, "nothing %s", "here"))
	})
}

func TestCodeChecks(t *testing.T) {
	assert.True(t, IsInvalidArgument(InvalidArgument("bad input")))
	assert.True(t, IsAlreadyExists(AlreadyExists("already active")))
	assert.True(t, IsFailedPrecondition(FailedPreconditionf("mode %q is up", "Precise Shot")))
	assert.True(t, Is(Internal("boom"), CodeInternal))

	assert.False(t, IsNotFound(stderrors.New("plain")))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, CodeNotFound, GetCode(NotFoundf("actor %s not found", "x")))
}
