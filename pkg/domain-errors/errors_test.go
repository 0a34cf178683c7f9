package domainerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := New(CodeTripNotFound, "trip 7 not found")
		assert.True(t, HasCode(err, CodeTripNotFound))
		assert.False(t, HasCode(err, CodeClientNotFound))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("register: %w", New(CodeDuplicateIdentity, "pesel taken"))
		assert.True(t, Is(err, CodeDuplicateIdentity))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})

	t.Run("nil error has no code", func(t *testing.T) {
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(context.Canceled, CodeCanceled, "registration aborted")

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, CodeCanceled, CodeOf(err))
	assert.Equal(t, "registration aborted: context canceled", err.Error())
}

func TestErrorMessageWithoutCause(t *testing.T) {
	err := New(CodeAlreadyRegistered, "client already registered")
	assert.Equal(t, "client already registered", err.Error())
	assert.NoError(t, err.Unwrap())
}
