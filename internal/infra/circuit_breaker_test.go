package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream timeout")

func cbRapido() *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      20 * time.Millisecond,
	})
}

func TestCircuitBreakerAbreAposFalhasConsecutivas(t *testing.T) {
	cb := cbRapido()

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errUpstream })
		assert.ErrorIs(t, err, errUpstream)
	}
	assert.Equal(t, CBOpen, cb.State())

	// fast-fail without invoking fn
	chamado := false
	err := cb.Execute(func() error { chamado = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, chamado)
}

func TestCircuitBreakerSucessoZeraContagem(t *testing.T) {
	cb := cbRapido()

	require.Error(t, cb.Execute(func() error { return errUpstream }))
	require.Error(t, cb.Execute(func() error { return errUpstream }))
	require.NoError(t, cb.Execute(func() error { return nil }))

	// counter reset: two more failures must not trip it
	require.Error(t, cb.Execute(func() error { return errUpstream }))
	require.Error(t, cb.Execute(func() error { return errUpstream }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerRecuperacao(t *testing.T) {
	cb := cbRapido()

	for i := 0; i < 3; i++ {
		require.Error(t, cb.Execute(func() error { return errUpstream }))
	}
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())

	// probe fails → open again, cooldown restarts
	require.ErrorIs(t, cb.Execute(func() error { return errUpstream }), errUpstream)
	assert.Equal(t, CBOpen, cb.State())

	time.Sleep(25 * time.Millisecond)
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerEstadoLegivel(t *testing.T) {
	assert.Equal(t, "closed", CBClosed.String())
	assert.Equal(t, "open", CBOpen.String())
	assert.Equal(t, "half-open", CBHalfOpen.String())
	assert.Equal(t, "unknown", CBState(9).String())
}
