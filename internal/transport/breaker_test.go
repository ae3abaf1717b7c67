package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitabwire/fabconsole/config"
)

// fakeClock is advanced by hand so state transitions need no sleeps.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(failures, successes int, states *[]BreakerState) (*Breaker, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	b := NewBreaker(config.BreakerConfig{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          time.Minute,
	}, func(s BreakerState) {
		if states != nil {
			*states = append(*states, s)
		}
	})
	b.now = clock.now
	return b, clock
}

func TestNewBreaker_disabled(t *testing.T) {
	b := NewBreaker(config.BreakerConfig{}, nil)
	require.Nil(t, b, "zero FailureThreshold disables the breaker")

	// A nil breaker lets everything through.
	b.RecordFailure()
	assert.NoError(t, b.Allow())
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_opensAfterThreshold(t *testing.T) {
	b, _ := newTestBreaker(3, 1, nil)

	b.RecordFailure()
	b.RecordFailure()
	assert.Equal(t, BreakerClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestBreaker_successResetsFailureCount(t *testing.T) {
	b, _ := newTestBreaker(3, 1, nil)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()

	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_recoversThroughHalfOpen(t *testing.T) {
	var states []BreakerState
	b, clock := newTestBreaker(1, 2, &states)

	b.RecordFailure()
	clock.advance(30 * time.Second)
	require.Error(t, b.Allow(), "still cooling down")

	clock.advance(30 * time.Second)
	require.NoError(t, b.Allow())
	b.RecordSuccess()
	assert.Equal(t, BreakerHalfOpen, b.State())
	b.RecordSuccess()
	assert.Equal(t, BreakerClosed, b.State())

	assert.Equal(t, []BreakerState{BreakerOpen, BreakerHalfOpen, BreakerClosed}, states)
}

func TestBreaker_halfOpenFailureReopens(t *testing.T) {
	b, clock := newTestBreaker(1, 2, nil)

	b.RecordFailure()
	clock.advance(time.Minute)
	_ = b.Allow()
	b.RecordFailure()

	assert.Equal(t, BreakerOpen, b.State())
}

func TestBreakerState_String(t *testing.T) {
	for s, want := range map[BreakerState]string{
		BreakerClosed:   "closed",
		BreakerOpen:     "open",
		BreakerHalfOpen: "half-open",
		BreakerState(9): "unknown",
	} {
		assert.Equal(t, want, s.String())
	}
}
