package transport

import (
	"errors"
	"sync"
	"time"

	"github.com/pitabwire/fabconsole/config"
)

// ErrCircuitOpen is returned without contacting the console while the
// breaker is open.
var ErrCircuitOpen = errors.New("transport: circuit breaker is open")

// BreakerState represents the current state of a circuit breaker.
type BreakerState int

const (
	// BreakerClosed lets every call through and counts consecutive failures.
	BreakerClosed BreakerState = iota
	// BreakerHalfOpen lets probe calls through after the cool-down.
	BreakerHalfOpen
	// BreakerOpen rejects calls until the cool-down has passed.
	BreakerOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Breaker trips after a run of consecutive failures and recovers after a
// number of successful half-open probes. It is safe for concurrent use.
type Breaker struct {
	mu               sync.Mutex
	state            BreakerState
	failures         int
	successes        int
	failureThreshold int
	successThreshold int
	cooldown         time.Duration
	openedAt         time.Time
	now              func() time.Time
	onChange         func(BreakerState)
}

// NewBreaker returns a breaker for cfg, or nil when cfg disables it. A nil
// *Breaker allows every call.
func NewBreaker(cfg config.BreakerConfig, onChange func(BreakerState)) *Breaker {
	if cfg.FailureThreshold <= 0 {
		return nil
	}
	success := cfg.SuccessThreshold
	if success < 1 {
		success = 1
	}
	cooldown := cfg.Timeout
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &Breaker{
		failureThreshold: cfg.FailureThreshold,
		successThreshold: success,
		cooldown:         cooldown,
		now:              time.Now,
		onChange:         onChange,
	}
}

// Allow returns ErrCircuitOpen while the breaker is open.
func (b *Breaker) Allow() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.maybeHalfOpen()
	if b.state == BreakerOpen {
		return ErrCircuitOpen
	}
	return nil
}

// RecordSuccess records a call that reached the console and was not a 5xx.
func (b *Breaker) RecordSuccess() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures = 0
	case BreakerHalfOpen:
		b.successes++
		if b.successes >= b.successThreshold {
			b.failures = 0
			b.successes = 0
			b.setState(BreakerClosed)
		}
	}
}

// RecordFailure records a network error or 5xx response.
func (b *Breaker) RecordFailure() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.trip()
		}
	case BreakerHalfOpen:
		b.trip()
	}
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	if b == nil {
		return BreakerClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maybeHalfOpen()
	return b.state
}

// trip opens the breaker. Must be called with lock held.
func (b *Breaker) trip() {
	b.openedAt = b.now()
	b.successes = 0
	b.setState(BreakerOpen)
}

// maybeHalfOpen moves an expired open breaker to half-open. Must be called
// with lock held.
func (b *Breaker) maybeHalfOpen() {
	if b.state == BreakerOpen && b.now().Sub(b.openedAt) >= b.cooldown {
		b.successes = 0
		b.setState(BreakerHalfOpen)
	}
}

func (b *Breaker) setState(s BreakerState) {
	if b.state == s {
		return
	}
	b.state = s
	if b.onChange != nil {
		b.onChange(s)
	}
}
