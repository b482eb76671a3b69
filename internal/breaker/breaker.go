// Package breaker implements a per-service circuit breaker as an explicit
// closed / open / half-open state machine with an injectable clock.
package breaker

import (
	"errors"
	"sync"
	"time"

	"github.com/bluberry/bluberry/internal/metrics"
)

// ErrOpen is returned by Allow while the circuit rejects calls.
var ErrOpen = errors.New("circuit open")

// State is the breaker state.
type State int

// Breaker states.
const (
	Closed State = iota
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// Breaker trips open after threshold consecutive failures, rejects calls for
// cooldown, then lets a single trial call through. A successful trial closes
// the circuit; a failed one reopens it.
type Breaker struct {
	name      string
	threshold int
	cooldown  time.Duration
	nowFunc   func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(b *Breaker) {
		b.nowFunc = f
	}
}

// New creates a closed breaker for the named service.
func New(name string, threshold int, cooldown time.Duration, opts ...Option) *Breaker {
	if threshold < 1 {
		threshold = 1
	}
	b := &Breaker{
		name:      name,
		threshold: threshold,
		cooldown:  cooldown,
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	metrics.BreakerState.WithLabelValues(name).Set(float64(Closed))
	return b
}

// Name returns the service name the breaker guards.
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current state, moving open to half-open once the
// cooldown has elapsed.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.advanceLocked()
	return b.state
}

// Allow reports whether a call may proceed. Every allowed call must be
// followed by exactly one Success or Failure.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.advanceLocked()

	switch b.state {
	case Open:
		return ErrOpen
	case HalfOpen:
		if b.probing {
			return ErrOpen
		}
		b.probing = true
	}
	return nil
}

// Success records a successful call.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.probing = false
	if b.state != Closed {
		b.setLocked(Closed)
	}
}

// Failure records a failed call.
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probing = false
	switch b.state {
	case HalfOpen:
		b.tripLocked()
	case Closed:
		b.failures++
		if b.failures >= b.threshold {
			b.tripLocked()
		}
	}
}

func (b *Breaker) advanceLocked() {
	if b.state == Open && !b.nowFunc().Before(b.openedAt.Add(b.cooldown)) {
		b.setLocked(HalfOpen)
	}
}

func (b *Breaker) tripLocked() {
	b.failures = 0
	b.openedAt = b.nowFunc()
	b.setLocked(Open)
}

func (b *Breaker) setLocked(s State) {
	b.state = s
	metrics.BreakerState.WithLabelValues(b.name).Set(float64(s))
}
