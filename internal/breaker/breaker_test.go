package breaker_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluberry/bluberry/internal/breaker"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestBreaker(t *testing.T, threshold int) (*breaker.Breaker, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := breaker.New("test-"+t.Name(), threshold, time.Minute, breaker.WithNowFunc(clock.Now))
	return b, clock
}

func TestBreaker_TripsAfterThreshold(t *testing.T) {
	t.Parallel()

	b, _ := newTestBreaker(t, 3)

	for range 2 {
		require.NoError(t, b.Allow())
		b.Failure()
	}
	assert.Equal(t, breaker.Closed, b.State())

	require.NoError(t, b.Allow())
	b.Failure()

	assert.Equal(t, breaker.Open, b.State())
	assert.ErrorIs(t, b.Allow(), breaker.ErrOpen)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	t.Parallel()

	b, _ := newTestBreaker(t, 2)

	require.NoError(t, b.Allow())
	b.Failure()
	require.NoError(t, b.Allow())
	b.Success()
	require.NoError(t, b.Allow())
	b.Failure()

	assert.Equal(t, breaker.Closed, b.State())
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		trialOK   bool
		wantState breaker.State
	}{
		{name: "successful trial closes", trialOK: true, wantState: breaker.Closed},
		{name: "failed trial reopens", trialOK: false, wantState: breaker.Open},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, clock := newTestBreaker(t, 1)

			require.NoError(t, b.Allow())
			b.Failure()
			require.Equal(t, breaker.Open, b.State())

			clock.Advance(59 * time.Second)
			assert.ErrorIs(t, b.Allow(), breaker.ErrOpen)

			clock.Advance(time.Second)
			assert.Equal(t, breaker.HalfOpen, b.State())

			require.NoError(t, b.Allow())
			// Only one trial at a time.
			assert.ErrorIs(t, b.Allow(), breaker.ErrOpen)

			if tt.trialOK {
				b.Success()
			} else {
				b.Failure()
			}
			assert.Equal(t, tt.wantState, b.State())
		})
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "closed", breaker.Closed.String())
	assert.Equal(t, "open", breaker.Open.String())
	assert.Equal(t, "half_open", breaker.HalfOpen.String())
	assert.Equal(t, "unknown", breaker.State(42).String())
}
