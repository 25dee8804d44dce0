package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	clock := start
	l := NewLimiter(DefaultWindow, DefaultLimit)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestLimiterFixedWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("fourth request within window denied", func(t *testing.T) {
		l, clock := newTestLimiter(start)

		require.True(t, l.CheckAndRecord("6281234567890"))
		*clock = clock.Add(time.Minute)
		require.True(t, l.CheckAndRecord("6281234567890"))
		*clock = clock.Add(time.Minute)
		require.True(t, l.CheckAndRecord("6281234567890"))
		*clock = clock.Add(time.Minute)
		require.False(t, l.CheckAndRecord("6281234567890"))
	})

	t.Run("denied request does not consume a slot", func(t *testing.T) {
		l, _ := newTestLimiter(start)

		for i := 0; i < 3; i++ {
			require.True(t, l.CheckAndRecord("62811"))
		}
		require.False(t, l.CheckAndRecord("62811"))
		require.False(t, l.CheckAndRecord("62811"))
		require.Equal(t, 3, l.records["62811"].count)
	})

	t.Run("window resets after expiry", func(t *testing.T) {
		l, clock := newTestLimiter(start)

		for i := 0; i < 3; i++ {
			require.True(t, l.CheckAndRecord("62812"))
		}
		require.False(t, l.CheckAndRecord("62812"))

		// 5 minutes + 1 second after the first request of the window.
		*clock = start.Add(DefaultWindow + time.Second)
		require.True(t, l.CheckAndRecord("62812"))
		require.Equal(t, 1, l.records["62812"].count)
		require.Equal(t, *clock, l.records["62812"].windowStart)
	})

	t.Run("identities are independent", func(t *testing.T) {
		l, _ := newTestLimiter(start)

		for i := 0; i < 3; i++ {
			require.True(t, l.CheckAndRecord("62813"))
		}
		require.False(t, l.CheckAndRecord("62813"))
		require.True(t, l.CheckAndRecord("62814"))
	})
}

func TestLimiterSweep(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	l, clock := newTestLimiter(start)

	require.True(t, l.CheckAndRecord("62815"))
	*clock = clock.Add(2 * time.Minute)
	require.True(t, l.CheckAndRecord("62816"))

	// Only the first record's window has expired.
	*clock = start.Add(DefaultWindow + time.Second)
	require.Equal(t, 1, l.sweep())
	require.Equal(t, 1, l.size())

	_, stillThere := l.records["62816"]
	require.True(t, stillThere)
}
