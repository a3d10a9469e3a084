package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitGuardSingleFlight(t *testing.T) {
	g := NewSubmitGuard(time.Minute)

	require.True(t, g.Begin())
	assert.True(t, g.Busy())
	assert.False(t, g.Begin(), "second Begin while busy must refuse")

	g.Finish()
	assert.False(t, g.Busy())
	assert.True(t, g.Begin(), "Begin after Finish must succeed")
	g.Finish()
}

func TestSubmitGuardSafetyTimerReenables(t *testing.T) {
	g := NewSubmitGuard(20 * time.Millisecond)

	require.True(t, g.Begin())
	assert.Eventually(t, func() bool { return !g.Busy() }, time.Second, 5*time.Millisecond)
}

func TestSubmitGuardFinishCancelsTimer(t *testing.T) {
	g := NewSubmitGuard(100 * time.Millisecond)

	// First submission finishes partway through its safety window; a second
	// one starts immediately. The first timer's original deadline passes
	// while the second submission is still in flight and must not clear it.
	require.True(t, g.Begin())
	time.Sleep(60 * time.Millisecond)
	g.Finish()
	require.True(t, g.Begin())

	time.Sleep(60 * time.Millisecond)
	assert.True(t, g.Busy(), "stale timer must not re-enable a newer submission")
	g.Finish()
}
