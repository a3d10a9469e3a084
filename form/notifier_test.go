package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierShowsSingleNotice(t *testing.T) {
	n := NewNotifier(time.Minute)

	first := n.Notify(NoticeInfo, "first")
	second := n.Notify(NoticeError, "second")
	assert.NotEqual(t, first.ID, second.ID)

	current, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, NoticeError, current.Severity)
	assert.Equal(t, "second", current.Message)
}

func TestNotifierAutoDismisses(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)

	n.Notify(NoticeSuccess, "saved")
	_, ok := n.Current()
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestNotifierStaleDismissDoesNotEvictNewerNotice(t *testing.T) {
	n := NewNotifier(time.Minute)

	old := n.Notify(NoticeInfo, "old")
	kept := n.Notify(NoticeWarning, "new")

	// Fire the superseded notice's dismissal by hand, as its timer would have
	// had Notify lost the race to stop it. The ID guard must make it a no-op.
	n.dismiss(old.ID)

	current, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, kept.ID, current.ID)

	// Dismissal with the live ID still clears the slot.
	n.dismiss(kept.ID)
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNotifierDefaultTTL(t *testing.T) {
	n := NewNotifier(0)
	assert.Equal(t, DefaultNoticeTTL, n.ttl)
}
