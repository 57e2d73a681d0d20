package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit-app/backend/internal/domain"
)

func reconstructAt(status Status, start, end time.Time) *Booking {
	return Reconstruct(1, start, end, status, testItem, testBooker)
}

func TestParseState_AcceptsKnownTokens(t *testing.T) {
	for _, token := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		state, err := ParseState(token)
		require.NoError(t, err)
		assert.Equal(t, State(token), state)
	}
}

func TestParseState_RejectsUnknownAndLowercaseTokens(t *testing.T) {
	for _, token := range []string{"all", "Current", "UNKNOWN", ""} {
		_, err := ParseState(token)
		require.Error(t, err, "token %q", token)
		assert.EqualError(t, err, "Unknown state: "+token)
		k, ok := domain.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindInvalidState, k)
	}
}

func TestState_TimeClassification(t *testing.T) {
	now := time.Now().UTC()
	past := reconstructAt(StatusApproved, now.Add(-3*time.Hour), now.Add(-time.Hour))
	current := reconstructAt(StatusApproved, now.Add(-time.Hour), now.Add(time.Hour))
	future := reconstructAt(StatusApproved, now.Add(time.Hour), now.Add(3*time.Hour))

	assert.True(t, StatePast.Matches(past, now))
	assert.False(t, StatePast.Matches(current, now))
	assert.False(t, StatePast.Matches(future, now))

	assert.True(t, StateCurrent.Matches(current, now))
	assert.False(t, StateCurrent.Matches(past, now))
	assert.False(t, StateCurrent.Matches(future, now))

	assert.True(t, StateFuture.Matches(future, now))
	assert.False(t, StateFuture.Matches(past, now))
	assert.False(t, StateFuture.Matches(current, now))

	for _, b := range []*Booking{past, current, future} {
		assert.True(t, StateAll.Matches(b, now))
	}
}

// A booking is CURRENT from its start instant up to but excluding its end
// instant, so the three time buckets never overlap.
func TestState_BoundaryInstants(t *testing.T) {
	now := time.Now().UTC()

	startingNow := reconstructAt(StatusApproved, now, now.Add(time.Hour))
	assert.True(t, StateCurrent.Matches(startingNow, now))
	assert.False(t, StateFuture.Matches(startingNow, now))

	endingNow := reconstructAt(StatusApproved, now.Add(-time.Hour), now)
	assert.False(t, StateCurrent.Matches(endingNow, now))
	assert.False(t, StatePast.Matches(endingNow, now))
}

func TestState_StatusClassificationIgnoresTime(t *testing.T) {
	now := time.Now().UTC()
	waitingPast := reconstructAt(StatusWaiting, now.Add(-3*time.Hour), now.Add(-time.Hour))
	rejectedFuture := reconstructAt(StatusRejected, now.Add(time.Hour), now.Add(3*time.Hour))

	assert.True(t, StateWaiting.Matches(waitingPast, now))
	assert.False(t, StateWaiting.Matches(rejectedFuture, now))

	assert.True(t, StateRejected.Matches(rejectedFuture, now))
	assert.False(t, StateRejected.Matches(waitingPast, now))
}
