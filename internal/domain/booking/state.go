package booking

import (
	"time"

	"github.com/shareit-app/backend/internal/domain"
)

// State is the filter token used when listing bookings. ALL, CURRENT, PAST
// and FUTURE classify a booking by its interval relative to now; WAITING and
// REJECTED classify it by status regardless of time.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState resolves a state token. Matching is case-sensitive; an
// unrecognized token yields an invalid-state error, never a fallback to ALL.
func ParseState(token string) (State, error) {
	switch State(token) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(token), nil
	default:
		return "", domain.NewInvalidStateError(token)
	}
}

// Matches reports whether the booking belongs to this state at the given
// instant. A booking is CURRENT on [start, end): inclusive of start,
// exclusive of end, so it can never be CURRENT and PAST, or CURRENT and
// FUTURE, at the same instant.
func (s State) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return !b.start.After(now) && b.end.After(now)
	case StatePast:
		return b.end.Before(now)
	case StateFuture:
		return b.start.After(now)
	case StateWaiting:
		return b.status == StatusWaiting
	case StateRejected:
		return b.status == StatusRejected
	default:
		return false
	}
}
