// Package optimistic provides a two-phase state tracker for UI flows that
// apply a change locally before the authoritative operation settles.
//
// The tracker distinguishes the last confirmed state from in-flight
// optimistic views. Confirmation replaces the confirmed state with the
// authoritative result; failure discards only the failed view, so the
// presented state falls back to whatever is still pending or, when nothing
// is, to the last confirmed state. Earlier pre-images are never re-applied.
package optimistic

// Token identifies one in-flight optimistic application.
type Token int

// State tracks a confirmed value plus any number of pending views.
type State[T any] struct {
	confirmed T
	pending   []entry[T]
	next      Token
}

type entry[T any] struct {
	token Token
	view  T
}

// New creates a tracker whose confirmed state is initial.
func New[T any](initial T) *State[T] {
	return &State[T]{confirmed: initial}
}

// View returns the state to present: the most recent pending view when any
// operation is in flight, otherwise the confirmed state.
func (s *State[T]) View() T {
	if n := len(s.pending); n > 0 {
		return s.pending[n-1].view
	}
	return s.confirmed
}

// Confirmed returns the last authoritative state.
func (s *State[T]) Confirmed() T {
	return s.confirmed
}

// Apply records an optimistic view and returns a token for settling it.
func (s *State[T]) Apply(view T) Token {
	s.next++
	s.pending = append(s.pending, entry[T]{token: s.next, view: view})
	return s.next
}

// Confirm settles the operation identified by token with the authoritative
// result. The result becomes the confirmed state and the settled view is
// dropped; later pending views stay in flight.
func (s *State[T]) Confirm(token Token, authoritative T) {
	s.confirmed = authoritative
	s.drop(token)
}

// Fail settles the operation identified by token as failed and returns the
// state to present afterwards. Only the failed view is discarded: if the
// state has moved further via later operations, those views win until they
// settle themselves.
func (s *State[T]) Fail(token Token) T {
	s.drop(token)
	return s.View()
}

func (s *State[T]) drop(token Token) {
	for i, e := range s.pending {
		if e.token == token {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
