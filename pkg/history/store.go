package history

import "sync"

// Role identifies the author of a conversation turn.
type Role string

// Turn roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in the conversation log. Turns are immutable
// once appended.
type Turn struct {
	// Role identifies the turn author (user or assistant).
	Role Role `json:"role"`

	// Content is the turn text.
	Content string `json:"content"`
}

// Store is a bounded, insertion-ordered log of conversation turns shared by
// all requests. All operations are safe for concurrent use; every mutating
// operation is applied atomically under a single mutex so that no append is
// lost and no eviction miscounts length under concurrent writers.
type Store struct {
	mu sync.Mutex

	// turns holds the log in conversational order, oldest first.
	turns []Turn

	// maxTurns is the hard bound on stored turns. Appending beyond it
	// evicts the oldest turns first.
	maxTurns int
}

// NewStore creates an empty store bounded to maxTurns entries.
// A maxTurns of zero or less disables eviction.
func NewStore(maxTurns int) *Store {
	return &Store{
		turns:    make([]Turn, 0),
		maxTurns: maxTurns,
	}
}

// Append adds a turn to the end of the log. If the bound is exceeded, the
// oldest turns are discarded until the log is back at the bound, preserving
// conversational order.
func (s *Store) Append(turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, turn)

	if s.maxTurns > 0 && len(s.turns) > s.maxTurns {
		excess := len(s.turns) - s.maxTurns
		s.turns = append(s.turns[:0], s.turns[excess:]...)
	}
}

// Window returns a copy of the most recent n turns in original order.
// It never mutates the store. If n is zero or negative, or the store holds
// fewer than n turns, the available turns are returned.
func (s *Store) Window(n int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := 0
	if n > 0 && len(s.turns) > n {
		start = len(s.turns) - n
	}

	window := make([]Turn, len(s.turns)-start)
	copy(window, s.turns[start:])
	return window
}

// Snapshot returns a copy of the full current sequence for inspection.
func (s *Store) Snapshot() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Turn, len(s.turns))
	copy(snapshot, s.turns)
	return snapshot
}

// Len returns the number of stored turns.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Clear empties the store unconditionally. It is safe to call concurrently
// with in-flight chat requests.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = s.turns[:0]
}

// RemoveLastIfRole removes the final turn only if its role matches.
// It is a no-op when the store is empty or the last role differs, and
// reports whether a turn was removed. The fallback orchestrator uses this to
// roll back the pending user turn after a request in which every provider
// failed.
func (s *Store) RemoveLastIfRole(role Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.turns) == 0 {
		return false
	}
	if s.turns[len(s.turns)-1].Role != role {
		return false
	}

	s.turns = s.turns[:len(s.turns)-1]
	return true
}
