package chat

import "sync"

// Store holds the ordered sequence of turns for the active session.
//
// The store is append-only: turns are never edited, reordered, or
// removed, and the sequence is discarded with the session. Subscribers
// receive every appended turn in order.
type Store struct {
	mu    sync.Mutex
	turns []*Turn
	subs  map[chan *Turn]struct{}
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{subs: make(map[chan *Turn]struct{})}
}

// Append adds a turn to the end of the sequence and notifies
// subscribers. The store takes sole ownership of the turn.
func (s *Store) Append(t *Turn) {
	s.mu.Lock()
	s.turns = append(s.turns, t)
	for ch := range s.subs {
		select {
		case ch <- t:
		default:
			// Drop for slow subscribers; the conversation itself is
			// never affected by a lagging listener.
		}
	}
	s.mu.Unlock()
}

// Turns returns a snapshot of the sequence in append order.
func (s *Store) Turns() []*Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns appended so far.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Subscribe registers a channel that receives each appended turn. The
// returned cancel function unregisters and closes it.
func (s *Store) Subscribe(buffer int) (<-chan *Turn, func()) {
	ch := make(chan *Turn, buffer)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch, func() {
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
}
