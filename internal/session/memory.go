package session

import "sync"

// MemoryStore is an in-process Store. All access is serialized with a mutex
// so concurrent requests cannot corrupt the turn window.
type MemoryStore struct {
	mu      sync.Mutex
	summary string
	turns   []Turn
}

// NewMemoryStore returns an empty session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SetSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
	s.turns = nil
}

func (s *MemoryStore) HasSummary() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary != ""
}

func (s *MemoryStore) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

func (s *MemoryStore) AppendTurn(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{Question: question, Answer: answer})
	if len(s.turns) > TurnWindowSize {
		s.turns = s.turns[len(s.turns)-TurnWindowSize:]
	}
}

// Turns returns a copy of the current window, oldest first.
func (s *MemoryStore) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}
