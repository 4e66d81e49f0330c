package cartstore

import (
	"context"
	"sync"

	"github.com/cubtton/storefront/internal/domain"
)

// MemoryStore keeps the snapshot in memory. Used in tests and in sessions
// where no durable location is available.
type MemoryStore struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines), nil
}

func (s *MemoryStore) Save(_ context.Context, lines []domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = cloneLines(lines)
	return nil
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	if len(lines) == 0 {
		return nil
	}
	dup := make([]domain.CartLine, len(lines))
	copy(dup, lines)
	return dup
}
