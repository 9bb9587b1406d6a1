// Package history keeps a bounded record of evaluated expressions.
package history

import (
	"context"
	"sync"
	"time"

	"daytime/internal/clock"
)

// DefaultCapacity is used when a Store is created with a non-positive
// capacity.
const DefaultCapacity = 100

// Entry is one evaluated expression and its rendered result.
type Entry struct {
	Expr   string
	Output string
	At     time.Time
}

// Store provides thread-safe bounded storage of history entries. Once the
// capacity is reached, the oldest entry is evicted.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	head    int
	size    int
}

// NewStore creates a Store holding at most capacity entries.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		entries: make([]Entry, capacity),
	}
}

// Append records an entry, evicting the oldest one when full.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.head] = entry
	s.head = (s.head + 1) % len(s.entries)
	if s.size < len(s.entries) {
		s.size++
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > s.size {
		n = s.size
	}
	if n <= 0 {
		return nil, nil
	}

	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		// Walk backward from the slot before head, wrapping at zero.
		idx := clock.ModFloor(int64(s.head-1-i), int64(len(s.entries)))
		out = append(out, s.entries[idx])
	}
	return out, nil
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Clear removes all entries.
func (s *Store) Clear(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		s.entries[i] = Entry{}
	}
	s.head = 0
	s.size = 0
	return nil
}
