package coordinator

import (
	"sync"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// KeyedLocks provides one exclusive lock per seal hash. Lock entries are
// created on first use and reclaimed once the last holder or waiter releases,
// so the arena stays proportional to in-flight work.
type KeyedLocks struct {
	mu      sync.Mutex
	entries map[model.SealHash]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLocks constructs an empty lock arena.
func NewKeyedLocks() *KeyedLocks {
	return &KeyedLocks{entries: make(map[model.SealHash]*lockEntry)}
}

// Acquire blocks until the per-hash lock is held and returns the release
// function. The lock must be held for the WorkItem's entire lifetime.
func (l *KeyedLocks) Acquire(hash model.SealHash) (release func()) {
	l.mu.Lock()
	entry, ok := l.entries[hash]
	if !ok {
		entry = &lockEntry{}
		l.entries[hash] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mu.Unlock()

			l.mu.Lock()
			entry.refs--
			if entry.refs == 0 {
				delete(l.entries, hash)
			}
			l.mu.Unlock()
		})
	}
}

// Len reports the number of live lock entries, for tests and introspection.
func (l *KeyedLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
