package storage

import "sync"

// MemoryStore keeps the high score in memory. It is used when no database is
// configured and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	score float64
	has   bool
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadHighScore returns the held value, if any.
func (m *MemoryStore) LoadHighScore() (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, m.has, nil
}

// SaveHighScore replaces the held value.
func (m *MemoryStore) SaveHighScore(score float64) error {
	m.mu.Lock()
	m.score, m.has = score, true
	m.mu.Unlock()
	return nil
}
