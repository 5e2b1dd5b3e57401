package session

import (
	"sync"
	"time"
)

// MemoryStorage is a process local fiber.Storage implementation.
// It backs sessions in dev mode and in tests, where no Postgres is around.
// Sessions are lost on restart.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

type memoryEntry struct {
	value  []byte
	expiry time.Time
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]memoryEntry)}
}

// Get returns the value for the given key, or nil if missing or expired.
func (s *MemoryStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	if !entry.expiry.IsZero() && time.Now().After(entry.expiry) {
		_ = s.Delete(key)
		return nil, nil
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)

	return out, nil
}

// Set stores the value for the given key with an optional expiry.
func (s *MemoryStorage) Set(key string, val []byte, exp time.Duration) error {
	buf := make([]byte, len(val))
	copy(buf, val)

	entry := memoryEntry{value: buf}
	if exp > 0 {
		entry.expiry = time.Now().Add(exp)
	}

	s.mu.Lock()
	s.data[key] = entry
	s.mu.Unlock()

	return nil
}

// Delete removes the value for the given key.
func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	return nil
}

// Reset removes all stored values.
func (s *MemoryStorage) Reset() error {
	s.mu.Lock()
	s.data = make(map[string]memoryEntry)
	s.mu.Unlock()

	return nil
}

// Close is a no-op for the in-memory storage.
func (s *MemoryStorage) Close() error { return nil }
