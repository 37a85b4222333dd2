// pkg/memcache/blobs.go
package mem

import (
	"sync"
	"time"
)

type BlobStore interface {
	// Set stores a copy of value. A ttl of zero keeps it until overwritten.
	Set(key string, value []byte, ttl time.Duration)

	// Get returns a copy of the value if present and not expired.
	Get(key string) ([]byte, bool)

	Delete(key string)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type Blobs struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewBlobs() *Blobs {
	return &Blobs{
		data: make(map[string]entry),
	}
}

func (s *Blobs) Set(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.data[key] = e
}

func (s *Blobs) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if e.expired(time.Now()) {
		s.Delete(key) // cleanup expired
		return nil, false
	}
	return append([]byte(nil), e.value...), true
}

func (s *Blobs) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
