package store

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// stripedLocks serializes read-modify-write cycles on the same object
// without one mutex per id. Different objects may share a stripe.
type stripedLocks struct {
	mu [lockStripes]sync.Mutex
}

// lock acquires the stripe of (partition, id) and returns its unlock func.
func (s *stripedLocks) lock(partition, id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(partition))
	_, _ = h.Write([]byte{'/'})
	_, _ = h.Write([]byte(id))

	m := &s.mu[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}
