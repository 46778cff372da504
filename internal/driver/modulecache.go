package driver

import (
	"sync"

	"smergiel/internal/project"
)

// EmitCache puts a per-process map in front of the optional DiskCache.
// Directory builds share one EmitCache across goroutines.
type EmitCache struct {
	mu   sync.RWMutex
	mem  map[project.Digest]DiskPayload
	disk *DiskCache
}

// NewEmitCache creates an EmitCache; disk may be nil.
func NewEmitCache(disk *DiskCache) *EmitCache {
	return &EmitCache{mem: make(map[project.Digest]DiskPayload), disk: disk}
}

// Get looks the key up in memory, then on disk.
func (c *EmitCache) Get(key project.Digest) (DiskPayload, bool) {
	if c == nil {
		return DiskPayload{}, false
	}
	c.mu.RLock()
	p, ok := c.mem[key]
	c.mu.RUnlock()
	if ok {
		return p, true
	}
	if ok, err := c.disk.Get(key, &p); err != nil || !ok {
		return DiskPayload{}, false
	}
	c.mu.Lock()
	c.mem[key] = p
	c.mu.Unlock()
	return p, true
}

// Put stores the payload in memory and on disk. Disk errors are returned
// but the in-memory entry is kept.
func (c *EmitCache) Put(key project.Digest, p DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	c.mem[key] = p
	c.mu.Unlock()
	return c.disk.Put(key, &p)
}
