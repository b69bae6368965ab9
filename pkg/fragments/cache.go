package fragments

import (
	"fmt"
	"strings"
	"sync"
)

// CacheKey returns the content path of one sample mesh.
func CacheKey(modelGUID string, localID int32, sampleIndex int) string {
	return fmt.Sprintf("%s/%d/%d", modelGUID, localID, sampleIndex)
}

// MeshCache holds built sample meshes keyed by CacheKey. It is safe for
// concurrent use. Decoding is deterministic, so a cache can be shared across
// loads of the same file.
type MeshCache struct {
	mu     sync.RWMutex
	meshes map[string]ItemMesh
	hits   int
	misses int
}

// NewMeshCache returns an empty cache.
func NewMeshCache() *MeshCache {
	return &MeshCache{meshes: make(map[string]ItemMesh)}
}

// Get returns the mesh stored under key.
func (c *MeshCache) Get(key string) (ItemMesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.meshes[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return m, ok
}

// Put stores m under its key.
func (c *MeshCache) Put(m ItemMesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes[m.Key] = m
}

// Len returns the number of cached meshes.
func (c *MeshCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.meshes)
}

// Stats returns the hit and miss counts since creation or the last Clear.
func (c *MeshCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Evict drops every mesh of the given model.
func (c *MeshCache) Evict(modelGUID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := modelGUID + "/"
	n := 0
	for key := range c.meshes {
		if strings.HasPrefix(key, prefix) {
			delete(c.meshes, key)
			n++
		}
	}
	return n
}

// Clear drops every mesh and resets the counters.
func (c *MeshCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes = make(map[string]ItemMesh)
	c.hits, c.misses = 0, 0
}
