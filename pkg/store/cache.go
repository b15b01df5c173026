package store

import "sync"

// ContentCache remembers the last raw file content seen per path, so saves
// can preserve the markdown body verbatim instead of regenerating it. The
// mutex is for the debounce timers, which fire off the event loop.
type ContentCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewContentCache() *ContentCache {
	return &ContentCache{entries: map[string]string{}}
}

func (c *ContentCache) Get(path string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	content, ok := c.entries[path]
	return content, ok
}

func (c *ContentCache) Set(path, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = content
}

func (c *ContentCache) Has(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[path]
	return ok
}

func (c *ContentCache) Delete(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
