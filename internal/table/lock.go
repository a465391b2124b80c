package table

import (
	"path/filepath"
	"sync"
)

// pathLocks serializes file access per table path for the lifetime of the
// process. Entries are never removed; the set of table paths is small and
// fixed by configuration.
var pathLocks = struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}{m: make(map[string]*sync.Mutex)}

// pathLock returns the mutex guarding the table file at path.
func pathLock(path string) *sync.Mutex {
	key := filepath.Clean(path)

	pathLocks.mu.Lock()
	defer pathLocks.mu.Unlock()

	lock, ok := pathLocks.m[key]
	if !ok {
		lock = &sync.Mutex{}
		pathLocks.m[key] = lock
	}
	return lock
}
