package registry

import "sync"

// Registry is a process-wide key-value holder backing the extension
// registries (cmd, cron, api routes). Keys can be locked once startup
// wiring is done; further writes panic at the call sites.
type Registry struct {
	mu      sync.RWMutex
	globals map[string]interface{}
	locked  map[string]bool
}

var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		globals: make(map[string]interface{}),
		locked:  make(map[string]bool),
	}
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.globals[key]
	return v, ok
}

// SetGlobal stores a value under key. Locked keys are not enforced here;
// callers check IsLocked before writing.
func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.globals[key] = value
}

// Lock marks a key immutable.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

// IsLocked reports whether a key has been locked.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting clears the lock on a key (tests only).
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locked, key)
}
