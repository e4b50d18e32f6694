package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nfrund/techhub/internal/config"
)

// ErrNotRegistered is returned by Resolve when nothing usable sits behind a key.
var ErrNotRegistered = errors.New("service not registered")

// Key names a service of type T. Use "owner.Service", e.g. "landing.PageStore".
type Key[T any] string

// Registry is how modules reach the core services and each other's.
type Registry struct {
	mu       sync.RWMutex
	services map[string]any
	cfg      config.Provider
}

// New creates an empty registry around the configuration provider.
func New(cfg config.Provider) *Registry {
	return &Registry{
		services: make(map[string]any),
		cfg:      cfg,
	}
}

// Config returns the configuration provider.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set publishes value under key, replacing whatever was there.
func Set[T any](r *Registry, key Key[T], value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[string(key)] = value
}

// Resolve looks key up. A value stored under the same name with a different
// type counts as missing.
func Resolve[T any](r *Registry, key Key[T]) (T, error) {
	r.mu.RLock()
	val, ok := r.services[string(key)]
	r.mu.RUnlock()

	if svc, typed := val.(T); ok && typed {
		return svc, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s", ErrNotRegistered, key)
}

// Get is Resolve with a boolean.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	svc, err := Resolve(r, key)
	return svc, err == nil
}

// MustGet is Resolve for startup wiring; a missing service panics.
func MustGet[T any](r *Registry, key Key[T]) T {
	svc, err := Resolve(r, key)
	if err != nil {
		panic(err.Error())
	}
	return svc
}
