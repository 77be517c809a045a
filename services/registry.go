package services

import (
	"fmt"
	"sort"
	"sync"
)

// ServiceFactory creates a service instance bound to the given transport.
type ServiceFactory func(c Caller) Service

// registry holds registered service factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]ServiceFactory)
)

// Register adds a service factory to the registry.
// It is typically called from a service package's init() function.
// If a service with the same name is already registered, it will be overwritten.
//
// Example usage in a service package:
//
//	func init() {
//	    services.Register("file", func(c services.Caller) services.Service {
//	        return NewService(c)
//	    })
//	}
func Register(name string, factory ServiceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a service factory by name.
// Returns nil if the service is not registered.
func Get(name string) ServiceFactory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// Create creates a new service instance by name bound to the given transport.
// Returns an error if the service is not registered.
func Create(name string, c Caller) (Service, error) {
	factory := Get(name)
	if factory == nil {
		return nil, fmt.Errorf("unknown service: %s (available: %v)", name, List())
	}
	return factory(c), nil
}

// List returns the names of all registered services in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered returns true if a service with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
