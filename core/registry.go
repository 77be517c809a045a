package core

import (
	"fmt"
	"sort"
	"sync"
)

// Export binds one public name to the object it denotes. For schema and
// service classes the value is the class object itself, i.e. a reflect.Type.
type Export struct {
	Name  string
	Value any
}

// The export registry and compatibility table are populated from package
// init functions and are read-only afterwards. The lock exists so that
// lookups are safe while late registrations (plugins, test fixtures) run.
var (
	registryMu sync.RWMutex
	exportList = make(map[string][]Export)               // module name to ordered exports
	exportIdx  = make(map[string]map[string]any)         // module name to name/value index
	compatList = make(map[string][]CompatEntry)          // entries in registration order
	compatIdx  = make(map[string]map[string]CompatEntry) // name to entry index
)

// RegisterModule registers a module's explicit export list. It is called
// exactly once per module, from the module's init function. The list is the
// module's public contract and is immutable after registration.
//
// RegisterModule panics if the module is already registered, if a name is
// empty or duplicated, or if a value is nil: all of these are defects in a
// register.go file, not runtime conditions.
func RegisterModule(module string, list []Export) {
	if module == "" {
		panic("core: RegisterModule with empty module name")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := exportIdx[module]; ok {
		panic(fmt.Sprintf("core: module %s registered twice", module))
	}

	idx := make(map[string]any, len(list))
	for _, e := range list {
		if e.Name == "" {
			panic(fmt.Sprintf("core: module %s exports an empty name", module))
		}
		if e.Value == nil {
			panic(fmt.Sprintf("core: module %s exports %s with a nil value", module, e.Name))
		}
		if _, dup := idx[e.Name]; dup {
			panic(fmt.Sprintf("core: module %s exports %s twice", module, e.Name))
		}
		idx[e.Name] = e.Value
	}

	exportList[module] = append([]Export(nil), list...)
	exportIdx[module] = idx
}

// Modules returns the names of all registered modules in sorted order.
func Modules() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(exportList))
	for name := range exportList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exports returns the module's export list in declaration order.
// The returned slice is a copy and safe to modify. It is nil for an
// unregistered module.
func Exports(module string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	list := exportList[module]
	if list == nil {
		return nil
	}
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the exported value for name in module.
// It reports false if the module is unknown or the name is not exported.
func Lookup(module, name string) (any, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	idx, ok := exportIdx[module]
	if !ok {
		return nil, false
	}
	v, ok := idx[name]
	return v, ok
}

// IsExported reports whether module currently exports name.
func IsExported(module, name string) bool {
	_, ok := Lookup(module, name)
	return ok
}
