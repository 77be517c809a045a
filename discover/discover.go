// Package discover enumerates the SDK's service and schema classes.
//
// The set of classes is open: generated schema modules and new service
// endpoints appear over time, and no hardcoded list is maintained anywhere.
// Instead every class registers itself here from its package's init function,
// recording its defining module and its base class. Importing the aggregated
// schema package (or any individual service package) is enough to populate
// the graph; the Go package loader guarantees each init runs exactly once, so
// repeated queries always see the same registrations.
//
// [Subclasses] walks the base links transitively, which is how the audit
// package and the export tests enumerate "every service class" and "every
// schema class" without knowing them by name.
package discover

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// TypeInfo describes one registered class.
type TypeInfo struct {
	// Name is the exported class name, unique across the graph.
	Name string

	// Module is the logical defining module, e.g. "genai.file".
	Module string

	// Base is the Name of the parent class. Empty for hierarchy roots such
	// as the BaseService marker.
	Base string

	// Type is the concrete Go type, when one exists. Marker bases that are
	// pure interfaces may leave it nil.
	Type reflect.Type
}

var (
	graphMu  sync.RWMutex
	order    []string // registration order of names
	byName   = make(map[string]TypeInfo)
	children = make(map[string][]string) // base name → child names, registration order
)

// RegisterType adds a class to the graph. It is called from package init
// functions and panics on malformed or duplicate registrations. A Base that
// has not been registered yet is fine; parent packages usually register
// first, but nothing depends on it.
func RegisterType(info TypeInfo) {
	if info.Name == "" {
		panic("discover: RegisterType with empty name")
	}
	if info.Module == "" {
		panic(fmt.Sprintf("discover: type %s has no defining module", info.Name))
	}

	graphMu.Lock()
	defer graphMu.Unlock()

	if _, dup := byName[info.Name]; dup {
		panic(fmt.Sprintf("discover: type %s registered twice", info.Name))
	}

	byName[info.Name] = info
	order = append(order, info.Name)
	if info.Base != "" {
		children[info.Base] = append(children[info.Base], info.Name)
	}
}

// Types returns every registered class in registration order.
// The returned slice is a copy and safe to modify.
func Types() []TypeInfo {
	graphMu.RLock()
	defer graphMu.RUnlock()

	out := make([]TypeInfo, len(order))
	for i, name := range order {
		out[i] = byName[name]
	}
	return out
}

// Subclasses returns the transitive closure of classes registered under base,
// depth-first in registration order. The base itself is not included. The
// result is deduplicated and deterministic across calls.
func Subclasses(base string) []TypeInfo {
	graphMu.RLock()
	defer graphMu.RUnlock()

	var out []TypeInfo
	seen := make(map[string]bool)
	var walk func(name string)
	walk = func(name string) {
		for _, child := range children[name] {
			if seen[child] {
				continue
			}
			seen[child] = true
			out = append(out, byName[child])
			walk(child)
		}
	}
	walk(base)
	return out
}

// Lookup returns the registered info for a class name.
func Lookup(name string) (TypeInfo, bool) {
	graphMu.RLock()
	defer graphMu.RUnlock()

	info, ok := byName[name]
	return info, ok
}

// Modules returns the sorted set of defining modules seen by the graph.
// Calling it again after re-importing packages yields the same set; package
// init runs once per process.
func Modules() []string {
	graphMu.RLock()
	defer graphMu.RUnlock()

	set := make(map[string]struct{})
	for _, info := range byName {
		set[info.Module] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// FilterModulePrefix keeps the classes whose defining module is namespace or
// lives under it. Audits use this to exclude fixture classes that tests
// register under their own namespaces.
func FilterModulePrefix(infos []TypeInfo, namespace string) []TypeInfo {
	var out []TypeInfo
	for _, info := range infos {
		if info.Module == namespace || strings.HasPrefix(info.Module, namespace+".") {
			out = append(out, info)
		}
	}
	return out
}
