package core

import (
	"fmt"
	"sort"
)

// Kind classifies what became of a deprecated name.
type Kind string

const (
	// KindRedirect marks a name that moved to another module and still
	// resolves to the same live class under its current home.
	KindRedirect Kind = "redirect"

	// KindRename marks a straight rename: the class still exists in the same
	// module under a new name.
	KindRename Kind = "rename"

	// KindRemoved marks a name that no longer denotes a maintained class.
	KindRemoved Kind = "removed"
)

// RemovalPolicy states, per removed entry, whether a legacy stand-in is still
// served. The policy is declared at registration time, never inferred.
type RemovalPolicy string

const (
	// PolicySoft keeps the name resolvable: lookups return the entry's Stub
	// together with a deprecation event, pending hard deletion in a future
	// major version.
	PolicySoft RemovalPolicy = "soft"

	// PolicyHard fails lookups with a RemovedSymbolError carrying the reason.
	PolicyHard RemovalPolicy = "hard"
)

// CompatEntry describes one deprecated name within a module scope.
//
// Redirect and rename entries must point directly at a currently exported
// name. Chains of deprecated names are not allowed; this keeps resolution
// single-hop and guarantees at most one deprecation event per access.
type CompatEntry struct {
	// Name is the deprecated symbol name, scoped to the registering module.
	Name string

	// Kind selects the entry variant.
	Kind Kind

	// TargetModule is the module whose export list holds Target. Empty means
	// the registering module itself. Only meaningful for redirects; renames
	// always resolve within their own module.
	TargetModule string

	// Target is the current name of the class (redirect and rename only).
	Target string

	// Reason is the human-readable removal explanation (removed only).
	Reason string

	// Stub is the retained legacy stand-in served under PolicySoft.
	Stub any

	// Policy selects soft or hard removal behavior (removed only).
	Policy RemovalPolicy
}

// RegisterCompat registers a module's compatibility entries. Like
// RegisterModule it is called from init and the table is immutable
// afterwards. Entries are append-only across SDK versions; deleting one is a
// breaking change.
//
// The registering module's export list must already be registered so that
// overlap between the two registries can be rejected: an entry for a name the
// module still exports would be unreachable, since exported names resolve
// silently. Targets of redirects and renames are deliberately not checked
// here — the target module may not have registered yet during program init.
// Target liveness is a release gate enforced by the audit package.
func RegisterCompat(module string, entries []CompatEntry) {
	registryMu.Lock()
	defer registryMu.Unlock()

	exported, ok := exportIdx[module]
	if !ok {
		panic(fmt.Sprintf("core: RegisterCompat for unregistered module %s", module))
	}
	if _, ok := compatIdx[module]; ok {
		panic(fmt.Sprintf("core: compatibility entries for %s registered twice", module))
	}

	idx := make(map[string]CompatEntry, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			panic(fmt.Sprintf("core: module %s has a compatibility entry with an empty name", module))
		}
		if _, dup := idx[e.Name]; dup {
			panic(fmt.Sprintf("core: module %s has duplicate compatibility entries for %s", module, e.Name))
		}
		if _, clash := exported[e.Name]; clash {
			panic(fmt.Sprintf("core: module %s both exports %s and deprecates it", module, e.Name))
		}
		validateEntry(module, e)
		idx[e.Name] = e
	}

	compatList[module] = append([]CompatEntry(nil), entries...)
	compatIdx[module] = idx
}

func validateEntry(module string, e CompatEntry) {
	switch e.Kind {
	case KindRedirect:
		if e.Target == "" {
			panic(fmt.Sprintf("core: redirect %s.%s has no target", module, e.Name))
		}
	case KindRename:
		if e.Target == "" {
			panic(fmt.Sprintf("core: rename %s.%s has no target", module, e.Name))
		}
		if e.TargetModule != "" && e.TargetModule != module {
			panic(fmt.Sprintf("core: rename %s.%s targets foreign module %s; use a redirect", module, e.Name, e.TargetModule))
		}
	case KindRemoved:
		if e.Reason == "" {
			panic(fmt.Sprintf("core: removal %s.%s has no reason", module, e.Name))
		}
		switch e.Policy {
		case PolicySoft:
			if e.Stub == nil {
				panic(fmt.Sprintf("core: soft removal %s.%s has no stub", module, e.Name))
			}
		case PolicyHard:
			if e.Stub != nil {
				panic(fmt.Sprintf("core: hard removal %s.%s carries a stub", module, e.Name))
			}
		default:
			panic(fmt.Sprintf("core: removal %s.%s has no policy", module, e.Name))
		}
	default:
		panic(fmt.Sprintf("core: compatibility entry %s.%s has unknown kind %q", module, e.Name, e.Kind))
	}
}

// CompatEntries returns the module's compatibility entries in registration
// order. The returned slice is a copy and safe to modify.
func CompatEntries(module string) []CompatEntry {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]CompatEntry(nil), compatList[module]...)
}

// CompatModules returns the names of all modules with compatibility entries
// in sorted order.
func CompatModules() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(compatList))
	for name := range compatList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupCompat returns the compatibility entry for name in module.
func LookupCompat(module, name string) (CompatEntry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	idx, ok := compatIdx[module]
	if !ok {
		return CompatEntry{}, false
	}
	e, ok := idx[name]
	return e, ok
}
