package core

import "fmt"

// Category classifies a deprecation event.
type Category string

const (
	CategoryRedirect Category = "redirect"
	CategoryRename   Category = "rename"
	CategoryRemoved  Category = "removed"
)

// Deprecation is the event attached to a resolution that went through the
// compatibility table. At most one event is produced per access; resolution
// is single-hop, so there is nothing to accumulate.
type Deprecation struct {
	Category Category
	Message  string
}

// Resolution is the outcome of a successful lookup: the live value plus an
// optional deprecation event. Callers that only want the value can ignore
// Deprecation; callers that surface warnings inspect it.
type Resolution struct {
	Module      string
	Name        string
	Value       any
	Deprecation *Deprecation
}

// Deprecated reports whether the resolution went through the compatibility
// table.
func (r Resolution) Deprecated() bool {
	return r.Deprecation != nil
}

// Resolve looks up name in the given module scope.
//
// A currently exported name resolves silently. A deprecated name resolves
// through the compatibility table and the result carries exactly one
// deprecation event:
//
//   - redirect: "Deprecated import of {name} from module {module}", value is
//     the class under its current home
//   - rename: "Class has been renamed from '{old}' to '{new}'.", value is the
//     class under its new name
//   - soft removal: the entry's reason, value is the retained legacy stub
//
// A hard-removed name fails with a *RemovedSymbolError. A name in neither
// registry fails with a *UnknownSymbolError and no event.
func Resolve(module, name string) (Resolution, error) {
	if v, ok := Lookup(module, name); ok {
		return Resolution{Module: module, Name: name, Value: v}, nil
	}

	entry, ok := LookupCompat(module, name)
	if !ok {
		return Resolution{}, &UnknownSymbolError{Module: module, Name: name}
	}

	switch entry.Kind {
	case KindRedirect, KindRename:
		scope := entry.TargetModule
		if scope == "" {
			scope = module
		}
		v, ok := Lookup(scope, entry.Target)
		if !ok {
			// Registration bug: the entry points at a name that is not
			// currently exported. The audit package catches this pre-release.
			return Resolution{}, fmt.Errorf("resolving %s.%s: %w: %s.%s",
				module, name, ErrDanglingTarget, scope, entry.Target)
		}
		dep := &Deprecation{
			Category: CategoryRedirect,
			Message:  fmt.Sprintf("Deprecated import of %s from module %s", name, module),
		}
		if entry.Kind == KindRename {
			dep = &Deprecation{
				Category: CategoryRename,
				Message:  fmt.Sprintf("Class has been renamed from '%s' to '%s'.", name, entry.Target),
			}
		}
		return Resolution{Module: module, Name: name, Value: v, Deprecation: dep}, nil

	case KindRemoved:
		if entry.Policy == PolicySoft {
			dep := &Deprecation{Category: CategoryRemoved, Message: entry.Reason}
			return Resolution{Module: module, Name: name, Value: entry.Stub, Deprecation: dep}, nil
		}
		return Resolution{}, &RemovedSymbolError{Module: module, Name: name, Reason: entry.Reason}
	}

	// Unreachable: RegisterCompat rejects unknown kinds.
	return Resolution{}, &UnknownSymbolError{Module: module, Name: name}
}

// MustResolve is like Resolve but panics on failure. Intended for package
// initialization paths where a missing symbol is a programming error.
func MustResolve(module, name string) Resolution {
	res, err := Resolve(module, name)
	if err != nil {
		panic(err)
	}
	return res
}
