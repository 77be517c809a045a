package services

import (
	"reflect"

	"github.com/petal-labs/genai/core"
	"github.com/petal-labs/genai/discover"
)

// Class binds an exported class name to its Go type for registration.
// Base overrides the discovery-graph parent; when empty, service classes
// default to BaseName and schema classes to SchemaBaseName.
type Class struct {
	Name string
	Type reflect.Type
	Base string
}

// ModuleSpec describes everything a service package publishes at init time.
type ModuleSpec struct {
	// Module is the logical module name, e.g. "genai.file".
	Module string

	// Name is the service registry key, e.g. "file".
	Name string

	// Factory creates the module's primary service. Nil for modules that
	// only contribute schema classes.
	Factory ServiceFactory

	// Services lists the module's service classes, primary first.
	Services []Class

	// Schemas lists the schema classes the module owns.
	Schemas []Class

	// Compat holds module-specific compatibility entries. The shared legacy
	// redirects (see LegacyRedirects) are always included.
	Compat []core.CompatEntry
}

// RegisterServiceModule wires one service package into the export registry,
// the compatibility table, the discovery graph, and the service registry.
// Call it once, from the package's init function.
func RegisterServiceModule(spec ModuleSpec) {
	exports := make([]core.Export, 0, len(spec.Services)+len(spec.Schemas))

	for _, c := range spec.Services {
		base := c.Base
		if base == "" {
			base = BaseName
		}
		exports = append(exports, core.Export{Name: c.Name, Value: c.Type})
		discover.RegisterType(discover.TypeInfo{Name: c.Name, Module: spec.Module, Base: base, Type: c.Type})
	}
	for _, c := range spec.Schemas {
		base := c.Base
		if base == "" {
			base = SchemaBaseName
		}
		exports = append(exports, core.Export{Name: c.Name, Value: c.Type})
		discover.RegisterType(discover.TypeInfo{Name: c.Name, Module: spec.Module, Base: base, Type: c.Type})
	}

	core.RegisterModule(spec.Module, exports)
	core.RegisterCompat(spec.Module, append(LegacyRedirects(spec.Module), spec.Compat...))

	if spec.Factory != nil {
		Register(spec.Name, spec.Factory)
	}
}
