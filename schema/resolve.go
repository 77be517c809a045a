package schema

import (
	"github.com/petal-labs/genai/core"
	"github.com/petal-labs/genai/services"
)

// Module is the logical module name of the aggregated namespace.
const Module = services.SchemaModule

// Resolve looks up a class name in the aggregated namespace. See
// core.Resolve for the resolution rules and deprecation semantics.
func Resolve(name string) (core.Resolution, error) {
	return core.Resolve(Module, name)
}

// MustResolve is like Resolve but panics on failure.
func MustResolve(name string) core.Resolution {
	return core.MustResolve(Module, name)
}

// Exports returns the aggregated export list in registration order.
func Exports() []string {
	return core.Exports(Module)
}
