// Package services contains the genai service classes and their registry.
//
// Each service lives in its own subpackage (e.g. services/file,
// services/tune) together with the generated schema classes it owns. A
// subpackage's register.go publishes three things from init:
//
//   - the module's explicit export list (core.RegisterModule)
//   - the module's compatibility shims (core.RegisterCompat)
//   - the module's classes in the discovery graph (discover.RegisterType)
//
// Service classes register under the [BaseName] marker, schema classes under
// [SchemaBaseName]. The audit package walks those markers to verify that
// every class is exported by its defining module.
//
// Services never talk to the network themselves; they construct typed
// requests and delegate to a [Caller] supplied by the embedding application.
package services

import (
	"context"

	"github.com/petal-labs/genai/discover"
)

// Namespace is the logical module namespace the SDK registers under.
// Classes outside it (test fixtures, third-party extensions) are ignored by
// the export audit.
const Namespace = "genai"

// SchemaModule is the aggregated schema namespace every current schema class
// is re-exported from.
const SchemaModule = "genai.schema"

// Discovery-graph markers. Every concrete service class registers under
// BaseName, every schema class under SchemaBaseName.
const (
	BaseName       = "BaseService"
	SchemaBaseName = "BaseSchema"
)

// Caller executes one API request on behalf of a service. The HTTP transport
// layer implements it; body and out are request and response schema values.
type Caller interface {
	Call(ctx context.Context, method, path string, body, out any) error
}

// Service is implemented by every concrete service class.
type Service interface {
	// Module returns the service's logical defining module, e.g. "genai.file".
	Module() string
}

// BaseService is embedded by every concrete service class. It carries the
// transport and the module identity.
type BaseService struct {
	caller Caller
	module string
}

// NewBaseService builds the embedded base for a concrete service.
func NewBaseService(module string, c Caller) BaseService {
	return BaseService{caller: c, module: module}
}

// Module returns the service's logical defining module.
func (s *BaseService) Module() string {
	return s.module
}

// Call delegates to the configured transport.
func (s *BaseService) Call(ctx context.Context, method, path string, body, out any) error {
	return s.caller.Call(ctx, method, path, body, out)
}

func init() {
	discover.RegisterType(discover.TypeInfo{Name: BaseName, Module: Namespace})
	discover.RegisterType(discover.TypeInfo{Name: SchemaBaseName, Module: Namespace})
}
