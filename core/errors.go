package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrUnknownSymbol  = errors.New("unknown symbol")
	ErrRemoved        = errors.New("symbol removed")
	ErrDanglingTarget = errors.New("dangling compatibility target")
)

// UnknownSymbolError reports a name absent from both the export registry and
// the compatibility table. It deliberately carries no deprecation event: a
// warning would suggest a migration path that does not exist.
type UnknownSymbolError struct {
	Module string
	Name   string
}

// Error implements the error interface.
func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("module %s has no symbol %q", e.Module, e.Name)
}

// Unwrap returns ErrUnknownSymbol for errors.Is checks.
func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// RemovedSymbolError reports a name removed under PolicyHard, with no legacy
// stand-in left to serve. Reason explains what happened to the class.
type RemovedSymbolError struct {
	Module string
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *RemovedSymbolError) Error() string {
	return fmt.Sprintf("%s.%s has been removed: %s", e.Module, e.Name, e.Reason)
}

// Unwrap returns ErrRemoved for errors.Is checks.
func (e *RemovedSymbolError) Unwrap() error {
	return ErrRemoved
}

// MissingExportError reports a class that is defined inside the SDK but
// absent from its defining module's export list. It is produced by the audit
// package and breaks the build; it is never returned by Resolve.
type MissingExportError struct {
	Module string
	Name   string
}

// Error implements the error interface.
func (e *MissingExportError) Error() string {
	return fmt.Sprintf("module %s defines %s but does not export it", e.Module, e.Name)
}
