package core

import (
	"errors"
	"strings"
	"testing"
)

func TestUnknownSymbolError(t *testing.T) {
	err := &UnknownSymbolError{Module: "genai.schema", Name: "Mystery"}

	var _ error = err

	if !strings.Contains(err.Error(), "genai.schema") {
		t.Error("Error() should contain the module name")
	}
	if !strings.Contains(err.Error(), "Mystery") {
		t.Error("Error() should contain the symbol name")
	}
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Error("should unwrap to ErrUnknownSymbol")
	}
}

func TestRemovedSymbolError(t *testing.T) {
	err := &RemovedSymbolError{
		Module: "genai.schema",
		Name:   "TuningType",
		Reason: "tuning types are now retrieved from the service",
	}

	if !strings.Contains(err.Error(), "TuningType") {
		t.Error("Error() should contain the symbol name")
	}
	if !strings.Contains(err.Error(), "retrieved from the service") {
		t.Error("Error() should contain the reason")
	}
	if !errors.Is(err, ErrRemoved) {
		t.Error("should unwrap to ErrRemoved")
	}
	if errors.Is(err, ErrUnknownSymbol) {
		t.Error("should not match ErrUnknownSymbol")
	}
}

func TestMissingExportError(t *testing.T) {
	err := &MissingExportError{Module: "genai.file", Name: "FileResult"}

	if !strings.Contains(err.Error(), "genai.file") {
		t.Error("Error() should contain the module name")
	}
	if !strings.Contains(err.Error(), "FileResult") {
		t.Error("Error() should contain the class name")
	}
}
