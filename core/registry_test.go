package core

import (
	"reflect"
	"testing"
)

type widget struct{}
type gadget struct{}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestRegisterModuleAndLookup(t *testing.T) {
	RegisterModule("coretest.registry", []Export{
		{Name: "Widget", Value: reflect.TypeOf(widget{})},
		{Name: "Gadget", Value: reflect.TypeOf(gadget{})},
	})

	names := Exports("coretest.registry")
	want := []string{"Widget", "Gadget"}
	if len(names) != len(want) {
		t.Fatalf("Exports() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Exports()[%d] = %q, want %q (declaration order must be preserved)", i, names[i], want[i])
		}
	}

	v, ok := Lookup("coretest.registry", "Widget")
	if !ok {
		t.Fatal("Lookup() did not find Widget")
	}
	if v != reflect.TypeOf(widget{}) {
		t.Errorf("Lookup() = %v, want %v", v, reflect.TypeOf(widget{}))
	}

	if !IsExported("coretest.registry", "Gadget") {
		t.Error("expected Gadget to be exported")
	}
	if IsExported("coretest.registry", "Sprocket") {
		t.Error("expected Sprocket to not be exported")
	}

	found := false
	for _, m := range Modules() {
		if m == "coretest.registry" {
			found = true
		}
	}
	if !found {
		t.Error("Modules() should contain coretest.registry")
	}
}

func TestModulesSorted(t *testing.T) {
	RegisterModule("coretest.sort.b", []Export{{Name: "B", Value: "b"}})
	RegisterModule("coretest.sort.a", []Export{{Name: "A", Value: "a"}})

	mods := Modules()
	for i := 1; i < len(mods); i++ {
		if mods[i-1] > mods[i] {
			t.Errorf("Modules() not sorted: %q > %q", mods[i-1], mods[i])
		}
	}
}

func TestExportsReturnsCopy(t *testing.T) {
	RegisterModule("coretest.copy", []Export{{Name: "One", Value: 1}})

	names := Exports("coretest.copy")
	names[0] = "Mutated"

	if Exports("coretest.copy")[0] != "One" {
		t.Error("mutating the returned slice must not affect the registry")
	}
}

func TestExportsUnknownModule(t *testing.T) {
	if Exports("coretest.nosuch") != nil {
		t.Error("Exports() for an unknown module should be nil")
	}
	if _, ok := Lookup("coretest.nosuch", "Widget"); ok {
		t.Error("Lookup() in an unknown module should report false")
	}
}

func TestRegisterModulePanics(t *testing.T) {
	RegisterModule("coretest.dup", []Export{{Name: "Widget", Value: 1}})

	mustPanic(t, "duplicate module", func() {
		RegisterModule("coretest.dup", []Export{{Name: "Widget", Value: 1}})
	})
	mustPanic(t, "empty module name", func() {
		RegisterModule("", []Export{{Name: "Widget", Value: 1}})
	})
	mustPanic(t, "empty export name", func() {
		RegisterModule("coretest.badname", []Export{{Name: "", Value: 1}})
	})
	mustPanic(t, "nil value", func() {
		RegisterModule("coretest.nilval", []Export{{Name: "Widget", Value: nil}})
	})
	mustPanic(t, "duplicate export name", func() {
		RegisterModule("coretest.dupname", []Export{
			{Name: "Widget", Value: 1},
			{Name: "Widget", Value: 2},
		})
	})
}
