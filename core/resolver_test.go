package core

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
)

type promptResult struct{}
type legacyTemplate struct{}

var resolverFixtures sync.Once

// registerResolverFixtures builds a miniature SDK surface: a "schema" module
// holding the current classes and a "service" module whose old schema names
// redirect into it.
func registerResolverFixtures() {
	resolverFixtures.Do(func() {
		RegisterModule("coretest.schema", []Export{
			{Name: "PromptResult", Value: reflect.TypeOf(promptResult{})},
			{Name: "DecodingGreedy", Value: "greedy"},
		})
		RegisterCompat("coretest.schema", []CompatEntry{
			{Name: "UserPromptResult", Kind: KindRename, Target: "PromptResult"},
			{Name: "PromptTemplate", Kind: KindRemoved, Policy: PolicySoft,
				Reason: "PromptTemplate has been merged into PromptResult.",
				Stub:   reflect.TypeOf(legacyTemplate{})},
			{Name: "PromptChatItem", Kind: KindRemoved, Policy: PolicyHard,
				Reason: "PromptChatItem has been dropped; build conversations from message classes."},
			{Name: "Dangling", Kind: KindRename, Target: "NoSuchClass"},
		})

		RegisterModule("coretest.service", []Export{
			{Name: "Service", Value: "service"},
		})
		RegisterCompat("coretest.service", []CompatEntry{
			{Name: "DecodingGreedy", Kind: KindRedirect, TargetModule: "coretest.schema", Target: "DecodingGreedy"},
		})
	})
}

func TestResolveExportedIsSilent(t *testing.T) {
	registerResolverFixtures()

	// PromptResult is also the target of a rename entry; the export list
	// must still win with zero events.
	res, err := Resolve("coretest.schema", "PromptResult")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Deprecated() {
		t.Errorf("exported name produced a deprecation event: %+v", res.Deprecation)
	}
	if res.Value != reflect.TypeOf(promptResult{}) {
		t.Errorf("Resolve() value = %v, want %v", res.Value, reflect.TypeOf(promptResult{}))
	}
}

func TestResolveRename(t *testing.T) {
	registerResolverFixtures()

	res, err := Resolve("coretest.schema", "UserPromptResult")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !res.Deprecated() {
		t.Fatal("rename must produce a deprecation event")
	}
	if res.Deprecation.Category != CategoryRename {
		t.Errorf("category = %q, want %q", res.Deprecation.Category, CategoryRename)
	}
	want := "Class has been renamed from 'UserPromptResult' to 'PromptResult'."
	if res.Deprecation.Message != want {
		t.Errorf("message = %q, want %q", res.Deprecation.Message, want)
	}

	// The returned value is the currently exported object, not a copy.
	current, _ := Lookup("coretest.schema", "PromptResult")
	if res.Value != current {
		t.Error("rename must resolve to the currently exported object")
	}
}

func TestResolveRedirect(t *testing.T) {
	registerResolverFixtures()

	res, err := Resolve("coretest.service", "DecodingGreedy")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !res.Deprecated() {
		t.Fatal("redirect must produce a deprecation event")
	}
	if res.Deprecation.Category != CategoryRedirect {
		t.Errorf("category = %q, want %q", res.Deprecation.Category, CategoryRedirect)
	}
	want := "Deprecated import of DecodingGreedy from module coretest.service"
	if res.Deprecation.Message != want {
		t.Errorf("message = %q, want %q", res.Deprecation.Message, want)
	}
	if res.Value != "greedy" {
		t.Errorf("redirect value = %v, want the target module's export", res.Value)
	}
}

func TestResolveSoftRemoval(t *testing.T) {
	registerResolverFixtures()

	res, err := Resolve("coretest.schema", "PromptTemplate")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !res.Deprecated() {
		t.Fatal("soft removal must produce a deprecation event")
	}
	if res.Deprecation.Category != CategoryRemoved {
		t.Errorf("category = %q, want %q", res.Deprecation.Category, CategoryRemoved)
	}
	if !strings.Contains(res.Deprecation.Message, "merged into PromptResult") {
		t.Errorf("message %q should carry the removal reason", res.Deprecation.Message)
	}
	if res.Value != reflect.TypeOf(legacyTemplate{}) {
		t.Errorf("soft removal must return the legacy stub, got %v", res.Value)
	}
}

func TestResolveHardRemoval(t *testing.T) {
	registerResolverFixtures()

	_, err := Resolve("coretest.schema", "PromptChatItem")
	if err == nil {
		t.Fatal("hard removal must fail")
	}
	if !errors.Is(err, ErrRemoved) {
		t.Errorf("error %v should match ErrRemoved", err)
	}
	var removed *RemovedSymbolError
	if !errors.As(err, &removed) {
		t.Fatalf("error %T should be *RemovedSymbolError", err)
	}
	if removed.Reason == "" {
		t.Error("RemovedSymbolError must carry a reason")
	}
	if !strings.Contains(err.Error(), removed.Reason) {
		t.Errorf("error message %q should include the reason", err.Error())
	}
}

func TestResolveUnknown(t *testing.T) {
	registerResolverFixtures()

	res, err := Resolve("coretest.schema", "RetrieveParametersQuery")
	if err == nil {
		t.Fatal("unknown name must fail")
	}
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("error %v should match ErrUnknownSymbol", err)
	}
	if res.Deprecated() {
		t.Error("unknown names must not produce deprecation events")
	}
}

func TestResolveUnknownModule(t *testing.T) {
	_, err := Resolve("coretest.nomodule", "Anything")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("error %v should match ErrUnknownSymbol", err)
	}
}

func TestResolveDanglingTarget(t *testing.T) {
	registerResolverFixtures()

	_, err := Resolve("coretest.schema", "Dangling")
	if !errors.Is(err, ErrDanglingTarget) {
		t.Errorf("error %v should match ErrDanglingTarget", err)
	}
}

func TestMustResolve(t *testing.T) {
	registerResolverFixtures()

	res := MustResolve("coretest.schema", "PromptResult")
	if res.Value == nil {
		t.Error("MustResolve() returned a nil value")
	}

	mustPanic(t, "unknown name", func() {
		MustResolve("coretest.schema", "NoSuchName")
	})
}
