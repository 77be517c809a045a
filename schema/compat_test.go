package schema_test

import (
	"errors"
	"testing"

	"github.com/petal-labs/genai/core"
	"github.com/petal-labs/genai/schema"
)

func TestRenamedClasses(t *testing.T) {
	tests := []struct {
		oldName string
		newName string
	}{
		{"UserPromptResult", "PromptResult"},
		{"PromptsResponseResult", "PromptResult"},
		{"UserResponseResult", "UserResult"},
		{"UserCreateResultApiKey", "UserApiKey"},
		{"PromptRetrieveRequestParamsSource", "PromptListSource"},
	}

	for _, tc := range tests {
		t.Run(tc.oldName, func(t *testing.T) {
			res, err := schema.Resolve(tc.oldName)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tc.oldName, err)
			}
			if !res.Deprecated() {
				t.Fatalf("Resolve(%q) produced no deprecation event", tc.oldName)
			}
			if res.Deprecation.Category != core.CategoryRename {
				t.Errorf("category = %v, want %v", res.Deprecation.Category, core.CategoryRename)
			}
			want := "Class has been renamed from '" + tc.oldName + "' to '" + tc.newName + "'."
			if res.Deprecation.Message != want {
				t.Errorf("message = %q, want %q", res.Deprecation.Message, want)
			}

			current, ok := core.Lookup(schema.Module, tc.newName)
			if !ok {
				t.Fatalf("current name %q is not exported", tc.newName)
			}
			if res.Value != current {
				t.Errorf("Resolve(%q) did not return the value of %q", tc.oldName, tc.newName)
			}
		})
	}
}

func TestSoftRemovedClasses(t *testing.T) {
	for _, name := range []string{"TuningType", "PromptTemplate", "ImplicitHateOptions", "StigmaOptions"} {
		t.Run(name, func(t *testing.T) {
			res, err := schema.Resolve(name)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", name, err)
			}
			if !res.Deprecated() {
				t.Fatalf("Resolve(%q) produced no deprecation event", name)
			}
			if res.Deprecation.Category != core.CategoryRemoved {
				t.Errorf("category = %v, want %v", res.Deprecation.Category, core.CategoryRemoved)
			}
			if res.Deprecation.Message == "" {
				t.Error("removal event has an empty message")
			}
			if res.Value == nil {
				t.Errorf("Resolve(%q) returned no stub value", name)
			}
		})
	}
}

func TestHardRemovedClass(t *testing.T) {
	_, err := schema.Resolve("PromptChatItem")
	if err == nil {
		t.Fatal("Resolve(\"PromptChatItem\") succeeded, want removal error")
	}
	if !errors.Is(err, core.ErrRemoved) {
		t.Errorf("error = %v, want ErrRemoved", err)
	}

	var rerr *core.RemovedSymbolError
	if !errors.As(err, &rerr) {
		t.Fatalf("error %T is not a *RemovedSymbolError", err)
	}
	if rerr.Name != "PromptChatItem" || rerr.Module != schema.Module {
		t.Errorf("error identifies %s.%s", rerr.Module, rerr.Name)
	}
	if rerr.Reason == "" {
		t.Error("removal error carries no reason")
	}
}

// Names that were only ever internal request plumbing. They must fail as
// plain unknown symbols, without any deprecation machinery kicking in.
func TestNeverPublicNames(t *testing.T) {
	names := []string{
		"FileRetrieveParametersQuery",
		"ModelRetrieveParametersQuery",
		"RequestRetrieveParametersQuery",
		"TuneRetrieveParametersQuery",
		"TextGenerationComparisonCreateRequest",
	}
	for _, name := range names {
		_, err := schema.Resolve(name)
		if err == nil {
			t.Errorf("Resolve(%q) succeeded, want unknown symbol error", name)
			continue
		}
		if !errors.Is(err, core.ErrUnknownSymbol) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnknownSymbol", name, err)
		}
	}
}

func TestMustResolvePanicsOnRemoved(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustResolve(\"PromptChatItem\") did not panic")
		}
	}()
	schema.MustResolve("PromptChatItem")
}
