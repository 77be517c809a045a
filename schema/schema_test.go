package schema_test

import (
	"testing"

	"github.com/petal-labs/genai/schema"
)

// previouslyExportedSymbols is the frozen backward-compatibility surface:
// every name here has shipped in a release and must keep resolving from the
// aggregated namespace silently, with a non-nil value. Names are only ever
// added to this list.
var previouslyExportedSymbols = []string{
	"AIMessage",
	"BaseMessage",
	"ChatRole",
	"DecodingMethod",
	"FileCreateResponse",
	"FileIdRetrieveResponse",
	"FileListSortBy",
	"FilePurpose",
	"FileRetrieveResponse",
	"HAPOptions",
	"HumanMessage",
	"LengthPenalty",
	"ModelIdRetrieveResponse",
	"ModelIdRetrieveResult",
	"ModelRetrieveResponse",
	"ModelTokenLimits",
	"ModerationHAP",
	"ModerationImplicitHate",
	"ModerationParameters",
	"ModerationPosition",
	"ModerationStigma",
	"ModerationTokens",
	"PromptCreateResponse",
	"PromptIdRetrieveResponse",
	"PromptIdUpdateResponse",
	"PromptRetrieveResponse",
	"PromptTemplateData",
	"PromptType",
	"RequestApiVersion",
	"RequestChatConversationIdRetrieveResponse",
	"RequestEndpoint",
	"RequestOrigin",
	"RequestRetrieveResponse",
	"RequestStatus",
	"SortDirection",
	"StopReason",
	"SystemMessage",
	"TextChatCreateResponse",
	"TextChatStreamCreateResponse",
	"TextEmbeddingCreateResponse",
	"TextEmbeddingLimit",
	"TextEmbeddingParameters",
	"TextGenerationComparisonCreateRequestRequest",
	"TextGenerationComparisonCreateResponse",
	"TextGenerationComparisonParameters",
	"TextGenerationCreateResponse",
	"TextGenerationFeedbackCategory",
	"TextGenerationIdFeedbackCreateResponse",
	"TextGenerationIdFeedbackRetrieveResponse",
	"TextGenerationIdFeedbackUpdateResponse",
	"TextGenerationLimitRetrieveResponse",
	"TextGenerationParameters",
	"TextGenerationResult",
	"TextGenerationReturnOptions",
	"TextGenerationStreamCreateResponse",
	"TextModeration",
	"TextModerationCreateResponse",
	"TextTokenizationCreateResponse",
	"TextTokenizationCreateResults",
	"TextTokenizationParameters",
	"TextTokenizationReturnOptions",
	"TrimMethod",
	"TuneAssetType",
	"TuneCreateResponse",
	"TuneIdRetrieveResponse",
	"TuneParameters",
	"TuneResult",
	"TuneRetrieveResponse",
	"TuneStatus",
	"TuningTypeRetrieveResponse",
	"UserCreateResponse",
	"UserPatchResponse",
	"UserRetrieveResponse",
}

func TestBackwardsCompatibility(t *testing.T) {
	for _, name := range previouslyExportedSymbols {
		res, err := schema.Resolve(name)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", name, err)
			continue
		}
		if res.Value == nil {
			t.Errorf("Resolve(%q) returned a nil value", name)
		}
		if res.Deprecated() {
			t.Errorf("Resolve(%q) produced a deprecation event: %q", name, res.Deprecation.Message)
		}
	}
}

func TestRenameTargetsExported(t *testing.T) {
	// Current names introduced by renames must be part of the surface too.
	for _, name := range []string{"PromptResult", "PromptListSource", "UserResult", "UserApiKey"} {
		res, err := schema.Resolve(name)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", name, err)
			continue
		}
		if res.Deprecated() {
			t.Errorf("Resolve(%q) produced a deprecation event for a current name", name)
		}
	}
}

func TestExportsNonEmptyAndUnique(t *testing.T) {
	names := schema.Exports()
	if len(names) == 0 {
		t.Fatal("aggregated namespace has no exports")
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			t.Errorf("export %q listed twice", name)
		}
		seen[name] = true
	}

	for _, name := range previouslyExportedSymbols {
		if !seen[name] {
			t.Errorf("frozen symbol %q missing from the aggregated export list", name)
		}
	}
}

func TestExportsIdempotent(t *testing.T) {
	first := schema.Exports()
	second := schema.Exports()
	if len(first) != len(second) {
		t.Fatalf("export list changed between calls: %d vs %d names", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("export order changed at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
