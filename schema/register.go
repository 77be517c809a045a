package schema

import (
	"reflect"

	"github.com/petal-labs/genai/core"
	"github.com/petal-labs/genai/discover"
	"github.com/petal-labs/genai/services"
)

func init() {
	// The service packages imported above have all registered by now, so the
	// aggregated export list is derived from the discovery graph rather than
	// maintained by hand. Order follows registration order, which is stable
	// for a fixed import graph.
	classes := discover.FilterModulePrefix(
		discover.Subclasses(services.SchemaBaseName), services.Namespace)

	exports := make([]core.Export, 0, len(classes))
	for _, c := range classes {
		exports = append(exports, core.Export{Name: c.Name, Value: c.Type})
	}
	core.RegisterModule(services.SchemaModule, exports)

	core.RegisterCompat(services.SchemaModule, []core.CompatEntry{
		// Renamed classes. The old names were public API; both resolve to
		// the class under its current name.
		{Name: "UserPromptResult", Kind: core.KindRename, Target: "PromptResult"},
		{Name: "PromptsResponseResult", Kind: core.KindRename, Target: "PromptResult"},
		{Name: "UserResponseResult", Kind: core.KindRename, Target: "UserResult"},
		{Name: "UserCreateResultApiKey", Kind: core.KindRename, Target: "UserApiKey"},
		{Name: "PromptRetrieveRequestParamsSource", Kind: core.KindRename, Target: "PromptListSource"},

		// Soft removals: the class is gone from the public surface but a
		// legacy stub is still served, pending hard deletion in the next
		// major version.
		{Name: "TuningType", Kind: core.KindRemoved, Policy: core.PolicySoft,
			Reason: "TuningType has been removed; retrieve the available tuning types with TuneService.Types.",
			Stub:   reflect.TypeOf(legacyTuningType(""))},
		{Name: "PromptTemplate", Kind: core.KindRemoved, Policy: core.PolicySoft,
			Reason: "PromptTemplate has been merged into PromptResult; use PromptTemplateData for template variables.",
			Stub:   reflect.TypeOf(legacyPromptTemplate{})},
		{Name: "ImplicitHateOptions", Kind: core.KindRemoved, Policy: core.PolicySoft,
			Reason: "ImplicitHateOptions has been replaced by ModerationImplicitHate.",
			Stub:   reflect.TypeOf(legacyImplicitHateOptions{})},
		{Name: "StigmaOptions", Kind: core.KindRemoved, Policy: core.PolicySoft,
			Reason: "StigmaOptions has been replaced by ModerationStigma.",
			Stub:   reflect.TypeOf(legacyStigmaOptions{})},

		// Hard removal: no stand-in left to serve.
		{Name: "PromptChatItem", Kind: core.KindRemoved, Policy: core.PolicyHard,
			Reason: "PromptChatItem has been dropped; build conversations from the BaseMessage classes instead."},
	})
}
