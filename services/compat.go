package services

import "github.com/petal-labs/genai/core"

// Early SDK versions re-exported the shared text generation parameter
// classes from every service module. Those classes now live in genai.schema
// only; each service module keeps redirect shims so old imports keep working.
var sharedLegacyNames = []string{
	"DecodingMethod",
	"LengthPenalty",
	"StopReason",
	"TextGenerationParameters",
	"ModerationParameters",
}

// LegacyRedirects returns the compatibility entries a service module
// registers for the shared schema names it used to re-export. Names the
// module still exports itself are skipped: an exported name must resolve
// silently, and the table rejects entries shadowed by the export list.
//
// Call after core.RegisterModule for the same module.
func LegacyRedirects(module string) []core.CompatEntry {
	var entries []core.CompatEntry
	for _, name := range sharedLegacyNames {
		if core.IsExported(module, name) {
			continue
		}
		entries = append(entries, core.CompatEntry{
			Name:         name,
			Kind:         core.KindRedirect,
			TargetModule: SchemaModule,
			Target:       name,
		})
	}
	return entries
}
