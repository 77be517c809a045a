// Package core implements the symbol resolution layer of the genai SDK.
//
// The generated schema surface of the SDK changes between versions: classes
// get renamed, merged into other classes, or removed outright. core keeps old
// names resolvable by routing every lookup through two process-wide,
// init-time registries:
//
//   - the export registry: each module's explicit, ordered list of public
//     names and the objects they denote (see [RegisterModule])
//   - the compatibility table: per-module entries describing what became of
//     names that are no longer exported (see [RegisterCompat])
//
// # Resolution
//
// [Resolve] is the single entry point. A name found in the export registry
// resolves silently. A name found in the compatibility table resolves to the
// current live object (redirect, rename) or to a retained legacy stub (soft
// removal), and the returned [Resolution] carries exactly one [Deprecation]
// event describing the migration path:
//
//	res, err := core.Resolve("genai.schema", "UserPromptResult")
//	if err != nil {
//	    return err
//	}
//	if res.Deprecated() {
//	    log.Println(res.Deprecation.Message)
//	}
//
// Deprecation is reported as part of the result rather than through a global
// warning mechanism so callers can inspect, log, or drop the event as they
// see fit.
//
// # Error Handling
//
// Resolution failures are classified with sentinel errors:
//   - [ErrUnknownSymbol]: the name is in neither registry; no migration path
//     exists and no deprecation event is produced
//   - [ErrRemoved]: the name was removed without a replacement; the error
//     message carries the removal reason
//   - [ErrDanglingTarget]: a compatibility entry points at a name that is not
//     currently exported (a registration bug, normally caught by the audit
//     package before release)
//
// Use errors.Is to check:
//
//	if errors.Is(err, core.ErrUnknownSymbol) {
//	    // genuinely unknown name, not a deprecation
//	}
//
// # Registration
//
// Both registries are populated from package init functions and are read-only
// for the remainder of the process lifetime. Registration functions panic on
// duplicate or malformed entries; a panic here is a programming error in a
// register.go file, never a runtime condition.
//
// Compatibility entries are append-only across SDK versions. Deleting an
// entry makes a previously resolvable name fail and is itself a breaking
// change requiring a major version bump.
package core
