// Package audit checks the registered public surface for registration bugs
// before a release: discovered classes missing from their module's export
// list, and compatibility entries whose targets no longer resolve.
//
// Registration happens across many packages in init order, so the registries
// cannot enforce cross-module invariants at registration time. These checks
// run after the full import graph has loaded, from tests or the audit CLI
// command.
package audit

import (
	"fmt"
	"strings"

	"github.com/petal-labs/genai/core"
	"github.com/petal-labs/genai/discover"
)

// Violation is one broken compatibility entry.
type Violation struct {
	Module string
	Name   string
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s.%s: %s", v.Module, v.Name, v.Reason)
}

// MissingExports returns an error for every class in the discovery graph
// under the given namespace prefix that its defining module does not export.
// A class reachable by discovery but absent from the export list is invisible
// to resolution, which is always a registration mistake. Marker bases with no
// concrete type are not part of the resolvable surface and are skipped.
func MissingExports(prefix string) []core.MissingExportError {
	var missing []core.MissingExportError
	for _, info := range discover.FilterModulePrefix(discover.Types(), prefix) {
		if info.Type == nil {
			continue
		}
		if !core.IsExported(info.Module, info.Name) {
			missing = append(missing, core.MissingExportError{Module: info.Module, Name: info.Name})
		}
	}
	return missing
}

// DanglingCompat returns a violation for every compatibility entry in a
// module under the namespace prefix that cannot serve its promise: a redirect
// or rename whose target is not currently exported, or whose target is itself
// a compatibility name. Resolution is single-hop, so a chain of entries never
// resolves.
func DanglingCompat(prefix string) []Violation {
	var violations []Violation
	for _, module := range core.CompatModules() {
		if module != prefix && !strings.HasPrefix(module, prefix+".") {
			continue
		}
		for _, entry := range core.CompatEntries(module) {
			if entry.Kind == core.KindRemoved {
				continue
			}
			scope := entry.TargetModule
			if scope == "" {
				scope = module
			}
			if _, ok := core.Lookup(scope, entry.Target); !ok {
				reason := fmt.Sprintf("target %s.%s is not exported", scope, entry.Target)
				if _, chained := core.LookupCompat(scope, entry.Target); chained {
					reason = fmt.Sprintf("target %s.%s is itself a compatibility entry; resolution is single-hop", scope, entry.Target)
				}
				violations = append(violations, Violation{Module: module, Name: entry.Name, Reason: reason})
			}
		}
	}
	return violations
}

// Run performs all checks for the namespace and returns a single error
// listing every finding, or nil when the surface is clean.
func Run(prefix string) error {
	var lines []string
	for _, m := range MissingExports(prefix) {
		lines = append(lines, m.Error())
	}
	for _, v := range DanglingCompat(prefix) {
		lines = append(lines, v.String())
	}
	if len(lines) == 0 {
		return nil
	}
	return fmt.Errorf("surface audit found %d problem(s):\n  %s",
		len(lines), strings.Join(lines, "\n  "))
}
