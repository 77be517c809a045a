package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petal-labs/genai/core"
)

func (a *App) newModulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules [module]",
		Short: "List registered modules and their exports",
		Long: `List the registered modules under the namespace. With a module
argument, list that module's exported names and compatibility entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.runModuleDetail(args[0])
			}
			return a.runModulesList()
		},
	}
	return cmd
}

func (a *App) inNamespace(module string) bool {
	return module == a.namespace || strings.HasPrefix(module, a.namespace+".")
}

func (a *App) runModulesList() error {
	type moduleInfo struct {
		Module  string `json:"module"`
		Exports int    `json:"exports"`
		Compat  int    `json:"compat"`
	}

	var infos []moduleInfo
	for _, module := range core.Modules() {
		if !a.inNamespace(module) {
			continue
		}
		infos = append(infos, moduleInfo{
			Module:  module,
			Exports: len(core.Exports(module)),
			Compat:  len(core.CompatEntries(module)),
		})
	}

	if a.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(a.stdout, "%-28s %3d exports  %2d compat\n", info.Module, info.Exports, info.Compat)
	}
	return nil
}

func (a *App) runModuleDetail(module string) error {
	exports := core.Exports(module)
	if exports == nil {
		return fmt.Errorf("module %s is not registered", module)
	}
	compat := core.CompatEntries(module)

	if a.jsonOutput {
		out := struct {
			Module  string   `json:"module"`
			Exports []string `json:"exports"`
			Compat  []string `json:"compat,omitempty"`
		}{Module: module, Exports: exports}
		for _, e := range compat {
			out.Compat = append(out.Compat, fmt.Sprintf("%s (%s)", e.Name, e.Kind))
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(a.stdout, "%s\n", module)
	for _, name := range exports {
		fmt.Fprintf(a.stdout, "  %s\n", name)
	}
	if len(compat) > 0 {
		fmt.Fprintln(a.stdout, "deprecated:")
		for _, e := range compat {
			switch e.Kind {
			case core.KindRename:
				fmt.Fprintf(a.stdout, "  %s -> %s\n", e.Name, e.Target)
			case core.KindRedirect:
				scope := e.TargetModule
				if scope == "" {
					scope = module
				}
				fmt.Fprintf(a.stdout, "  %s -> %s.%s\n", e.Name, scope, e.Target)
			case core.KindRemoved:
				fmt.Fprintf(a.stdout, "  %s (removed, %s)\n", e.Name, e.Policy)
			}
		}
	}
	return nil
}
