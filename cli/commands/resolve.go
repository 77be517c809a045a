package commands

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/petal-labs/genai/core"
	"github.com/petal-labs/genai/schema"
)

func (a *App) newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Resolve class names through the compatibility table",
		Long: `Resolve one or more class names the way SDK callers do. Current
names resolve silently; deprecated names print their deprecation warning on
stderr. Unknown names fail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module := a.resolveModule
			if module == "" {
				module = schema.Module
			}

			var failed bool
			for _, name := range args {
				if err := a.resolveOne(module, name); err != nil {
					fmt.Fprintf(a.stderr, "error: %v\n", err)
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("some names did not resolve")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&a.resolveModule, "module", "", "module scope to resolve in (default genai.schema)")
	return cmd
}

func (a *App) resolveOne(module, name string) error {
	res, err := core.Resolve(module, name)
	if err != nil {
		return err
	}

	if res.Deprecated() {
		a.printWarning(res.Deprecation.Message)
	}

	if a.jsonOutput {
		out := struct {
			Module     string `json:"module"`
			Name       string `json:"name"`
			Type       string `json:"type"`
			Deprecated bool   `json:"deprecated"`
			Warning    string `json:"warning,omitempty"`
		}{Module: res.Module, Name: res.Name, Type: valueType(res.Value), Deprecated: res.Deprecated()}
		if res.Deprecated() {
			out.Warning = res.Deprecation.Message
		}
		return json.NewEncoder(a.stdout).Encode(out)
	}

	fmt.Fprintf(a.stdout, "%s.%s = %s\n", res.Module, res.Name, valueType(res.Value))
	return nil
}

func (a *App) printWarning(msg string) {
	if a.useColor() {
		fmt.Fprintf(a.stderr, "\x1b[33mwarning:\x1b[0m %s\n", msg)
		return
	}
	fmt.Fprintf(a.stderr, "warning: %s\n", msg)
}

func valueType(v any) string {
	if t, ok := v.(reflect.Type); ok {
		return t.String()
	}
	return reflect.TypeOf(v).String()
}
