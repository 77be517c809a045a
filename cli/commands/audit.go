package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/genai/audit"
)

func (a *App) newAuditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check the registered surface for registration bugs",
		Long: `Audit the registered surface: every discovered class must be
exported by its defining module, and every redirect or rename must point at a
currently exported name. A non-zero exit means the surface is broken.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				fmt.Fprintf(a.stdout, "auditing namespace %s\n", a.namespace)
			}

			missing := audit.MissingExports(a.namespace)
			dangling := audit.DanglingCompat(a.namespace)

			for _, m := range missing {
				fmt.Fprintf(a.stdout, "missing export: %s\n", m.Error())
			}
			for _, v := range dangling {
				fmt.Fprintf(a.stdout, "dangling compat: %s\n", v.String())
			}

			if n := len(missing) + len(dangling); n > 0 {
				return fmt.Errorf("surface audit found %d problem(s)", n)
			}

			fmt.Fprintln(a.stdout, "surface is clean")
			return nil
		},
	}
}
