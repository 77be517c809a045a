package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/genai/audit"
)

func (a *App) newSurfaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surface",
		Short: "Manage the committed surface manifest",
		Long: `Compare the running surface against the committed manifest, or
rewrite the manifest after an intentional surface change.

With --check, every name recorded in the manifest must still resolve; names
that dropped out of both registries are compatibility breaks. With --write,
the manifest is regenerated from the running registries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.surfaceWrite && a.surfaceCheck {
				return fmt.Errorf("--write and --check are mutually exclusive")
			}

			if a.surfaceWrite {
				s := audit.CurrentSurface(a.namespace)
				if err := s.WriteSurface(a.surfacePath); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "wrote %d module(s) to %s\n", len(s.Modules), a.surfacePath)
				return nil
			}

			recorded, err := audit.LoadSurface(a.surfacePath)
			if err != nil {
				return err
			}

			missing := recorded.Missing()
			for _, name := range missing {
				fmt.Fprintf(a.stdout, "no longer resolves: %s\n", name)
			}
			if len(missing) > 0 {
				return fmt.Errorf("%d recorded name(s) no longer resolve", len(missing))
			}

			fmt.Fprintf(a.stdout, "all recorded names still resolve\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&a.surfacePath, "file", "", "surface manifest path (default from config)")
	cmd.Flags().BoolVar(&a.surfaceWrite, "write", false, "regenerate the manifest from the running surface")
	cmd.Flags().BoolVar(&a.surfaceCheck, "check", false, "verify the recorded surface still resolves (default)")
	return cmd
}
