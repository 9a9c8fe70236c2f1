package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/convert"
)

func rulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List validators, converters and presets",
		Args:  cobra.NoArgs,
		RunE: a.closing(func(cmd *cobra.Command, args []string) error {
			section := func(title string, names []string) {
				fmt.Fprintf(a.out, "%s:\n", title)
				if len(names) == 0 {
					fmt.Fprintln(a.out, "  (none)")
				}
				for _, name := range names {
					fmt.Fprintf(a.out, "  %s\n", name)
				}
			}

			section("Validators", a.rules.List())
			section("Converters", convert.Names())
			section("Presets", a.cfg.PresetNames())
			a.printer.Verbose(fmt.Sprintf("config file: %q", a.cfg.File))
			return nil
		}),
	}
}
