package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarzaki/boqplan/internal/cli/formatter"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [code]",
		Short: "Show the breakdown behind one BOQ code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalogue(app, cmd)
			if err != nil {
				return err
			}
			code, err := resolveCode(app, cat, args)
			if err != nil {
				return err
			}
			b, err := cat.Get(code)
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, formatter.FormatBreakdown(b))
			fmt.Fprintln(app.Out)
			return nil
		},
	}
}
