package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarzaki/boqplan/internal/cli/formatter"
)

func newCodesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the BOQ codes the catalogue can schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalogue(app, cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, formatter.FormatCodes(cat))
			fmt.Fprintln(app.Out)
			return nil
		},
	}
}
