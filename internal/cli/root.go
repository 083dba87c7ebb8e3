package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/omarzaki/boqplan/internal/catalog"
)

// App holds everything the CLI commands work against: the breakdown
// catalogue, the output stream, and terminal detection for the
// interactive code picker.
type App struct {
	Catalogue     *catalog.Catalogue
	Out           io.Writer
	IsInteractive func() bool
}

// UsageError marks an error caused by how the tool was invoked rather
// than by the scheduling core; main exits 2 for these.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, args ...interface{}) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "boqplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "boqplan",
		Short:         "BOQ breakdown scheduler: CPM solve, resources, exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("catalog", "", "YAML catalogue file replacing the built-in entries")

	root.AddCommand(
		newCodesCmd(app),
		newShowCmd(app),
		newScheduleCmd(app),
		newResourcesCmd(app),
	)

	return root
}

// catalogue resolves the --catalog flag, falling back to the App's
// embedded catalogue.
func catalogue(app *App, cmd *cobra.Command) (*catalog.Catalogue, error) {
	path, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return app.Catalogue, nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	return cat, nil
}
