package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omarzaki/boqplan/internal/cli/formatter"
	"github.com/omarzaki/boqplan/internal/export"
	"github.com/omarzaki/boqplan/internal/schedule"
)

func newScheduleCmd(app *App) *cobra.Command {
	var (
		shifts      int
		workingDays int
		maxWorkers  int
		outPath     string
		formatName  string
	)

	cmd := &cobra.Command{
		Use:   "schedule [code] [start]",
		Short: "Solve the CPM schedule for one BOQ item",
		Long: "Builds the breakdown network for the given BOQ code, runs the\n" +
			"critical-path solve from the start date, and prints the schedule\n" +
			"or exports it with --out.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalogue(app, cmd)
			if err != nil {
				return err
			}
			code, err := resolveCode(app, cat, args)
			if err != nil {
				return err
			}
			start, err := resolveStart(args[1:])
			if err != nil {
				return err
			}
			ctx, err := buildContext(start, workingDays, shifts, maxWorkers)
			if err != nil {
				return err
			}

			s, err := schedule.BuildFromCatalogue(cat, code, ctx)
			if err != nil {
				return err
			}
			if err := s.Solve(); err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprint(app.Out, formatter.FormatSchedule(s))
				fmt.Fprintln(app.Out)
				return nil
			}

			format, err := resolveFormat(formatName, outPath)
			if err != nil {
				return err
			}
			if err := export.ExportFile(s, format, export.Options{}, outPath); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Wrote %s (%s)\n", outPath, format)
			return nil
		},
	}

	cmd.Flags().IntVar(&shifts, "shifts", 1, "Shift count (1, 2, or 3)")
	cmd.Flags().IntVar(&workingDays, "working-days", 6, "Working days per week (5, 6, or 7)")
	cmd.Flags().IntVar(&maxWorkers, "max-workers", 0, "Site worker ceiling (0 disables)")
	cmd.Flags().StringVar(&outPath, "out", "", "Export to this file instead of printing")
	cmd.Flags().StringVar(&formatName, "format", "", "Export format: xlsx, xer, json, or txt (default from --out extension)")

	return cmd
}

// resolveFormat picks the export format from the flag, falling back to
// the output file's extension.
func resolveFormat(name, outPath string) (export.Format, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(outPath), ".")
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return "", &UsageError{Err: err}
	}
	return format, nil
}
