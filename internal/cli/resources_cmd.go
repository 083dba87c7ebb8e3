package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarzaki/boqplan/internal/cli/formatter"
	"github.com/omarzaki/boqplan/internal/domain"
	"github.com/omarzaki/boqplan/internal/resource"
	"github.com/omarzaki/boqplan/internal/schedule"
)

func newResourcesCmd(app *App) *cobra.Command {
	var (
		shifts      int
		workingDays int
		maxWorkers  int
		level       bool
	)

	cmd := &cobra.Command{
		Use:   "resources [code] [start]",
		Short: "Show the daily workforce histogram and capacity report",
		Args:  cobra.MaximumNArgs(2),
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

			lev := resource.NewLeveller(s.Network, ctx.SiteCapacity)
			original := lev.AnalyzeOriginal()

			var out string
			out += formatter.FormatHistogram(original) + "\n"
			if level {
				out += formatter.FormatHistogram(lev.Level(resource.DefaultTargetPeakRatio)) + "\n"
			}

			violations := lev.CapacityViolations(original)
			out += formatter.FormatViolations(violations)

			// When the site ceiling is breached, show the shift alternatives
			// for the heaviest activity on the worst day.
			if len(violations) > 0 {
				if heavy, opts := worstActivityOptions(s, original); heavy != "" {
					out += "\n" + formatter.FormatShiftOptions(heavy, opts)
				}
			}

			fmt.Fprint(app.Out, formatter.RenderBox("Resources", out))
			fmt.Fprintln(app.Out)
			return nil
		},
	}

	cmd.Flags().IntVar(&shifts, "shifts", 1, "Shift count (1, 2, or 3)")
	cmd.Flags().IntVar(&workingDays, "working-days", 6, "Working days per week (5, 6, or 7)")
	cmd.Flags().IntVar(&maxWorkers, "max-workers", 0, "Site worker ceiling (0 disables)")
	cmd.Flags().BoolVar(&level, "level", false, "Also show the late-start levelled histogram")

	return cmd
}

// worstActivityOptions finds the largest crew running on the peak day and
// returns its shift alternatives. Solved durations already carry the
// context's shift factor, so the factor is divided out first: the option
// table is always relative to the single-shift base.
func worstActivityOptions(s *schedule.Schedule, h *resource.Histogram) (string, []resource.ShiftOption) {
	if h.PeakDay >= len(h.Days) {
		return "", nil
	}

	var heaviest string
	biggest := 0
	for _, code := range h.Days[h.PeakDay].Running {
		if a := s.Network.Activity(code); a != nil && a.CrewSize > biggest {
			heaviest, biggest = code, a.CrewSize
		}
	}
	if heaviest == "" {
		return "", nil
	}

	sub := s.Breakdown().Sub(heaviest)
	node := s.Network.Activity(heaviest)
	if sub == nil || node == nil {
		return "", nil
	}
	factor, err := domain.ShiftFactor(s.Context.Shifts)
	if err != nil {
		return "", nil
	}
	return heaviest, resource.SuggestShifts(sub.Productivity.Crew, node.Duration/factor)
}
