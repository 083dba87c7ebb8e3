package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/omarzaki/boqplan/internal/schedule"
)

// WriteText renders the schedule as a fixed-width plain-text report. The
// output carries no styling so it is safe to redirect or diff.
func WriteText(s *schedule.Schedule, opts Options, w io.Writer) error {
	bw := bufio.NewWriter(w)

	title := opts.projectName(s)
	rule := strings.Repeat("=", max(len(title), 40))
	summary := s.Network.Summary()

	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "BOQ code:          %s\n", s.BOQCode)
	fmt.Fprintf(bw, "Generated:         %s\n", opts.timestamp().Format(dateLayout))
	fmt.Fprintf(bw, "Project start:     %s\n", summary.ProjectStart.Format(dateLayout))
	fmt.Fprintf(bw, "Project finish:    %s\n", summary.ProjectFinish.Format(dateLayout))
	fmt.Fprintf(bw, "Duration:          %.2f working days (%.1f weeks)\n", summary.DurationDays, summary.DurationWeeks)
	fmt.Fprintf(bw, "Working week:      %d days, %d shift(s)\n", summary.WorkingDaysPerWeek, s.Context.Shifts)
	fmt.Fprintf(bw, "Activities:        %d (%d critical, %.0f%%)\n",
		summary.TotalActivities, summary.CriticalCount, summary.CriticalPercent)
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "%-16s %-28s %8s %8s %8s %8s %6s %4s\n",
		"CODE", "ACTIVITY", "DUR", "ES", "EF", "FLOAT", "CREW", "CRIT")
	fmt.Fprintln(bw, strings.Repeat("-", 92))
	for _, a := range s.Network.ByEarlyStart() {
		crit := ""
		if a.IsCritical {
			crit = "*"
		}
		// Truncate on runes: caller-supplied catalogues may carry
		// multibyte activity names.
		name := a.Name
		if r := []rune(name); len(r) > 28 {
			name = string(r[:25]) + "..."
		}
		fmt.Fprintf(bw, "%-16s %-28s %8.2f %8.2f %8.2f %8.2f %6d %4s\n",
			a.Code, name, a.Duration, a.EarlyStart, a.EarlyFinish, a.TotalFloat, a.CrewSize, crit)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Critical path:")
	var codes []string
	for _, a := range s.Network.CriticalPath() {
		codes = append(codes, a.Code)
	}
	fmt.Fprintf(bw, "  %s\n", strings.Join(codes, " -> "))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Milestones:")
	for _, m := range s.Milestones() {
		fmt.Fprintf(bw, "  %-20s %-30s %s\n", m.Code, m.Name, m.Date.Format(dateLayout))
	}

	return bw.Flush()
}
