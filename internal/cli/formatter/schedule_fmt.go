package formatter

import (
	"fmt"
	"strings"

	"github.com/omarzaki/boqplan/internal/schedule"
)

// FormatSchedule formats a solved schedule: summary, activity table,
// critical path, and milestones.
func FormatSchedule(s *schedule.Schedule) string {
	var b strings.Builder

	summary := s.Network.Summary()
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(s.BOQCode), StyleFg.Render(s.Description)))
	b.WriteString(fmt.Sprintf("%s  %s → %s\n",
		Dim("Dates:"), Date(summary.ProjectStart), Date(summary.ProjectFinish)))
	b.WriteString(fmt.Sprintf("%s  %.2f working days (%.1f weeks), %d-day week, %d shift(s)\n",
		Dim("Duration:"), summary.DurationDays, summary.DurationWeeks,
		summary.WorkingDaysPerWeek, s.Context.Shifts))
	b.WriteString(fmt.Sprintf("%s  %d activities, %s\n\n",
		Dim("Network:"), summary.TotalActivities,
		StyleRed.Render(fmt.Sprintf("%d critical (%.0f%%)", summary.CriticalCount, summary.CriticalPercent))))

	headers := []string{"CODE", "ACTIVITY", "DUR", "ES", "EF", "FLOAT", "START", "FINISH", ""}
	var rows [][]string
	for _, a := range s.Network.ByEarlyStart() {
		rows = append(rows, []string{
			Bold(a.Code),
			StyleFg.Render(a.Name),
			Days(a.Duration),
			Days(a.EarlyStart),
			Days(a.EarlyFinish),
			FloatStyle(a.TotalFloat).Render(Days(a.TotalFloat)),
			Date(a.CalendarStart),
			Date(a.CalendarFinish),
			CriticalPill(a.IsCritical),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	b.WriteString(Header("Critical path") + "\n")
	var codes []string
	for _, a := range s.Network.CriticalPath() {
		codes = append(codes, a.Code)
	}
	b.WriteString(StyleRed.Render(strings.Join(codes, " → ")) + "\n\n")

	b.WriteString(Header("Milestones") + "\n")
	for _, m := range s.Milestones() {
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			StyleGreen.Render("◆"), Bold(m.Code), Dim(Date(m.Date))))
	}

	return RenderBox("Schedule", b.String())
}
