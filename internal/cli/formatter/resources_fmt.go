package formatter

import (
	"fmt"
	"strings"

	"github.com/omarzaki/boqplan/internal/resource"
)

const histogramBarWidth = 30

// RenderBar renders a worker-count bar scaled against the peak.
func RenderBar(workers, peak int) string {
	if peak <= 0 {
		return ""
	}
	filled := workers * histogramBarWidth / peak
	if workers > 0 && filled == 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled)
	if workers == peak {
		return StyleRed.Render(bar)
	}
	return StyleBlue.Render(bar)
}

// FormatHistogram formats the daily workforce profile with statistics.
func FormatHistogram(h *resource.Histogram) string {
	var b strings.Builder

	title := "Workforce (early start)"
	if h.Framing == resource.FramingLate {
		title = "Workforce (levelled, late start)"
	}
	b.WriteString(Header(title) + "\n")

	for _, day := range h.Days {
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			Dim(fmt.Sprintf("D%03d", day.DayIndex)),
			Dim(day.Date.Format("Jan 02")),
			RenderBar(day.TotalWorkers, h.PeakWorkers),
			StyleFg.Render(fmt.Sprintf("%d", day.TotalWorkers))))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %d workers on day %d    %s %.1f    %s %d\n",
		Dim("Peak:"), h.PeakWorkers, h.PeakDay,
		Dim("Average:"), h.AverageWorkers,
		Dim("Min:"), h.MinWorkers))

	ratio := fmt.Sprintf("%.2f", h.PeakRatio)
	if h.Balanced(resource.DefaultTargetPeakRatio) {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim("Peak ratio:"), StyleGreen.Render(ratio), Dim("(balanced)")))
	} else {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim("Peak ratio:"), StyleYellow.Render(ratio),
			Dim(fmt.Sprintf("(target %.2f)", resource.DefaultTargetPeakRatio))))
	}

	return b.String()
}

// FormatViolations formats capacity violations, or a green all-clear.
func FormatViolations(violations []resource.Violation) string {
	if len(violations) == 0 {
		return StyleGreen.Render("✔ Site capacity respected on every working day") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Capacity violations") + "\n")
	for _, v := range violations {
		b.WriteString(StyleRed.Render(fmt.Sprintf(
			"  ▲ day %d (%s): %d workers on site, capacity %d",
			v.Day, v.Date.Format("Jan 2"), v.Required, v.Capacity)) + "\n")
	}
	return b.String()
}

// FormatShiftOptions formats the shift suggestions for one activity.
func FormatShiftOptions(code string, opts []resource.ShiftOption) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Shift options for %s", code)) + "\n")

	headers := []string{"SHIFTS", "DURATION", "WORKERS", "CREW"}
	var rows [][]string
	for _, o := range opts {
		rows = append(rows, []string{
			fmt.Sprintf("%d", o.Shifts),
			Days(o.Duration),
			fmt.Sprintf("%d", o.Workers),
			StyleFg.Render(CrewLabel(o.Crew)),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
