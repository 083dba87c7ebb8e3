package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/omarzaki/boqplan/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Date renders a calendar date for table cells.
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Days renders a working-day count with two decimals, dimming zero.
func Days(d float64) string {
	if d < 0.01 && d > -0.01 {
		return Dim("0.00")
	}
	return fmt.Sprintf("%.2f", d)
}

// CrewLabel renders a crew as "4S+2H+sup (7)" with the total headcount.
func CrewLabel(c domain.Crew) string {
	parts := []string{fmt.Sprintf("%dS", c.SkilledWorkers)}
	if c.Helpers > 0 {
		parts = append(parts, fmt.Sprintf("%dH", c.Helpers))
	}
	if c.Supervisor {
		parts = append(parts, "sup")
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, "+"), c.TotalWorkers())
}

// LinkLabel renders a logic link as "FS CS-POUR+2" or "FF CS-CURE-0.5".
func LinkLabel(l domain.LogicLink) string {
	label := fmt.Sprintf("%s %s", l.Type, l.Predecessor)
	if l.LagDays > 0 {
		label += fmt.Sprintf("+%g", l.LagDays)
	} else if l.LagDays < 0 {
		label += fmt.Sprintf("%g", l.LagDays)
	}
	return label
}

// TypeBadge renders an activity type with its risk-buffer coloring.
func TypeBadge(t domain.ActivityType) string {
	switch t {
	case domain.ActivityCritical:
		return StyleRed.Render(string(t))
	case domain.ActivityPrecise:
		return StylePurple.Render(string(t))
	case domain.ActivityExternal:
		return StyleYellow.Render(string(t))
	default:
		return StyleFg.Render(string(t))
	}
}
