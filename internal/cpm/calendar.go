package cpm

import (
	"time"

	"github.com/omarzaki/boqplan/internal/domain"
)

// Calendar maps working-day indices onto civil dates under a project's
// working-week policy. Index 0 is the first working day on or after the
// project start; rest days are skipped. Holidays are not modelled.
type Calendar struct {
	start time.Time
	rest  map[time.Weekday]bool
}

// NewCalendar builds a calendar from the project context.
func NewCalendar(ctx *domain.ProjectContext) *Calendar {
	return &Calendar{
		start: ctx.ProjectStart,
		rest:  ctx.RestDays(),
	}
}

// WorkingDay returns the date of the index-th working day. Negative
// indices clamp to the first working day.
func (c *Calendar) WorkingDay(index int) time.Time {
	d := c.start
	for c.rest[d.Weekday()] {
		d = d.AddDate(0, 0, 1)
	}
	for i := 0; i < index; i++ {
		d = d.AddDate(0, 0, 1)
		for c.rest[d.Weekday()] {
			d = d.AddDate(0, 0, 1)
		}
	}
	return d
}

// IsWorkingDay reports whether the given date is worked.
func (c *Calendar) IsWorkingDay(d time.Time) bool {
	return !c.rest[d.Weekday()]
}
