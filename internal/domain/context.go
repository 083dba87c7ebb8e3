package domain

import (
	"fmt"
	"time"
)

// SiteCapacity bounds the site logistics. Only MaxWorkers is enforced by
// the capacity check; the remaining fields are reported for information.
type SiteCapacity struct {
	MaxWorkers      int
	MaxBeds         int
	MaxMeals        int
	MaxBuses        int
	WorkspaceAreaM2 float64
}

// ProjectContext carries the per-solve inputs: start date (local civil
// date, no time zone semantics), working week, shift count, and optional
// site capacity.
type ProjectContext struct {
	ProjectStart       time.Time
	WorkingDaysPerWeek int
	Shifts             int
	SiteCapacity       *SiteCapacity
}

// Validate checks the context bounds shared by every solve.
func (ctx *ProjectContext) Validate() error {
	switch ctx.WorkingDaysPerWeek {
	case 5, 6, 7:
	default:
		return fmt.Errorf("working days per week must be 5, 6, or 7, got %d", ctx.WorkingDaysPerWeek)
	}
	if _, err := ShiftFactor(ctx.Shifts); err != nil {
		return err
	}
	return nil
}

// RestDays returns the weekdays that are not worked under the context's
// working-week policy. The site week runs Saturday through Thursday, so a
// 5-day week rests Friday and Saturday and a 6-day week rests Friday only.
func (ctx *ProjectContext) RestDays() map[time.Weekday]bool {
	switch ctx.WorkingDaysPerWeek {
	case 5:
		return map[time.Weekday]bool{time.Friday: true, time.Saturday: true}
	case 6:
		return map[time.Weekday]bool{time.Friday: true}
	default:
		return map[time.Weekday]bool{}
	}
}
