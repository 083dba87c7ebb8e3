package resource

import "time"

// Violation is one day whose workforce demand exceeds the site's worker
// limit. Bed, meal, and bus limits are informational and never produce
// violations.
type Violation struct {
	Day      int
	Date     time.Time
	Required int
	Capacity int
}

// CapacityViolations scans the histogram against the site's worker limit.
// Without a configured capacity the result is empty. The scan is pure:
// repeated calls over the same histogram yield identical lists.
func (l *Leveller) CapacityViolations(h *Histogram) []Violation {
	if l.capacity == nil || l.capacity.MaxWorkers <= 0 {
		return nil
	}
	var out []Violation
	for _, day := range h.Days {
		if day.TotalWorkers > l.capacity.MaxWorkers {
			out = append(out, Violation{
				Day:      day.DayIndex,
				Date:     day.Date,
				Required: day.TotalWorkers,
				Capacity: l.capacity.MaxWorkers,
			})
		}
	}
	return out
}
