package resource

import "github.com/omarzaki/boqplan/internal/domain"

// ShiftOption is one operator hint: the duration and crew a sub-activity
// would take at the given shift count.
type ShiftOption struct {
	Shifts   int
	Duration float64
	Crew     domain.Crew
	Workers  int
}

// SuggestShifts returns the three shift alternatives for an activity with
// the given single-shift duration and base crew. Duration scales by the
// shift factor; the crew multiplies per shift.
func SuggestShifts(baseCrew domain.Crew, baseDuration float64) []ShiftOption {
	out := make([]ShiftOption, 0, 3)
	for _, shifts := range []int{1, 2, 3} {
		factor, _ := domain.ShiftFactor(shifts)
		crew := baseCrew.Scale(shifts)
		out = append(out, ShiftOption{
			Shifts:   shifts,
			Duration: baseDuration * factor,
			Crew:     crew,
			Workers:  crew.TotalWorkers(),
		})
	}
	return out
}
