// Package schedule turns a validated BOQ breakdown plus a project context
// into a CPM network, and wraps the solved result for the resource
// leveller and the exporters.
package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/omarzaki/boqplan/internal/catalog"
	"github.com/omarzaki/boqplan/internal/cpm"
	"github.com/omarzaki/boqplan/internal/domain"
)

// Schedule is one solve's worth of state: the instantiated network plus
// the context and breakdown it came from. After Solve returns the
// schedule is read-only and may be shared with exporters.
type Schedule struct {
	ID          string
	BOQCode     string
	Description string
	Context     domain.ProjectContext
	Network     *cpm.Network

	breakdown *domain.Breakdown
}

// Build instantiates an unsolved schedule from a breakdown: one network
// node per sub-activity, sized through the quantity rules and the
// duration calculator, and one typed edge per logic link.
func Build(b *domain.Breakdown, rules catalog.QuantityRules, ctx *domain.ProjectContext) (*Schedule, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	net := cpm.NewNetwork()
	for i := range b.SubActivities {
		sub := &b.SubActivities[i]
		qty, err := rules.Resolve(b, sub)
		if err != nil {
			return nil, err
		}
		dur, err := domain.ActivityDuration(sub, qty, ctx.Shifts)
		if err != nil {
			return nil, err
		}
		crew := sub.Productivity.Crew.TotalWorkers()
		if err := net.AddActivity(&cpm.Activity{
			Code:              sub.Code,
			Name:              sub.Name,
			Duration:          dur,
			CrewSize:          crew,
			LabourHoursPerDay: float64(crew) * domain.HoursPerShiftDay,
		}); err != nil {
			return nil, err
		}
	}
	for i := range b.SubActivities {
		sub := &b.SubActivities[i]
		for _, link := range sub.Links {
			if err := net.AddRelationship(link.Predecessor, sub.Code, link.Type, link.LagDays); err != nil {
				return nil, err
			}
		}
	}

	return &Schedule{
		ID:          uuid.NewString(),
		BOQCode:     b.BOQCode,
		Description: b.Description,
		Context:     *ctx,
		Network:     net,
		breakdown:   b,
	}, nil
}

// BuildFromCatalogue looks up the BOQ code and builds its schedule with
// the catalogue's own quantity rules.
func BuildFromCatalogue(cat *catalog.Catalogue, code string, ctx *domain.ProjectContext) (*Schedule, error) {
	b, err := cat.Get(code)
	if err != nil {
		return nil, err
	}
	return Build(b, cat.Rules(), ctx)
}

// Solve runs the CPM passes and calendar assignment. The schedule is
// immutable afterwards.
func (s *Schedule) Solve() error {
	return s.Network.Run(&s.Context)
}

// Breakdown returns the catalogue entry this schedule was built from.
func (s *Schedule) Breakdown() *domain.Breakdown {
	return s.breakdown
}

// Milestone is a zero-duration marker reported alongside the schedule.
type Milestone struct {
	Code string
	Name string
	Date time.Time
}

// Milestones extracts zero-duration activities plus the project
// completion marker. Requires a solved schedule.
func (s *Schedule) Milestones() []Milestone {
	var out []Milestone
	for _, a := range s.Network.ByEarlyStart() {
		if a.Duration < cpm.Epsilon {
			out = append(out, Milestone{Code: a.Code, Name: a.Name, Date: a.CalendarStart})
		}
	}
	summary := s.Network.Summary()
	out = append(out, Milestone{
		Code: s.BOQCode + "-COMPLETE",
		Name: "All works complete",
		Date: summary.ProjectFinish,
	})
	return out
}
