package domain

// Crew is the labour composition assigned to a sub-activity.
type Crew struct {
	SkilledWorkers int
	Helpers        int
	Equipment      string
	Supervisor     bool
}

// TotalWorkers returns the headcount including the supervisor.
func (c Crew) TotalWorkers() int {
	total := c.SkilledWorkers + c.Helpers
	if c.Supervisor {
		total++
	}
	return total
}

// Scale returns the crew multiplied for additional shifts. Equipment is
// shared across shifts and stays as-is.
func (c Crew) Scale(n int) Crew {
	return Crew{
		SkilledWorkers: c.SkilledWorkers * n,
		Helpers:        c.Helpers * n,
		Equipment:      c.Equipment,
		Supervisor:     c.Supervisor,
	}
}

// ProductivityRate is the output a crew achieves per working day on a
// single shift.
type ProductivityRate struct {
	RatePerDay float64 // output units per day, single shift
	Unit       string
	Crew       Crew
}

// LogicLink ties a sub-activity to one of its predecessors with a typed
// precedence relation and a signed lag in working days.
type LogicLink struct {
	Type        LogicType
	Predecessor string
	LagDays     float64
}

// SubActivity is one step of a BOQ breakdown. Code is unique within the
// enclosing breakdown.
type SubActivity struct {
	Code             string
	Name             string
	Unit             string
	Productivity     ProductivityRate
	Type             ActivityType
	Links            []LogicLink
	AdditionalBuffer float64 // extra risk buffer %, summed with the base
	Remarks          string
}

// Breakdown is the static decomposition of one BOQ line item into ordered
// sub-activities with typed logic links.
type Breakdown struct {
	BOQCode       string
	Description   string
	TotalQuantity float64
	Unit          string
	Category      string
	SubActivities []SubActivity
}

// Sub returns the sub-activity with the given code, or nil.
func (b *Breakdown) Sub(code string) *SubActivity {
	for i := range b.SubActivities {
		if b.SubActivities[i].Code == code {
			return &b.SubActivities[i]
		}
	}
	return nil
}
