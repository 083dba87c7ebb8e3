package cpm

import (
	"time"

	"github.com/omarzaki/boqplan/internal/domain"
)

// Relation is one typed precedence edge endpoint: the peer activity code,
// the logic type, and the signed lag in working days.
type Relation struct {
	Activity string
	Type     domain.LogicType
	Lag      float64
}

// Activity is a runtime schedule node. Durations and CPM fields are real
// working days; calendar dates are assigned only after the numeric passes
// converge.
type Activity struct {
	Code              string
	Name              string
	Duration          float64
	CrewSize          int
	LabourHoursPerDay float64

	Predecessors []Relation
	Successors   []Relation

	EarlyStart  float64
	EarlyFinish float64
	LateStart   float64
	LateFinish  float64
	TotalFloat  float64
	FreeFloat   float64
	IsCritical  bool

	CalendarStart  time.Time
	CalendarFinish time.Time
}

// Summary aggregates project-level results of a solved network.
type Summary struct {
	ProjectStart       time.Time
	ProjectFinish      time.Time
	DurationDays       float64
	DurationWeeks      float64
	TotalActivities    int
	CriticalCount      int
	CriticalPercent    float64
	WorkingDaysPerWeek int
}
