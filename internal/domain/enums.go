package domain

import "fmt"

// LogicType is the precedence relation between two sub-activities.
type LogicType string

const (
	LogicFS LogicType = "FS" // finish-to-start
	LogicSS LogicType = "SS" // start-to-start
	LogicFF LogicType = "FF" // finish-to-finish
	LogicSF LogicType = "SF" // start-to-finish
)

// ValidLogicTypes is the canonical set of accepted logic type strings.
var ValidLogicTypes = map[LogicType]bool{
	LogicFS: true, LogicSS: true, LogicFF: true, LogicSF: true,
}

// ActivityType classifies a sub-activity by execution risk. Each class
// carries a base risk-buffer percentage applied on top of the raw duration.
type ActivityType string

const (
	ActivityCritical    ActivityType = "critical"
	ActivityNonCritical ActivityType = "non_critical"
	ActivityPrecise     ActivityType = "precise"
	ActivityExternal    ActivityType = "external"
	ActivityNormal      ActivityType = "normal"
)

// baseRiskBuffers maps each activity type to its base buffer percentage.
var baseRiskBuffers = map[ActivityType]float64{
	ActivityCritical:    5,
	ActivityNonCritical: 3,
	ActivityPrecise:     8,
	ActivityExternal:    6,
	ActivityNormal:      3,
}

// BaseRiskBuffer returns the base buffer percentage for the given activity
// type. Unknown types fall back to the normal buffer.
func BaseRiskBuffer(t ActivityType) float64 {
	if pct, ok := baseRiskBuffers[t]; ok {
		return pct
	}
	return baseRiskBuffers[ActivityNormal]
}

// Shift factors: productivity degrades per shift as crews rotate and
// night work slows down. Indexed by shift count 1..3.
var shiftFactors = map[int]float64{
	1: 1.0,
	2: 0.6,
	3: 0.45,
}

// ShiftFactor returns the productivity factor for the given shift count,
// or ErrInvalidShifts when shifts is outside {1,2,3}.
func ShiftFactor(shifts int) (float64, error) {
	f, ok := shiftFactors[shifts]
	if !ok {
		return 0, fmt.Errorf("%w: shift count must be 1, 2, or 3, got %d", ErrInvalidShifts, shifts)
	}
	return f, nil
}

// HoursPerShiftDay is the labour-hours one worker contributes per day.
const HoursPerShiftDay = 8.0
