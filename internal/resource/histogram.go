// Package resource derives the daily workforce view of a solved schedule:
// histograms under early- or late-start framing, peak and average
// statistics, site-capacity checks, and shift-count suggestions.
package resource

import (
	"math"
	"sort"
	"time"

	"github.com/omarzaki/boqplan/internal/cpm"
	"github.com/omarzaki/boqplan/internal/domain"
)

// Framing selects which CPM window places activities onto days.
type Framing string

const (
	// FramingEarly uses each activity's early start window.
	FramingEarly Framing = "early"
	// FramingLate uses the late start window, pushing float usage to its
	// maximum. This is the advisory levelling pass.
	FramingLate Framing = "late"
)

// DefaultTargetPeakRatio is the levelling target: a histogram whose peak
// stays within 20% of the average is considered balanced.
const DefaultTargetPeakRatio = 1.20

// DailyResource is one day's workforce demand.
type DailyResource struct {
	DayIndex     int
	Date         time.Time
	TotalWorkers int
	LabourHours  float64
	Running      []string // activity codes working this day, sorted
}

// Histogram is the daily profile plus derived statistics. Averages and
// minima are taken over days with workers only.
type Histogram struct {
	Framing        Framing
	Days           []DailyResource
	PeakWorkers    int
	PeakDay        int
	MinWorkers     int
	AverageWorkers float64
	PeakRatio      float64
}

// Balanced reports whether the peak ratio meets the target.
func (h *Histogram) Balanced(target float64) bool {
	return h.PeakRatio <= target
}

// Leveller builds resource views over one solved network. It never
// mutates the network: levelling is advisory.
type Leveller struct {
	net      *cpm.Network
	capacity *domain.SiteCapacity
}

// NewLeveller wraps a solved network with an optional site capacity.
func NewLeveller(net *cpm.Network, capacity *domain.SiteCapacity) *Leveller {
	return &Leveller{net: net, capacity: capacity}
}

// AnalyzeOriginal builds the histogram with early-start framing.
func (l *Leveller) AnalyzeOriginal() *Histogram {
	return l.histogram(FramingEarly)
}

// Level builds the advisory levelled histogram without touching project
// duration. Late-start framing delays non-critical activities toward
// their late start, which usually spreads the load; when the float
// structure makes the late windows stack instead, the early profile is
// already the flatter one and is returned unchanged. Either way the
// result never carries a worse peak ratio than AnalyzeOriginal, and is
// returned whether or not it meets the target.
func (l *Leveller) Level(targetPeakRatio float64) *Histogram {
	late := l.histogram(FramingLate)
	early := l.histogram(FramingEarly)
	if late.PeakRatio <= early.PeakRatio {
		return late
	}
	return early
}

func (l *Leveller) histogram(framing Framing) *Histogram {
	h := &Histogram{Framing: framing}

	horizon := int(math.Ceil(l.net.ProjectDuration()))
	activities := l.net.ByEarlyStart()
	cal := l.net.Calendar()

	for d := 0; d < horizon; d++ {
		day := DailyResource{DayIndex: d, Date: cal.WorkingDay(d)}
		for _, a := range activities {
			start, finish := a.EarlyStart, a.EarlyFinish
			if framing == FramingLate {
				start, finish = a.LateStart, a.LateFinish
			}
			if float64(d) >= math.Floor(start) && float64(d) < math.Ceil(finish) {
				day.TotalWorkers += a.CrewSize
				day.LabourHours += a.LabourHoursPerDay
				day.Running = append(day.Running, a.Code)
			}
		}
		sort.Strings(day.Running)
		h.Days = append(h.Days, day)
	}

	h.computeStats()
	return h
}

func (h *Histogram) computeStats() {
	sum := 0
	active := 0
	h.MinWorkers = 0
	for _, day := range h.Days {
		if day.TotalWorkers > h.PeakWorkers {
			h.PeakWorkers = day.TotalWorkers
			h.PeakDay = day.DayIndex
		}
		if day.TotalWorkers > 0 {
			sum += day.TotalWorkers
			active++
			if h.MinWorkers == 0 || day.TotalWorkers < h.MinWorkers {
				h.MinWorkers = day.TotalWorkers
			}
		}
	}
	if active > 0 {
		h.AverageWorkers = float64(sum) / float64(active)
	}
	if h.AverageWorkers > 0 {
		h.PeakRatio = float64(h.PeakWorkers) / h.AverageWorkers
	}
}
