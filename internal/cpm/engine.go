// Package cpm implements the Critical Path Method over a precedence
// network with typed edges (FS/SS/FF/SF, signed lags): topological
// ordering, forward and backward passes, float computation, critical-path
// extraction, and working-day calendar assignment.
package cpm

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/omarzaki/boqplan/internal/domain"
)

// Epsilon is the float tolerance for the critical test. Durations are
// reals throughout CPM, so an exact zero comparison would be brittle
// against accumulated floating-point error.
const Epsilon = 1e-2

// Network is one schedule's precedence graph. It is owned exclusively by
// its solver context; after Run returns it is effectively immutable and
// may be shared read-only with exporters and the resource leveller.
type Network struct {
	activities map[string]*Activity
	order      []string // insertion order, for deterministic iteration
	topo       []string

	projectDuration float64
	calendar        *Calendar
	ctx             *domain.ProjectContext
	solved          bool
}

// NewNetwork returns an empty precedence network.
func NewNetwork() *Network {
	return &Network{activities: make(map[string]*Activity)}
}

// AddActivity registers a schedule node. Codes must be unique.
func (n *Network) AddActivity(a *Activity) error {
	if _, dup := n.activities[a.Code]; dup {
		return fmt.Errorf("%w: duplicate activity code %s", domain.ErrCatalogueInvalid, a.Code)
	}
	n.activities[a.Code] = a
	n.order = append(n.order, a.Code)
	return nil
}

// AddRelationship records a typed precedence edge from pred to succ.
func (n *Network) AddRelationship(pred, succ string, t domain.LogicType, lag float64) error {
	p, ok := n.activities[pred]
	if !ok {
		return fmt.Errorf("%w: relationship references unknown predecessor %s", domain.ErrCatalogueInvalid, pred)
	}
	s, ok := n.activities[succ]
	if !ok {
		return fmt.Errorf("%w: relationship references unknown successor %s", domain.ErrCatalogueInvalid, succ)
	}
	s.Predecessors = append(s.Predecessors, Relation{Activity: pred, Type: t, Lag: lag})
	p.Successors = append(p.Successors, Relation{Activity: succ, Type: t, Lag: lag})
	return nil
}

// Activity returns the node with the given code, or nil.
func (n *Network) Activity(code string) *Activity {
	return n.activities[code]
}

// Len returns the node count.
func (n *Network) Len() int {
	return len(n.activities)
}

// Solved reports whether Run has completed on this network.
func (n *Network) Solved() bool {
	return n.solved
}

// Run executes the full solve: topological ordering with cycle detection,
// forward pass, backward pass, floats, critical marking, then
// calendar-date assignment. On failure no partial schedule is exposed.
func (n *Network) Run(ctx *domain.ProjectContext) error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if len(n.activities) > 0 {
		if n.sources() == 0 {
			return fmt.Errorf("%w: every activity has a predecessor", domain.ErrNoStartActivity)
		}
		if n.sinks() == 0 {
			return fmt.Errorf("%w: every activity has a successor", domain.ErrNoEndActivity)
		}
	}

	topo, err := n.topoSort()
	if err != nil {
		return err
	}
	n.topo = topo

	n.forwardPass()
	n.backwardPass()
	n.computeFloats()

	n.ctx = ctx
	n.calendar = NewCalendar(ctx)
	n.assignCalendarDates()

	n.solved = true
	return nil
}

func (n *Network) sources() int {
	count := 0
	for _, a := range n.activities {
		if len(a.Predecessors) == 0 {
			count++
		}
	}
	return count
}

func (n *Network) sinks() int {
	count := 0
	for _, a := range n.activities {
		if len(a.Successors) == 0 {
			count++
		}
	}
	return count
}

// topoSort runs Kahn's algorithm with a sorted ready queue for
// determinism. A short order means a cycle; the offending cycle is named
// in the error.
func (n *Network) topoSort() ([]string, error) {
	inDegree := make(map[string]int, len(n.activities))
	for code, a := range n.activities {
		inDegree[code] = len(a.Predecessors)
	}

	var queue []string
	for _, code := range n.order {
		if inDegree[code] == 0 {
			queue = append(queue, code)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		order = append(order, code)

		var ready []string
		for _, rel := range n.activities[code].Successors {
			inDegree[rel.Activity]--
			if inDegree[rel.Activity] == 0 {
				ready = append(ready, rel.Activity)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(order) != len(n.activities) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCycleDetected, n.describeCycle(order))
	}
	return order, nil
}

// describeCycle walks predecessor edges among the nodes Kahn could not
// sort until a node repeats, then prints the loop in forward order.
func (n *Network) describeCycle(sorted []string) string {
	inCycle := make(map[string]bool, len(n.activities))
	for code := range n.activities {
		inCycle[code] = true
	}
	for _, code := range sorted {
		delete(inCycle, code)
	}

	var start string
	for _, code := range n.order {
		if inCycle[code] {
			start = code
			break
		}
	}
	if start == "" {
		return "unlocatable cycle"
	}

	seen := map[string]int{}
	var path []string
	cur := start
	for {
		if at, ok := seen[cur]; ok {
			loop := append(path[at:], cur)
			// Reverse: we walked predecessor edges.
			for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
				loop[i], loop[j] = loop[j], loop[i]
			}
			return strings.Join(loop, " -> ")
		}
		seen[cur] = len(path)
		path = append(path, cur)
		next := ""
		for _, rel := range n.activities[cur].Predecessors {
			if inCycle[rel.Activity] {
				next = rel.Activity
				break
			}
		}
		if next == "" {
			return "unlocatable cycle"
		}
		cur = next
	}
}

// forwardPass computes early dates in topological order. Each predecessor
// relation (T, L) contributes one early-start candidate:
//
//	FS: P.EF + L    SS: P.ES + L
//	FF: P.EF + L − D    SF: P.ES + L − D
func (n *Network) forwardPass() {
	for _, code := range n.topo {
		a := n.activities[code]
		es := 0.0
		for i, rel := range a.Predecessors {
			p := n.activities[rel.Activity]
			var candidate float64
			switch rel.Type {
			case domain.LogicFS:
				candidate = p.EarlyFinish + rel.Lag
			case domain.LogicSS:
				candidate = p.EarlyStart + rel.Lag
			case domain.LogicFF:
				candidate = p.EarlyFinish + rel.Lag - a.Duration
			case domain.LogicSF:
				candidate = p.EarlyStart + rel.Lag - a.Duration
			}
			if i == 0 || candidate > es {
				es = candidate
			}
		}
		a.EarlyStart = es
		a.EarlyFinish = es + a.Duration
	}

	n.projectDuration = 0
	for _, a := range n.activities {
		if a.EarlyFinish > n.projectDuration {
			n.projectDuration = a.EarlyFinish
		}
	}
}

// backwardPass computes late dates in reverse topological order. Each
// successor relation (T, L) contributes one late-finish candidate:
//
//	FS: S.LS − L    SS: S.LS − L + D
//	FF: S.LF − L    SF: S.LF − L + D
func (n *Network) backwardPass() {
	for i := len(n.topo) - 1; i >= 0; i-- {
		a := n.activities[n.topo[i]]
		// Terminal activities start from the project duration. Every other
		// activity is bounded by it too: a finish slipping past the project
		// end would extend the project, so an SS/SF-only successor set must
		// not leave the late finish unconstrained.
		lf := n.projectDuration
		for _, rel := range a.Successors {
			s := n.activities[rel.Activity]
			var candidate float64
			switch rel.Type {
			case domain.LogicFS:
				candidate = s.LateStart - rel.Lag
			case domain.LogicSS:
				candidate = s.LateStart - rel.Lag + a.Duration
			case domain.LogicFF:
				candidate = s.LateFinish - rel.Lag
			case domain.LogicSF:
				candidate = s.LateFinish - rel.Lag + a.Duration
			}
			if candidate < lf {
				lf = candidate
			}
		}
		a.LateFinish = lf
		a.LateStart = lf - a.Duration
	}
}

func (n *Network) computeFloats() {
	for _, a := range n.activities {
		a.TotalFloat = a.LateStart - a.EarlyStart
		if len(a.Successors) == 0 {
			a.FreeFloat = a.TotalFloat
		} else {
			minES := math.Inf(1)
			for _, rel := range a.Successors {
				s := n.activities[rel.Activity]
				if s.EarlyStart < minES {
					minES = s.EarlyStart
				}
			}
			a.FreeFloat = minES - a.EarlyFinish
		}
		a.IsCritical = math.Abs(a.TotalFloat) < Epsilon
	}
}

func (n *Network) assignCalendarDates() {
	for _, a := range n.activities {
		a.CalendarStart = n.calendar.WorkingDay(int(math.Floor(a.EarlyStart)))
		a.CalendarFinish = n.calendar.WorkingDay(int(math.Ceil(a.EarlyFinish)))
	}
}

// ProjectDuration returns the solved project duration in working days.
func (n *Network) ProjectDuration() float64 {
	return n.projectDuration
}

// Calendar returns the working-day calendar of the solved network.
func (n *Network) Calendar() *Calendar {
	return n.calendar
}

// TopologicalOrder returns the activities in solve order.
func (n *Network) TopologicalOrder() []*Activity {
	out := make([]*Activity, len(n.topo))
	for i, code := range n.topo {
		out[i] = n.activities[code]
	}
	return out
}

// ByEarlyStart returns the activities sorted by (early start, code).
func (n *Network) ByEarlyStart() []*Activity {
	out := make([]*Activity, 0, len(n.activities))
	for _, code := range n.order {
		out = append(out, n.activities[code])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EarlyStart != out[j].EarlyStart {
			return out[i].EarlyStart < out[j].EarlyStart
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// CriticalPath returns the critical activities sorted by
// (early start, code) — a deterministic tie-break.
func (n *Network) CriticalPath() []*Activity {
	var out []*Activity
	for _, a := range n.ByEarlyStart() {
		if a.IsCritical {
			out = append(out, a)
		}
	}
	return out
}

// Summary returns project-level totals for a solved network.
func (n *Network) Summary() Summary {
	critical := 0
	for _, a := range n.activities {
		if a.IsCritical {
			critical++
		}
	}
	s := Summary{
		DurationDays:    n.projectDuration,
		DurationWeeks:   n.projectDuration / float64(n.ctx.WorkingDaysPerWeek),
		TotalActivities: len(n.activities),
		CriticalCount:   critical,
	}
	if len(n.activities) > 0 {
		s.CriticalPercent = float64(critical) / float64(len(n.activities)) * 100
	}
	s.ProjectStart = n.calendar.WorkingDay(0)
	s.ProjectFinish = n.calendar.WorkingDay(int(math.Ceil(n.projectDuration)))
	s.WorkingDaysPerWeek = n.ctx.WorkingDaysPerWeek
	return s
}
