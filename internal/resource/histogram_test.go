package resource

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarzaki/boqplan/internal/cpm"
	"github.com/omarzaki/boqplan/internal/domain"
)

func solveCtx() *domain.ProjectContext {
	return &domain.ProjectContext{
		ProjectStart:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		WorkingDaysPerWeek: 7,
		Shifts:             1,
	}
}

func addActivity(t *testing.T, n *cpm.Network, code string, duration float64, crew int) {
	t.Helper()
	require.NoError(t, n.AddActivity(&cpm.Activity{
		Code: code, Name: code, Duration: duration,
		CrewSize: crew, LabourHoursPerDay: float64(crew) * 8,
	}))
}

func TestAnalyzeOriginal_SmallNetwork(t *testing.T) {
	n := cpm.NewNetwork()
	addActivity(t, n, "A", 2, 5)
	addActivity(t, n, "B", 3, 4)
	require.NoError(t, n.AddRelationship("A", "B", domain.LogicFS, 0))
	require.NoError(t, n.Run(solveCtx()))

	h := NewLeveller(n, nil).AnalyzeOriginal()
	require.Len(t, h.Days, 5)

	assert.Equal(t, 5, h.Days[0].TotalWorkers)
	assert.Equal(t, []string{"A"}, h.Days[0].Running)
	assert.Equal(t, 4, h.Days[2].TotalWorkers)
	assert.Equal(t, []string{"B"}, h.Days[4].Running)
	assert.InDelta(t, 40.0, h.Days[0].LabourHours, 1e-9)

	assert.Equal(t, 5, h.PeakWorkers)
	assert.Equal(t, 0, h.PeakDay)
	assert.Equal(t, 4, h.MinWorkers)
	assert.InDelta(t, (5*2+4*3)/5.0, h.AverageWorkers, 1e-9)
	assert.InDelta(t, 5/4.4, h.PeakRatio, 1e-9)
}

func TestLevel_ReducesPeakWithoutStretchingProject(t *testing.T) {
	// One critical backbone K plus two floaty branches that pile up at the
	// project start under early framing but spread out under late framing.
	n := cpm.NewNetwork()
	addActivity(t, n, "K", 10, 5)
	addActivity(t, n, "B1", 3, 10)
	addActivity(t, n, "B2", 3, 10)
	addActivity(t, n, "B3", 4, 1)
	addActivity(t, n, "F", 2, 5)
	require.NoError(t, n.AddRelationship("K", "F", domain.LogicFS, 0))
	require.NoError(t, n.AddRelationship("B1", "F", domain.LogicFS, 0))
	require.NoError(t, n.AddRelationship("B2", "B3", domain.LogicFS, 0))
	require.NoError(t, n.AddRelationship("B3", "F", domain.LogicFS, 0))
	require.NoError(t, n.Run(solveCtx()))

	duration := n.ProjectDuration()
	lev := NewLeveller(n, nil)

	original := lev.AnalyzeOriginal()
	assert.Equal(t, 25, original.PeakWorkers, "B1, B2 and K stack on day 0")
	assert.Greater(t, original.PeakRatio, DefaultTargetPeakRatio)

	levelled := lev.Level(DefaultTargetPeakRatio)
	assert.Equal(t, 16, levelled.PeakWorkers)
	assert.Less(t, levelled.PeakRatio, original.PeakRatio)

	// Advisory only: nothing moved, project duration is untouched.
	assert.Equal(t, duration, n.ProjectDuration())

	// Conservation: both framings place the same worker-days.
	sumDays := func(h *Histogram) int {
		total := 0
		for _, d := range h.Days {
			total += d.TotalWorkers
		}
		return total
	}
	assert.Equal(t, sumDays(original), sumDays(levelled))
}

// Histogram conservation over random DAGs: worker-days on the calendar
// equal worker-days implied by each activity's rounded window.
func TestHistogram_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	for trial := 0; trial < 100; trial++ {
		n := cpm.NewNetwork()
		size := 3 + rng.Intn(10)
		for i := 0; i < size; i++ {
			addActivity(t, n, fmt.Sprintf("T%02d", i), 0.5+rng.Float64()*6, 1+rng.Intn(8))
		}
		for j := 1; j < size; j++ {
			for i := 0; i < j; i++ {
				if rng.Float64() < 0.3 {
					require.NoError(t, n.AddRelationship(
						fmt.Sprintf("T%02d", i), fmt.Sprintf("T%02d", j), domain.LogicFS, rng.Float64()*2))
				}
			}
		}
		require.NoError(t, n.Run(solveCtx()))

		h := NewLeveller(n, nil).AnalyzeOriginal()

		got := 0
		for _, d := range h.Days {
			got += d.TotalWorkers
		}
		want := 0
		for _, a := range n.TopologicalOrder() {
			want += (int(math.Ceil(a.EarlyFinish)) - int(math.Floor(a.EarlyStart))) * a.CrewSize
		}
		assert.Equal(t, want, got, "trial %d", trial)
	}
}

func TestCapacityViolations(t *testing.T) {
	n := cpm.NewNetwork()
	addActivity(t, n, "A", 2, 8)
	addActivity(t, n, "B", 4, 5)
	require.NoError(t, n.Run(solveCtx()))

	lev := NewLeveller(n, &domain.SiteCapacity{MaxWorkers: 10})
	h := lev.AnalyzeOriginal()

	violations := lev.CapacityViolations(h)
	require.Len(t, violations, 2, "days 0 and 1 carry 13 workers")
	assert.Equal(t, 0, violations[0].Day)
	assert.Equal(t, 13, violations[0].Required)
	assert.Equal(t, 10, violations[0].Capacity)

	// Idempotence: a second scan yields the identical list.
	assert.Equal(t, violations, lev.CapacityViolations(h))
}

func TestCapacityViolations_NoCapacity(t *testing.T) {
	n := cpm.NewNetwork()
	addActivity(t, n, "A", 2, 50)
	require.NoError(t, n.Run(solveCtx()))

	lev := NewLeveller(n, nil)
	assert.Empty(t, lev.CapacityViolations(lev.AnalyzeOriginal()))
}

func TestSuggestShifts(t *testing.T) {
	crew := domain.Crew{SkilledWorkers: 6, Helpers: 4, Supervisor: true}

	opts := SuggestShifts(crew, 14.0)
	require.Len(t, opts, 3)

	assert.Equal(t, 1, opts[0].Shifts)
	assert.InDelta(t, 14.0, opts[0].Duration, 1e-9)
	assert.Equal(t, 11, opts[0].Workers)

	assert.Equal(t, 2, opts[1].Shifts)
	assert.InDelta(t, 14.0*0.6, opts[1].Duration, 1e-9)
	assert.Equal(t, 12, opts[1].Crew.SkilledWorkers)
	assert.Equal(t, 8, opts[1].Crew.Helpers)

	assert.Equal(t, 3, opts[2].Shifts)
	assert.InDelta(t, 14.0*0.45, opts[2].Duration, 1e-9)
	assert.Equal(t, 18, opts[2].Crew.SkilledWorkers)
}
