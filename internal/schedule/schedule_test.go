package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarzaki/boqplan/internal/catalog"
	"github.com/omarzaki/boqplan/internal/cpm"
	"github.com/omarzaki/boqplan/internal/domain"
)

func testContext(start time.Time, workingDays, shifts int) *domain.ProjectContext {
	return &domain.ProjectContext{
		ProjectStart:       start,
		WorkingDaysPerWeek: workingDays,
		Shifts:             shifts,
	}
}

func TestBuild_NodeSizing(t *testing.T) {
	cat := catalog.Embedded()
	ctx := testContext(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 6, 1)

	s, err := BuildFromCatalogue(cat, "CONC-SLAB-001", ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "CONC-SLAB-001", s.BOQCode)
	assert.Equal(t, 11, s.Network.Len())

	// Pour: 350 m3 at 120 m3/day, critical class (+5%).
	pour := s.Network.Activity("CS-POUR")
	require.NotNil(t, pour)
	assert.InDelta(t, 350.0/120.0*1.05, pour.Duration, 1e-9)
	assert.Equal(t, 13, pour.CrewSize) // 6 skilled + 6 helpers + supervisor
	assert.InDelta(t, 13*8.0, pour.LabourHoursPerDay, 1e-9)

	// Formwork: 350 m3 × 1.2 m2/m3 at 80 m2/day, normal class (+3%).
	form := s.Network.Activity("CS-FORM")
	require.NotNil(t, form)
	assert.InDelta(t, 420.0/80.0*1.03, form.Duration, 1e-9)
}

func TestBuild_UnknownCode(t *testing.T) {
	cat := catalog.Embedded()
	ctx := testContext(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 6, 1)

	_, err := BuildFromCatalogue(cat, "MISSING-001", ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuild_UnresolvableQuantity(t *testing.T) {
	b := domain.Breakdown{
		BOQCode:       "ODD-001",
		TotalQuantity: 10,
		Category:      "concrete",
		SubActivities: []domain.SubActivity{
			{
				Code: "OD-A", Name: "odd unit", Unit: "km",
				Productivity: domain.ProductivityRate{RatePerDay: 5, Crew: domain.Crew{SkilledWorkers: 1}},
				Type:         domain.ActivityNormal,
			},
		},
	}
	ctx := testContext(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 6, 1)

	_, err := Build(&b, catalog.DefaultRules(), ctx)
	require.ErrorIs(t, err, domain.ErrUnresolvableQuantity)
	assert.Contains(t, err.Error(), "OD-A")
}

func TestBuild_InvalidShifts(t *testing.T) {
	cat := catalog.Embedded()
	ctx := testContext(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 6, 4)

	_, err := BuildFromCatalogue(cat, "TILE-001", ctx)
	require.ErrorIs(t, err, domain.ErrInvalidShifts)
}

// Scenario: concrete slab, single shift, 6-day week.
func TestSolve_ConcreteSlab(t *testing.T) {
	cat := catalog.Embedded()
	ctx := testContext(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 6, 1)

	s, err := BuildFromCatalogue(cat, "CONC-SLAB-001", ctx)
	require.NoError(t, err)
	require.NoError(t, s.Solve())

	assert.Greater(t, s.Network.ProjectDuration(), 0.0)

	pour := s.Network.Activity("CS-POUR")
	assert.True(t, pour.IsCritical, "concrete pouring must sit on the critical path")

	final := s.Network.Activity("CS-FINAL")
	assert.InDelta(t, s.Network.ProjectDuration(), final.EarlyFinish, cpm.Epsilon,
		"final inspection closes the project")

	// Calendar dates respect the 6-day week: nothing starts on a Friday.
	for _, a := range s.Network.ByEarlyStart() {
		assert.NotEqual(t, time.Friday, a.CalendarStart.Weekday(), "%s starts on a rest day", a.Code)
		assert.NotEqual(t, time.Friday, a.CalendarFinish.Weekday(), "%s finishes on a rest day", a.Code)
	}
}

// Scenario: plastering with an FS setting lag and an FF-terminated
// critical path.
func TestSolve_Plastering(t *testing.T) {
	cat := catalog.Embedded()
	ctx := testContext(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 6, 1)

	s, err := BuildFromCatalogue(cat, "PLAST-001", ctx)
	require.NoError(t, err)
	require.NoError(t, s.Solve())

	dots := s.Network.Activity("PL-DOTS")
	base := s.Network.Activity("PL-BASE")
	assert.GreaterOrEqual(t, base.EarlyStart, dots.EarlyFinish+2-1e-9,
		"base coat waits out the 2-day setting period")

	critical := s.Network.CriticalPath()
	require.NotEmpty(t, critical)
	assert.Equal(t, "PL-INSPECT", critical[len(critical)-1].Code,
		"critical path ends at the consultant inspection")

	cure := s.Network.Activity("PL-CURE")
	inspect := s.Network.Activity("PL-INSPECT")
	assert.InDelta(t, cure.EarlyFinish+1, inspect.EarlyFinish, cpm.Epsilon,
		"inspection finish is pinned by the FF link to curing")
}

// Scenario: fence with an SS overlap and FF closures.
func TestSolve_Fence(t *testing.T) {
	cat := catalog.Embedded()
	ctx := testContext(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 6, 1)

	s, err := BuildFromCatalogue(cat, "FENCE-001", ctx)
	require.NoError(t, err)
	require.NoError(t, s.Solve())

	mesh := s.Network.Activity("FN-MESH")
	gate := s.Network.Activity("FN-GATE")
	assert.GreaterOrEqual(t, gate.EarlyStart, mesh.EarlyStart-1e-9,
		"gate installation starts no earlier than mesh installation")

	// Paint and gate both close into the final inspection with FF links.
	final := s.Network.Activity("FN-FINAL")
	ffPreds := map[string]bool{}
	for _, rel := range final.Predecessors {
		if rel.Type == domain.LogicFF {
			ffPreds[rel.Activity] = true
		}
	}
	assert.True(t, ffPreds["FN-PAINT"])
	assert.True(t, ffPreds["FN-GATE"])
}

func TestSolve_AllEmbeddedEntries(t *testing.T) {
	cat := catalog.Embedded()

	for _, code := range cat.ListCodes() {
		t.Run(code, func(t *testing.T) {
			ctx := testContext(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 6, 1)
			s, err := BuildFromCatalogue(cat, code, ctx)
			require.NoError(t, err)
			require.NoError(t, s.Solve())

			assert.Greater(t, s.Network.ProjectDuration(), 0.0)
			assert.NotEmpty(t, s.Network.CriticalPath())

			for _, a := range s.Network.ByEarlyStart() {
				assert.LessOrEqual(t, a.EarlyStart, a.LateStart+1e-9, "%s", a.Code)
				assert.GreaterOrEqual(t, a.TotalFloat, -1e-9, "%s", a.Code)
			}
		})
	}
}

func TestMilestones(t *testing.T) {
	cat := catalog.Embedded()
	ctx := testContext(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 6, 1)

	s, err := BuildFromCatalogue(cat, "PLAST-001", ctx)
	require.NoError(t, err)
	require.NoError(t, s.Solve())

	ms := s.Milestones()
	require.NotEmpty(t, ms)

	last := ms[len(ms)-1]
	assert.Equal(t, "PLAST-001-COMPLETE", last.Code)
	assert.Equal(t, s.Network.Summary().ProjectFinish, last.Date)
}

func TestShiftCountShortensDurations(t *testing.T) {
	cat := catalog.Embedded()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	one, err := BuildFromCatalogue(cat, "TILE-001", testContext(start, 6, 1))
	require.NoError(t, err)
	two, err := BuildFromCatalogue(cat, "TILE-001", testContext(start, 6, 2))
	require.NoError(t, err)

	d1 := one.Network.Activity("TI-INSTALL").Duration
	d2 := two.Network.Activity("TI-INSTALL").Duration
	assert.InDelta(t, 0.6, d2/d1, 1e-9, "two-shift duration follows the 0.6 factor")
}
