package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrewTotalWorkers(t *testing.T) {
	cases := []struct {
		name string
		crew Crew
		want int
	}{
		{"empty", Crew{}, 0},
		{"no supervisor", Crew{SkilledWorkers: 3, Helpers: 2}, 5},
		{"with supervisor", Crew{SkilledWorkers: 3, Helpers: 2, Supervisor: true}, 6},
		{"supervisor only", Crew{Supervisor: true}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.crew.TotalWorkers())
		})
	}
}

func TestCrewScale(t *testing.T) {
	base := Crew{SkilledWorkers: 4, Helpers: 3, Equipment: "mixer", Supervisor: true}

	doubled := base.Scale(2)
	assert.Equal(t, 8, doubled.SkilledWorkers)
	assert.Equal(t, 6, doubled.Helpers)
	assert.Equal(t, "mixer", doubled.Equipment, "equipment is shared across shifts")
	assert.True(t, doubled.Supervisor)
	assert.Equal(t, 15, doubled.TotalWorkers())
}

func TestBreakdownSub(t *testing.T) {
	b := &Breakdown{
		BOQCode: "X-001",
		SubActivities: []SubActivity{
			{Code: "A"}, {Code: "B"},
		},
	}

	require.NotNil(t, b.Sub("B"))
	assert.Equal(t, "B", b.Sub("B").Code)
	assert.Nil(t, b.Sub("Z"))
}

func TestProjectContextValidate(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, wd := range []int{5, 6, 7} {
		ctx := &ProjectContext{ProjectStart: start, WorkingDaysPerWeek: wd, Shifts: 1}
		assert.NoError(t, ctx.Validate(), "working days=%d", wd)
	}

	ctx := &ProjectContext{ProjectStart: start, WorkingDaysPerWeek: 4, Shifts: 1}
	assert.Error(t, ctx.Validate())

	ctx = &ProjectContext{ProjectStart: start, WorkingDaysPerWeek: 6, Shifts: 5}
	assert.ErrorIs(t, ctx.Validate(), ErrInvalidShifts)
}

func TestProjectContextRestDays(t *testing.T) {
	cases := []struct {
		workingDays int
		rest        []time.Weekday
	}{
		{5, []time.Weekday{time.Friday, time.Saturday}},
		{6, []time.Weekday{time.Friday}},
		{7, nil},
	}
	for _, tc := range cases {
		ctx := &ProjectContext{WorkingDaysPerWeek: tc.workingDays}
		rest := ctx.RestDays()
		assert.Len(t, rest, len(tc.rest), "working days=%d", tc.workingDays)
		for _, d := range tc.rest {
			assert.True(t, rest[d], "working days=%d rest=%s", tc.workingDays, d)
		}
	}
}
