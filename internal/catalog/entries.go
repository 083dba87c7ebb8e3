package catalog

import (
	"fmt"
	"sync"

	"github.com/omarzaki/boqplan/internal/domain"
)

// embeddedBreakdowns is the process-level catalogue. Productivity rates
// are single-shift outputs per working day for the stated crew; lags are
// working days.
var embeddedBreakdowns = []domain.Breakdown{
	{
		BOQCode:       "CONC-SLAB-001",
		Description:   "Reinforced concrete slab on grade, C30/37",
		TotalQuantity: 350,
		Unit:          "m3",
		Category:      "concrete",
		SubActivities: []domain.SubActivity{
			{
				Code: "CS-SURVEY", Name: "Surveying and layout", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 1, Equipment: "total station", Supervisor: true}},
				Type: domain.ActivityPrecise,
			},
			{
				Code: "CS-FORM", Name: "Formwork erection", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 80, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 4, Helpers: 3, Equipment: "hand tools", Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "CS-SURVEY"},
				},
			},
			{
				Code: "CS-REBAR-PREP", Name: "Rebar cutting and bending", Unit: "ton",
				Productivity: domain.ProductivityRate{RatePerDay: 2.5, Unit: "ton/day",
					Crew: domain.Crew{SkilledWorkers: 3, Helpers: 2, Equipment: "bar bender, cutter", Supervisor: false}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "CS-SURVEY"},
				},
			},
			{
				Code: "CS-REBAR-FIX", Name: "Rebar installation", Unit: "ton",
				Productivity: domain.ProductivityRate{RatePerDay: 2, Unit: "ton/day",
					Crew: domain.Crew{SkilledWorkers: 5, Helpers: 3, Equipment: "tower crane", Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "CS-FORM", LagDays: 1},
					{Type: domain.LogicFS, Predecessor: "CS-REBAR-PREP"},
				},
			},
			{
				Code: "CS-MEP", Name: "MEP embeds and sleeves check", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 1, Supervisor: false}},
				Type: domain.ActivityExternal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "CS-REBAR-FIX"},
				},
			},
			{
				Code: "CS-INSPECT-PRE", Name: "Pre-pour consultant inspection", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 1, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "CS-MEP"},
					{Type: domain.LogicFS, Predecessor: "CS-FORM"},
				},
			},
			{
				Code: "CS-POUR", Name: "Concrete pouring", Unit: "m3",
				Productivity: domain.ProductivityRate{RatePerDay: 120, Unit: "m3/day",
					Crew: domain.Crew{SkilledWorkers: 6, Helpers: 6, Equipment: "pump, 2 mixers, vibrators", Supervisor: true}},
				Type: domain.ActivityCritical,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "CS-INSPECT-PRE"},
				},
				Remarks: "continuous pour, no cold joints",
			},
			{
				Code: "CS-FINISH", Name: "Surface finishing and levelling", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 150, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 4, Helpers: 2, Equipment: "power float", Supervisor: false}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "CS-POUR", LagDays: 0.5},
				},
			},
			{
				Code: "CS-CURE", Name: "Curing", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 0.15, Unit: "LS/day",
					Crew: domain.Crew{Helpers: 2, Equipment: "curing compound, hessian"}},
				Type: domain.ActivityExternal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "CS-FINISH"},
				},
				Remarks: "7-day wet cure",
			},
			{
				Code: "CS-STRIP", Name: "Formwork stripping", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 120, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 3, Helpers: 3, Supervisor: false}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					// Side forms strip before the cure window closes.
					{Type: domain.LogicFS, Predecessor: "CS-CURE", LagDays: -2},
				},
			},
			{
				Code: "CS-FINAL", Name: "Final inspection and handover", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 1, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "CS-STRIP"},
					{Type: domain.LogicFF, Predecessor: "CS-CURE", LagDays: 1},
				},
			},
		},
	},
	{
		BOQCode:       "PLAST-001",
		Description:   "Internal cement plastering to blockwork, 20 mm",
		TotalQuantity: 1200,
		Unit:          "m2",
		Category:      "plastering",
		SubActivities: []domain.SubActivity{
			{
				Code: "PL-PREP", Name: "Surface preparation and hacking", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 200, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 3, Supervisor: false}},
				Type: domain.ActivityNormal,
			},
			{
				Code: "PL-DOTS", Name: "Dots and screeds", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 300, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 3, Helpers: 1, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "PL-PREP"},
				},
			},
			{
				Code: "PL-BASE", Name: "Base plaster coat", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 150, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 4, Helpers: 4, Equipment: "mixer", Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					// Setting period for the dots before the coat goes on.
					{Type: domain.LogicFS, Predecessor: "PL-DOTS", LagDays: 2},
				},
			},
			{
				Code: "PL-TOPCOAT", Name: "Finish coat", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 180, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 4, Helpers: 2, Supervisor: false}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "PL-BASE", LagDays: 1},
				},
			},
			{
				Code: "PL-CURE", Name: "Curing", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 0.2, Unit: "LS/day",
					Crew: domain.Crew{Helpers: 1}},
				Type: domain.ActivityExternal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "PL-TOPCOAT"},
				},
			},
			{
				Code: "PL-INSPECT", Name: "Consultant inspection", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 1, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFF, Predecessor: "PL-CURE", LagDays: 1},
				},
			},
		},
	},
	{
		BOQCode:       "TILE-001",
		Description:   "Porcelain floor tiling 600x600 on screed",
		TotalQuantity: 800,
		Unit:          "m2",
		Category:      "tiling",
		SubActivities: []domain.SubActivity{
			{
				Code: "TI-PREP", Name: "Surface preparation", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 180, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 2, Supervisor: true}},
				Type: domain.ActivityNormal,
			},
			{
				Code: "TI-SCREED", Name: "Screed laying", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 120, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 3, Helpers: 2, Equipment: "mixer", Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "TI-PREP", LagDays: 1},
				},
			},
			{
				Code: "TI-INSTALL", Name: "Tile installation", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 60, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 6, Helpers: 4, Equipment: "tile cutters, levelling clips", Supervisor: true}},
				Type: domain.ActivityCritical,
				Links: []domain.LogicLink{
					// Screed needs two days to take foot traffic.
					{Type: domain.LogicSS, Predecessor: "TI-SCREED", LagDays: 2},
				},
			},
			{
				Code: "TI-GROUT", Name: "Grouting", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 100, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 2, Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "TI-INSTALL", LagDays: 1},
				},
			},
			{
				Code: "TI-CLEAN", Name: "Cleaning and polishing", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 200, Unit: "m2/day",
					Crew: domain.Crew{Helpers: 4}},
				Type: domain.ActivityNonCritical,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "TI-GROUT"},
				},
			},
			{
				Code: "TI-FINAL", Name: "Final inspection", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 1, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "TI-CLEAN"},
				},
			},
		},
	},
	{
		BOQCode:       "FENCE-001",
		Description:   "Chain-link boundary fence 2.4 m high with gates",
		TotalQuantity: 500,
		Unit:          "m",
		Category:      "fencing",
		SubActivities: []domain.SubActivity{
			{
				Code: "FN-SETOUT", Name: "Setting out", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 2, Equipment: "total station", Supervisor: true}},
				Type: domain.ActivityPrecise,
			},
			{
				Code: "FN-EXCAV", Name: "Post hole excavation", Unit: "no",
				Productivity: domain.ProductivityRate{RatePerDay: 40, Unit: "no/day",
					Crew: domain.Crew{Helpers: 4, Equipment: "auger", Supervisor: false}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "FN-SETOUT"},
				},
			},
			{
				Code: "FN-POSTS", Name: "Post setting and concreting", Unit: "no",
				Productivity: domain.ProductivityRate{RatePerDay: 50, Unit: "no/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 3, Equipment: "mixer", Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "FN-EXCAV", LagDays: 1},
				},
			},
			{
				Code: "FN-MESH", Name: "Mesh installation", Unit: "m",
				Productivity: domain.ProductivityRate{RatePerDay: 80, Unit: "m/day",
					Crew: domain.Crew{SkilledWorkers: 4, Helpers: 2, Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					// Post footings need a day before tensioning.
					{Type: domain.LogicFS, Predecessor: "FN-POSTS", LagDays: 1},
				},
			},
			{
				Code: "FN-GATE", Name: "Gate installation", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 0.5, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 1, Supervisor: false}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "FN-MESH"},
				},
			},
			{
				Code: "FN-PAINT", Name: "Painting and touch-up", Unit: "m",
				Productivity: domain.ProductivityRate{RatePerDay: 120, Unit: "m/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 2}},
				Type: domain.ActivityNonCritical,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "FN-MESH", LagDays: 2},
				},
			},
			{
				Code: "FN-FINAL", Name: "Final inspection", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 1, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFF, Predecessor: "FN-PAINT", LagDays: 0.5},
					{Type: domain.LogicFF, Predecessor: "FN-GATE", LagDays: 0.5},
				},
			},
		},
	},
	{
		BOQCode:       "BLOCK-001",
		Description:   "Concrete blockwork wall 200 mm, fair faced",
		TotalQuantity: 600,
		Unit:          "m2",
		Category:      "masonry",
		SubActivities: []domain.SubActivity{
			{
				Code: "BL-SETOUT", Name: "Setting out", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 2, Supervisor: true}},
				Type: domain.ActivityPrecise,
			},
			{
				Code: "BL-FIRST", Name: "First course laying and alignment", Unit: "m",
				Productivity: domain.ProductivityRate{RatePerDay: 60, Unit: "m/day",
					Crew: domain.Crew{SkilledWorkers: 3, Helpers: 2, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "BL-SETOUT"},
				},
			},
			{
				Code: "BL-WALL", Name: "Wall laying", Unit: "m2",
				Productivity: domain.ProductivityRate{RatePerDay: 25, Unit: "m2/day",
					Crew: domain.Crew{SkilledWorkers: 4, Helpers: 4, Equipment: "scaffolding", Supervisor: true}},
				Type: domain.ActivityNormal,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "BL-FIRST", LagDays: 1},
				},
			},
			{
				Code: "BL-LINTEL", Name: "Lintel casting over openings", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 0.5, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 2, Helpers: 2, Supervisor: false}},
				Type: domain.ActivityExternal,
				Links: []domain.LogicLink{
					{Type: domain.LogicSS, Predecessor: "BL-WALL", LagDays: 4},
				},
			},
			{
				Code: "BL-CURE", Name: "Curing", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 0.33, Unit: "LS/day",
					Crew: domain.Crew{Helpers: 1}},
				Type: domain.ActivityExternal,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "BL-WALL"},
					{Type: domain.LogicFS, Predecessor: "BL-LINTEL"},
				},
			},
			{
				Code: "BL-FINAL", Name: "Final inspection", Unit: "LS",
				Productivity: domain.ProductivityRate{RatePerDay: 1, Unit: "LS/day",
					Crew: domain.Crew{SkilledWorkers: 1, Supervisor: true}},
				Type: domain.ActivityPrecise,
				Links: []domain.LogicLink{
					{Type: domain.LogicFS, Predecessor: "BL-CURE"},
				},
			},
		},
	},
}

var (
	embeddedOnce sync.Once
	embedded     *Catalogue
)

// Embedded returns the process-level catalogue built from the shipped
// breakdown data and default quantity rules. The embedded data is trusted
// to pass its own validation; a failure here is a programming error.
func Embedded() *Catalogue {
	embeddedOnce.Do(func() {
		c, err := New(embeddedBreakdowns, DefaultRules())
		if err != nil {
			panic(fmt.Sprintf("embedded catalogue failed validation: %v", err))
		}
		embedded = c
	})
	return embedded
}
