package catalog

import (
	"fmt"
	"strings"

	"github.com/omarzaki/boqplan/internal/domain"
)

// RuleKey indexes a quantity rule by breakdown category and sub-activity
// unit.
type RuleKey struct {
	Category string
	Unit     string
}

// QuantityRules maps (category, unit) to the factor applied to the
// breakdown's total quantity when sizing a sub-activity measured in that
// unit. The table is deliberately data, not code: every catalogue entry
// ships with rules covering its (category, unit) pairs.
type QuantityRules map[RuleKey]float64

// Resolve returns the quantity consumed by the sub-activity's
// productivity. Lump-sum ("LS") units resolve to 1. Unknown
// (category, unit) combinations fail with domain.ErrUnresolvableQuantity
// naming the offending sub-activity; the engine never silently defaults.
func (r QuantityRules) Resolve(b *domain.Breakdown, sub *domain.SubActivity) (float64, error) {
	if strings.EqualFold(sub.Unit, "LS") {
		return 1, nil
	}
	factor, ok := r[RuleKey{Category: b.Category, Unit: sub.Unit}]
	if !ok {
		return 0, fmt.Errorf("%w: no rule for category %q unit %q (sub-activity %s)",
			domain.ErrUnresolvableQuantity, b.Category, sub.Unit, sub.Code)
	}
	return b.TotalQuantity * factor, nil
}

// Merge returns a copy of r with overrides applied on top. The receiver
// is not modified.
func (r QuantityRules) Merge(overrides QuantityRules) QuantityRules {
	out := make(QuantityRules, len(r)+len(overrides))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// defaultRules covers every (category, unit) pair used by the embedded
// catalogue. Factors convert the BOQ total quantity into the sub-activity's
// own unit of measure, e.g. formwork contact area per m3 of slab concrete.
var defaultRules = QuantityRules{
	// Concrete slab works, BOQ quantity in m3.
	{Category: "concrete", Unit: "m3"}:  1.0,
	{Category: "concrete", Unit: "m2"}:  1.2,  // formwork / finishing contact area per m3
	{Category: "concrete", Unit: "ton"}: 0.12, // rebar tonnage per m3

	// Plastering, BOQ quantity in m2.
	{Category: "plastering", Unit: "m2"}: 1.0,

	// Tiling, BOQ quantity in m2.
	{Category: "tiling", Unit: "m2"}: 1.0,

	// Fencing, BOQ quantity in linear metres.
	{Category: "fencing", Unit: "m"}:  1.0,
	{Category: "fencing", Unit: "no"}: 0.34, // posts per linear metre at 3 m spacing

	// Masonry, BOQ quantity in m2.
	{Category: "masonry", Unit: "m2"}: 1.0,
	{Category: "masonry", Unit: "m"}:  0.4, // lintel / first-course run per m2 of wall
}

// DefaultRules returns a copy of the embedded quantity-rule table.
func DefaultRules() QuantityRules {
	return QuantityRules{}.Merge(defaultRules)
}
