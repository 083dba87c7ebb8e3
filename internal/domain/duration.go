package domain

import "fmt"

// ActivityDuration computes the final working-day duration for a
// sub-activity given the resolved quantity and shift count:
//
//	raw      = quantity / rate_per_day × shift_factor
//	duration = raw × (1 + (base_buffer + additional_buffer)/100)
//
// Extra shifts shorten the duration by the shift factor (0.6 for two,
// 0.45 for three); the factors stay below the ideal 1/s because night
// work and crew rotation cost productivity. The result is a real number
// of working days; rounding happens only at the calendar boundary.
func ActivityDuration(sub *SubActivity, quantity float64, shifts int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: sub-activity %s requires a positive quantity, got %g",
			ErrInvalidQuantity, sub.Code, quantity)
	}
	if sub.Productivity.RatePerDay <= 0 {
		return 0, fmt.Errorf("%w: sub-activity %s has non-positive productivity rate %g",
			ErrCatalogueInvalid, sub.Code, sub.Productivity.RatePerDay)
	}
	factor, err := ShiftFactor(shifts)
	if err != nil {
		return 0, err
	}

	raw := quantity / sub.Productivity.RatePerDay * factor
	bufferPct := BaseRiskBuffer(sub.Type) + sub.AdditionalBuffer
	return raw * (1 + bufferPct/100), nil
}
