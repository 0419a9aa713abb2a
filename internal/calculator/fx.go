package calculator

import "PointDrift/internal/model"

// ApplyDrift returns a new FX table with every non-anchor rate scaled by
// (1 + driftPercent/100). The anchor rate is copied unchanged.
func ApplyDrift(baseline model.FxTable, driftPercent float64, anchor string) model.FxTable {
	factor := 1 + driftPercent/100
	shifted := make(model.FxTable, len(baseline))
	for code, rate := range baseline {
		if code == anchor {
			shifted[code] = rate
			continue
		}
		shifted[code] = rate * factor
	}
	return shifted
}

// Liability returns the base-currency cost of one redemption.
func Liability(basePointValue, pointsCost float64) float64 {
	return pointsCost * basePointValue
}
