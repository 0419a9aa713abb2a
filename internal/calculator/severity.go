package calculator

import (
	"math"

	"PointDrift/internal/model"
)

// SeverityTiers maps a lower bound of the max absolute drift (percent) to a severity,
// checked from the highest bound down.
var SeverityTiers = []struct {
	MinAbsDrift float64
	Severity    model.Severity
}{
	{15, model.SeverityHigh},
	{5, model.SeverityMedium},
}

// ClassifySeverity maps the maximum absolute partner drift to a severity tier.
func ClassifySeverity(maxAbsDrift float64) model.Severity {
	for _, t := range SeverityTiers {
		if maxAbsDrift >= t.MinAbsDrift {
			return t.Severity
		}
	}
	return model.SeverityLow
}

// MaxAbsDrift returns the largest |DriftPercent| across results, 0 for none.
func MaxAbsDrift(results []model.PartnerDriftResult) float64 {
	maxAbs := 0.0
	for _, r := range results {
		maxAbs = math.Max(maxAbs, math.Abs(r.DriftPercent))
	}
	return maxAbs
}
