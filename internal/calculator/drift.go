package calculator

import (
	"math"

	"PointDrift/internal/model"
)

// FallbackCurrency labels a partner whose region cannot be resolved.
const FallbackCurrency = "USD"

// Registry is the read-only region/partner configuration an analysis runs against.
type Registry interface {
	Anchor() string
	Region(code string) (model.Region, bool)
	Partners() []model.Partner
}

// Analyze converts the redemption liability into every partner's local currency
// at the baseline and drifted FX rates and classifies the worst distortion.
// Inputs are expected to be sanitized already; Analyze never fails.
func Analyze(econ model.Economics, baselineFx model.FxTable, reg Registry) *model.AnalysisResult {
	shiftedFx := ApplyDrift(baselineFx, econ.DriftPercent, reg.Anchor())
	liability := Liability(econ.BasePointValue, econ.PointsCost)

	partners := reg.Partners()
	results := make([]model.PartnerDriftResult, 0, len(partners))
	for _, p := range partners {
		results = append(results, partnerDrift(p, reg, liability, baselineFx[p.Region], shiftedFx[p.Region]))
	}

	maxAbs := MaxAbsDrift(results)
	return &model.AnalysisResult{
		BasePointValue: econ.BasePointValue,
		PointsCost:     econ.PointsCost,
		DriftPercent:   econ.DriftPercent,
		BaselineFx:     baselineFx.Clone(),
		ShiftedFx:      shiftedFx,
		LiabilityBase:  liability,
		Partners:       results,
		MaxAbsDrift:    maxAbs,
		Severity:       ClassifySeverity(maxAbs),
	}
}

func partnerDrift(p model.Partner, reg Registry, liability, fxBase, fxShifted float64) model.PartnerDriftResult {
	currency, label := FallbackCurrency, p.Region
	// Registry validation makes a miss impossible; keep the analysis total anyway.
	if region, ok := reg.Region(p.Region); ok {
		currency, label = region.Currency, region.Label
	}

	baselineLocal := liability / fxBase
	shiftedLocal := liability / fxShifted
	driftLocal := shiftedLocal - baselineLocal

	driftPct := 0.0
	if baselineLocal > 0 && !math.IsInf(baselineLocal, 0) {
		driftPct = driftLocal / baselineLocal * 100
	}

	return model.PartnerDriftResult{
		PartnerID:     p.ID,
		PartnerName:   p.Name,
		RegionCode:    p.Region,
		RegionLabel:   label,
		Currency:      currency,
		BaselineLocal: baselineLocal,
		ShiftedLocal:  shiftedLocal,
		DriftLocal:    driftLocal,
		DriftPercent:  driftPct,
	}
}
