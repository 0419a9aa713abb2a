package report

import (
	"fmt"

	"PointDrift/internal/calculator"
	"PointDrift/internal/model"
)

// NoDriftNarrative is shown when no drift was applied.
const NoDriftNarrative = "No FX drift applied: all partners sit at their baseline value."

// Narrative names the partner that gains most and the one diluted most.
// anchorCurrency is the ISO code of the currency drift does not apply to.
func Narrative(res *model.AnalysisResult, anchorCurrency string) string {
	if Status(res) == model.StatusNone {
		return NoDriftNarrative
	}
	ranking := calculator.Rank(res.Partners)
	top, ok := ranking.Top()
	if !ok {
		return NoDriftNarrative
	}
	bottom, _ := ranking.Bottom()

	sign := ""
	if res.DriftPercent > 0 {
		sign = "+"
	}
	return fmt.Sprintf("With FX drift of %s%s applied to non-%s currencies, "+
		"%s becomes the richest partner (~%s vs baseline), while %s is the most diluted (~%s).",
		sign, FormatPercent(res.DriftPercent, 0), anchorCurrency,
		partnerLabel(top), FormatPercent(top.DriftPercent, 1),
		partnerLabel(bottom), FormatPercent(bottom.DriftPercent, 1))
}

func partnerLabel(p model.PartnerDriftResult) string {
	return fmt.Sprintf("%s (%s)", p.PartnerName, p.RegionLabel)
}
