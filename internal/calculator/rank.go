package calculator

import (
	"sort"

	"PointDrift/internal/model"
)

// Rank orders partners by drift percent, highest first. Equal drifts keep their
// input order. The input slice is not modified.
func Rank(results []model.PartnerDriftResult) model.Ranking {
	ordered := make([]model.PartnerDriftResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DriftPercent > ordered[j].DriftPercent
	})
	return model.Ranking{Ordered: ordered}
}
