package report

import "PointDrift/internal/model"

var badgeLabels = map[model.Status]string{
	model.StatusNone:   "No drift applied.",
	model.StatusLow:    "Small FX drift",
	model.StatusMedium: "Noticeable value drift",
	model.StatusHigh:   "Distorted partner fairness",
}

// Status is the presentation state of a result: StatusNone when no drift was
// requested, otherwise the result's severity.
func Status(res *model.AnalysisResult) model.Status {
	if res.DriftPercent == 0 {
		return model.StatusNone
	}
	return model.Status(res.Severity)
}

// BadgeLabel returns the short headline for a status.
func BadgeLabel(status model.Status) string {
	if l, ok := badgeLabels[status]; ok {
		return l
	}
	return badgeLabels[model.StatusNone]
}
