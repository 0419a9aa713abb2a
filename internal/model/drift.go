package model

// Severity classifies the worst per-partner drift of an analysis.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Status is the presentation state of an analysis. It extends Severity with
// StatusNone, used when no drift was requested at all.
type Status string

const (
	StatusNone   Status = "none"
	StatusLow    Status = Status(SeverityLow)
	StatusMedium Status = Status(SeverityMedium)
	StatusHigh   Status = Status(SeverityHigh)
)

// Economics holds the sanitized point economics for one analysis.
type Economics struct {
	BasePointValue float64 // base-currency value of one point
	PointsCost     float64 // points required for one redemption
	DriftPercent   float64 // uniform drift applied to non-anchor rates
}

// PartnerDriftResult is the per-partner outcome of an analysis.
type PartnerDriftResult struct {
	PartnerID     string
	PartnerName   string
	RegionCode    string
	RegionLabel   string
	Currency      string
	BaselineLocal float64
	ShiftedLocal  float64
	DriftLocal    float64
	DriftPercent  float64
}

// AnalysisResult is the output of the drift analyzer.
type AnalysisResult struct {
	BasePointValue float64
	PointsCost     float64
	DriftPercent   float64
	BaselineFx     FxTable
	ShiftedFx      FxTable
	LiabilityBase  float64
	Partners       []PartnerDriftResult // registry order
	MaxAbsDrift    float64
	Severity       Severity
}

// Ranking is a derived view of an analysis ordered by drift, highest first.
type Ranking struct {
	Ordered []PartnerDriftResult
}

// Top returns the most advantaged partner.
func (r Ranking) Top() (PartnerDriftResult, bool) {
	if len(r.Ordered) == 0 {
		return PartnerDriftResult{}, false
	}
	return r.Ordered[0], true
}

// Bottom returns the most diluted partner.
func (r Ranking) Bottom() (PartnerDriftResult, bool) {
	if len(r.Ordered) == 0 {
		return PartnerDriftResult{}, false
	}
	return r.Ordered[len(r.Ordered)-1], true
}
