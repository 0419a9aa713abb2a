package calculator

import (
	"math"
	"testing"

	"PointDrift/internal/model"
	"PointDrift/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineFx() model.FxTable {
	return model.FxTable{"US": 1.00, "EU": 1.10, "UK": 1.27, "JP": 0.007}
}

func findPartner(t *testing.T, res *model.AnalysisResult, id string) model.PartnerDriftResult {
	t.Helper()
	for _, p := range res.Partners {
		if p.PartnerID == id {
			return p
		}
	}
	t.Fatalf("partner %s not in result", id)
	return model.PartnerDriftResult{}
}

// stubRegistry lets tests bypass registry validation.
type stubRegistry struct {
	anchor   string
	regions  map[string]model.Region
	partners []model.Partner
}

func (s stubRegistry) Anchor() string { return s.anchor }
func (s stubRegistry) Region(code string) (model.Region, bool) {
	r, ok := s.regions[code]
	return r, ok
}
func (s stubRegistry) Partners() []model.Partner { return s.partners }

func TestAnalyze_EndToEnd(t *testing.T) {
	reg := registry.Default()
	res := Analyze(model.Economics{BasePointValue: 0.01, PointsCost: 10000, DriftPercent: 10}, baselineFx(), reg)

	assert.InDelta(t, 100.0, res.LiabilityBase, 1e-9)
	assert.Equal(t, 0.01, res.BasePointValue)
	assert.Equal(t, 10000.0, res.PointsCost)
	assert.Equal(t, 10.0, res.DriftPercent)

	us := findPartner(t, res, "MART_US")
	assert.Equal(t, "USD", us.Currency)
	assert.InDelta(t, 100.0, us.BaselineLocal, 1e-9)
	assert.InDelta(t, 100.0, us.ShiftedLocal, 1e-9)
	assert.Equal(t, 0.0, us.DriftPercent)

	eu := findPartner(t, res, "GSTAY_EU")
	assert.Equal(t, "EUR", eu.Currency)
	assert.Equal(t, "Europe", eu.RegionLabel)
	assert.InDelta(t, 90.909090, eu.BaselineLocal, 1e-5)
	assert.InDelta(t, 1.21, res.ShiftedFx["EU"], 1e-12)
	assert.InDelta(t, 82.644628, eu.ShiftedLocal, 1e-5)
	assert.InDelta(t, -9.090909, eu.DriftPercent, 1e-5)
	assert.InDelta(t, eu.ShiftedLocal-eu.BaselineLocal, eu.DriftLocal, 1e-12)

	uk := findPartner(t, res, "STREAM_UK")
	assert.InDelta(t, 78.740157, uk.BaselineLocal, 1e-5)
	assert.InDelta(t, 1.397, res.ShiftedFx["UK"], 1e-12)
	assert.InDelta(t, 71.581961, uk.ShiftedLocal, 1e-5)
	assert.InDelta(t, -9.090909, uk.DriftPercent, 1e-5)

	jp := findPartner(t, res, "GSTAY_JP")
	assert.InDelta(t, 14285.714285, jp.BaselineLocal, 1e-5)
	assert.InDelta(t, 0.0077, res.ShiftedFx["JP"], 1e-12)
	assert.InDelta(t, 12987.012987, jp.ShiftedLocal, 1e-5)
	assert.InDelta(t, -9.090909, jp.DriftPercent, 1e-5)

	assert.InDelta(t, 9.090909, res.MaxAbsDrift, 1e-5)
	assert.Equal(t, model.SeverityMedium, res.Severity)

	ranking := Rank(res.Partners)
	top, ok := ranking.Top()
	require.True(t, ok)
	assert.Equal(t, "MART_US", top.PartnerID)
	bottom, ok := ranking.Bottom()
	require.True(t, ok)
	assert.Contains(t, []string{"GSTAY_EU", "GSTAY_JP", "STREAM_UK"}, bottom.PartnerID)
}

func TestAnalyze_PreservesRegistryOrder(t *testing.T) {
	reg := registry.Default()
	res := Analyze(model.Economics{BasePointValue: 0.01, PointsCost: 10000, DriftPercent: -25}, baselineFx(), reg)

	require.Len(t, res.Partners, 4)
	for i, p := range reg.Partners() {
		assert.Equal(t, p.ID, res.Partners[i].PartnerID)
	}
}

func TestAnalyze_ZeroDrift(t *testing.T) {
	reg := registry.Default()
	cases := []struct {
		base, cost float64
		fx         model.FxTable
	}{
		{0.01, 10000, baselineFx()},
		{0.015, 25000, model.FxTable{"US": 1, "EU": 0.93, "UK": 1.5, "JP": 0.0091}},
		{3.7, 1, model.FxTable{"US": 2, "EU": 100, "UK": 0.0001, "JP": 42}},
	}
	for _, c := range cases {
		res := Analyze(model.Economics{BasePointValue: c.base, PointsCost: c.cost}, c.fx, reg)
		assert.Equal(t, c.fx, res.ShiftedFx)
		for _, p := range res.Partners {
			assert.Equal(t, 0.0, p.DriftPercent, p.PartnerID)
			assert.Equal(t, p.BaselineLocal, p.ShiftedLocal, p.PartnerID)
		}
		assert.Equal(t, model.SeverityLow, res.Severity)
	}
}

func TestAnalyze_ShiftedLocalFormula(t *testing.T) {
	reg := registry.Default()
	fx := baselineFx()
	for _, drift := range []float64{-50, -12.5, -1, 0.3, 7, 40, 150} {
		res := Analyze(model.Economics{BasePointValue: 0.02, PointsCost: 5000, DriftPercent: drift}, fx, reg)
		liability := 0.02 * 5000.0
		for _, p := range res.Partners {
			want := liability / (fx[p.RegionCode] * (1 + drift/100))
			if p.RegionCode == "US" {
				want = liability / fx["US"]
			}
			assert.InDelta(t, want, p.ShiftedLocal, 1e-9, "drift %v partner %s", drift, p.PartnerID)
		}
	}
}

func TestAnalyze_DoesNotMutateBaseline(t *testing.T) {
	fx := baselineFx()
	res := Analyze(model.Economics{BasePointValue: 0.01, PointsCost: 10000, DriftPercent: 20}, fx, registry.Default())

	assert.Equal(t, baselineFx(), fx)
	res.BaselineFx["EU"] = 99
	assert.Equal(t, 1.10, fx["EU"])
}

func TestAnalyze_ZeroBaselineRateGuard(t *testing.T) {
	reg := stubRegistry{
		anchor: "US",
		regions: map[string]model.Region{
			"US": {Code: "US", Label: "United States", Currency: "USD"},
			"EU": {Code: "EU", Label: "Europe", Currency: "EUR"},
		},
		partners: []model.Partner{{ID: "A", Region: "US"}, {ID: "B", Region: "EU"}},
	}
	res := Analyze(model.Economics{BasePointValue: 0.01, PointsCost: 10000, DriftPercent: 10},
		model.FxTable{"US": 1, "EU": 0}, reg)

	b := res.Partners[1]
	assert.Equal(t, 0.0, b.DriftPercent)
	assert.False(t, math.IsNaN(res.MaxAbsDrift))
	assert.False(t, math.IsInf(res.MaxAbsDrift, 0))
	assert.Equal(t, model.SeverityLow, res.Severity)
}

func TestAnalyze_UnknownRegionFallsBack(t *testing.T) {
	reg := stubRegistry{
		anchor:   "US",
		regions:  map[string]model.Region{"US": {Code: "US", Label: "United States", Currency: "USD"}},
		partners: []model.Partner{{ID: "GHOST", Name: "Ghost", Region: "ZZ"}},
	}
	res := Analyze(model.Economics{BasePointValue: 0.01, PointsCost: 10000, DriftPercent: 5},
		model.FxTable{"US": 1, "ZZ": 2}, reg)

	require.Len(t, res.Partners, 1)
	assert.Equal(t, FallbackCurrency, res.Partners[0].Currency)
	assert.Equal(t, "ZZ", res.Partners[0].RegionLabel)
	assert.InDelta(t, 50.0, res.Partners[0].BaselineLocal, 1e-9)
}
