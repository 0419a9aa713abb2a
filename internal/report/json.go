package report

import (
	"encoding/json"
	"math"

	"PointDrift/internal/model"
)

// jsonFloat encodes non-finite values as null instead of failing the dump.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

type partnerJSON struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Region             string    `json:"region"`
	Currency           string    `json:"currency"`
	BaselineLocalValue jsonFloat `json:"baselineLocalValue"`
	ShiftedLocalValue  jsonFloat `json:"shiftedLocalValue"`
	DriftPercent       jsonFloat `json:"driftPercent"`
}

type resultJSON struct {
	BasePointValue jsonFloat            `json:"basePointValue"`
	PointsCost     jsonFloat            `json:"pointsCost"`
	FxDriftPercent jsonFloat            `json:"fxDriftPercent"`
	BaselineFx     map[string]jsonFloat `json:"baselineFx"`
	ShiftedFx      map[string]jsonFloat `json:"shiftedFx"`
	Severity       model.Severity       `json:"severity"`
	Partners       []partnerJSON        `json:"partners"`
}

// JSON returns the machine-readable dump of a result, indented by two spaces.
func JSON(res *model.AnalysisResult) ([]byte, error) {
	out := resultJSON{
		BasePointValue: jsonFloat(res.BasePointValue),
		PointsCost:     jsonFloat(res.PointsCost),
		FxDriftPercent: jsonFloat(res.DriftPercent),
		BaselineFx:     fxJSON(res.BaselineFx),
		ShiftedFx:      fxJSON(res.ShiftedFx),
		Severity:       res.Severity,
		Partners:       make([]partnerJSON, 0, len(res.Partners)),
	}
	for _, p := range res.Partners {
		out.Partners = append(out.Partners, partnerJSON{
			ID:                 p.PartnerID,
			Name:               p.PartnerName,
			Region:             p.RegionLabel,
			Currency:           p.Currency,
			BaselineLocalValue: jsonFloat(p.BaselineLocal),
			ShiftedLocalValue:  jsonFloat(p.ShiftedLocal),
			DriftPercent:       jsonFloat(p.DriftPercent),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func fxJSON(fx model.FxTable) map[string]jsonFloat {
	out := make(map[string]jsonFloat, len(fx))
	for k, v := range fx {
		out[k] = jsonFloat(v)
	}
	return out
}
