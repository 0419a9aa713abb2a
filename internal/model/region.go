package model

// Region is a currency region a partner settles in.
type Region struct {
	Code     string `yaml:"code" json:"code" validate:"required"`
	Label    string `yaml:"label" json:"label" validate:"required"`
	Currency string `yaml:"currency" json:"currency" validate:"required,len=3,uppercase"`
	Symbol   string `yaml:"symbol" json:"symbol,omitempty"`
	// DefaultRate is the fallback baseline FX rate (1 local = DefaultRate base).
	DefaultRate float64 `yaml:"default_rate" json:"defaultRate" validate:"gt=0"`
}

// Partner is a redemption partner exposed in a single region.
type Partner struct {
	ID     string `yaml:"id" json:"id" validate:"required"`
	Name   string `yaml:"name" json:"name" validate:"required"`
	Region string `yaml:"region" json:"region" validate:"required"`
	Note   string `yaml:"note" json:"note,omitempty"`
}

// FxTable maps a region code to "1 unit of local currency = rate units of base currency".
type FxTable map[string]float64

// Clone returns an independent copy of the table.
func (t FxTable) Clone() FxTable {
	out := make(FxTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
