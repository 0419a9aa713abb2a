package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"PointDrift/internal/model"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultRegistry []byte

// ErrInvalidRegistry is returned when a registry file fails validation.
var ErrInvalidRegistry = errors.New("invalid registry")

var validate = validator.New()

type file struct {
	Anchor   string          `yaml:"anchor" validate:"required"`
	Regions  []model.Region  `yaml:"regions" validate:"required,min=1,dive"`
	Partners []model.Partner `yaml:"partners" validate:"required,min=1,dive"`
}

// Registry is the static, validated set of regions and partners.
// It is never mutated after Load.
type Registry struct {
	anchor   string
	regions  []model.Region
	byCode   map[string]model.Region
	partners []model.Partner
}

// Default returns the embedded registry. It panics only if the embedded file
// is broken, which is a build defect.
func Default() *Registry {
	r, err := Parse(defaultRegistry)
	if err != nil {
		panic(fmt.Sprintf("embedded registry: %v", err))
	}
	return r
}

// Load reads a registry from a YAML file. An empty path yields the embedded default.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Parse(defaultRegistry)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates registry YAML.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrInvalidRegistry, err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}

	r := &Registry{
		anchor:   f.Anchor,
		regions:  f.Regions,
		byCode:   make(map[string]model.Region, len(f.Regions)),
		partners: f.Partners,
	}
	for _, reg := range f.Regions {
		if _, dup := r.byCode[reg.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate region %q", ErrInvalidRegistry, reg.Code)
		}
		r.byCode[reg.Code] = reg
	}
	if _, ok := r.byCode[f.Anchor]; !ok {
		return nil, fmt.Errorf("%w: anchor region %q not defined", ErrInvalidRegistry, f.Anchor)
	}
	seen := make(map[string]bool, len(f.Partners))
	for _, p := range f.Partners {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate partner %q", ErrInvalidRegistry, p.ID)
		}
		seen[p.ID] = true
		if _, ok := r.byCode[p.Region]; !ok {
			return nil, fmt.Errorf("%w: partner %q references unknown region %q", ErrInvalidRegistry, p.ID, p.Region)
		}
	}
	return r, nil
}

// Anchor returns the base-currency region code.
func (r *Registry) Anchor() string { return r.anchor }

// Region looks up a region by code.
func (r *Registry) Region(code string) (model.Region, bool) {
	reg, ok := r.byCode[code]
	return reg, ok
}

// Regions returns the regions in file order.
func (r *Registry) Regions() []model.Region {
	out := make([]model.Region, len(r.regions))
	copy(out, r.regions)
	return out
}

// Partners returns the partners in file order.
func (r *Registry) Partners() []model.Partner {
	out := make([]model.Partner, len(r.partners))
	copy(out, r.partners)
	return out
}

// DefaultFx returns the fallback baseline rate of every region.
func (r *Registry) DefaultFx() model.FxTable {
	fx := make(model.FxTable, len(r.regions))
	for _, reg := range r.regions {
		fx[reg.Code] = reg.DefaultRate
	}
	return fx
}
