package session

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Scenario is a set of raw inputs stored in a YAML file. Absent fields leave
// the session's current value untouched.
type Scenario struct {
	Name           string            `yaml:"name" validate:"max=120"`
	BasePointValue *string           `yaml:"base_point_value"`
	PointsCost     *string           `yaml:"points_cost"`
	DriftPercent   *string           `yaml:"drift_percent"`
	Fx             map[string]string `yaml:"fx" validate:"dive,keys,required,uppercase,endkeys,required"`
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := validate.Struct(sc); err != nil {
		return nil, fmt.Errorf("validate scenario: %w", err)
	}
	return &sc, nil
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// Apply copies the scenario's inputs onto the session. Every FX key must name
// a region in the session's registry.
func (s *Session) Apply(sc *Scenario) error {
	if sc.BasePointValue != nil {
		if err := s.Set(FieldBase, *sc.BasePointValue); err != nil {
			return err
		}
	}
	if sc.PointsCost != nil {
		if err := s.Set(FieldCost, *sc.PointsCost); err != nil {
			return err
		}
	}
	if sc.DriftPercent != nil {
		if err := s.Set(FieldDrift, *sc.DriftPercent); err != nil {
			return err
		}
	}
	for code, rate := range sc.Fx {
		if err := s.Set(FieldFxPrefix+code, rate); err != nil {
			return fmt.Errorf("scenario fx: %w", err)
		}
	}
	return nil
}
