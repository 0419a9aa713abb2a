// Package session holds the raw, user-editable inputs of the calculator and
// runs a fresh analysis over them on demand.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"PointDrift/internal/calculator"
	"PointDrift/internal/input"
	"PointDrift/internal/model"
	"PointDrift/internal/registry"

	"github.com/rs/zerolog/log"
)

// ErrUnknownField is returned by Set for a field name the session does not hold.
var ErrUnknownField = errors.New("unknown field")

// Field names accepted by Set. FX rates use FieldFxPrefix + region code.
const (
	FieldBase     = "base"
	FieldCost     = "cost"
	FieldDrift    = "drift"
	FieldFxPrefix = "fx."
)

// Session is the application state: raw inputs exactly as entered.
type Session struct {
	reg *registry.Registry

	BasePointValue string
	PointsCost     string
	Drift          string
	Fx             map[string]string
}

// New returns a session reset to baseline values.
func New(reg *registry.Registry) *Session {
	s := &Session{reg: reg}
	s.Reset()
	return s
}

// Registry returns the registry the session analyzes against.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Reset restores every input to its baseline value and zero drift.
func (s *Session) Reset() {
	s.BasePointValue = formatFloat(input.DefaultBasePointValue)
	s.PointsCost = formatFloat(input.DefaultPointsCost)
	s.Drift = "0"
	s.Fx = make(map[string]string)
	for _, r := range s.reg.Regions() {
		s.Fx[r.Code] = formatFloat(r.DefaultRate)
	}
}

// Set stores a raw value for a field. The value is kept as entered; values that
// will be replaced by a fallback at analysis time are reported in the log.
func (s *Session) Set(field, value string) error {
	field = strings.TrimSpace(field)
	switch {
	case field == FieldBase:
		s.BasePointValue = value
		warnFallback(field, value, input.DefaultBasePointValue)
	case field == FieldCost:
		s.PointsCost = value
		warnFallback(field, value, input.DefaultPointsCost)
	case field == FieldDrift:
		s.Drift = value
		if _, err := input.ParseNumber(value); err != nil {
			log.Warn().Str("field", field).Str("value", value).Msg("drift is not a number, using 0")
		}
	case strings.HasPrefix(field, FieldFxPrefix):
		code := strings.ToUpper(strings.TrimPrefix(field, FieldFxPrefix))
		region, ok := s.reg.Region(code)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		s.Fx[code] = value
		warnFallback(field, value, region.DefaultRate)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Fields lists every settable field name.
func (s *Session) Fields() []string {
	fields := []string{FieldBase, FieldCost, FieldDrift}
	for _, r := range s.reg.Regions() {
		fields = append(fields, FieldFxPrefix+r.Code)
	}
	return fields
}

// Economics returns the sanitized point economics.
func (s *Session) Economics() model.Economics {
	return model.Economics{
		BasePointValue: input.ParsePositive(s.BasePointValue, input.DefaultBasePointValue),
		PointsCost:     input.ParsePositive(s.PointsCost, input.DefaultPointsCost),
		DriftPercent:   input.ParseDrift(s.Drift),
	}
}

// BaselineFx returns the sanitized baseline FX table, one rate per region.
func (s *Session) BaselineFx() model.FxTable {
	fx := make(model.FxTable)
	for _, r := range s.reg.Regions() {
		fx[r.Code] = input.ParsePositive(s.Fx[r.Code], r.DefaultRate)
	}
	return fx
}

// Analyze runs the drift analyzer over the current inputs.
func (s *Session) Analyze() *model.AnalysisResult {
	return calculator.Analyze(s.Economics(), s.BaselineFx(), s.reg)
}

func warnFallback(field, value string, fallback float64) {
	if _, err := input.ParsePositiveStrict(value); err != nil {
		log.Warn().Err(err).Str("field", field).Float64("fallback", fallback).Msg("using fallback value")
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
