// Package input turns raw user-entered strings into values the analyzer accepts.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fallbacks for point economics when the raw value is unusable.
const (
	DefaultBasePointValue = 0.01
	DefaultPointsCost     = 10000.0
)

var (
	// ErrNotNumber indicates the raw value does not parse as a finite number.
	ErrNotNumber = errors.New("not a number")
	// ErrNotPositive indicates the raw value parsed but is zero or negative.
	ErrNotPositive = errors.New("not a positive number")
)

// ParseNumber parses a finite float from raw, ignoring surrounding whitespace.
func ParseNumber(raw string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, raw)
	}
	return n, nil
}

// ParsePositiveStrict parses raw and rejects anything that is not a finite positive number.
func ParsePositiveStrict(raw string) (float64, error) {
	n, err := ParseNumber(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotPositive, raw)
	}
	return n, nil
}

// ParsePositive returns the parsed value of raw, or fallback when raw is not a
// finite positive number.
func ParsePositive(raw string, fallback float64) float64 {
	n, err := ParsePositiveStrict(raw)
	if err != nil {
		return fallback
	}
	return n
}

// ParseDrift returns the drift percent in raw, or 0 when it is not a finite number.
// Drift has no sign or magnitude restriction.
func ParseDrift(raw string) float64 {
	n, err := ParseNumber(raw)
	if err != nil {
		return 0
	}
	return n
}
