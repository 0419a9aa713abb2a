package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"PointDrift/internal/model"
)

// BarClass colours a bar by the direction of a partner's drift.
type BarClass string

const (
	BarPositive BarClass = "positive"
	BarNegative BarClass = "negative"
	BarNeutral  BarClass = "neutral"
)

const (
	neutralBand  = 1.0  // |drift| at or below this is neutral
	signBand     = 0.1  // "+" is shown only above this
	maxBarWidth  = 50.0 // percent of the track on either side
	halfTrackLen = 20   // characters per side in text rendering
)

// Bar is one partner's drift bar on a track centred at zero.
type Bar struct {
	Label        string
	Class        BarClass
	Positive     bool    // fills right of centre
	WidthPercent float64 // 0..50 percent of the track
	Value        string
}

// Bars builds one bar per partner in result order. Widths are scaled to the
// largest finite absolute drift, never below 1%. A non-finite drift fills its
// whole side of the track.
func Bars(results []model.PartnerDriftResult) []Bar {
	effectiveMax := math.Max(maxFiniteDrift(results), 1)

	bars := make([]Bar, 0, len(results))
	for _, r := range results {
		class := BarNeutral
		switch {
		case r.DriftPercent > neutralBand:
			class = BarPositive
		case r.DriftPercent < -neutralBand:
			class = BarNegative
		}

		var magnitude float64
		value := "-"
		switch {
		case math.IsNaN(r.DriftPercent):
		case math.IsInf(r.DriftPercent, 0):
			magnitude = 1
		default:
			magnitude = math.Min(math.Abs(r.DriftPercent)/effectiveMax, 1)
			value = FormatPercent(r.DriftPercent, 1)
			if r.DriftPercent > signBand {
				value = "+" + value
			}
		}

		bars = append(bars, Bar{
			Label:        r.PartnerName,
			Class:        class,
			Positive:     r.DriftPercent >= 0,
			WidthPercent: magnitude * maxBarWidth,
			Value:        value,
		})
	}
	return bars
}

func maxFiniteDrift(results []model.PartnerDriftResult) float64 {
	m := 0.0
	for _, r := range results {
		if math.IsNaN(r.DriftPercent) || math.IsInf(r.DriftPercent, 0) {
			continue
		}
		m = math.Max(m, math.Abs(r.DriftPercent))
	}
	return m
}

// RenderBars draws bars as text tracks, e.g.
//
//	GlobalStay Hotels (JP)   [     ###############|                    ] -9.1%
func RenderBars(w io.Writer, bars []Bar) error {
	if len(bars) == 0 {
		_, err := fmt.Fprintln(w, "No partners configured.")
		return err
	}
	labelWidth := 0
	for _, b := range bars {
		labelWidth = max(labelWidth, len([]rune(b.Label)))
	}
	for _, b := range bars {
		fill := 0
		if w := b.WidthPercent / maxBarWidth * halfTrackLen; !math.IsNaN(w) {
			fill = int(math.Round(math.Min(math.Max(w, 0), halfTrackLen)))
		}
		var left, right string
		if b.Positive {
			left = strings.Repeat(" ", halfTrackLen)
			right = strings.Repeat(fillRune(b.Class), fill) + strings.Repeat(" ", halfTrackLen-fill)
		} else {
			left = strings.Repeat(" ", halfTrackLen-fill) + strings.Repeat(fillRune(b.Class), fill)
			right = strings.Repeat(" ", halfTrackLen)
		}
		if _, err := fmt.Fprintf(w, "%-*s [%s|%s] %s\n", labelWidth, b.Label, left, right, b.Value); err != nil {
			return err
		}
	}
	return nil
}

func fillRune(c BarClass) string {
	switch c {
	case BarPositive:
		return "+"
	case BarNegative:
		return "#"
	default:
		return "."
	}
}
