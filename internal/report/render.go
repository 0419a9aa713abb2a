// Package report turns analysis results into text and JSON for the terminal.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"PointDrift/internal/model"
	"PointDrift/internal/registry"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Render for an unsupported format.
var ErrUnknownFormat = errors.New("unknown output format")

// Render writes a full report of res in the requested format.
func Render(w io.Writer, res *model.AnalysisResult, reg *registry.Registry, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := JSON(res)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatText, "":
		return renderText(w, res, reg)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, res *model.AnalysisResult, reg *registry.Registry) error {
	anchor := anchorCurrency(reg)
	status := Status(res)

	var b strings.Builder
	fmt.Fprintf(&b, "PointDrift | FX drift %s | liability %s\n\n",
		FormatDrift(res.DriftPercent), FormatCurrency(res.LiabilityBase, anchor, symbols(reg)[anchor]))
	fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(string(status)), BadgeLabel(status))
	fmt.Fprintf(&b, "%s\n\n", Narrative(res, anchor))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if err := RenderBars(w, Bars(res.Partners)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return Table(w, res, symbols(reg))
}

// Partners writes the registry as a table.
func Partners(w io.Writer, reg *registry.Registry) error {
	var b strings.Builder
	for _, p := range reg.Partners() {
		region, _ := reg.Region(p.Region)
		fmt.Fprintf(&b, "%-10s %-30s %-3s %s  %s\n", p.ID, p.Name, region.Code, region.Currency, p.Note)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func anchorCurrency(reg *registry.Registry) string {
	if r, ok := reg.Region(reg.Anchor()); ok {
		return r.Currency
	}
	return "USD"
}

// symbols maps currency codes to display symbols.
func symbols(reg *registry.Registry) map[string]string {
	out := make(map[string]string)
	for _, r := range reg.Regions() {
		out[r.Currency] = r.Symbol
	}
	return out
}
