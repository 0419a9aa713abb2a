package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"PointDrift/internal/model"
)

// Table writes one row per partner with baseline and drifted local values.
func Table(w io.Writer, res *model.AnalysisResult, symbols map[string]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PARTNER\tREGION\tCCY\tBASELINE\tSHIFTED\tDRIFT\t")
	for _, p := range res.Partners {
		sym := symbols[p.Currency]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.PartnerName, p.RegionLabel, p.Currency,
			FormatCurrency(p.BaselineLocal, p.Currency, sym),
			FormatCurrency(p.ShiftedLocal, p.Currency, sym),
			FormatPercent(p.DriftPercent, 2))
	}
	return tw.Flush()
}
