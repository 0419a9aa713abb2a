package main

import (
	"fmt"

	"PointDrift/internal/scheduler"
	"PointDrift/internal/session"

	"github.com/spf13/cobra"
)

var (
	analyzeBase     string
	analyzeCost     string
	analyzeDrift    string
	analyzeFx       map[string]string
	analyzeScenario string
	analyzeFormat   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a single drift analysis",
	Long: `Run one drift analysis. Inputs start at their baseline values, are overlaid
by a scenario file if given, then by flags. Unusable values fall back to defaults.

Examples:
  pointdrift analyze --drift 10
  pointdrift analyze --drift -7.5 --fx EU=1.08,JP=0.0066 --format json
  pointdrift analyze --scenario scenarios/euro-rally.yaml`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeBase, "base", "", "Base-currency value of one point")
	analyzeCmd.Flags().StringVar(&analyzeCost, "cost", "", "Points required for one redemption")
	analyzeCmd.Flags().StringVar(&analyzeDrift, "drift", "", "FX drift percent applied to non-anchor currencies")
	analyzeCmd.Flags().StringToStringVar(&analyzeFx, "fx", nil, "Baseline FX rates, e.g. EU=1.10,UK=1.27")
	analyzeCmd.Flags().StringVar(&analyzeScenario, "scenario", "", "Scenario YAML file")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "Output format: text, json (default from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sess := session.New(state.reg)

	if analyzeScenario != "" {
		sc, err := session.LoadScenario(analyzeScenario)
		if err != nil {
			return err
		}
		if err := sess.Apply(sc); err != nil {
			return fmt.Errorf("apply scenario: %w", err)
		}
	}

	flagFields := []struct {
		flag, field string
		value       *string
	}{
		{"base", session.FieldBase, &analyzeBase},
		{"cost", session.FieldCost, &analyzeCost},
		{"drift", session.FieldDrift, &analyzeDrift},
	}
	for _, f := range flagFields {
		if cmd.Flags().Changed(f.flag) {
			if err := sess.Set(f.field, *f.value); err != nil {
				return err
			}
		}
	}
	for code, rate := range analyzeFx {
		if err := sess.Set(session.FieldFxPrefix+code, rate); err != nil {
			return fmt.Errorf("--fx: %w", err)
		}
	}

	format := state.cfg.Output.Format
	if analyzeFormat != "" {
		format = analyzeFormat
	}

	_, err := scheduler.RenderAnalysis(cmd.OutOrStdout(), sess, state.rec, format)
	return err
}
