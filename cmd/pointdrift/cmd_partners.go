package main

import (
	"PointDrift/internal/report"

	"github.com/spf13/cobra"
)

var partnersCmd = &cobra.Command{
	Use:   "partners",
	Short: "List configured partners and their regions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.Partners(cmd.OutOrStdout(), state.reg)
	},
}

func init() {
	rootCmd.AddCommand(partnersCmd)
}
